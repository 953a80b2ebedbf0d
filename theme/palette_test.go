package theme

import "testing"

func TestDefaultPaletteParses(t *testing.T) {
	p := Default()
	if p.Name != "Aurora" {
		t.Fatalf("embedded palette name = %q, want Aurora", p.Name)
	}
	if len(p.Colors) < 2 {
		t.Fatalf("embedded palette has %d colors, want several", len(p.Colors))
	}
}

func TestLookupEndpoints(t *testing.T) {
	p := Default()
	if p.Lookup(0) != p.Colors[0] {
		t.Fatal("lookup at 0 must return the first color")
	}
	if p.Lookup(1) != p.Colors[len(p.Colors)-1] {
		t.Fatal("lookup at 1 must return the last color")
	}
	if p.Lookup(-3) != p.Colors[0] || p.Lookup(7) != p.Colors[len(p.Colors)-1] {
		t.Fatal("out-of-range lookups clamp to the ends")
	}
}

func TestMustLoadGPLFallsBack(t *testing.T) {
	p := MustLoadGPL("/no/such/palette.gpl")
	if len(p.Colors) == 0 {
		t.Fatal("missing palette file should fall back to the embedded default")
	}
}
