package main

import (
	"fmt"
	"os"
	"time"

	"graphseq/audio"
)

// porttest is a small diagnostic for MIDI routing problems: it lists
// the available output ports and can sound a test chord through one.
func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "chord":
		testChord()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("porttest - MIDI output diagnostics")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list          - list MIDI output ports")
	fmt.Println("  chord [port]  - play a C major chord on a port (default: first)")
}

func listPorts() {
	ports := audio.ListPorts()
	if len(ports) == 0 {
		fmt.Println("no MIDI output ports found")
		return
	}
	for i, name := range ports {
		fmt.Printf("  [%d] %s\n", i, name)
	}
}

func testChord() {
	name := ""
	if len(os.Args) > 2 {
		name = os.Args[2]
	}
	out, err := audio.OpenMIDI(name)
	if err != nil {
		fmt.Printf("open: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Println("playing C major...")
	out.TriggerNotes([]uint8{60, 64, 67}, 500*time.Millisecond, time.Now(), 0.6)
	time.Sleep(time.Second)
}
