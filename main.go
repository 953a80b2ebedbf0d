package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"graphseq/audio"
	"graphseq/config"
	"graphseq/debug"
	"graphseq/sequencer"
	"graphseq/theme"
	"graphseq/tui"
)

func main() {
	if os.Getenv("GRAPHSEQ_DEBUG") != "" {
		if err := debug.Enable(); err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	th := theme.New(theme.MustLoadGPL(cfg.Palette))

	out := openOutput(cfg)
	defer out.Close()

	session := sequencer.NewSession(out)
	session.Clock().SetTempo(cfg.Tempo)
	session.Clock().RequestMode(sequencer.ModeFromString(cfg.Mode))

	m := tui.NewModel(session, th, cfg)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// openOutput picks the audio backend: a MIDI port when configured or
// available, the built-in synth otherwise, silence as the last resort.
func openOutput(cfg *config.Config) audio.Output {
	tryMIDI := cfg.Backend == config.BackendMIDI || cfg.Backend == config.BackendAuto
	if tryMIDI {
		out, err := audio.OpenMIDI(cfg.MIDIPort)
		if err == nil {
			return out
		}
		debug.Log("main", "midi unavailable: %v", err)
		if cfg.Backend == config.BackendMIDI {
			fmt.Fprintf(os.Stderr, "midi: %v (continuing without sound)\n", err)
			return audio.Silent{}
		}
	}
	synth, err := audio.NewSynth()
	if err != nil {
		debug.Log("main", "synth unavailable: %v", err)
		fmt.Fprintf(os.Stderr, "audio: %v (continuing without sound)\n", err)
		return audio.Silent{}
	}
	return synth
}
