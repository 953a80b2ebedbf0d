package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"graphseq/debug"
)

const (
	synthSampleRate = 44100
	maxVoices       = 32
)

// Synth is a minimal additive-sine fallback used when no MIDI port can
// be opened: each triggered note becomes one decaying sine voice mixed
// into an oto stream. No filter, no reverb; it only needs to make the
// grid audible.
type Synth struct {
	ctx    *oto.Context
	player *oto.Player
	mixer  *mixer
}

func NewSynth() (*Synth, error) {
	op := &oto.NewContextOptions{
		SampleRate:   synthSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create audio context: %w", err)
	}
	<-ready

	m := &mixer{}
	s := &Synth{ctx: ctx, mixer: m}
	s.player = ctx.NewPlayer(m)
	s.player.Play()
	debug.Log("synth", "oto context ready, %d Hz", synthSampleRate)
	return s, nil
}

// TriggerNotes starts one voice per note. The equal-power velocity is
// applied per voice; summing stays within range because the clock has
// already scaled it by 1/sqrt(k).
func (s *Synth) TriggerNotes(notes []uint8, dur time.Duration, _ time.Time, velocity float64) {
	for _, note := range notes {
		s.mixer.addVoice(noteFreq(note), velocity, dur)
	}
}

func (s *Synth) Close() error {
	if s.player != nil {
		if err := s.player.Close(); err != nil {
			return fmt.Errorf("cannot close player: %w", err)
		}
	}
	return nil
}

func noteFreq(note uint8) float64 {
	return 440.0 * math.Pow(2, (float64(note)-69)/12)
}

type voice struct {
	freq    float64
	amp     float64
	phase   float64
	age     int // samples rendered so far
	release int // total samples before the voice is dropped
}

// mixer renders the active voices into 16-bit mono samples. It is the
// io.Reader behind the oto player; Read runs on oto's feeder goroutine
// while addVoice runs on the clock goroutine, hence the mutex.
type mixer struct {
	mu     sync.Mutex
	voices []*voice
}

func (m *mixer) addVoice(freq, amp float64, dur time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.voices) >= maxVoices {
		m.voices = m.voices[1:]
	}
	m.voices = append(m.voices, &voice{
		freq:    freq,
		amp:     amp,
		release: int(float64(synthSampleRate) * dur.Seconds()),
	})
}

func (m *mixer) Read(buf []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(buf) / 2 * 2
	samples := make([]float64, n/2)
	for _, v := range m.voices {
		for i := range samples {
			if v.age >= v.release {
				break
			}
			// Exponential decay over the gate keeps releases click-free.
			env := math.Exp(-4 * float64(v.age) / float64(v.release))
			samples[i] += v.amp * env * math.Sin(v.phase)
			v.phase += 2 * math.Pi * v.freq / synthSampleRate
			v.age++
		}
	}
	live := m.voices[:0]
	for _, v := range m.voices {
		if v.age < v.release {
			live = append(live, v)
		}
	}
	m.voices = live

	for i, sample := range samples {
		if sample > 1 {
			sample = 1
		} else if sample < -1 {
			sample = -1
		}
		s := int16(sample * 0.5 * math.MaxInt16)
		buf[2*i] = byte(s)
		buf[2*i+1] = byte(s >> 8)
	}
	return n, nil
}
