package systems

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/starsong/components"
	cfg "github.com/automoto/starsong/config"
	"github.com/automoto/starsong/synth"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// ToneEngine plays collection notes.
type ToneEngine interface {
	// Resume unlocks output; called once after the first real input event.
	Resume() error
	// PlayTone starts one enveloped note and returns immediately.
	PlayTone(freq float64) error
}

// NewUpdateAudio activates the engine on the first start request and plays
// a note for every queued collection event. Events seen before activation
// are dropped.
func NewUpdateAudio(engine ToneEngine) ecs.System {
	return func(e *ecs.ECS) {
		audioData := getOrCreateAudio(e)
		input := getOrCreateInput(e)

		if !audioData.Activated && input.StartRequested {
			if err := engine.Resume(); err != nil {
				log.Printf("audio: %v", err)
			} else {
				audioData.Activated = true
			}
		}

		events := getOrCreateCollectionEvents(e)
		for _, ev := range events.Pending {
			if !audioData.Activated {
				continue
			}
			if err := engine.PlayTone(ev.Frequency); err != nil {
				log.Printf("audio: note %d (star %d): %v", ev.NoteIndex, ev.StarIndex, err)
				continue
			}
			audioData.NotesPlayed++
		}
		events.Pending = events.Pending[:0]
	}
}

func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}

// Global audio context - created once, ebiten allows only one per process
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// SynthEngine renders notes with the synth package and plays them on
// ebiten's audio context.
type SynthEngine struct {
	players []*audio.Player
}

func NewSynthEngine() *SynthEngine {
	return &SynthEngine{}
}

func (s *SynthEngine) Resume() error {
	initGlobalAudio()
	if globalAudioContext == nil {
		return fmt.Errorf("no audio context")
	}
	return nil
}

func (s *SynthEngine) PlayTone(freq float64) error {
	if globalAudioContext == nil {
		return fmt.Errorf("audio not resumed")
	}
	s.reap()

	if cfg.Audio.Volume <= 0 {
		return nil
	}

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	player, err := globalAudioContext.NewPlayerF32(synth.NewPCMReader(NoteTone(freq).Streamer(rate)))
	if err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	player.Play()
	s.players = append(s.players, player)
	return nil
}

// reap closes players whose note has finished.
func (s *SynthEngine) reap() {
	live := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	s.players = live
}

// NoteTone describes the collection note for freq.
func NoteTone(freq float64) synth.Tone {
	return synth.Tone{
		Frequency: freq,
		Envelope: synth.Envelope{
			Floor:  cfg.Note.Floor,
			Peak:   cfg.Note.Peak,
			Attack: cfg.Note.Attack,
			Decay:  cfg.Note.Decay,
		},
		Duration: cfg.Note.Duration,
		Volume:   cfg.Audio.Volume,
	}
}
