package speaker

import (
	"fmt"
	"io"
	"sync"

	"github.com/hajimehoshi/oto/v2"

	"driftfield/internal/audio"
)

// Speaker plays one endless stream through oto.
type Speaker struct {
	ctx   *oto.Context
	ready chan struct{}

	mu     sync.Mutex
	player oto.Player
	closed bool
}

// Open creates the audio context. Playback starts once the device is ready.
func Open() (*Speaker, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, audio.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio context: %w", err)
	}
	return &Speaker{ctx: ctx, ready: ready}, nil
}

// Play starts src at volume in the background.
func (s *Speaker) Play(src io.Reader, volume float64) {
	go func() {
		<-s.ready
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		p := s.ctx.NewPlayer(src)
		p.SetVolume(volume)
		p.Play()
		s.player = p
	}()
}

// Close stops playback.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.player == nil {
		return nil
	}
	return s.player.Close()
}
