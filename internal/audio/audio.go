// Package audio provides the sound cues played at game transitions.
// Terminals have no mixer, so the only audible implementation rings the
// terminal bell; everything else is bookkeeping the UI can query.
package audio

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Cue identifies a sound resource.
type Cue int

const (
	CueBackground Cue = iota // Looping background music
	CueLeap                  // One-shot jump sound
	CueVictory               // One-shot win fanfare
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueBackground:
		return "background"
	case CueLeap:
		return "leap"
	case CueVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Player starts and stops cues. Implementations must not block.
type Player interface {
	Play(c Cue) error
	Pause(c Cue) error
}

// Silent is a Player that does nothing.
type Silent struct{}

// Play implements Player.
func (Silent) Play(Cue) error { return nil }

// Pause implements Player.
func (Silent) Pause(Cue) error { return nil }

// Bell rings the terminal bell for selected one-shot cues and remembers
// which looping cues are currently playing.
//
// Rings are written in the background, at most one at a time. A cue that
// arrives while a ring is still being written is dropped. A failed write is
// reported by the next Play.
type Bell struct {
	mu      sync.Mutex
	w       io.Writer
	ring    map[Cue]bool
	playing map[Cue]bool
	err     error // From the last background write

	busy     atomic.Bool
	inflight sync.WaitGroup
}

// NewBell creates a Bell writing BEL to w for each cue in ring.
func NewBell(w io.Writer, ring ...Cue) *Bell {
	b := &Bell{
		w:       w,
		ring:    make(map[Cue]bool, len(ring)),
		playing: make(map[Cue]bool),
	}
	for _, c := range ring {
		b.ring[c] = true
	}
	return b
}

// Play implements Player. It never blocks on the writer.
func (b *Bell) Play(c Cue) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if c == CueBackground {
		b.playing[c] = true
		return nil
	}

	err := b.err
	b.err = nil
	if err != nil {
		err = fmt.Errorf("audio: ring: %w", err)
	}

	if !b.ring[c] || b.w == nil {
		return err
	}
	if !b.busy.CompareAndSwap(false, true) {
		return err
	}

	b.inflight.Add(1)
	go b.write(c)
	return err
}

// write rings once and releases the bell.
func (b *Bell) write(c Cue) {
	defer b.inflight.Done()
	defer b.busy.Store(false)

	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.mu.Lock()
		b.err = fmt.Errorf("%s: %w", c, err)
		b.mu.Unlock()
	}
}

// Wait blocks until the ring being written, if any, has finished.
func (b *Bell) Wait() {
	b.inflight.Wait()
}

// Pause implements Player.
func (b *Bell) Pause(c Cue) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.playing, c)
	return nil
}

// Playing reports whether a looping cue is active.
func (b *Bell) Playing(c Cue) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.playing[c]
}
