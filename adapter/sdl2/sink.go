//go:build !sdl2

// Package sdl2 provides an audio sink that queues the APU's mixed stereo
// samples to an SDL2 audio device. Building the real sink requires SDL2
// development libraries and the "sdl2" build tag; the default, cgo-free
// build uses this stub instead.
package sdl2

import "fmt"

// Sink is the stub implementation used when built without the "sdl2" tag.
type Sink struct{}

// Open always fails in the stub build.
func Open(sampleRate int) (*Sink, error) {
	return nil, fmt.Errorf("sdl2: audio sink not available - compile with -tags sdl2 and install SDL2 development libraries")
}

// Push is a no-op in the stub build.
func (s *Sink) Push(left, right float32) {}

// Close is a no-op in the stub build.
func (s *Sink) Close() error { return nil }
