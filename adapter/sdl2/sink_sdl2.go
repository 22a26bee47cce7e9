//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
)

// Sink opens an SDL2 audio device and feeds it the APU's stereo float
// samples, converting each to signed 16-bit PCM.
type Sink struct {
	device sdl.AudioDeviceID
}

// Open initializes SDL2's audio subsystem and opens a stereo 16-bit device
// at sampleRate Hz.
func Open(sampleRate int) (*Sink, error) {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdl2: failed to initialize audio: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  512,
	}
	obtained := &sdl.AudioSpec{}
	device, err := sdl.OpenAudioDevice("", false, spec, obtained, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, fmt.Errorf("sdl2: failed to open audio device: %w", err)
	}

	sdl.PauseAudioDevice(device, false)
	slog.Info("sdl2 audio sink initialized", "freq", obtained.Freq, "samples", obtained.Samples)
	return &Sink{device: device}, nil
}

// Push queues one stereo sample pair, converting from the APU's -1.0..+1.0
// float range to signed 16-bit PCM. Intended to be registered directly as
// a gbcore.Engine.SetAudioSampleCallback callback.
func (s *Sink) Push(left, right float32) {
	if s.device == 0 {
		return
	}
	frame := [2]int16{floatToPCM(left), floatToPCM(right)}
	bytes := int16SliceToBytes(frame[:])
	if err := sdl.QueueAudio(s.device, bytes); err != nil {
		slog.Warn("sdl2 audio queue failed", "error", err)
	}
}

func floatToPCM(f float32) int16 {
	if f > 1 {
		f = 1
	} else if f < -1 {
		f = -1
	}
	return int16(f * 32767)
}

func int16SliceToBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		out[i*2] = byte(s)
		out[i*2+1] = byte(s >> 8)
	}
	return out
}

// Close stops and closes the audio device.
func (s *Sink) Close() error {
	if s.device != 0 {
		sdl.CloseAudioDevice(s.device)
		s.device = 0
	}
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
