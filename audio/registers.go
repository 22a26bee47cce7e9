// Package audio implements the 4-channel APU: two pulse channels (the
// first with frequency sweep), a wave channel, a noise channel, NR50/NR51
// stereo mixing, NR52 power gating, a push-based mix sample callback, and
// a per-side high-pass filter. The frame sequencer is paced by the timer's
// bit-12 falling edges, delivered per tick by the engine, rather than a
// private free-running counter.
package audio

// WaveRAMSize is the size of wave pattern RAM in bytes (32 4-bit samples).
const WaveRAMSize = 16

// dutyPatterns gives, for each of the four duty cycles, which of the 8
// steps in the square wave are "high".
var dutyPatterns = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1}, // 12.5%
	{1, 0, 0, 0, 0, 0, 0, 1}, // 25%
	{1, 0, 0, 0, 0, 1, 1, 1}, // 50%
	{0, 1, 1, 1, 1, 1, 1, 0}, // 75%
}

// Registers holds the raw NRxx register bytes, mirroring what host code
// writes and (mostly) what it reads back.
type Registers struct {
	NR10, NR11, NR12, NR13, NR14 uint8
	NR21, NR22, NR23, NR24       uint8
	NR30, NR31, NR32, NR33, NR34 uint8
	NR41, NR42, NR43, NR44       uint8
	NR50, NR51, NR52             uint8
	WaveRAM                      [WaveRAMSize]uint8
}
