package audio

import "github.com/oisin-vance/gbcore/addr"

// noiseDividers maps the 3-bit NR43 clock-divider field to its divisor in
// clock ticks before the shift is applied; the divisor code 0 counts as
// half of code 1.
var noiseDividers = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

// APU is the four-channel audio processing unit: two pulse channels (the
// first with frequency sweep), a wave channel, a noise channel, NR50/NR51
// stereo mixing, NR52 power gating, and a push-based mix sample callback
// with a per-side high-pass filter.
type APU struct {
	Registers

	enabled bool
	ch      [4]channel

	volLeft, volRight uint8 // NR50 master volume, 0-7

	// The wave channel ticks every 2nd clock tick, pulse channels every
	// 4th; the noise channel runs at its own computed period.
	waveClock, pulseClock int
	noiseClock            int

	// Frame-sequencer counter, incremented on each timer bit-12 falling
	// edge delivered through Tick.
	divAPUCounter uint8

	mixPeriod             int
	mixTick               int
	hpLeftIn, hpLeftOut   float64
	hpRightIn, hpRightOut float64

	// lastOutput holds each channel's most recent converted analog sample
	// (-1.0..+1.0), refreshed on every channel tick and read back by mix.
	lastOutput [4]float64

	onSample func(left, right float32)
}

// highPassAlpha is the coefficient of the per-side first-order high-pass
// filter applied to the mixed output.
const highPassAlpha = 0.999958

// New returns an APU clocked at sourceClockHz, mixing a stereo sample
// every sourceClockHz/sampleRate clock ticks.
func New(sourceClockHz, sampleRate int) *APU {
	period := 1
	if sampleRate > 0 {
		period = sourceClockHz / sampleRate
		if period < 1 {
			period = 1
		}
	}
	a := &APU{mixPeriod: period}
	for i := range a.ch {
		a.ch[i].left = true
		a.ch[i].right = true
	}
	return a
}

// SetSampleCallback registers the callback invoked with a stereo sample
// every mix period.
func (a *APU) SetSampleCallback(cb func(left, right float32)) {
	a.onSample = cb
}

// Enabled reports the APU master-enable flag (NR52 bit 7).
func (a *APU) Enabled() bool { return a.enabled }

// Tick advances the APU by one clock tick. divAPUEdge reports whether
// timer bit 12 fell high to low on this same tick; the caller reads it
// from the timer after ticking it, so the ordering between the two
// subsystems stays observable.
func (a *APU) Tick(divAPUEdge bool) {
	if !a.enabled {
		return
	}

	a.waveClock++
	if a.waveClock >= 2 {
		a.waveClock = 0
		a.tickWave()
	}

	a.pulseClock++
	if a.pulseClock >= 4 {
		a.pulseClock = 0
		a.tickPulse(0)
		a.tickPulse(1)
	}

	a.noiseClock--
	if a.noiseClock <= 0 {
		a.tickNoise()
		a.noiseClock = a.noisePeriod()
	}

	if divAPUEdge {
		a.tickDivAPU()
	}

	a.mixTick++
	if a.mixTick >= a.mixPeriod {
		a.mixTick = 0
		a.mix()
	}
}

// tickDivAPU advances the frame sequencer: every 2nd event ticks length
// timers, every 4th the channel-1 frequency sweep, every 8th the volume
// envelopes.
func (a *APU) tickDivAPU() {
	a.divAPUCounter++

	if a.divAPUCounter%2 == 0 {
		a.tickLength(0)
		a.tickLength(1)
		a.tickLength(2)
		a.tickLength(3)
	}
	if a.divAPUCounter%4 == 0 {
		a.tickSweep()
	}
	if a.divAPUCounter%8 == 0 {
		a.ch[0].stepEnvelope()
		a.ch[1].stepEnvelope()
		a.ch[3].stepEnvelope()
	}
}

// tickLength advances a channel's length counter, disabling the channel on
// expiry.
func (a *APU) tickLength(idx int) {
	ch := &a.ch[idx]
	if !ch.enabled {
		return
	}
	if ch.stepLength(ch.lengthEnable) {
		ch.enabled = false
	}
}

// tickSweep advances channel 1's frequency sweep. An upward sweep that
// would push the period past 0x7FF disables the channel instead.
func (a *APU) tickSweep() {
	ch := &a.ch[0]
	if !ch.sweepEnabled || ch.sweepStep == 0 {
		return
	}
	newFreq, overflow := ch.sweepFrequency()
	if !ch.sweepDown && overflow {
		ch.enabled = false
		return
	}
	ch.sweepTimer++
	if ch.sweepTimer < ch.sweepPeriod {
		return
	}
	ch.sweepTimer = 0
	ch.shadowFreq = newFreq
	ch.period = newFreq
	ch.freqTimer = int(newFreq)
}

// tickPulse advances one of the two pulse channels: when the period
// divider wraps past 0x800 it reloads from the current period and the duty
// pointer moves one step.
func (a *APU) tickPulse(idx int) {
	ch := &a.ch[idx]
	if !ch.enabled {
		a.lastOutput[idx] = 0
		return
	}
	ch.freqTimer++
	if ch.freqTimer > 0x800 {
		ch.freqTimer = int(ch.period)
		ch.dutyStep = (ch.dutyStep + 1) % 8
	}
	sample := dutyPatterns[ch.duty&0x3][ch.dutyStep]
	dacInput := sample * ch.volume
	a.lastOutput[idx] = dacConvert(dacInput, ch.dacEnabled)
}

// tickWave advances the wave channel: same period logic as pulse, stepping
// a 32-sample pointer into wave RAM, with the 4-bit sample scaled by the
// NR32 output level.
func (a *APU) tickWave() {
	ch := &a.ch[2]
	if !ch.enabled {
		a.lastOutput[2] = 0
		return
	}
	ch.freqTimer++
	if ch.freqTimer > 0x800 {
		ch.freqTimer = int(ch.period)
		ch.waveIndex = (ch.waveIndex + 1) % 32
	}
	nibble := a.waveNibble(ch.waveIndex)

	var scaled uint8
	switch ch.volume & 0x3 {
	case 0:
		scaled = 0
	case 1:
		scaled = nibble
	case 2:
		scaled = nibble >> 1
	case 3:
		scaled = nibble >> 2
	}
	a.lastOutput[2] = dacConvert(scaled, ch.dacEnabled)
}

// waveNibble fetches the 4-bit sample at the given index from the
// 32-nibble wave RAM; index 0 selects the high nibble of byte 0.
func (a *APU) waveNibble(index uint8) uint8 {
	b := a.WaveRAM[index/2]
	if index%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

// tickNoise advances the noise channel's LFSR: the XNOR of the two low
// bits feeds bit 15 (and bit 7 in narrow mode) before the shift.
func (a *APU) tickNoise() {
	ch := &a.ch[3]
	if !ch.enabled {
		a.lastOutput[3] = 0
		return
	}
	bit0 := ch.lfsr & 1
	bit1 := (ch.lfsr >> 1) & 1
	feedback := uint16(0)
	if bit0 == bit1 {
		feedback = 1
	}
	ch.lfsr = (ch.lfsr &^ (1 << 15)) | (feedback << 15)
	if ch.use7BitLFSR {
		ch.lfsr = (ch.lfsr &^ (1 << 7)) | (feedback << 7)
	}
	ch.lfsr >>= 1

	dacInput := uint8(ch.lfsr&1) * ch.volume
	a.lastOutput[3] = dacConvert(dacInput, ch.dacEnabled)
}

// noisePeriod computes the noise channel's period in clock ticks from the
// NR43 divider and shift fields.
func (a *APU) noisePeriod() int {
	ch := &a.ch[3]
	return noiseDividers[ch.divider&0x7] << ch.shift
}

// dacConvert maps a 4-bit DAC input to an analog sample in [-1, +1], or
// silence if the channel's DAC is disabled.
func dacConvert(input uint8, dacEnabled bool) float64 {
	if !dacEnabled {
		return 0
	}
	return -(float64(input)/7.5 - 1.0)
}

// mix sums every enabled, DAC-enabled, unmasked channel per side, scales
// by master volume, applies the high-pass filter, normalizes by the
// channel count, and delivers the sample to the registered callback.
func (a *APU) mix() {
	var left, right float64
	for i := range a.ch {
		ch := &a.ch[i]
		if !ch.enabled || !ch.dacEnabled {
			continue
		}
		if ch.left {
			left += a.lastOutput[i]
		}
		if ch.right {
			right += a.lastOutput[i]
		}
	}

	left = left * (float64(a.volLeft) / 7.5)
	right = right * (float64(a.volRight) / 7.5)

	left = a.highPass(left, &a.hpLeftIn, &a.hpLeftOut)
	right = a.highPass(right, &a.hpRightIn, &a.hpRightOut)

	left /= 4
	right /= 4

	if a.onSample != nil {
		a.onSample(float32(left), float32(right))
	}
}

func (a *APU) highPass(x float64, prevIn, prevOut *float64) float64 {
	y := x - *prevIn + highPassAlpha**prevOut
	*prevIn = x
	*prevOut = y
	return y
}

// ReadPort reads a hardware register in the APU's port window. id is the
// low byte of the address (address - 0xFF00). Unreadable bits of each
// register read back high, write-only registers read as 0xFF.
func (a *APU) ReadPort(id uint8) uint8 {
	switch id {
	case addr.PortNR10:
		return a.NR10 | 0x80
	case addr.PortNR11:
		return a.NR11 | 0x3F // only the duty bits read back
	case addr.PortNR12:
		return a.NR12
	case addr.PortNR13:
		return 0xFF
	case addr.PortNR14:
		return a.NR14 | 0xBF
	case addr.PortNR21:
		return a.NR21 | 0x3F
	case addr.PortNR22:
		return a.NR22
	case addr.PortNR23:
		return 0xFF
	case addr.PortNR24:
		return a.NR24 | 0xBF
	case addr.PortNR30:
		return a.NR30 | 0x7F
	case addr.PortNR31:
		return 0xFF
	case addr.PortNR32:
		return a.NR32 | 0x9F
	case addr.PortNR33:
		return 0xFF
	case addr.PortNR34:
		return a.NR34 | 0xBF
	case addr.PortNR41:
		return 0xFF
	case addr.PortNR42:
		return a.NR42
	case addr.PortNR43:
		return a.NR43
	case addr.PortNR44:
		return a.NR44 | 0xBF
	case addr.PortNR50:
		return a.NR50
	case addr.PortNR51:
		return a.NR51
	case addr.PortNR52:
		return a.readNR52()
	}
	if id >= 0x30 && id <= 0x3F {
		return a.WaveRAM[id-0x30]
	}
	return 0xFF
}

func (a *APU) readNR52() uint8 {
	status := uint8(0x70)
	if a.enabled {
		status |= 0x80
	}
	for i := range a.ch {
		if a.ch[i].enabled {
			status |= 1 << uint(i)
		}
	}
	return status
}

// WritePort writes a hardware register in the APU's port window, applying
// NR52 power gating and the per-channel trigger side effects. While the
// APU is powered off only NR52 and wave RAM accept writes.
func (a *APU) WritePort(id uint8, value uint8) {
	isWaveRAM := id >= 0x30 && id <= 0x3F
	if !a.enabled && id != addr.PortNR52 && !isWaveRAM {
		return
	}

	switch id {
	case addr.PortNR10:
		a.NR10 = value
		a.ch[0].sweepPeriod = (value >> 4) & 0x7
		a.ch[0].sweepDown = value&0x08 != 0
		a.ch[0].sweepStep = value & 0x7
		a.ch[0].sweepEnabled = a.ch[0].sweepPeriod != 0 || a.ch[0].sweepStep != 0
	case addr.PortNR11:
		a.NR11 = value
		a.ch[0].duty = value >> 6
		a.ch[0].length = 64 - uint16(value&0x3F)
	case addr.PortNR12:
		a.NR12 = value
		a.writeEnvelope(0, value)
	case addr.PortNR13:
		a.NR13 = value
		a.setPeriodLow(0, value)
	case addr.PortNR14:
		a.NR14 = value
		a.setPeriodHigh(0, value)
		a.ch[0].lengthEnable = value&0x40 != 0
		if value&0x80 != 0 {
			a.trigger(0, 63)
		}
	case addr.PortNR21:
		a.NR21 = value
		a.ch[1].duty = value >> 6
		a.ch[1].length = 64 - uint16(value&0x3F)
	case addr.PortNR22:
		a.NR22 = value
		a.writeEnvelope(1, value)
	case addr.PortNR23:
		a.NR23 = value
		a.setPeriodLow(1, value)
	case addr.PortNR24:
		a.NR24 = value
		a.setPeriodHigh(1, value)
		a.ch[1].lengthEnable = value&0x40 != 0
		if value&0x80 != 0 {
			a.trigger(1, 63)
		}
	case addr.PortNR30:
		a.NR30 = value
		a.ch[2].dacEnabled = value&0x80 != 0
		if !a.ch[2].dacEnabled {
			a.ch[2].enabled = false
		}
	case addr.PortNR31:
		a.NR31 = value
		a.ch[2].length = 256 - uint16(value)
	case addr.PortNR32:
		a.NR32 = value
		a.ch[2].volume = (value >> 5) & 0x3
	case addr.PortNR33:
		a.NR33 = value
		a.setPeriodLow(2, value)
	case addr.PortNR34:
		a.NR34 = value
		a.setPeriodHigh(2, value)
		a.ch[2].lengthEnable = value&0x40 != 0
		if value&0x80 != 0 {
			a.trigger(2, 255)
		}
	case addr.PortNR41:
		a.NR41 = value
		a.ch[3].length = 64 - uint16(value&0x3F)
	case addr.PortNR42:
		a.NR42 = value
		a.writeEnvelope(3, value)
	case addr.PortNR43:
		a.NR43 = value
		a.ch[3].shift = value >> 4
		a.ch[3].use7BitLFSR = value&0x08 != 0
		a.ch[3].divider = value & 0x7
	case addr.PortNR44:
		a.NR44 = value
		a.ch[3].lengthEnable = value&0x40 != 0
		if value&0x80 != 0 {
			a.trigger(3, 63)
		}
	case addr.PortNR50:
		a.NR50 = value
		a.volLeft = (value >> 4) & 0x7
		a.volRight = value & 0x7
	case addr.PortNR51:
		a.NR51 = value
		for i := range a.ch {
			a.ch[i].right = value&(1<<uint(i)) != 0
			a.ch[i].left = value&(1<<uint(i+4)) != 0
		}
	case addr.PortNR52:
		a.writeNR52(value)
	}

	if isWaveRAM {
		a.WaveRAM[id-0x30] = value
	}
}

// writeEnvelope applies an NRx2 write: initial volume, direction and pace.
// A register with volume 0 and direction down leaves the DAC off, which
// also silences the channel.
func (a *APU) writeEnvelope(idx int, value uint8) {
	ch := &a.ch[idx]
	ch.volume = value >> 4
	ch.envelopeUp = value&0x08 != 0
	ch.envelopePace = value & 0x7
	ch.dacEnabled = value&0xF8 != 0
	if !ch.dacEnabled {
		ch.enabled = false
	}
}

func (a *APU) setPeriodLow(idx int, low uint8) {
	ch := &a.ch[idx]
	ch.period = (ch.period & 0x700) | uint16(low)
}

func (a *APU) setPeriodHigh(idx int, value uint8) {
	ch := &a.ch[idx]
	ch.period = (ch.period & 0x0FF) | (uint16(value&0x7) << 8)
}

// trigger reloads a channel on an NRx4 trigger-bit write: the period
// divider reloads from the current period, pointers and tick counters
// reset, the noise LFSR fills with ones, and the channel-enable bit tracks
// the DAC-enable state.
func (a *APU) trigger(idx int, maxLength uint16) {
	ch := &a.ch[idx]
	ch.triggerCommon(maxLength)
	ch.freqTimer = int(ch.period)
	ch.dutyStep = 0
	ch.waveIndex = 0
	ch.sweepTimer = 0
	ch.envelopeCounter = ch.envelopePace

	if idx == 0 {
		ch.shadowFreq = ch.period
		ch.sweepEnabled = ch.sweepPeriod != 0 || ch.sweepStep != 0
	}
	if idx == 3 {
		ch.lfsr = 0x7FFF
	}
	ch.enabled = ch.dacEnabled
}

// writeNR52 applies the master-enable bit. Clearing bit 7 zeroes every
// other register and renders them read-only until it is set again.
func (a *APU) writeNR52(value uint8) {
	wasEnabled := a.enabled
	a.enabled = value&0x80 != 0
	if wasEnabled && !a.enabled {
		a.Registers = Registers{WaveRAM: a.WaveRAM}
		a.ch = [4]channel{}
		for i := range a.ch {
			a.ch[i].left = true
			a.ch[i].right = true
		}
		a.volLeft, a.volRight = 0, 0
	}
}
