// Package timer implements the DIV/TIMA/TMA/TAC timer: a 16-bit
// free-running counter incremented once per clock tick, whose high byte is
// the DIV register, and a TIMA counter incremented on falling edges of a
// TAC-selected counter bit. TIMA overflow reloads from TMA one tick later
// and requests the Timer interrupt.
package timer

import (
	"github.com/oisin-vance/gbcore/addr"
	"github.com/oisin-vance/gbcore/bit"
)

// tacBitPosition maps the two TAC rate-select bits to the system counter
// bit whose falling edge increments TIMA: {4096, 262144, 65536, 16384} Hz.
var tacBitPosition = [4]uint8{9, 3, 5, 7}

// Timer is the 16-bit free-running divider plus TIMA/TMA/TAC.
type Timer struct {
	counter uint16
	// prev is the counter value before the most recent increment; falling
	// edges are detected by comparing a bit across prev and counter.
	prev uint16

	lastTimerBit bool
	pendingLoad  bool

	tima, tma, tac uint8

	// RequestInterrupt is invoked on TIMA overflow; nil is a valid no-op.
	RequestInterrupt func()
}

// New returns a Timer with its counter and registers zeroed.
func New() *Timer {
	return &Timer{}
}

// DIV is the divider register, the upper byte of the internal counter.
func (t *Timer) DIV() uint8 { return bit.High(t.counter) }

// ResetDIV zeroes the internal counter, as any write to the DIV port does
// regardless of the value written.
func (t *Timer) ResetDIV() {
	t.prev = t.counter
	t.counter = 0
}

// TIMA returns the current timer counter value.
func (t *Timer) TIMA() uint8 { return t.tima }

// SetTIMA writes the timer counter directly.
func (t *Timer) SetTIMA(value uint8) { t.tima = value }

// TMA returns the timer modulo, reloaded into TIMA on overflow.
func (t *Timer) TMA() uint8 { return t.tma }

// SetTMA writes the timer modulo.
func (t *Timer) SetTMA(value uint8) { t.tma = value }

// TAC returns the timer control register.
func (t *Timer) TAC() uint8 { return t.tac }

// SetTAC writes the timer control register.
func (t *Timer) SetTAC(value uint8) { t.tac = value }

// enabled reports whether TAC bit 2 (timer start) is set.
func (t *Timer) enabled() bool { return bit.IsSet(2, t.tac) }

// DividerBitEdge reports whether the given bit of the internal 16-bit
// counter transitioned high to low on the most recent Tick (or ResetDIV).
// The audio package polls bit 12 for its frame-sequencer clock and the
// network adapter polls bit 14 for its transfer timeout, so neither keeps
// a counter of its own.
func (t *Timer) DividerBitEdge(position uint8) bool {
	return bit.IsSet16(position, t.prev) && !bit.IsSet16(position, t.counter)
}

// DivAPUEdge reports the bit-12 falling edge that paces the APU's
// length/sweep/envelope sequencer.
func (t *Timer) DivAPUEdge() bool {
	return t.DividerBitEdge(12)
}

// Tick advances the timer by the given number of clock ticks, detecting the
// TAC-selected bit's falling edge to increment TIMA and handling the
// one-tick-delayed TMA reload and interrupt on overflow.
func (t *Timer) Tick(ticks int) {
	for range ticks {
		if t.pendingLoad {
			t.tima = t.tma
			if t.RequestInterrupt != nil {
				t.RequestInterrupt()
			}
			t.pendingLoad = false
		}

		t.prev = t.counter
		t.counter++

		if !t.enabled() {
			t.lastTimerBit = false
			continue
		}

		position := tacBitPosition[t.tac&0x03]
		currentBit := bit.IsSet16(position, t.counter)

		if t.lastTimerBit && !currentBit {
			if t.tima == 0xFF {
				t.tima = 0
				t.pendingLoad = true
			} else {
				t.tima++
			}
		}

		t.lastTimerBit = currentBit
	}
}

// ReadPort implements membus.Port for the DIV/TIMA/TMA/TAC ports.
func (t *Timer) ReadPort(id uint8) uint8 {
	switch id {
	case addr.PortDIV:
		return t.DIV()
	case addr.PortTIMA:
		return t.tima
	case addr.PortTMA:
		return t.tma
	case addr.PortTAC:
		return t.tac | 0xF8
	default:
		return 0xFF
	}
}

// WritePort implements membus.Port. A write to DIV, regardless of value,
// resets the internal counter.
func (t *Timer) WritePort(id uint8, value uint8) {
	switch id {
	case addr.PortDIV:
		t.ResetDIV()
	case addr.PortTIMA:
		t.tima = value
	case addr.PortTMA:
		t.tma = value
	case addr.PortTAC:
		t.tac = value & 0x07
	}
}
