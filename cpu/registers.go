package cpu

import "github.com/oisin-vance/gbcore/bit"

// Flag is one of the four meaningful bits of the F register.
type Flag uint8

const (
	// FlagZero (Z) is set iff the result of the last arithmetic op is zero.
	FlagZero Flag = 1 << 7
	// FlagSubtract (N) is set iff the last op was subtractive.
	FlagSubtract Flag = 1 << 6
	// FlagHalfCarry (H) is set iff a carry/borrow occurred out of bit 3 (8-bit) or bit 11 (16-bit).
	FlagHalfCarry Flag = 1 << 5
	// FlagCarry (C) is set iff a carry/borrow occurred out of bit 7 (8-bit) or bit 15 (16-bit).
	FlagCarry Flag = 1 << 4

	// flagMask is the set of bits that are ever meaningful in F; the low
	// four bits are permanently zero.
	flagMask uint8 = 0xF0
)

// Registers holds the eight 8-bit general registers, addressable
// individually or as the four 16-bit pairs AF/BC/DE/HL, plus the stack
// pointer. There is deliberately no program counter.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
	SP   uint16
}

// AF returns the combined AF register pair. F is always masked to its four
// meaningful bits.
func (r *Registers) AF() uint16 {
	return bit.Combine(r.A, r.F&flagMask)
}

// SetAF writes the AF pair, masking F to its four meaningful bits.
func (r *Registers) SetAF(value uint16) {
	r.A = bit.High(value)
	r.F = bit.Low(value) & flagMask
}

// BC returns the combined BC register pair.
func (r *Registers) BC() uint16 { return bit.Combine(r.B, r.C) }

// SetBC writes the BC register pair.
func (r *Registers) SetBC(value uint16) { r.B, r.C = bit.High(value), bit.Low(value) }

// DE returns the combined DE register pair.
func (r *Registers) DE() uint16 { return bit.Combine(r.D, r.E) }

// SetDE writes the DE register pair.
func (r *Registers) SetDE(value uint16) { r.D, r.E = bit.High(value), bit.Low(value) }

// HL returns the combined HL register pair.
func (r *Registers) HL() uint16 { return bit.Combine(r.H, r.L) }

// SetHL writes the HL register pair.
func (r *Registers) SetHL(value uint16) { r.H, r.L = bit.High(value), bit.Low(value) }

// SetF writes F directly, masking to the four meaningful bits.
func (r *Registers) SetF(value uint8) {
	r.F = value & flagMask
}

// HasFlag reports whether the given flag bit is currently set.
func (r *Registers) HasFlag(f Flag) bool {
	return r.F&uint8(f) != 0
}

// SetFlag sets or clears the given flag bit according to on.
func (r *Registers) SetFlag(f Flag, on bool) {
	if on {
		r.F = (r.F | uint8(f)) & flagMask
	} else {
		r.F = (r.F &^ uint8(f)) & flagMask
	}
}

// flagBit returns 1 if the flag is set, 0 otherwise; used by the ADC/SBC
// carry-in computation.
func (r *Registers) flagBit(f Flag) uint8 {
	if r.HasFlag(f) {
		return 1
	}
	return 0
}
