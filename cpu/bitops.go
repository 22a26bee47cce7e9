package cpu

import "github.com/oisin-vance/gbcore/bit"

// BIT/SET/RES primitives. Bit indices outside 0..7 are a caller bug: the
// primitive reports failure without touching flags or charging cycles.

// BitR tests bit index (0-7) of an already-resolved register value, setting
// Z from the complement of the bit, clearing N and setting H; C is
// untouched. Cost: 2.
func (c *CPU) BitR(index uint8, value uint8) bool {
	if index > 7 {
		return false
	}
	c.SetFlag(FlagZero, !bit.IsSet(index, value))
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, true)
	return c.bus.Cycle(2) == nil
}

// BitHL tests bit index of [HL]. Cost: 3.
func (c *CPU) BitHL(index uint8) bool {
	if index > 7 {
		return false
	}
	value := c.bus.CycleReadByte(c.HL())
	c.SetFlag(FlagZero, !bit.IsSet(index, value))
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, true)
	return c.bus.Cycle(2) == nil
}

// SetR sets bit index of an 8-bit register in place. Cost: 2.
func (c *CPU) SetR(index uint8, r *uint8) bool {
	if index > 7 {
		return false
	}
	*r = bit.Set(index, *r)
	return c.bus.Cycle(2) == nil
}

// SetBitHL sets bit index of [HL]. Cost: 4. (Named for the bit operation;
// SetHL is the register-pair setter.)
func (c *CPU) SetBitHL(index uint8) bool {
	if index > 7 {
		return false
	}
	addr := c.HL()
	value := c.bus.CycleReadByte(addr)
	c.bus.CycleWriteByte(addr, bit.Set(index, value))
	return c.bus.Cycle(2) == nil
}

// ResR clears bit index of an 8-bit register in place. Cost: 2.
func (c *CPU) ResR(index uint8, r *uint8) bool {
	if index > 7 {
		return false
	}
	*r = bit.Reset(index, *r)
	return c.bus.Cycle(2) == nil
}

// ResHL clears bit index of [HL]. Cost: 4.
func (c *CPU) ResHL(index uint8) bool {
	if index > 7 {
		return false
	}
	addr := c.HL()
	value := c.bus.CycleReadByte(addr)
	c.bus.CycleWriteByte(addr, bit.Reset(index, value))
	return c.bus.Cycle(2) == nil
}
