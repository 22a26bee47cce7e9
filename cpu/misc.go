package cpu

// Miscellaneous primitives: NOP, DAA, CPL, SCF, CCF, DI, EI, HALT, STOP.
// DAA implements the full hardware algorithm including the N=1
// (post-subtraction) branch.

// Nop does nothing but charge its single cycle. Cost: 1.
func (c *CPU) Nop() bool {
	return c.bus.Cycle(1) == nil
}

// Daa adjusts A into packed BCD after an 8-bit add or subtract, using N/H/C
// to choose the correction per the Sharp LR35902 algorithm. Cost: 1.
func (c *CPU) Daa() bool {
	a := c.A
	var adjust uint8
	carry := c.HasFlag(FlagCarry)

	if c.HasFlag(FlagSubtract) {
		if c.HasFlag(FlagHalfCarry) {
			adjust += 0x06
		}
		if carry {
			adjust += 0x60
		}
		a -= adjust
	} else {
		if c.HasFlag(FlagHalfCarry) || a&0x0F > 0x09 {
			adjust += 0x06
		}
		if carry || a > 0x99 {
			adjust += 0x60
			carry = true
		}
		a += adjust
	}

	c.A = a
	c.SetFlag(FlagZero, c.A == 0)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, carry)
	return c.bus.Cycle(1) == nil
}

// Cpl complements A and sets N/H. Cost: 1.
func (c *CPU) Cpl() bool {
	c.A = ^c.A
	c.SetFlag(FlagSubtract, true)
	c.SetFlag(FlagHalfCarry, true)
	return c.bus.Cycle(1) == nil
}

// Scf sets the carry flag and clears N/H. Cost: 1.
func (c *CPU) Scf() bool {
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, true)
	return c.bus.Cycle(1) == nil
}

// Ccf complements the carry flag and clears N/H. Cost: 1.
func (c *CPU) Ccf() bool {
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, !c.HasFlag(FlagCarry))
	return c.bus.Cycle(1) == nil
}

// Di disables interrupts immediately. Cost: 1.
func (c *CPU) Di() bool {
	if c.imeWriter != nil {
		c.imeWriter(false)
	}
	return c.bus.Cycle(1) == nil
}

// Ei enables interrupts. Real hardware delays the effect by one
// instruction; with no instruction boundary to delay across, the enable
// takes effect immediately.
func (c *CPU) Ei() bool {
	if c.imeWriter != nil {
		c.imeWriter(true)
	}
	return c.bus.Cycle(1) == nil
}

// Halt marks the CPU halted; modeled as a no-op that still charges its
// cycle. Host code observes Halted() and calls ClearHalt() on a pending
// interrupt.
func (c *CPU) Halt() bool {
	c.halted = true
	return c.bus.Cycle(1) == nil
}

// Stop marks the CPU stopped; modeled as a no-op that still charges its
// cycle. Host code observes Stopped() and calls ClearStop() on a joypad
// event.
func (c *CPU) Stop() bool {
	c.stopped = true
	return c.bus.Cycle(1) == nil
}
