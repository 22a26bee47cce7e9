package cpu

// 16-bit arithmetic primitives: ADD HL,r16; ADD SP,e8; INC/DEC r16.
// Half-carry and carry are computed on the bit 11/bit 15 boundaries; ADD
// SP,e8 instead computes them on the low byte only and always clears Z,
// matching its role as a signed stack adjustment rather than a counter.

// AddHLR16 adds a 16-bit value to HL, leaving Z untouched. Cost: 2.
func (c *CPU) AddHLR16(value uint16) bool {
	hl := c.HL()
	result := uint32(hl) + uint32(value)

	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, (hl&0x0FFF)+(value&0x0FFF) > 0x0FFF)
	c.SetFlag(FlagCarry, result > 0xFFFF)
	c.SetHL(uint16(result))

	return c.bus.Cycle(2) == nil
}

// AddSPE8 adds a signed 8-bit immediate to SP, clearing Z and setting H/C
// from the low-byte addition as if SP were an 8-bit register. Cost: 4.
func (c *CPU) AddSPE8(offset int8) bool {
	sp := c.SP
	value := uint16(int32(offset))
	result := sp + value

	c.SetFlag(FlagZero, false)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, (sp&0x000F)+(value&0x000F) > 0x000F)
	c.SetFlag(FlagCarry, (sp&0x00FF)+(value&0x00FF) > 0x00FF)

	c.SP = result
	return c.bus.Cycle(4) == nil
}

// IncR16 increments a 16-bit register pair via its accessor pair; flags are
// unaffected. Cost: 2.
func (c *CPU) IncR16(get func() uint16, set func(uint16)) bool {
	set(get() + 1)
	return c.bus.Cycle(2) == nil
}

// DecR16 decrements a 16-bit register pair via its accessor pair; flags are
// unaffected. Cost: 2.
func (c *CPU) DecR16(get func() uint16, set func(uint16)) bool {
	set(get() - 1)
	return c.bus.Cycle(2) == nil
}

// IncSP increments SP directly (no accessor pair exists for it). Cost: 2.
func (c *CPU) IncSP() bool {
	c.SP++
	return c.bus.Cycle(2) == nil
}

// DecSP decrements SP directly. Cost: 2.
func (c *CPU) DecSP() bool {
	c.SP--
	return c.bus.Cycle(2) == nil
}
