package cpu

// Load primitives: register-to-register, immediate-to-register,
// and the various A<->memory addressing forms (direct, [a16], high-page
// [a8+0xFF00]/[C+0xFF00], and the HL post-increment/post-decrement pair).
// None of these touch flags; only cycle cost varies with the operand class.

// LdRR copies one 8-bit register into another. Cost: 1.
func (c *CPU) LdRR(dst *uint8, src uint8) bool {
	*dst = src
	return c.bus.Cycle(1) == nil
}

// LdRN loads an immediate byte into an 8-bit register. Cost: 2.
func (c *CPU) LdRN(dst *uint8, value uint8) bool {
	*dst = value
	return c.bus.Cycle(2) == nil
}

// LdRHL loads the byte at [HL] into an 8-bit register. Cost: 2.
func (c *CPU) LdRHL(dst *uint8) bool {
	*dst = c.bus.CycleReadByte(c.HL())
	return c.bus.Cycle(1) == nil
}

// LdHLR stores an 8-bit register's value to [HL]. Cost: 2.
func (c *CPU) LdHLR(src uint8) bool {
	c.bus.CycleWriteByte(c.HL(), src)
	return c.bus.Cycle(1) == nil
}

// LdHLN stores an immediate byte to [HL]. Cost: 3.
func (c *CPU) LdHLN(value uint8) bool {
	c.bus.CycleWriteByte(c.HL(), value)
	return c.bus.Cycle(2) == nil
}

// LdAR16 loads A from the byte at an already-resolved 16-bit address (used
// for [BC] and [DE]). Cost: 2.
func (c *CPU) LdAR16(address uint16) bool {
	c.A = c.bus.CycleReadByte(address)
	return c.bus.Cycle(1) == nil
}

// LdR16A stores A to the byte at an already-resolved 16-bit address (used
// for [BC] and [DE]). Cost: 2.
func (c *CPU) LdR16A(address uint16) bool {
	c.bus.CycleWriteByte(address, c.A)
	return c.bus.Cycle(1) == nil
}

// LdAA16 loads A from an absolute 16-bit address. Cost: 4.
func (c *CPU) LdAA16(address uint16) bool {
	c.A = c.bus.CycleReadByte(address)
	return c.bus.Cycle(3) == nil
}

// LdA16A stores A to an absolute 16-bit address. Cost: 4.
func (c *CPU) LdA16A(address uint16) bool {
	c.bus.CycleWriteByte(address, c.A)
	return c.bus.Cycle(3) == nil
}

// LdHA8 loads A from the high page, address 0xFF00+offset. Cost: 3.
func (c *CPU) LdHA8(offset uint8) bool {
	c.A = c.bus.CycleReadByte(0xFF00 + uint16(offset))
	return c.bus.Cycle(2) == nil
}

// LdA8H stores A to the high page, address 0xFF00+offset. Cost: 3.
func (c *CPU) LdA8H(offset uint8) bool {
	c.bus.CycleWriteByte(0xFF00+uint16(offset), c.A)
	return c.bus.Cycle(2) == nil
}

// LdHC loads A from the high page, address 0xFF00+C. Cost: 2.
func (c *CPU) LdHC() bool {
	c.A = c.bus.CycleReadByte(0xFF00 + uint16(c.C))
	return c.bus.Cycle(1) == nil
}

// LdCH stores A to the high page, address 0xFF00+C. Cost: 2.
func (c *CPU) LdCH() bool {
	c.bus.CycleWriteByte(0xFF00+uint16(c.C), c.A)
	return c.bus.Cycle(1) == nil
}

// LdAHLI loads A from [HL] then increments HL. Cost: 2.
func (c *CPU) LdAHLI() bool {
	addr := c.HL()
	c.A = c.bus.CycleReadByte(addr)
	c.SetHL(addr + 1)
	return c.bus.Cycle(1) == nil
}

// LdAHLD loads A from [HL] then decrements HL. Cost: 2.
func (c *CPU) LdAHLD() bool {
	addr := c.HL()
	c.A = c.bus.CycleReadByte(addr)
	c.SetHL(addr - 1)
	return c.bus.Cycle(1) == nil
}

// LdHLIA stores A to [HL] then increments HL. Cost: 2.
func (c *CPU) LdHLIA() bool {
	addr := c.HL()
	c.bus.CycleWriteByte(addr, c.A)
	c.SetHL(addr + 1)
	return c.bus.Cycle(1) == nil
}

// LdHLDA stores A to [HL] then decrements HL. Cost: 2.
func (c *CPU) LdHLDA() bool {
	addr := c.HL()
	c.bus.CycleWriteByte(addr, c.A)
	c.SetHL(addr - 1)
	return c.bus.Cycle(1) == nil
}

// LdR16N16 loads an immediate 16-bit value into a register pair via its
// setter (BC/DE/HL/SP). Cost: 3.
func (c *CPU) LdR16N16(set func(uint16), value uint16) bool {
	set(value)
	return c.bus.Cycle(3) == nil
}

// LdSPHL loads SP from HL. Cost: 2.
func (c *CPU) LdSPHL() bool {
	c.SP = c.HL()
	return c.bus.Cycle(2) == nil
}

// LdHLSPE8 loads HL with SP plus a signed 8-bit offset, setting H/C from the
// low-byte addition and clearing Z/N (identical flag behaviour to ADD
// SP,e8). Cost: 3.
func (c *CPU) LdHLSPE8(offset int8) bool {
	sp := c.SP
	value := uint16(int32(offset))
	result := sp + value

	c.SetFlag(FlagZero, false)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, (sp&0x000F)+(value&0x000F) > 0x000F)
	c.SetFlag(FlagCarry, (sp&0x00FF)+(value&0x00FF) > 0x00FF)

	c.SetHL(result)
	return c.bus.Cycle(3) == nil
}

// LdA16SP stores SP to an absolute 16-bit address, low byte at the address
// and high byte at address+1. Cost: 5.
func (c *CPU) LdA16SP(address uint16) bool {
	c.bus.CycleWriteByte(address, byte(c.SP&0xFF))
	c.bus.CycleWriteByte(address+1, byte(c.SP>>8))
	return c.bus.Cycle(3) == nil
}
