package cpu

// Rotate/shift primitives: RLC/RRC/RL/RR/SLA/SRA/SRL/SWAP, each over a
// register or [HL], plus the accumulator-only short forms RLCA/RRCA/RLA/RRA
// which cost a single cycle and always clear Z regardless of the result.

func (c *CPU) rlc(value uint8) uint8 {
	carryOut := value&0x80 != 0
	result := value<<1 | value>>7
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, carryOut)
	return result
}

func (c *CPU) rrc(value uint8) uint8 {
	carryOut := value&0x01 != 0
	result := value>>1 | value<<7
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, carryOut)
	return result
}

func (c *CPU) rl(value uint8) uint8 {
	carryIn := c.flagBit(FlagCarry)
	carryOut := value&0x80 != 0
	result := value<<1 | carryIn
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, carryOut)
	return result
}

func (c *CPU) rr(value uint8) uint8 {
	carryIn := c.flagBit(FlagCarry)
	carryOut := value&0x01 != 0
	result := value>>1 | carryIn<<7
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, carryOut)
	return result
}

func (c *CPU) sla(value uint8) uint8 {
	carryOut := value&0x80 != 0
	result := value << 1
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, carryOut)
	return result
}

func (c *CPU) sra(value uint8) uint8 {
	carryOut := value&0x01 != 0
	result := value>>1 | value&0x80
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, carryOut)
	return result
}

func (c *CPU) srl(value uint8) uint8 {
	carryOut := value&0x01 != 0
	result := value >> 1
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, carryOut)
	return result
}

func (c *CPU) swap(value uint8) uint8 {
	result := value<<4 | value>>4
	c.SetFlag(FlagZero, result == 0)
	c.SetFlag(FlagSubtract, false)
	c.SetFlag(FlagHalfCarry, false)
	c.SetFlag(FlagCarry, false)
	return result
}

// rmwHL applies op to the byte at [HL] in place, charging the read, the
// write, and the two remaining machine cycles of a prefixed [HL] operation.
func (c *CPU) rmwHL(op func(uint8) uint8) bool {
	addr := c.HL()
	c.bus.CycleWriteByte(addr, op(c.bus.CycleReadByte(addr)))
	return c.bus.Cycle(2) == nil
}

// RlcR rotates an 8-bit register left circularly. Cost: 2.
func (c *CPU) RlcR(r *uint8) bool { *r = c.rlc(*r); return c.bus.Cycle(2) == nil }

// RlcHL rotates [HL] left circularly. Cost: 4.
func (c *CPU) RlcHL() bool { return c.rmwHL(c.rlc) }

// RrcR rotates an 8-bit register right circularly. Cost: 2.
func (c *CPU) RrcR(r *uint8) bool { *r = c.rrc(*r); return c.bus.Cycle(2) == nil }

// RrcHL rotates [HL] right circularly. Cost: 4.
func (c *CPU) RrcHL() bool { return c.rmwHL(c.rrc) }

// RlR rotates an 8-bit register left through carry. Cost: 2.
func (c *CPU) RlR(r *uint8) bool { *r = c.rl(*r); return c.bus.Cycle(2) == nil }

// RlHL rotates [HL] left through carry. Cost: 4.
func (c *CPU) RlHL() bool { return c.rmwHL(c.rl) }

// RrR rotates an 8-bit register right through carry. Cost: 2.
func (c *CPU) RrR(r *uint8) bool { *r = c.rr(*r); return c.bus.Cycle(2) == nil }

// RrHL rotates [HL] right through carry. Cost: 4.
func (c *CPU) RrHL() bool { return c.rmwHL(c.rr) }

// SlaR arithmetic-shifts an 8-bit register left. Cost: 2.
func (c *CPU) SlaR(r *uint8) bool { *r = c.sla(*r); return c.bus.Cycle(2) == nil }

// SlaHL arithmetic-shifts [HL] left. Cost: 4.
func (c *CPU) SlaHL() bool { return c.rmwHL(c.sla) }

// SraR arithmetic-shifts an 8-bit register right, preserving bit 7. Cost: 2.
func (c *CPU) SraR(r *uint8) bool { *r = c.sra(*r); return c.bus.Cycle(2) == nil }

// SraHL arithmetic-shifts [HL] right, preserving bit 7. Cost: 4.
func (c *CPU) SraHL() bool { return c.rmwHL(c.sra) }

// SrlR logically shifts an 8-bit register right. Cost: 2.
func (c *CPU) SrlR(r *uint8) bool { *r = c.srl(*r); return c.bus.Cycle(2) == nil }

// SrlHL logically shifts [HL] right. Cost: 4.
func (c *CPU) SrlHL() bool { return c.rmwHL(c.srl) }

// SwapR swaps the nibbles of an 8-bit register. Cost: 2.
func (c *CPU) SwapR(r *uint8) bool { *r = c.swap(*r); return c.bus.Cycle(2) == nil }

// SwapHL swaps the nibbles of [HL]. Cost: 4.
func (c *CPU) SwapHL() bool { return c.rmwHL(c.swap) }

// RlcA is the accumulator rotate-left-circular short form; unlike
// RlcR(&c.A) it costs one cycle and always clears Z.
func (c *CPU) RlcA() bool {
	c.A = c.rlc(c.A)
	c.SetFlag(FlagZero, false)
	return c.bus.Cycle(1) == nil
}

// RrcA is the accumulator rotate-right-circular short form; always clears Z.
func (c *CPU) RrcA() bool {
	c.A = c.rrc(c.A)
	c.SetFlag(FlagZero, false)
	return c.bus.Cycle(1) == nil
}

// RlA is the accumulator rotate-left-through-carry short form; always clears Z.
func (c *CPU) RlA() bool {
	c.A = c.rl(c.A)
	c.SetFlag(FlagZero, false)
	return c.bus.Cycle(1) == nil
}

// RrA is the accumulator rotate-right-through-carry short form; always clears Z.
func (c *CPU) RrA() bool {
	c.A = c.rr(c.A)
	c.SetFlag(FlagZero, false)
	return c.bus.Cycle(1) == nil
}
