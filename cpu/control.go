package cpu

// Control-flow facades. There is no program counter here: JP/JR/CALL/RET/
// RETI charge their cycles, perform the stack side effects hardware would,
// and report whether the branch was taken so the caller drives its own
// control transfer. Address-producing forms (JP HL, RET) also return the
// target so the caller can dispatch on it, typically through a jump table.

// Jp is the unconditional JP a16 facade; always taken. Cost: 4.
func (c *CPU) Jp() bool {
	return c.bus.Cycle(4) == nil
}

// JpHL is JP HL: it returns the HL value for the caller to dispatch on.
// Cost: 1.
func (c *CPU) JpHL() (uint16, bool) {
	target := c.HL()
	return target, c.bus.Cycle(1) == nil
}

// JpCond is the conditional JP cc,a16 facade. Cost: 4 taken, 3 not taken.
func (c *CPU) JpCond(condition bool) bool {
	if condition {
		c.bus.Cycle(4)
	} else {
		c.bus.Cycle(3)
	}
	return condition
}

// Jr is the unconditional JR e8 facade; always taken. Cost: 3.
func (c *CPU) Jr() bool {
	return c.bus.Cycle(3) == nil
}

// JrCond is the conditional JR cc,e8 facade. Cost: 3 taken, 2 not taken.
func (c *CPU) JrCond(condition bool) bool {
	if condition {
		c.bus.Cycle(3)
	} else {
		c.bus.Cycle(2)
	}
	return condition
}

// Call is the unconditional CALL a16 facade: pushes returnAddress and
// reports taken=true. Cost: 6.
func (c *CPU) Call(returnAddress uint16) bool {
	c.pushWord(returnAddress)
	return c.bus.Cycle(4) == nil
}

// CallCond is the conditional CALL cc,a16 facade: pushes returnAddress only
// if condition holds. Cost: 6 taken, 3 not taken.
func (c *CPU) CallCond(condition bool, returnAddress uint16) bool {
	if !condition {
		c.bus.Cycle(3)
		return false
	}
	c.pushWord(returnAddress)
	c.bus.Cycle(4)
	return true
}

// Ret is the unconditional RET facade: pops and returns the target address.
// Cost: 4.
func (c *CPU) Ret() (uint16, bool) {
	addr := c.popWord()
	c.bus.Cycle(2)
	return addr, true
}

// RetCond is the conditional RET cc facade. Cost: 5 taken, 2 not taken.
func (c *CPU) RetCond(condition bool) (uint16, bool) {
	if !condition {
		c.bus.Cycle(2)
		return 0, false
	}
	addr := c.popWord()
	c.bus.Cycle(3)
	return addr, true
}

// Reti pops the target address and re-enables interrupts, the RETI facade.
// Cost: 4.
func (c *CPU) Reti() (uint16, bool) {
	addr := c.popWord()
	c.bus.Cycle(2)
	if c.imeWriter != nil {
		c.imeWriter(true)
	}
	return addr, true
}

// Rst pushes returnAddress and invokes the handler registered for the given
// restart vector (0..7), if any. Cost: 4.
func (c *CPU) Rst(vector uint8, returnAddress uint16) bool {
	c.pushWord(returnAddress)
	c.bus.Cycle(2)
	if vector <= 7 && c.restarts[vector] != nil {
		return c.restarts[vector](vector)
	}
	return true
}
