package cpu

// Short-form opcode maps: the 256-entry primary table and the 256-entry
// CB-prefixed table, built programmatically from the operand layout of the
// instruction encoding rather than transcribed entry by entry. Each entry
// binds an opcode byte to the corresponding instruction primitive so host
// code can drive a table of opcodes directly:
//
//	cpu.Primary[0x80].Exec(c, cpu.Operands{})          // ADD A,B
//	cpu.Primary[0xC6].Exec(c, cpu.Operands{N8: 0x10})  // ADD A,0x10
//
// Entries for conditional control flow report the branch outcome instead
// of plain success; address-producing forms (POP r16) write their result
// into the destination pair, while RET and JP HL deliver the target only
// through the long-form primitives (Ret, JpHL), since a bool cannot carry
// it. The eleven unused opcode bytes have no Exec and fail Valid.

import "fmt"

// Operands carries the immediate operands a short-form opcode may consume.
// Which fields are read depends on the opcode's addressing form; unused
// fields are ignored.
type Operands struct {
	N8  uint8  // 8-bit immediate, or high-page offset for LDH
	N16 uint16 // 16-bit immediate or absolute address
	E8  int8   // signed 8-bit offset (JR, ADD SP, LD HL,SP+e8)
	Ret uint16 // return address pushed by CALL and RST forms
}

// Op is one entry in an opcode map.
type Op struct {
	Mnemonic string
	Exec     func(c *CPU, o Operands) bool
}

// Valid reports whether the entry maps to a real instruction.
func (op Op) Valid() bool { return op.Exec != nil }

// Primary is the non-prefixed opcode map.
var Primary [256]Op

// CB is the CB-prefixed opcode map.
var CB [256]Op

// regNames orders the 8-bit operand slots as the encoding does; slot 6 is
// the (HL) memory operand.
var regNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

var pairNames = [4]string{"BC", "DE", "HL", "SP"}

// regPtr resolves an operand slot to its backing register; slot 6 has no
// register and returns nil.
func regPtr(c *CPU, slot int) *uint8 {
	switch slot {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	default:
		return nil
	}
}

func pairGet(c *CPU, pair int) uint16 {
	switch pair {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

func pairSet(c *CPU, pair int, value uint16) {
	switch pair {
	case 0:
		c.SetBC(value)
	case 1:
		c.SetDE(value)
	case 2:
		c.SetHL(value)
	default:
		c.SP = value
	}
}

// condNames orders the condition-code slots as the encoding does.
var condNames = [4]string{"NZ", "Z", "NC", "C"}

func condHolds(c *CPU, cond int) bool {
	switch cond {
	case 0:
		return !c.HasFlag(FlagZero)
	case 1:
		return c.HasFlag(FlagZero)
	case 2:
		return !c.HasFlag(FlagCarry)
	default:
		return c.HasFlag(FlagCarry)
	}
}

func init() {
	buildPrimary()
	buildCB()
}

func entry(table *[256]Op, code int, name string, exec func(*CPU, Operands) bool) {
	table[code] = Op{Mnemonic: name, Exec: exec}
}

func buildPrimary() {
	entry(&Primary, 0x00, "NOP", func(c *CPU, _ Operands) bool { return c.Nop() })
	entry(&Primary, 0x10, "STOP", func(c *CPU, _ Operands) bool { return c.Stop() })
	entry(&Primary, 0x08, "LD (a16),SP", func(c *CPU, o Operands) bool { return c.LdA16SP(o.N16) })

	entry(&Primary, 0x07, "RLCA", func(c *CPU, _ Operands) bool { return c.RlcA() })
	entry(&Primary, 0x0F, "RRCA", func(c *CPU, _ Operands) bool { return c.RrcA() })
	entry(&Primary, 0x17, "RLA", func(c *CPU, _ Operands) bool { return c.RlA() })
	entry(&Primary, 0x1F, "RRA", func(c *CPU, _ Operands) bool { return c.RrA() })

	entry(&Primary, 0x27, "DAA", func(c *CPU, _ Operands) bool { return c.Daa() })
	entry(&Primary, 0x2F, "CPL", func(c *CPU, _ Operands) bool { return c.Cpl() })
	entry(&Primary, 0x37, "SCF", func(c *CPU, _ Operands) bool { return c.Scf() })
	entry(&Primary, 0x3F, "CCF", func(c *CPU, _ Operands) bool { return c.Ccf() })

	// 16-bit register-pair rows: LD rr,n16 / INC rr / DEC rr / ADD HL,rr.
	for pair := 0; pair < 4; pair++ {
		base := pair * 0x10
		entry(&Primary, base+0x01, "LD "+pairNames[pair]+",n16", func(c *CPU, o Operands) bool {
			return c.LdR16N16(func(v uint16) { pairSet(c, pair, v) }, o.N16)
		})
		if pair == 3 {
			entry(&Primary, base+0x03, "INC SP", func(c *CPU, _ Operands) bool { return c.IncSP() })
			entry(&Primary, base+0x0B, "DEC SP", func(c *CPU, _ Operands) bool { return c.DecSP() })
		} else {
			entry(&Primary, base+0x03, "INC "+pairNames[pair], func(c *CPU, _ Operands) bool {
				return c.IncR16(func() uint16 { return pairGet(c, pair) }, func(v uint16) { pairSet(c, pair, v) })
			})
			entry(&Primary, base+0x0B, "DEC "+pairNames[pair], func(c *CPU, _ Operands) bool {
				return c.DecR16(func() uint16 { return pairGet(c, pair) }, func(v uint16) { pairSet(c, pair, v) })
			})
		}
		entry(&Primary, base+0x09, "ADD HL,"+pairNames[pair], func(c *CPU, _ Operands) bool {
			return c.AddHLR16(pairGet(c, pair))
		})
	}

	// A <-> memory through a register pair, with the HL post-inc/dec forms.
	entry(&Primary, 0x02, "LD (BC),A", func(c *CPU, _ Operands) bool { return c.LdR16A(c.BC()) })
	entry(&Primary, 0x12, "LD (DE),A", func(c *CPU, _ Operands) bool { return c.LdR16A(c.DE()) })
	entry(&Primary, 0x22, "LD (HL+),A", func(c *CPU, _ Operands) bool { return c.LdHLIA() })
	entry(&Primary, 0x32, "LD (HL-),A", func(c *CPU, _ Operands) bool { return c.LdHLDA() })
	entry(&Primary, 0x0A, "LD A,(BC)", func(c *CPU, _ Operands) bool { return c.LdAR16(c.BC()) })
	entry(&Primary, 0x1A, "LD A,(DE)", func(c *CPU, _ Operands) bool { return c.LdAR16(c.DE()) })
	entry(&Primary, 0x2A, "LD A,(HL+)", func(c *CPU, _ Operands) bool { return c.LdAHLI() })
	entry(&Primary, 0x3A, "LD A,(HL-)", func(c *CPU, _ Operands) bool { return c.LdAHLD() })

	// INC r / DEC r / LD r,n8 across the eight operand slots.
	for slot := 0; slot < 8; slot++ {
		base := slot * 8
		if slot == 6 {
			entry(&Primary, 0x04+base, "INC (HL)", func(c *CPU, _ Operands) bool { return c.IncHLMem() })
			entry(&Primary, 0x05+base, "DEC (HL)", func(c *CPU, _ Operands) bool { return c.DecHLMem() })
			entry(&Primary, 0x06+base, "LD (HL),n8", func(c *CPU, o Operands) bool { return c.LdHLN(o.N8) })
			continue
		}
		entry(&Primary, 0x04+base, "INC "+regNames[slot], func(c *CPU, _ Operands) bool {
			return c.IncR(regPtr(c, slot))
		})
		entry(&Primary, 0x05+base, "DEC "+regNames[slot], func(c *CPU, _ Operands) bool {
			return c.DecR(regPtr(c, slot))
		})
		entry(&Primary, 0x06+base, "LD "+regNames[slot]+",n8", func(c *CPU, o Operands) bool {
			return c.LdRN(regPtr(c, slot), o.N8)
		})
	}

	// Relative jumps.
	entry(&Primary, 0x18, "JR e8", func(c *CPU, _ Operands) bool { return c.Jr() })
	for cond := 0; cond < 4; cond++ {
		entry(&Primary, 0x20+cond*8, "JR "+condNames[cond]+",e8", func(c *CPU, _ Operands) bool {
			return c.JrCond(condHolds(c, cond))
		})
	}

	// The LD r,r' quarter, with HALT in the (HL),(HL) slot.
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			code := 0x40 + dst*8 + src
			switch {
			case dst == 6 && src == 6:
				entry(&Primary, code, "HALT", func(c *CPU, _ Operands) bool { return c.Halt() })
			case dst == 6:
				entry(&Primary, code, "LD (HL),"+regNames[src], func(c *CPU, _ Operands) bool {
					return c.LdHLR(*regPtr(c, src))
				})
			case src == 6:
				entry(&Primary, code, "LD "+regNames[dst]+",(HL)", func(c *CPU, _ Operands) bool {
					return c.LdRHL(regPtr(c, dst))
				})
			default:
				entry(&Primary, code, "LD "+regNames[dst]+","+regNames[src], func(c *CPU, _ Operands) bool {
					return c.LdRR(regPtr(c, dst), *regPtr(c, src))
				})
			}
		}
	}

	// The ALU quarter plus the matching immediate forms at 0xC6+op*8.
	aluNames := [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	aluR := [8]func(*CPU, uint8) bool{
		(*CPU).AddR, (*CPU).AdcR, (*CPU).SubR, (*CPU).SbcR,
		(*CPU).AndR, (*CPU).XorR, (*CPU).OrR, (*CPU).CpR,
	}
	aluHL := [8]func(*CPU) bool{
		(*CPU).AddHL, (*CPU).AdcHL, (*CPU).SubHL, (*CPU).SbcHL,
		(*CPU).AndHL, (*CPU).XorHL, (*CPU).OrHL, (*CPU).CpHL,
	}
	aluN := [8]func(*CPU, uint8) bool{
		(*CPU).AddN, (*CPU).AdcN, (*CPU).SubN, (*CPU).SbcN,
		(*CPU).AndN, (*CPU).XorN, (*CPU).OrN, (*CPU).CpN,
	}
	for op := 0; op < 8; op++ {
		for src := 0; src < 8; src++ {
			code := 0x80 + op*8 + src
			if src == 6 {
				entry(&Primary, code, aluNames[op]+"(HL)", func(c *CPU, _ Operands) bool {
					return aluHL[op](c)
				})
				continue
			}
			entry(&Primary, code, aluNames[op]+regNames[src], func(c *CPU, _ Operands) bool {
				return aluR[op](c, *regPtr(c, src))
			})
		}
		entry(&Primary, 0xC6+op*8, aluNames[op]+"n8", func(c *CPU, o Operands) bool {
			return aluN[op](c, o.N8)
		})
	}

	// Returns, absolute jumps, calls, restarts.
	for cond := 0; cond < 4; cond++ {
		entry(&Primary, 0xC0+cond*8, "RET "+condNames[cond], func(c *CPU, _ Operands) bool {
			_, taken := c.RetCond(condHolds(c, cond))
			return taken
		})
		entry(&Primary, 0xC2+cond*8, "JP "+condNames[cond]+",a16", func(c *CPU, _ Operands) bool {
			return c.JpCond(condHolds(c, cond))
		})
		entry(&Primary, 0xC4+cond*8, "CALL "+condNames[cond]+",a16", func(c *CPU, o Operands) bool {
			return c.CallCond(condHolds(c, cond), o.Ret)
		})
	}
	entry(&Primary, 0xC9, "RET", func(c *CPU, _ Operands) bool {
		_, ok := c.Ret()
		return ok
	})
	entry(&Primary, 0xD9, "RETI", func(c *CPU, _ Operands) bool {
		_, ok := c.Reti()
		return ok
	})
	entry(&Primary, 0xC3, "JP a16", func(c *CPU, _ Operands) bool { return c.Jp() })
	entry(&Primary, 0xE9, "JP HL", func(c *CPU, _ Operands) bool {
		_, ok := c.JpHL()
		return ok
	})
	entry(&Primary, 0xCD, "CALL a16", func(c *CPU, o Operands) bool { return c.Call(o.Ret) })
	for vec := 0; vec < 8; vec++ {
		entry(&Primary, 0xC7+vec*8, fmt.Sprintf("RST %d", vec), func(c *CPU, o Operands) bool {
			return c.Rst(uint8(vec), o.Ret)
		})
	}

	// Stack pairs; slot 3 of PUSH/POP is AF, not SP.
	stackNames := [4]string{"BC", "DE", "HL", "AF"}
	for pair := 0; pair < 4; pair++ {
		base := 0xC1 + pair*0x10
		if pair == 3 {
			entry(&Primary, base, "POP AF", func(c *CPU, _ Operands) bool { return c.PopAF() })
			entry(&Primary, base+4, "PUSH AF", func(c *CPU, _ Operands) bool { return c.PushR16(c.AF()) })
			continue
		}
		entry(&Primary, base, "POP "+stackNames[pair], func(c *CPU, _ Operands) bool {
			v, ok := c.PopR16()
			pairSet(c, pair, v)
			return ok
		})
		entry(&Primary, base+4, "PUSH "+stackNames[pair], func(c *CPU, _ Operands) bool {
			return c.PushR16(pairGet(c, pair))
		})
	}

	// High-page and absolute accumulator loads, SP arithmetic, IME control.
	entry(&Primary, 0xE0, "LDH (a8),A", func(c *CPU, o Operands) bool { return c.LdA8H(o.N8) })
	entry(&Primary, 0xF0, "LDH A,(a8)", func(c *CPU, o Operands) bool { return c.LdHA8(o.N8) })
	entry(&Primary, 0xE2, "LD (C),A", func(c *CPU, _ Operands) bool { return c.LdCH() })
	entry(&Primary, 0xF2, "LD A,(C)", func(c *CPU, _ Operands) bool { return c.LdHC() })
	entry(&Primary, 0xEA, "LD (a16),A", func(c *CPU, o Operands) bool { return c.LdA16A(o.N16) })
	entry(&Primary, 0xFA, "LD A,(a16)", func(c *CPU, o Operands) bool { return c.LdAA16(o.N16) })
	entry(&Primary, 0xE8, "ADD SP,e8", func(c *CPU, o Operands) bool { return c.AddSPE8(o.E8) })
	entry(&Primary, 0xF8, "LD HL,SP+e8", func(c *CPU, o Operands) bool { return c.LdHLSPE8(o.E8) })
	entry(&Primary, 0xF9, "LD SP,HL", func(c *CPU, _ Operands) bool { return c.LdSPHL() })
	entry(&Primary, 0xF3, "DI", func(c *CPU, _ Operands) bool { return c.Di() })
	entry(&Primary, 0xFB, "EI", func(c *CPU, _ Operands) bool { return c.Ei() })

	// 0xCB only announces the prefixed table; the CB entry itself carries
	// the full cost of the prefixed instruction.
	entry(&Primary, 0xCB, "PREFIX", func(c *CPU, _ Operands) bool { return true })

	// 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC and 0xFD
	// stay invalid.
}
