package cpu

import "fmt"

// The CB-prefixed map is fully regular: four quarters of eight-slot rows.
// 0x00-0x3F are the rotate/shift/swap family, then BIT, RES and SET with
// the bit index folded into the row.

func buildCB() {
	shiftNames := [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}
	shiftR := [8]func(*CPU, *uint8) bool{
		(*CPU).RlcR, (*CPU).RrcR, (*CPU).RlR, (*CPU).RrR,
		(*CPU).SlaR, (*CPU).SraR, (*CPU).SwapR, (*CPU).SrlR,
	}
	shiftHL := [8]func(*CPU) bool{
		(*CPU).RlcHL, (*CPU).RrcHL, (*CPU).RlHL, (*CPU).RrHL,
		(*CPU).SlaHL, (*CPU).SraHL, (*CPU).SwapHL, (*CPU).SrlHL,
	}

	for op := 0; op < 8; op++ {
		for slot := 0; slot < 8; slot++ {
			code := op*8 + slot
			if slot == 6 {
				entry(&CB, code, shiftNames[op]+" (HL)", func(c *CPU, _ Operands) bool {
					return shiftHL[op](c)
				})
				continue
			}
			entry(&CB, code, shiftNames[op]+" "+regNames[slot], func(c *CPU, _ Operands) bool {
				return shiftR[op](c, regPtr(c, slot))
			})
		}
	}

	for index := 0; index < 8; index++ {
		for slot := 0; slot < 8; slot++ {
			bitCode := 0x40 + index*8 + slot
			resCode := 0x80 + index*8 + slot
			setCode := 0xC0 + index*8 + slot
			if slot == 6 {
				entry(&CB, bitCode, fmt.Sprintf("BIT %d,(HL)", index), func(c *CPU, _ Operands) bool {
					return c.BitHL(uint8(index))
				})
				entry(&CB, resCode, fmt.Sprintf("RES %d,(HL)", index), func(c *CPU, _ Operands) bool {
					return c.ResHL(uint8(index))
				})
				entry(&CB, setCode, fmt.Sprintf("SET %d,(HL)", index), func(c *CPU, _ Operands) bool {
					return c.SetBitHL(uint8(index))
				})
				continue
			}
			entry(&CB, bitCode, fmt.Sprintf("BIT %d,%s", index, regNames[slot]), func(c *CPU, _ Operands) bool {
				return c.BitR(uint8(index), *regPtr(c, slot))
			})
			entry(&CB, resCode, fmt.Sprintf("RES %d,%s", index, regNames[slot]), func(c *CPU, _ Operands) bool {
				return c.ResR(uint8(index), regPtr(c, slot))
			})
			entry(&CB, setCode, fmt.Sprintf("SET %d,%s", index, regNames[slot]), func(c *CPU, _ Operands) bool {
				return c.SetR(uint8(index), regPtr(c, slot))
			})
		}
	}
}
