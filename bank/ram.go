package bank

import (
	"github.com/oisin-vance/gbcore/addr"
	"github.com/oisin-vance/gbcore/bit"
)

// RAMBankSize is the fixed size of a single WRAM bank.
const RAMBankSize = 4 * 1024

// MinWRAMBanks is the smallest bank count a RAM handle may be shrunk to:
// bank 0 plus at least one switchable bank.
const MinWRAMBanks = 2

// MaxRAMBanks caps a RAM handle's bank count.
const MaxRAMBanks = 256

// RAM is work RAM: a growable, bank-switched read/write region with bank 0
// fixed in the low window and banks 1.. switchable via SVBK. Save RAM has
// its own type (SRAM) since every one of its banks is switchable and it
// carries file persistence that the WRAM window never needs.
type RAM struct {
	banks [][]uint8
	bank  int
}

// NewRAM creates a RAM handle with the given initial bank count (minimum
// MinWRAMBanks).
func NewRAM(bankCount int) *RAM {
	if bankCount < MinWRAMBanks {
		bankCount = MinWRAMBanks
	}
	if bankCount > MaxRAMBanks {
		bankCount = MaxRAMBanks
	}
	r := &RAM{banks: make([][]uint8, bankCount), bank: 1}
	for i := range r.banks {
		r.banks[i] = make([]uint8, RAMBankSize)
	}
	return r
}

// BankCount reports how many banks this handle currently holds.
func (r *RAM) BankCount() int { return len(r.banks) }

// Grow appends additional zeroed banks until BankCount() reaches at least
// n, capped at MaxRAMBanks.
func (r *RAM) Grow(n int) {
	if n > MaxRAMBanks {
		n = MaxRAMBanks
	}
	for len(r.banks) < n {
		r.banks = append(r.banks, make([]uint8, RAMBankSize))
	}
}

// Shrink truncates the handle down to n banks (minimum MinWRAMBanks),
// clamping the current bank selection if it no longer exists.
func (r *RAM) Shrink(n int) {
	if n < MinWRAMBanks {
		n = MinWRAMBanks
	}
	if n < len(r.banks) {
		r.banks = r.banks[:n]
	}
	r.bank = bit.Clamp(r.bank, 1, len(r.banks)-1)
}

// SelectedBank returns the bank index currently visible in the switchable
// window.
func (r *RAM) SelectedBank() int { return r.bank }

// SelectBank sets the switchable-window bank, clamped into
// [1, BankCount()-1]; bank 0 is reserved for the always-visible fixed
// window.
func (r *RAM) SelectBank(bank int) {
	r.bank = bit.Clamp(bank, 1, len(r.banks)-1)
}

// ReadFixed reads from bank 0, always visible regardless of selection.
func (r *RAM) ReadFixed(offset uint16) uint8 {
	if int(offset) >= RAMBankSize {
		return 0xFF
	}
	return r.banks[0][offset]
}

// WriteFixed writes to bank 0.
func (r *RAM) WriteFixed(offset uint16, value uint8) {
	if int(offset) >= RAMBankSize {
		return
	}
	r.banks[0][offset] = value
}

// ReadSwitchable reads from the currently selected bank.
func (r *RAM) ReadSwitchable(offset uint16) uint8 {
	if int(offset) >= RAMBankSize {
		return 0xFF
	}
	return r.banks[r.bank][offset]
}

// WriteSwitchable writes to the currently selected bank.
func (r *RAM) WriteSwitchable(offset uint16, value uint8) {
	if int(offset) >= RAMBankSize {
		return
	}
	r.banks[r.bank][offset] = value
}

// Snapshot copies every bank into one contiguous slice.
func (r *RAM) Snapshot() []uint8 {
	out := make([]uint8, 0, len(r.banks)*RAMBankSize)
	for _, b := range r.banks {
		out = append(out, b...)
	}
	return out
}

// Restore loads a snapshot produced by Snapshot back into the handle's
// banks, resizing to fit. A short snapshot leaves the remainder zeroed; a
// long one is truncated.
func (r *RAM) Restore(data []uint8) {
	bankCount := (len(data) + RAMBankSize - 1) / RAMBankSize
	if bankCount < MinWRAMBanks {
		bankCount = MinWRAMBanks
	}
	if bankCount > MaxRAMBanks {
		bankCount = MaxRAMBanks
	}
	r.banks = make([][]uint8, bankCount)
	for i := range r.banks {
		r.banks[i] = make([]uint8, RAMBankSize)
		start := i * RAMBankSize
		end := start + RAMBankSize
		if start < len(data) {
			if end > len(data) {
				end = len(data)
			}
			copy(r.banks[i], data[start:end])
		}
	}
	r.bank = bit.Clamp(r.bank, 1, len(r.banks)-1)
}

// ReadRegion implements membus.Region across the whole WRAM window
// (0xC000-0xDFFF): the low half reads bank 0, the high half reads the
// selected switchable bank.
func (r *RAM) ReadRegion(address uint16) uint8 {
	if int(address) < RAMBankSize {
		return r.ReadFixed(address)
	}
	return r.ReadSwitchable(address - RAMBankSize)
}

// WriteRegion implements membus.Region across the whole WRAM window.
func (r *RAM) WriteRegion(address uint16, value uint8) {
	if int(address) < RAMBankSize {
		r.WriteFixed(address, value)
		return
	}
	r.WriteSwitchable(address-RAMBankSize, value)
}

// ReadPort implements membus.Port for SVBK, the WRAM bank-select register.
func (r *RAM) ReadPort(id uint8) uint8 {
	if id == addr.PortSVBK {
		return uint8(r.bank)
	}
	return 0xFF
}

// WritePort implements membus.Port for SVBK. The full byte participates in
// the select so that stores grown past 8 banks stay addressable; the value
// clamps to the actual bank count.
func (r *RAM) WritePort(id uint8, value uint8) {
	if id == addr.PortSVBK {
		r.SelectBank(int(value))
	}
}
