package bank

// HRAMSize is the size of the high RAM window, 0xFF80-0xFFFE inclusive.
const HRAMSize = 127

// HRAM is the small flat scratch RAM above the port window. Unlike WRAM
// and SRAM it is neither banked nor switchable.
type HRAM struct {
	data [HRAMSize]uint8
}

// NewHRAM returns a zeroed HRAM.
func NewHRAM() *HRAM { return &HRAM{} }

// ReadRegion implements membus.Region.
func (h *HRAM) ReadRegion(address uint16) uint8 {
	if int(address) >= HRAMSize {
		return 0xFF
	}
	return h.data[address]
}

// WriteRegion implements membus.Region.
func (h *HRAM) WriteRegion(address uint16, value uint8) {
	if int(address) >= HRAMSize {
		return
	}
	h.data[address] = value
}
