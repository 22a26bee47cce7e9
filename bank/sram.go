package bank

import (
	"errors"
	"os"

	"github.com/oisin-vance/gbcore/addr"
	"github.com/oisin-vance/gbcore/bit"
)

// SRAMBankSize is the fixed size of a single save-RAM bank, larger than a
// WRAM bank because save RAM never shares its window with anything else.
const SRAMBankSize = 8 * 1024

// MaxSRAMBanks caps an SRAM handle's bank count.
const MaxSRAMBanks = 256

// MaxSRAMFileSize bounds an SRAM save file (MaxSRAMBanks full banks),
// rejecting anything larger before it is ever allocated.
const MaxSRAMFileSize = MaxSRAMBanks * SRAMBankSize

// ErrInvalidSaveSize is returned by SRAM.Load when a save file's size isn't
// a positive multiple of SRAMBankSize, or exceeds MaxSRAMFileSize.
var ErrInvalidSaveSize = errors.New("bank: invalid SRAM save size")

// SRAM is battery-backed save RAM: every bank is switchable (unlike WRAM,
// which fixes bank 0), and the whole handle can be persisted to and
// restored from a flat file of concatenated banks.
type SRAM struct {
	banks [][]uint8
	bank  int
}

// NewSRAM creates an SRAM handle with the given initial bank count
// (minimum 1, maximum MaxSRAMBanks).
func NewSRAM(bankCount int) *SRAM {
	if bankCount < 1 {
		bankCount = 1
	}
	if bankCount > MaxSRAMBanks {
		bankCount = MaxSRAMBanks
	}
	s := &SRAM{banks: make([][]uint8, bankCount)}
	for i := range s.banks {
		s.banks[i] = make([]uint8, SRAMBankSize)
	}
	return s
}

// BankCount reports how many banks this handle currently holds.
func (s *SRAM) BankCount() int { return len(s.banks) }

// SelectedBank returns the bank index currently visible in the window.
func (s *SRAM) SelectedBank() int { return s.bank }

// SelectBank sets the selected bank, clamped into [0, BankCount()-1].
func (s *SRAM) SelectBank(bank int) {
	s.bank = bit.Clamp(bank, 0, len(s.banks)-1)
}

// ReadPort implements membus.Port for SSBK, the SRAM bank-select register.
func (s *SRAM) ReadPort(id uint8) uint8 {
	if id == addr.PortSSBK {
		return uint8(s.bank)
	}
	return 0xFF
}

// WritePort implements membus.Port for SSBK.
func (s *SRAM) WritePort(id uint8, value uint8) {
	if id == addr.PortSSBK {
		s.SelectBank(int(value))
	}
}

// ReadRegion implements membus.Region over the selected bank.
func (s *SRAM) ReadRegion(offset uint16) uint8 {
	if int(offset) >= SRAMBankSize {
		return 0xFF
	}
	return s.banks[s.bank][offset]
}

// WriteRegion implements membus.Region over the selected bank.
func (s *SRAM) WriteRegion(offset uint16, value uint8) {
	if int(offset) >= SRAMBankSize {
		return
	}
	s.banks[s.bank][offset] = value
}

// Snapshot copies every bank into one contiguous slice, the format Save
// writes to disk.
func (s *SRAM) Snapshot() []uint8 {
	out := make([]uint8, 0, len(s.banks)*SRAMBankSize)
	for _, b := range s.banks {
		out = append(out, b...)
	}
	return out
}

// Save writes the handle's full contents to path as a flat file, one bank
// after another, no header or checksum.
func (s *SRAM) Save(path string) error {
	return os.WriteFile(path, s.Snapshot(), 0o644)
}

// Load reads path and replaces the handle's contents, resizing its bank
// count to fit. The file size must be a positive multiple of SRAMBankSize
// and no larger than MaxSRAMFileSize; on failure the handle is unchanged.
func (s *SRAM) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) == 0 || len(data)%SRAMBankSize != 0 || len(data) > MaxSRAMFileSize {
		return ErrInvalidSaveSize
	}

	bankCount := len(data) / SRAMBankSize
	s.banks = make([][]uint8, bankCount)
	for i := range s.banks {
		s.banks[i] = make([]uint8, SRAMBankSize)
		copy(s.banks[i], data[i*SRAMBankSize:(i+1)*SRAMBankSize])
	}
	s.bank = bit.Clamp(s.bank, 0, len(s.banks)-1)
	return nil
}
