package bank

import "testing"

func TestRAMReadRegionSpansFixedAndSwitchable(t *testing.T) {
	r := NewRAM(3)
	r.WriteRegion(0, 0x11)
	r.SelectBank(2)
	r.WriteRegion(RAMBankSize+5, 0x22)

	if got := r.ReadRegion(0); got != 0x11 {
		t.Fatalf("ReadRegion(0) = %#x, want 0x11", got)
	}
	if got := r.ReadRegion(RAMBankSize + 5); got != 0x22 {
		t.Fatalf("ReadRegion(RAMBankSize+5) = %#x, want 0x22", got)
	}
}

func TestRAMSelectBankExcludesBankZero(t *testing.T) {
	r := NewRAM(3)
	r.SelectBank(0)
	if r.SelectedBank() != 1 {
		t.Fatalf("SelectedBank() = %d, want clamped to 1, not bank 0", r.SelectedBank())
	}
}

func TestRAMPortSVBKSelectsBank(t *testing.T) {
	r := NewRAM(4)
	r.WritePort(0x70, 0x03)
	if r.SelectedBank() != 3 {
		t.Fatalf("SelectedBank() = %d, want 3 after SVBK write", r.SelectedBank())
	}
	if r.ReadPort(0x70) != 0x03 {
		t.Fatalf("ReadPort(SVBK) = %#x, want 0x03", r.ReadPort(0x70))
	}
}

func TestRAMPortSVBKClampsToBankCount(t *testing.T) {
	r := NewRAM(4)
	r.WritePort(0x70, 0xFF)
	if r.SelectedBank() != 3 {
		t.Fatalf("SelectedBank() = %d, want clamped to BankCount()-1 = 3", r.SelectedBank())
	}

	grown := NewRAM(100)
	grown.WritePort(0x70, 64)
	if grown.SelectedBank() != 64 {
		t.Fatalf("SelectedBank() = %d, want 64: the full byte participates in the select", grown.SelectedBank())
	}
}

func TestSRAMPortSSBKSelectsBank(t *testing.T) {
	s := NewSRAM(4)
	s.WritePort(0x71, 0x02)
	if s.SelectedBank() != 2 {
		t.Fatalf("SelectedBank() = %d, want 2 after SSBK write", s.SelectedBank())
	}
	if s.ReadPort(0x71) != 0x02 {
		t.Fatalf("ReadPort(SSBK) = %#x, want 0x02", s.ReadPort(0x71))
	}
}

func TestHRAMReadWrite(t *testing.T) {
	h := NewHRAM()
	h.WriteRegion(10, 0x42)
	if got := h.ReadRegion(10); got != 0x42 {
		t.Fatalf("ReadRegion(10) = %#x, want 0x42", got)
	}
	if got := h.ReadRegion(200); got != 0xFF {
		t.Fatalf("ReadRegion(200) = %#x, want 0xFF out-of-range", got)
	}
}
