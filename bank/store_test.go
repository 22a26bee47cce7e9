package bank

import (
	"errors"
	"strings"
	"testing"

	"github.com/oisin-vance/gbcore/addr"
)

func TestCreateAndReadBackThroughBankWindow(t *testing.T) {
	s := NewDataStore()
	h, err := s.CreateFromBuffer("T", 1, []uint8{0xDE, 0xAD, 0xBE, 0xEF})
	if err != nil {
		t.Fatalf("CreateFromBuffer: %v", err)
	}
	if h.Bank != 1 || h.Offset != 0 || h.Length != 4 {
		t.Fatalf("handle = %+v, want bank 1 offset 0 length 4", h)
	}

	s.WritePort(addr.PortDSBKL, 0x01)
	want := []uint8{0xDE, 0xAD, 0xBE, 0xEF}
	for i, w := range want {
		if got := s.ReadRegion(BankSize + uint16(i)); got != w {
			t.Fatalf("ReadRegion(0x4000+%d) = %#x, want %#x", i, got, w)
		}
	}
}

func TestCreatePacksSequentiallyWithinBank(t *testing.T) {
	s := NewDataStore()
	if _, err := s.CreateFromBuffer("first", 1, make([]uint8, 100)); err != nil {
		t.Fatalf("CreateFromBuffer(first): %v", err)
	}
	h, err := s.CreateFromBuffer("second", 1, []uint8{0x77})
	if err != nil {
		t.Fatalf("CreateFromBuffer(second): %v", err)
	}
	if h.Offset != 100 {
		t.Fatalf("second handle offset = %d, want 100, packed after the first", h.Offset)
	}
}

func TestCreateRejectsBadNames(t *testing.T) {
	s := NewDataStore()
	if _, err := s.CreateFromBuffer("", 1, []uint8{1}); !errors.Is(err, ErrHandleName) {
		t.Fatalf("empty name err = %v, want ErrHandleName", err)
	}
	long := strings.Repeat("x", MaxHandleName+1)
	if _, err := s.CreateFromBuffer(long, 1, []uint8{1}); !errors.Is(err, ErrHandleName) {
		t.Fatalf("long name err = %v, want ErrHandleName", err)
	}
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	s := NewDataStore()
	if _, err := s.CreateFromBuffer("game", 1, []uint8{1}); err != nil {
		t.Fatalf("CreateFromBuffer: %v", err)
	}
	if _, err := s.CreateFromBuffer("game", 2, []uint8{2}); !errors.Is(err, ErrHandleExists) {
		t.Fatalf("err = %v, want ErrHandleExists", err)
	}
	if s.HandleCount() != 1 {
		t.Fatalf("HandleCount() = %d, want 1: failed creation must not register", s.HandleCount())
	}
}

func TestCreateRejectsBankOverflow(t *testing.T) {
	s := NewDataStore()
	if _, err := s.CreateFromBuffer("big", 1, make([]uint8, BankSize)); err != nil {
		t.Fatalf("CreateFromBuffer(big): %v", err)
	}
	_, err := s.CreateFromBuffer("straw", 1, []uint8{1})
	if !errors.Is(err, ErrHandleOverflow) {
		t.Fatalf("err = %v, want ErrHandleOverflow for a full bank", err)
	}
}

func TestCreateGrowsStoreToTargetBank(t *testing.T) {
	s := NewDataStore()
	if s.BankCount() != MinStoreBanks {
		t.Fatalf("BankCount() = %d, want the default %d", s.BankCount(), MinStoreBanks)
	}
	if _, err := s.CreateFromBuffer("far", 7, []uint8{0xAA}); err != nil {
		t.Fatalf("CreateFromBuffer(far): %v", err)
	}
	if s.BankCount() != 8 {
		t.Fatalf("BankCount() = %d, want grown to 8", s.BankCount())
	}
}

func TestSelectHandleBankBringsHandleIntoWindow(t *testing.T) {
	s := NewDataStore()
	if _, err := s.CreateFromBuffer("sprites", 3, []uint8{0x5A}); err != nil {
		t.Fatalf("CreateFromBuffer: %v", err)
	}

	if err := s.SelectHandleBank("sprites"); err != nil {
		t.Fatalf("SelectHandleBank: %v", err)
	}
	if s.SelectedBank() != 3 {
		t.Fatalf("SelectedBank() = %d, want 3", s.SelectedBank())
	}
	if got := s.ReadRegion(BankSize); got != 0x5A {
		t.Fatalf("ReadRegion(0x4000) = %#x, want 0x5A", got)
	}

	if err := s.SelectHandleBank("nope"); !errors.Is(err, ErrHandleNotFound) {
		t.Fatalf("err = %v, want ErrHandleNotFound", err)
	}
}

func TestLookupAndBytes(t *testing.T) {
	s := NewDataStore()
	payload := []uint8{1, 2, 3}
	created, err := s.CreateFromBuffer("blob", 1, payload)
	if err != nil {
		t.Fatalf("CreateFromBuffer: %v", err)
	}

	h, ok := s.Lookup("blob")
	if !ok || h != created {
		t.Fatalf("Lookup(blob) = (%+v, %v), want the created handle", h, ok)
	}
	got := s.Bytes(h)
	for i := range payload {
		if got[i] != payload[i] {
			t.Fatalf("Bytes()[%d] = %#x, want %#x", i, got[i], payload[i])
		}
	}
}

func TestShrinkDropsTailBanksAndTheirHandles(t *testing.T) {
	s := NewDataStore()
	s.Grow(8)
	if _, err := s.CreateFromBuffer("near", 1, []uint8{1}); err != nil {
		t.Fatalf("CreateFromBuffer(near): %v", err)
	}
	if _, err := s.CreateFromBuffer("far", 6, []uint8{2}); err != nil {
		t.Fatalf("CreateFromBuffer(far): %v", err)
	}
	s.SelectBank(6)

	s.Shrink(4)

	if s.BankCount() != 4 {
		t.Fatalf("BankCount() = %d, want 4", s.BankCount())
	}
	if s.SelectedBank() != 3 {
		t.Fatalf("SelectedBank() = %d, want clamped to 3", s.SelectedBank())
	}
	if _, ok := s.Lookup("far"); ok {
		t.Fatalf("handle in a discarded bank must be dropped")
	}
	if _, ok := s.Lookup("near"); !ok {
		t.Fatalf("handle in a surviving bank must be kept")
	}
}

func TestSelectBankClampsToSwitchableRange(t *testing.T) {
	s := NewDataStore()
	s.Grow(4)

	s.SelectBank(0)
	if s.SelectedBank() != 1 {
		t.Fatalf("SelectedBank() = %d, want 1: bank 0 stays pinned to the low window", s.SelectedBank())
	}
	s.SelectBank(99)
	if s.SelectedBank() != 3 {
		t.Fatalf("SelectedBank() = %d, want clamped to 3", s.SelectedBank())
	}
}

func TestPortsApplySixteenBitBankSelect(t *testing.T) {
	s := NewDataStore()
	s.Grow(0x300)

	s.WritePort(addr.PortDSBKH, 0x02)
	s.WritePort(addr.PortDSBKL, 0x01)

	if s.SelectedBank() != 0x201 {
		t.Fatalf("SelectedBank() = %#x, want 0x201 from the latched high byte", s.SelectedBank())
	}
	if s.ReadPort(addr.PortDSBKH) != 0x02 || s.ReadPort(addr.PortDSBKL) != 0x01 {
		t.Fatalf("port readback = %#x %#x, want 0x02 0x01",
			s.ReadPort(addr.PortDSBKH), s.ReadPort(addr.PortDSBKL))
	}
}

func TestLoadImageSlicesAcrossBanks(t *testing.T) {
	s := NewDataStore()
	data := make([]uint8, BankSize+10)
	data[0] = 0x11
	data[BankSize] = 0x22

	if err := s.LoadImage(data); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if got := s.ReadRegion(0); got != 0x11 {
		t.Fatalf("ReadRegion(0) = %#x, want 0x11", got)
	}
	if got := s.ReadRegion(BankSize); got != 0x22 {
		t.Fatalf("ReadRegion(0x4000) = %#x, want 0x22 from bank 1", got)
	}
	if got := s.ReadRegion(BankSize + 10); got != 0xFF {
		t.Fatalf("ReadRegion past the image = %#x, want 0xFF padding", got)
	}
}

func TestWriteRegionIsNoop(t *testing.T) {
	s := NewDataStore()
	s.WriteRegion(0, 0xAB)
	if got := s.ReadRegion(0); got != 0x00 {
		t.Fatalf("ReadRegion(0) = %#x, want unchanged 0x00: the store is read-only", got)
	}
}
