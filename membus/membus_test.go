package membus

import (
	"errors"
	"testing"
)

type fakeRegion struct{ data [0x4000]uint8 }

func (r *fakeRegion) ReadRegion(offset uint16) uint8         { return r.data[offset] }
func (r *fakeRegion) WriteRegion(offset uint16, value uint8) { r.data[offset] = value }

type fakePort struct{ value uint8 }

func (p *fakePort) ReadPort(id uint8) uint8         { return p.value }
func (p *fakePort) WritePort(id uint8, value uint8) { p.value = value }

func TestRegionDispatchByAddress(t *testing.T) {
	b := New()
	wram := &fakeRegion{}
	b.SetWRAM(wram)

	b.WriteByte(0xC010, 0x42)
	if wram.data[0x10] != 0x42 {
		t.Fatalf("expected write routed into WRAM region")
	}
	if got := b.ReadByte(0xC010); got != 0x42 {
		t.Fatalf("ReadByte(0xC010) = %#x, want 0x42", got)
	}
}

func TestEchoRegionMirrorsWRAM(t *testing.T) {
	b := New()
	wram := &fakeRegion{}
	b.SetWRAM(wram)

	b.WriteByte(0xC105, 0x7)
	if got := b.ReadByte(0xE105); got != 0x7 {
		t.Fatalf("echo read = %#x, want 0x7 mirrored from 0xC105", got)
	}

	b.WriteByte(0xFDFF, 0x9)
	if got := b.ReadByte(0xDDFF); got != 0x9 {
		t.Fatalf("ReadByte(0xDDFF) = %#x, want 0x9 written through the echo", got)
	}
}

func TestNetworkRAMIsDistinctFromEcho(t *testing.T) {
	b := New()
	wram := &fakeRegion{}
	netRAM := &fakeRegion{}
	b.SetWRAM(wram)
	b.SetNetworkRAM(netRAM)

	b.WriteByte(0xC000, 0xAA)
	b.WriteByte(0xE000, 0xBB)

	if got := b.ReadByte(0xE000); got != 0xBB {
		t.Fatalf("ReadByte(0xE000) = %#x, want 0xBB from the network region, not the WRAM echo", got)
	}
	if netRAM.data[0] != 0xBB {
		t.Fatalf("expected write routed to the network RAM region")
	}
}

func TestPortRegistryDispatch(t *testing.T) {
	b := New()
	p := &fakePort{}
	b.RegisterPort(0x05, p)

	b.WriteByte(0xFF05, 0x99)
	if p.value != 0x99 {
		t.Fatalf("expected write routed to registered port")
	}
	if got := b.ReadByte(0xFF05); got != 0x99 {
		t.Fatalf("ReadByte(0xFF05) = %#x, want 0x99", got)
	}
}

func TestWordAccessIsLittleEndian(t *testing.T) {
	b := New()
	b.SetWRAM(&fakeRegion{})

	b.WriteWord(0xC000, 0xBEEF)
	if got := b.ReadByte(0xC000); got != 0xEF {
		t.Fatalf("low byte = %#x, want 0xEF at the base address", got)
	}
	if got := b.ReadByte(0xC001); got != 0xBE {
		t.Fatalf("high byte = %#x, want 0xBE at address+1", got)
	}
	if got := b.ReadWord(0xC000); got != 0xBEEF {
		t.Fatalf("ReadWord = %#x, want 0xBEEF", got)
	}
}

func TestUnmappedGapFailsWithBadAddress(t *testing.T) {
	b := New()

	if _, err := b.Read(0xFEA0); !errors.Is(err, ErrBadAddress) {
		t.Fatalf("Read(0xFEA0) err = %v, want ErrBadAddress", err)
	}
	if err := b.Write(0xFEFF, 0x00); !errors.Is(err, ErrBadAddress) {
		t.Fatalf("Write(0xFEFF) err = %v, want ErrBadAddress", err)
	}
	if got := b.ReadByte(0xFEA0); got != 0xFF {
		t.Fatalf("ReadByte(0xFEA0) = %#x, want open-bus 0xFF", got)
	}
}

func TestUnregisteredPortFailsWithBadAddress(t *testing.T) {
	b := New()

	if _, err := b.Read(0xFF03); !errors.Is(err, ErrBadAddress) {
		t.Fatalf("Read(0xFF03) err = %v, want ErrBadAddress for an unregistered port", err)
	}
	if got := b.ReadByte(0xFF03); got != 0xFF {
		t.Fatalf("ReadByte(0xFF03) = %#x, want 0xFF", got)
	}
}

func TestChargeFailureLatchesUntilRewired(t *testing.T) {
	b := New()
	fail := errors.New("handler failure")
	calls := 0
	b.SetCharger(func(n int) error {
		calls++
		if calls == 1 {
			return fail
		}
		return nil
	})

	b.CycleReadByte(0xC000) // charge fails here, error is latched

	if err := b.Cycle(1); !errors.Is(err, fail) {
		t.Fatalf("Cycle() err = %v, want the latched charge failure", err)
	}
	if calls != 1 {
		t.Fatalf("charger called %d times, want 1: a latched failure must not re-charge", calls)
	}

	b.SetCharger(func(n int) error { return nil })
	if err := b.Cycle(1); err != nil {
		t.Fatalf("Cycle() err = %v after rewiring, want nil", err)
	}
}

func TestCycleReadByteChargesCycle(t *testing.T) {
	b := New()
	charged := 0
	b.SetCharger(func(n int) error { charged += n; return nil })

	b.CycleReadByte(0xC000)
	if charged != 1 {
		t.Fatalf("charged = %d, want 1", charged)
	}
}
