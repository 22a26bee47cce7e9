package adapter

import (
	"testing"

	"github.com/oisin-vance/gbcore/addr"
)

func TestNetworkImmediateTransferCompletesAndInterrupts(t *testing.T) {
	fired := false
	n := NewNetwork(func() { fired = true })

	n.WriteRegion(0, 'h')
	n.WritePort(addr.PortNTS, 1)
	n.WritePort(addr.PortNTC, 0x81)

	if n.Status() != StatusComplete {
		t.Fatalf("Status() = %v, want StatusComplete", n.Status())
	}
	if !fired {
		t.Fatalf("expected interrupt request on completion")
	}
	if n.ReadPort(addr.PortNTC)&0x80 != 0 {
		t.Fatalf("expected start bit cleared after completion")
	}
}

func TestNetworkFixedTimingWaitsForComplete(t *testing.T) {
	n := NewNetwork(func() {}, WithFixedTiming())
	n.WritePort(addr.PortNTC, 0x81)

	if n.Status() != StatusActive {
		t.Fatalf("Status() = %v, want StatusActive before Complete", n.Status())
	}
	n.Complete(true)
	if n.Status() != StatusComplete {
		t.Fatalf("Status() = %v, want StatusComplete after Complete", n.Status())
	}
}

func TestNetworkTimeoutAbortsAndInterrupts(t *testing.T) {
	fired := 0
	n := NewNetwork(func() { fired++ }, WithFixedTiming())
	n.WritePort(addr.PortNTC, 0x81)

	for i := 0; i < defaultTimeoutEdges; i++ {
		n.Tick(false) // ordinary ticks with no edge must not count down
		n.Tick(true)
	}

	if n.Status() != StatusTimeout {
		t.Fatalf("Status() = %v, want StatusTimeout", n.Status())
	}
	if fired != 1 {
		t.Fatalf("interrupt fired %d times, want 1", fired)
	}
}

func TestNoopAdaptersAreInert(t *testing.T) {
	var ppu PPU = NoopPPU{}
	var joy Joypad = NoopJoypad{}
	var rtc RTC = NoopRTC{}
	var net Network = NoopNetwork{}

	ppu.Tick()
	ppu.TickOAMDMA()
	if ppu.ReadPort(addr.PortLY) != 0xFF {
		t.Fatalf("NoopPPU.ReadPort = want 0xFF")
	}
	if joy.ReadPort(addr.PortJOYP) != 0xFF {
		t.Fatalf("NoopJoypad.ReadPort = want 0xFF")
	}
	if rtc.ReadPort(addr.PortRTCS) != 0x00 {
		t.Fatalf("NoopRTC.ReadPort = want 0x00")
	}
	net.Tick(false)
	if net.ReadRegion(0) != 0xFF {
		t.Fatalf("NoopNetwork.ReadRegion = want 0xFF")
	}
}
