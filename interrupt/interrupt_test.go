package interrupt

import (
	"testing"

	"github.com/oisin-vance/gbcore/addr"
)

func TestDispatchHonoursPriorityOrder(t *testing.T) {
	c := New()
	c.SetIE(0xFF)
	c.SetIME(true)
	c.Request(addr.Timer)
	c.Request(addr.VBlank)

	i, ok := c.Dispatch()
	if !ok || i != addr.VBlank {
		t.Fatalf("Dispatch() = (%v, %v), want (VBlank, true)", i, ok)
	}

	// Dispatch clears IME; re-enable it as RETI would.
	c.SetIME(true)
	i, ok = c.Dispatch()
	if !ok || i != addr.Timer {
		t.Fatalf("Dispatch() = (%v, %v), want (Timer, true)", i, ok)
	}
}

func TestDispatchRespectsMaskAndIME(t *testing.T) {
	c := New()
	c.Request(addr.VBlank)

	if _, ok := c.Dispatch(); ok {
		t.Fatalf("expected no dispatch with IME clear")
	}

	c.SetIME(true)
	if _, ok := c.Dispatch(); ok {
		t.Fatalf("expected no dispatch with IE masked off")
	}

	c.SetIE(1 << uint8(addr.VBlank))
	i, ok := c.Dispatch()
	if !ok || i != addr.VBlank {
		t.Fatalf("expected VBlank dispatch once unmasked")
	}
}

func TestPendingWakesHaltRegardlessOfIME(t *testing.T) {
	c := New()
	c.SetIE(1 << uint8(addr.Joypad))
	c.Request(addr.Joypad)

	if _, ok := c.Pending(); !ok {
		t.Fatalf("expected Pending() true with IME clear")
	}
}

func TestIFPortReadsTopBitsSet(t *testing.T) {
	c := New()
	c.Request(addr.Timer)

	if got := c.ReadPort(addr.PortIF); got != 0xE4 {
		t.Fatalf("ReadPort(IF) = %#x, want 0xE4", got)
	}
}

func TestIFPortWriteOverwritesFlags(t *testing.T) {
	c := New()
	c.WritePort(addr.PortIF, 0x1F)
	if c.IF() != 0x1F {
		t.Fatalf("IF() = %#x, want 0x1F", c.IF())
	}
}

func TestServiceOnePropagatesHandlerFailure(t *testing.T) {
	c := New()
	c.SetIE(1 << uint8(addr.VBlank))
	c.SetIME(true)
	c.Request(addr.VBlank)
	c.SetHandler(addr.VBlank, func(addr.Interrupt) bool { return false })

	serviced, err := c.ServiceOne()
	if !serviced || err != ErrHandlerFailed {
		t.Fatalf("ServiceOne() = (%v, %v), want (true, ErrHandlerFailed)", serviced, err)
	}
}
