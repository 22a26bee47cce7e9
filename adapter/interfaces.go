// Package adapter defines the external-collaborator boundary: the PPU,
// joypad, RTC, and network transport live outside the engine, so this
// package names only the interfaces the engine's cycle driver ticks and
// the hardware-register ports it dispatches into, plus inert no-op
// defaults and one concrete reference implementation (NetworkAdapter).
package adapter

import "github.com/oisin-vance/gbcore/membus"

// PPU is the opaque pixel-processing collaborator: ticked once per clock
// tick, its OAM-DMA engine ticked once per machine cycle, and it owns the
// LCDC/STAT/SCY/SCX/LY/LYC/DMA/BGP/OBP0/OBP1/WY/WX port window plus the
// VRAM and OAM memory windows it backs. Pixel pipeline internals
// (rendering, scanline timing) are not part of this contract, only the
// storage and register surface the bus must route to. VRAM and OAM are
// exposed as two named regions, not one shared membus.Region, since their
// address ranges both start at 0 once the bus subtracts each window's
// base.
type PPU interface {
	membus.Port
	Tick()
	TickOAMDMA()
	ReadVRAM(offset uint16) uint8
	WriteVRAM(offset uint16, value uint8)
	ReadOAM(offset uint16) uint8
	WriteOAM(offset uint16, value uint8)
}

// Joypad is the opaque input front-end: it owns the JOYP port (low nibble
// read-only, selected by the upper two bits) and requests the Joypad
// interrupt on an input transition. Front-end internals (key scanning,
// debouncing) are not modeled here.
type Joypad interface {
	membus.Port
}

// RTC is the opaque real-time-clock collaborator: it owns the read-only
// RTCS/RTCM/RTCH/RTCDL/RTCDH ports and the write-only RTCL latch port.
// Wall-clock polling happens behind the latch, never during ticking.
type RTC interface {
	membus.Port
}

// Network is the opaque transport collaborator: ticked once per clock
// tick, it owns the NTS/NTC ports and the Network RAM region, and enforces
// a per-transfer timeout measured in falling edges of timer bit 14.
// Socket I/O internals are out of scope; this package's NetworkAdapter type
// is a reference implementation, not a requirement to use one.
type Network interface {
	membus.Port
	membus.Region
	// Tick is called once per clock tick; bit14Edge reports whether timer
	// bit 14 fell high to low on this tick.
	Tick(bit14Edge bool)
}
