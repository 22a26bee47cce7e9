// Package gbcore is the engine aggregate: a cycle-driven runtime that
// reproduces the externally observable behavior of the hardware — CPU
// instruction effects, the memory map, interrupts, timer, APU, and banked
// storage — without interpreting an opcode stream. Host code calls the
// instruction primitives on Engine.CPU directly; every primitive charges
// machine cycles through Cycle, which ticks all time-driven subsystems in
// lockstep.
package gbcore

import (
	"github.com/oisin-vance/gbcore/adapter"
	"github.com/oisin-vance/gbcore/addr"
	"github.com/oisin-vance/gbcore/audio"
	"github.com/oisin-vance/gbcore/bank"
	"github.com/oisin-vance/gbcore/cpu"
	"github.com/oisin-vance/gbcore/interrupt"
	"github.com/oisin-vance/gbcore/membus"
	"github.com/oisin-vance/gbcore/timer"
)

// ClockHz is the system clock rate in Hz, used as the default APU source
// clock.
const ClockHz = 4194304

// DefaultSampleRate is the default APU mix sample rate in Hz.
const DefaultSampleRate = 44100

// Stats is a point-in-time snapshot of cumulative cycle accounting.
type Stats struct {
	TotalTicks uint64 // clock ticks elapsed since construction (4 per machine cycle)
	CycleCalls uint64 // number of Cycle(n) calls made
}

// Engine owns every subsystem exclusively and drives them in lockstep via
// Cycle.
type Engine struct {
	Bus       *membus.Bus
	CPU       *cpu.CPU
	Interrupt *interrupt.Controller
	Timer     *timer.Timer
	APU       *audio.APU
	DataStore *bank.DataStore
	WRAM      *bank.RAM
	SRAM      *bank.SRAM
	HRAM      *bank.HRAM

	ppu     adapter.PPU
	joypad  adapter.Joypad
	rtc     adapter.RTC
	network adapter.Network

	stats Stats

	// UserData is an opaque handle for host code; the engine never reads
	// or writes it itself.
	UserData any
}

// New constructs an Engine with every external adapter defaulted to its
// no-op stand-in; host code wires real adapters in with the Set* methods
// before driving Cycle.
func New() *Engine {
	e := &Engine{
		Bus:       membus.New(),
		Interrupt: interrupt.New(),
		Timer:     timer.New(),
		APU:       audio.New(ClockHz, DefaultSampleRate),
		DataStore: bank.NewDataStore(),
		WRAM:      bank.NewRAM(bank.MinWRAMBanks),
		SRAM:      bank.NewSRAM(1),
		HRAM:      bank.NewHRAM(),
		ppu:       adapter.NoopPPU{},
		joypad:    adapter.NoopJoypad{},
		rtc:       adapter.NoopRTC{},
		network:   adapter.NoopNetwork{},
	}

	e.Timer.RequestInterrupt = func() { e.Interrupt.Request(addr.Timer) }
	e.CPU = cpu.New(e.Bus, e.Interrupt.IME, e.Interrupt.SetIME)

	e.wireBus()
	return e
}

func (e *Engine) wireBus() {
	e.Bus.SetCharger(e.Cycle)
	e.Bus.SetDataStore(e.DataStore)
	e.Bus.SetExternalRAM(e.SRAM)
	e.Bus.SetWRAM(e.WRAM)
	e.Bus.SetOAM(ppuOAM{&e.ppu})
	e.Bus.SetVRAM(ppuVRAM{&e.ppu})
	e.Bus.SetHRAM(e.HRAM)
	e.Bus.SetNetworkRAM(e.network)
	e.Bus.SetInterruptEnable(e.Interrupt.IE, e.Interrupt.SetIE)

	e.Bus.RegisterPort(addr.PortDIV, e.Timer)
	e.Bus.RegisterPort(addr.PortTIMA, e.Timer)
	e.Bus.RegisterPort(addr.PortTMA, e.Timer)
	e.Bus.RegisterPort(addr.PortTAC, e.Timer)
	e.Bus.RegisterPort(addr.PortIF, e.Interrupt)

	e.Bus.RegisterPort(addr.PortSVBK, e.WRAM)
	e.Bus.RegisterPort(addr.PortSSBK, e.SRAM)
	e.Bus.RegisterPort(addr.PortDSBKH, e.DataStore)
	e.Bus.RegisterPort(addr.PortDSBKL, e.DataStore)

	for _, id := range apuPortIDs {
		e.Bus.RegisterPort(id, e.APU)
	}
	for id := uint8(0x30); id <= 0x3F; id++ {
		e.Bus.RegisterPort(id, e.APU)
	}

	e.registerAdapterPorts()
}

func (e *Engine) registerAdapterPorts() {
	e.Bus.RegisterPort(addr.PortJOYP, e.joypad)
	e.Bus.RegisterPort(addr.PortNTS, e.network)
	e.Bus.RegisterPort(addr.PortNTC, e.network)
	e.Bus.RegisterPort(addr.PortRTCS, e.rtc)
	e.Bus.RegisterPort(addr.PortRTCM, e.rtc)
	e.Bus.RegisterPort(addr.PortRTCH, e.rtc)
	e.Bus.RegisterPort(addr.PortRTCDL, e.rtc)
	e.Bus.RegisterPort(addr.PortRTCDH, e.rtc)
	e.Bus.RegisterPort(addr.PortRTCL, e.rtc)

	for _, id := range ppuPortIDs {
		e.Bus.RegisterPort(id, e.ppu)
	}
}

var apuPortIDs = []uint8{
	addr.PortNR10, addr.PortNR11, addr.PortNR12, addr.PortNR13, addr.PortNR14,
	addr.PortNR21, addr.PortNR22, addr.PortNR23, addr.PortNR24,
	addr.PortNR30, addr.PortNR31, addr.PortNR32, addr.PortNR33, addr.PortNR34,
	addr.PortNR41, addr.PortNR42, addr.PortNR43, addr.PortNR44,
	addr.PortNR50, addr.PortNR51, addr.PortNR52,
}

var ppuPortIDs = []uint8{
	addr.PortLCDC, addr.PortSTAT, addr.PortSCY, addr.PortSCX,
	addr.PortLY, addr.PortLYC, addr.PortDMA,
	addr.PortBGP, addr.PortOBP0, addr.PortOBP1, addr.PortWY, addr.PortWX,
	addr.PortGRPM, addr.PortVBK,
	addr.PortHDMA1, addr.PortHDMA2, addr.PortHDMA3, addr.PortHDMA4, addr.PortHDMA5,
	addr.PortBGPI, addr.PortBGPD, addr.PortOBPI, addr.PortOBPD, addr.PortOPRI,
}

// ppuVRAM and ppuOAM adapt a PPU adapter's ReadVRAM/ReadOAM pair onto
// membus.Region. Each holds a pointer to the Engine's ppu field rather
// than a snapshot of the adapter itself, so a later SetPPU swap is picked
// up without re-registering the region.
type ppuVRAM struct{ ppu *adapter.PPU }

func (r ppuVRAM) ReadRegion(address uint16) uint8     { return (*r.ppu).ReadVRAM(address) }
func (r ppuVRAM) WriteRegion(address uint16, v uint8) { (*r.ppu).WriteVRAM(address, v) }

type ppuOAM struct{ ppu *adapter.PPU }

func (r ppuOAM) ReadRegion(address uint16) uint8     { return (*r.ppu).ReadOAM(address) }
func (r ppuOAM) WriteRegion(address uint16, v uint8) { (*r.ppu).WriteOAM(address, v) }

// SetPPU installs the host's PPU adapter, replacing the no-op default.
func (e *Engine) SetPPU(p adapter.PPU) {
	e.ppu = p
	e.registerAdapterPorts()
}

// SetJoypad installs the host's joypad adapter.
func (e *Engine) SetJoypad(j adapter.Joypad) {
	e.joypad = j
	e.registerAdapterPorts()
}

// SetRTC installs the host's RTC adapter.
func (e *Engine) SetRTC(r adapter.RTC) {
	e.rtc = r
	e.registerAdapterPorts()
}

// SetNetwork installs the host's network adapter, replacing the no-op
// default and rewiring the Network RAM region to the new adapter.
func (e *Engine) SetNetwork(n adapter.Network) {
	e.network = n
	e.Bus.SetNetworkRAM(e.network)
	e.registerAdapterPorts()
}

// Stats returns a snapshot of cumulative cycle accounting.
func (e *Engine) Stats() Stats { return e.stats }

// SetAudioSampleCallback installs the callback invoked every time the APU
// mixes a stereo sample, ordinarily wired to a host audio device such as
// the sdl2 adapter's sink.
func (e *Engine) SetAudioSampleCallback(cb func(left, right float32)) {
	e.APU.SetSampleCallback(cb)
}

// Cycle advances the engine by machineCycles machine cycles of four clock
// ticks each. Within one clock tick the order is fixed and observable:
// timer, APU, PPU, network, then at most one interrupt dispatch — the
// timer increments before the APU reads its divider edge. After each
// machine cycle's four ticks, the PPU's OAM-DMA engine is ticked once.
// A failing interrupt handler aborts immediately and propagates its error.
func (e *Engine) Cycle(machineCycles int) error {
	e.stats.CycleCalls++

	for range machineCycles {
		for tick := 0; tick < 4; tick++ {
			e.stats.TotalTicks++

			e.Timer.Tick(1)
			e.APU.Tick(e.Timer.DivAPUEdge())
			e.ppu.Tick()
			e.network.Tick(e.Timer.DividerBitEdge(14))

			if _, err := e.Interrupt.ServiceOne(); err != nil {
				return err
			}
		}
		e.ppu.TickOAMDMA()
	}
	return nil
}
