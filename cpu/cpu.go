// Package cpu implements the Sharp LR35902 register file, flag semantics,
// and instruction primitives. There is no opcode fetch/decode loop here and
// no program counter; host code calls the primitives directly and is
// responsible for its own control flow.
package cpu

// Bus is the narrow set of collaborators an instruction primitive needs:
// plain (uncharged) byte access for addressing calculations, charged byte
// access for the primitive's natural bus timing, and a way to charge pure
// register-only cycles. Engine-level wiring (timer/APU/PPU/interrupt
// ticking) happens behind Cycle; the CPU never reaches past this interface.
type Bus interface {
	// ReadByte reads a byte without charging any cycles.
	ReadByte(address uint16) uint8
	// WriteByte writes a byte without charging any cycles.
	WriteByte(address uint16, value uint8)
	// CycleReadByte reads a byte and charges one machine cycle.
	CycleReadByte(address uint16) uint8
	// CycleWriteByte writes a byte and charges one machine cycle.
	CycleWriteByte(address uint16, value uint8)
	// Cycle charges n machine cycles with no associated bus access.
	Cycle(machineCycles int) error
}

// RestartHandler is invoked by RST with the restart vector index (0..7).
type RestartHandler func(vector uint8) bool

// CPU is the register file plus the bus/restart collaborators needed to
// execute instruction primitives.
type CPU struct {
	Registers

	bus Bus

	// imeWriter and imeReader reach IME, whose source of truth is the
	// interrupt controller (package interrupt), without the cpu package
	// depending on package interrupt directly. DI, EI and RETI write IME
	// through imeWriter; no primitive reads imeReader.
	imeWriter func(bool)
	imeReader func() bool

	restarts [8]RestartHandler

	halted  bool
	stopped bool
}

// New creates a CPU bound to the given bus. imeReader/imeWriter give access
// to the interrupt controller's IME flag without coupling this package to
// package interrupt; DI/EI/RETI set it through imeWriter.
func New(bus Bus, imeReader func() bool, imeWriter func(bool)) *CPU {
	return &CPU{
		bus:       bus,
		imeReader: imeReader,
		imeWriter: imeWriter,
	}
}

// SetRestartHandler registers the handler invoked when RST targets the given
// vector (0..7).
func (c *CPU) SetRestartHandler(vector uint8, handler RestartHandler) {
	if vector > 7 {
		return
	}
	c.restarts[vector] = handler
}

// Halted reports whether HALT has been executed. HALT is modeled as a
// no-op; the flag exists purely for host introspection.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether STOP has been executed (also modeled as a no-op).
func (c *CPU) Stopped() bool { return c.stopped }

// ClearHalt lets host code (e.g. on an interrupt) resume from HALT.
func (c *CPU) ClearHalt() { c.halted = false }

// ClearStop lets host code (e.g. on a joypad event) resume from STOP.
func (c *CPU) ClearStop() { c.stopped = false }
