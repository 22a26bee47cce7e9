// Package interrupt implements the interrupt controller: the IF/IE flag
// pair, the IME master enable, and priority-ordered dispatch across the
// six interrupt types. The CPU reads and writes IME through closures
// rather than importing this package.
package interrupt

import (
	"errors"

	"github.com/oisin-vance/gbcore/addr"
)

// ErrHandlerFailed is returned by ServiceOne when a registered interrupt
// handler reports failure.
var ErrHandlerFailed = errors.New("interrupt: handler reported failure")

// Handler is invoked when the controller dispatches an interrupt of the
// given type. Returning false is fatal and aborts the engine's current
// Cycle call, ordinarily because the handler could not push the return
// address or reach its vector.
type Handler func(i addr.Interrupt) bool

// Controller holds IF, IE, and IME, and resolves the highest-priority
// pending, enabled interrupt.
type Controller struct {
	flags   uint8 // IF: bit i set means interrupt i is requested
	enabled uint8 // IE: bit i set means interrupt i is unmasked
	ime     bool

	handlers [addr.NumInterrupts]Handler
}

// New returns a Controller with IF/IE/IME all zeroed.
func New() *Controller {
	return &Controller{}
}

// Request sets the IF bit for the given interrupt, regardless of IE or IME
// (a request latches even while masked or globally disabled).
func (c *Controller) Request(i addr.Interrupt) {
	c.flags |= 1 << uint8(i)
}

// Clear clears the IF bit for the given interrupt, used by the dispatch
// loop after a handler has been invoked.
func (c *Controller) Clear(i addr.Interrupt) {
	c.flags &^= 1 << uint8(i)
}

// IF returns the raw interrupt-flag register. The top three bits always
// read as set on real hardware; callers needing that behaviour should OR in
// 0xE0 themselves, as ReadPort does.
func (c *Controller) IF() uint8 { return c.flags }

// SetIF overwrites the interrupt-flag register directly (used by the
// membus port write path).
func (c *Controller) SetIF(value uint8) { c.flags = value & 0x3F }

// IE returns the interrupt-enable register.
func (c *Controller) IE() uint8 { return c.enabled }

// SetIE overwrites the interrupt-enable register.
func (c *Controller) SetIE(value uint8) { c.enabled = value & 0x3F }

// IME reports whether interrupts are globally enabled.
func (c *Controller) IME() bool { return c.ime }

// SetIME sets or clears the global interrupt-enable flag.
func (c *Controller) SetIME(on bool) { c.ime = on }

// Pending reports the highest-priority interrupt that is both requested and
// enabled, regardless of IME (HALT wakes on a pending interrupt even with
// IME clear). ok is false if none is pending.
func (c *Controller) Pending() (i addr.Interrupt, ok bool) {
	active := c.flags & c.enabled
	if active == 0 {
		return 0, false
	}
	for bitIndex := uint8(0); bitIndex < addr.NumInterrupts; bitIndex++ {
		if active&(1<<bitIndex) != 0 {
			return addr.Interrupt(bitIndex), true
		}
	}
	return 0, false
}

// Dispatch reports the highest-priority interrupt eligible to be serviced
// right now: requested, enabled, and IME set. If one is found, it clears
// the request and disables IME, mirroring hardware's dispatch sequence; the
// caller is responsible for pushing the return address and transferring
// control to the interrupt's vector.
func (c *Controller) Dispatch() (i addr.Interrupt, ok bool) {
	if !c.ime {
		return 0, false
	}
	i, ok = c.Pending()
	if !ok {
		return 0, false
	}
	c.Clear(i)
	c.ime = false
	return i, true
}

// SetHandler registers the callback invoked when the controller dispatches
// the given interrupt type, used by the cycle driver's per-tick service
// step.
func (c *Controller) SetHandler(i addr.Interrupt, h Handler) {
	c.handlers[i] = h
}

// ServiceOne dispatches at most one pending, enabled interrupt by invoking
// its registered handler. serviced reports whether an interrupt was
// dispatched; err is non-nil only when the handler itself reports failure,
// in which case the caller must abort and propagate it.
func (c *Controller) ServiceOne() (serviced bool, err error) {
	i, ok := c.Dispatch()
	if !ok {
		return false, nil
	}
	h := c.handlers[i]
	if h == nil {
		return true, nil
	}
	if !h(i) {
		return true, ErrHandlerFailed
	}
	return true, nil
}

// ReadPort implements membus.Port for the IF register; the top three bits
// always read as set.
func (c *Controller) ReadPort(id uint8) uint8 {
	if id == addr.PortIF {
		return c.flags | 0xE0
	}
	return 0xFF
}

// WritePort implements membus.Port for the IF register.
func (c *Controller) WritePort(id uint8, value uint8) {
	if id == addr.PortIF {
		c.SetIF(value)
	}
}

// Vector returns the fixed dispatch address for an interrupt type.
func Vector(i addr.Interrupt) uint16 {
	switch i {
	case addr.VBlank:
		return 0x0040
	case addr.LCDStat:
		return 0x0048
	case addr.Timer:
		return 0x0050
	case addr.Serial:
		return 0x0058
	case addr.Joypad:
		return 0x0060
	case addr.RTC:
		return 0x0068
	default:
		return 0x0000
	}
}
