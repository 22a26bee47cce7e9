package adapter

import (
	"log/slog"

	"github.com/oisin-vance/gbcore/addr"
)

// TransferStatus is the Network adapter's transfer state machine, exposed
// through the NTS port so host code can observe completion and timeouts.
// There is no separate error state: a transfer the host completes
// unsuccessfully reports StatusTimeout.
type TransferStatus uint8

const (
	StatusIdle TransferStatus = iota
	StatusActive
	StatusComplete
	StatusTimeout
)

// networkRAMSize matches addr.NetworkRAMEnd-addr.NetworkRAMStart+1.
const networkRAMSize = int(addr.NetworkRAMEnd-addr.NetworkRAMStart) + 1

// defaultTimeoutEdges bounds how many timer-bit-14 falling edges a transfer
// may run before it is aborted as timed out.
const defaultTimeoutEdges = 64

// NetworkAdapter is the reference implementation of the Network adapter: a
// text-transfer logging device exposing the Network RAM buffer plus the
// NTS/NTC register pair, with a start/countdown/complete transfer state
// machine. Real socket transports implement the same interface elsewhere.
type NetworkAdapter struct {
	ram [networkRAMSize]uint8

	ntc    uint8
	status TransferStatus

	transferLen int
	immediate   bool
	countdown   int

	requestInterrupt func()
	logger           *slog.Logger
	line             []byte
}

// Option configures a NetworkAdapter at construction.
type Option func(*NetworkAdapter)

// WithFixedTiming makes transfers complete only when the host calls
// Complete, instead of completing synchronously the moment they start;
// bounded by the per-transfer timeout either way.
func WithFixedTiming() Option {
	return func(n *NetworkAdapter) { n.immediate = false }
}

// NewNetwork creates a Network adapter. requestInterrupt is invoked on
// transfer completion and on timeout, ordinarily wired to the engine's
// Serial interrupt request.
func NewNetwork(requestInterrupt func(), opts ...Option) *NetworkAdapter {
	n := &NetworkAdapter{
		immediate:        true,
		requestInterrupt: requestInterrupt,
		logger:           slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Status reports the current transfer state.
func (n *NetworkAdapter) Status() TransferStatus { return n.status }

// ReadRegion implements membus.Region for the Network RAM window.
func (n *NetworkAdapter) ReadRegion(address uint16) uint8 {
	if int(address) >= networkRAMSize {
		return 0xFF
	}
	return n.ram[address]
}

// WriteRegion implements membus.Region for the Network RAM window.
func (n *NetworkAdapter) WriteRegion(address uint16, value uint8) {
	if int(address) >= networkRAMSize {
		return
	}
	n.ram[address] = value
}

// ReadPort reads NTS (status) or NTC (control readback).
func (n *NetworkAdapter) ReadPort(id uint8) uint8 {
	switch id {
	case addr.PortNTS:
		return uint8(n.status)
	case addr.PortNTC:
		return n.ntc
	default:
		return 0xFF
	}
}

// WritePort writes NTS (transfer length: how much of the Network RAM
// payload to send) or NTC (control: bit 7 starts a transfer).
func (n *NetworkAdapter) WritePort(id uint8, value uint8) {
	switch id {
	case addr.PortNTS:
		n.transferLen = int(value)
	case addr.PortNTC:
		n.ntc = value
		n.maybeStartTransfer()
	}
}

func (n *NetworkAdapter) maybeStartTransfer() {
	if n.status == StatusActive {
		return
	}
	if n.ntc&0x80 == 0 {
		return
	}

	length := n.transferLen
	if length == 0 || length > networkRAMSize {
		length = networkRAMSize
	}
	n.logBuffer(n.ram[:length])

	if n.immediate {
		n.complete(StatusComplete)
		return
	}

	n.status = StatusActive
	n.countdown = defaultTimeoutEdges
}

// Complete is called by host code once its real transport finishes a
// fixed-timing transfer, before the per-transfer timeout elapses.
func (n *NetworkAdapter) Complete(success bool) {
	if n.status != StatusActive {
		return
	}
	if success {
		n.complete(StatusComplete)
	} else {
		n.complete(StatusTimeout)
	}
}

func (n *NetworkAdapter) complete(status TransferStatus) {
	n.status = status
	n.ntc &^= 0x80
	if n.requestInterrupt != nil {
		n.requestInterrupt()
	}
}

// Tick advances the timeout countdown on every falling edge of timer bit
// 14, delivered by the engine from the same counter that drives the
// APU's bit-12 events.
func (n *NetworkAdapter) Tick(bit14Edge bool) {
	if n.status != StatusActive || !bit14Edge {
		return
	}
	n.countdown--
	if n.countdown <= 0 {
		n.complete(StatusTimeout)
	}
}

func (n *NetworkAdapter) logBuffer(data []uint8) {
	for _, b := range data {
		if b == 0 || b == '\n' || b == '\r' {
			if len(n.line) > 0 {
				n.logger.Info("network", "line", string(n.line))
				n.line = n.line[:0]
			}
			continue
		}
		n.line = append(n.line, b)
	}
}
