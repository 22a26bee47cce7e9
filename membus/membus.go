// Package membus implements the memory map dispatcher: every address in
// 0x0000-0xFFFF routes to the owning subsystem, with a registry of per-port
// handlers for the hardware-register window 0xFF00-0xFF7F. Word accesses
// are little-endian: low byte at the address, high byte at address+1.
package membus

import (
	"errors"
	"fmt"

	"github.com/oisin-vance/gbcore/addr"
)

// ErrBadAddress is returned by the checked Read/Write variants when routing
// finds no owner for the address: the unmapped 0xFEA0-0xFEFF gap, a port id
// with no registered handler, or a region whose backing subsystem was never
// wired.
var ErrBadAddress = errors.New("membus: no owner for address")

// Port is implemented by any subsystem that owns one or more bytes in the
// 0xFF00-0xFF7F hardware-register window. Write-only ports return 0xFF from
// ReadPort; read-only ports discard WritePort calls.
type Port interface {
	ReadPort(id uint8) uint8
	WritePort(id uint8, value uint8)
}

// Region is implemented by any subsystem that owns a contiguous slice of
// address space outside the port window (data store, VRAM, external RAM,
// WRAM, OAM, HRAM). Offsets are relative to the region's base address.
type Region interface {
	ReadRegion(address uint16) uint8
	WriteRegion(address uint16, value uint8)
}

// Bus dispatches reads and writes across the registered regions and ports,
// and charges machine cycles for the Cycle* variants via a caller-supplied
// charger (ordinarily gbcore.Engine.Cycle).
type Bus struct {
	dataStore Region
	vram      Region
	extRAM    Region
	wram      Region
	netRAM    Region
	oam       Region
	hram      Region

	ports [128]Port // indexed by port id (address - PortStart)

	ieRead  func() uint8
	ieWrite func(uint8)

	charger func(machineCycles int) error
	// chargeErr latches the first charge failure so that a fatal error
	// raised during a mid-instruction bus access still surfaces from the
	// instruction's final Cycle call.
	chargeErr error
}

// New creates an empty Bus; regions and ports are wired in with the Set*
// methods before use.
func New() *Bus {
	return &Bus{}
}

// SetDataStore wires the read-only data store region (0x0000-0x7FFF).
func (b *Bus) SetDataStore(r Region) { b.dataStore = r }

// SetVRAM wires the VRAM region (0x8000-0x9FFF).
func (b *Bus) SetVRAM(r Region) { b.vram = r }

// SetExternalRAM wires the save RAM region (0xA000-0xBFFF).
func (b *Bus) SetExternalRAM(r Region) { b.extRAM = r }

// SetWRAM wires the work RAM region (0xC000-0xDFFF, echoed at 0xE100-0xFDFF).
func (b *Bus) SetWRAM(r Region) { b.wram = r }

// SetNetworkRAM wires the network adapter's byte-addressable RAM window
// (0xE000-0xE0FF). The WRAM echo starts one byte past it at 0xE100.
func (b *Bus) SetNetworkRAM(r Region) { b.netRAM = r }

// SetOAM wires the OAM region (0xFE00-0xFE9F).
func (b *Bus) SetOAM(r Region) { b.oam = r }

// SetHRAM wires the high RAM region (0xFF80-0xFFFE).
func (b *Bus) SetHRAM(r Region) { b.hram = r }

// SetInterruptEnable wires the lone IE byte at 0xFFFF to accessor closures,
// keeping membus decoupled from the interrupt package.
func (b *Bus) SetInterruptEnable(read func() uint8, write func(uint8)) {
	b.ieRead, b.ieWrite = read, write
}

// SetCharger installs the callback used by CycleReadByte/CycleWriteByte/
// Cycle to charge machine cycles, ordinarily gbcore.Engine.Cycle. Any
// latched charge failure is cleared.
func (b *Bus) SetCharger(charger func(machineCycles int) error) {
	b.charger = charger
	b.chargeErr = nil
}

// RegisterPort installs the handler for a single port id (0x00-0x7F) in the
// hardware-register window.
func (b *Bus) RegisterPort(id uint8, p Port) {
	b.ports[id&0x7F] = p
}

// Read reads a byte, failing with ErrBadAddress when no subsystem owns the
// address.
func (b *Bus) Read(address uint16) (uint8, error) {
	switch {
	case address <= addr.DataStoreBankNEnd:
		return readRegion(b.dataStore, address)
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		return readRegion(b.vram, address-addr.VRAMStart)
	case address >= addr.SRAMStart && address <= addr.SRAMEnd:
		return readRegion(b.extRAM, address-addr.SRAMStart)
	case address >= addr.WRAMBank0Start && address <= addr.WRAMBankNEnd:
		return readRegion(b.wram, address-addr.WRAMBank0Start)
	case address >= addr.NetworkRAMStart && address <= addr.NetworkRAMEnd:
		return readRegion(b.netRAM, address-addr.NetworkRAMStart)
	case address >= addr.EchoStart && address <= addr.EchoEnd:
		// 0xE100-0xFDFF mirrors WRAM two pages down, so 0xE100 reads
		// 0xC100. The network window at 0xE000-0xE0FF masks the first
		// 256 bytes of what would otherwise be echo.
		return readRegion(b.wram, address-0x2000-addr.WRAMBank0Start)
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		return readRegion(b.oam, address-addr.OAMStart)
	case address >= addr.PortStart && address <= addr.PortEnd:
		id := uint8(address - addr.PortStart)
		if p := b.ports[id]; p != nil {
			return p.ReadPort(id), nil
		}
		return 0xFF, fmt.Errorf("%w: unregistered port %#02x", ErrBadAddress, id)
	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		return readRegion(b.hram, address-addr.HRAMStart)
	case address == addr.IE:
		if b.ieRead != nil {
			return b.ieRead(), nil
		}
		return 0x00, nil
	default:
		return 0xFF, fmt.Errorf("%w: %#04x", ErrBadAddress, address)
	}
}

// Write writes a byte, failing with ErrBadAddress when no subsystem owns
// the address.
func (b *Bus) Write(address uint16, value uint8) error {
	switch {
	case address <= addr.DataStoreBankNEnd:
		return writeRegion(b.dataStore, address, value)
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		return writeRegion(b.vram, address-addr.VRAMStart, value)
	case address >= addr.SRAMStart && address <= addr.SRAMEnd:
		return writeRegion(b.extRAM, address-addr.SRAMStart, value)
	case address >= addr.WRAMBank0Start && address <= addr.WRAMBankNEnd:
		return writeRegion(b.wram, address-addr.WRAMBank0Start, value)
	case address >= addr.NetworkRAMStart && address <= addr.NetworkRAMEnd:
		return writeRegion(b.netRAM, address-addr.NetworkRAMStart, value)
	case address >= addr.EchoStart && address <= addr.EchoEnd:
		return writeRegion(b.wram, address-0x2000-addr.WRAMBank0Start, value)
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		return writeRegion(b.oam, address-addr.OAMStart, value)
	case address >= addr.PortStart && address <= addr.PortEnd:
		id := uint8(address - addr.PortStart)
		if p := b.ports[id]; p != nil {
			p.WritePort(id, value)
			return nil
		}
		return fmt.Errorf("%w: unregistered port %#02x", ErrBadAddress, id)
	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		return writeRegion(b.hram, address-addr.HRAMStart, value)
	case address == addr.IE:
		if b.ieWrite != nil {
			b.ieWrite(value)
		}
		return nil
	default:
		return fmt.Errorf("%w: %#04x", ErrBadAddress, address)
	}
}

// ReadByte reads a byte, tolerating unowned addresses by returning the
// open-bus value 0xFF. Instruction primitives use this form: a stray
// address is a host programming bug, not something the bus can recover
// from mid-instruction.
func (b *Bus) ReadByte(address uint16) uint8 {
	value, _ := b.Read(address)
	return value
}

// WriteByte writes a byte, silently discarding writes to unowned addresses.
func (b *Bus) WriteByte(address uint16, value uint8) {
	_ = b.Write(address, value)
}

// ReadWord reads a little-endian 16-bit value: low byte at address, high
// byte at address+1.
func (b *Bus) ReadWord(address uint16) uint16 {
	low := b.ReadByte(address)
	high := b.ReadByte(address + 1)
	return uint16(high)<<8 | uint16(low)
}

// WriteWord writes a little-endian 16-bit value: low byte at address, high
// byte at address+1.
func (b *Bus) WriteWord(address uint16, value uint16) {
	b.WriteByte(address, uint8(value))
	b.WriteByte(address+1, uint8(value>>8))
}

// CycleReadByte reads a byte and charges one machine cycle. A charge
// failure is latched and reported by the caller's next Cycle call.
func (b *Bus) CycleReadByte(address uint16) uint8 {
	value := b.ReadByte(address)
	b.Cycle(1)
	return value
}

// CycleWriteByte writes a byte and charges one machine cycle. A charge
// failure is latched and reported by the caller's next Cycle call.
func (b *Bus) CycleWriteByte(address uint16, value uint8) {
	b.WriteByte(address, value)
	b.Cycle(1)
}

// Cycle charges n machine cycles with no associated bus access, delegating
// to the installed charger (ordinarily the owning gbcore.Engine). Once a
// charge fails, every subsequent charge reports the same error until a new
// charger is installed, so an instruction primitive whose bus-access cycle
// hit the failure still reports false from its final charge.
func (b *Bus) Cycle(machineCycles int) error {
	if b.chargeErr != nil {
		return b.chargeErr
	}
	if b.charger == nil {
		return nil
	}
	if err := b.charger(machineCycles); err != nil {
		b.chargeErr = err
		return err
	}
	return nil
}

func readRegion(r Region, offset uint16) (uint8, error) {
	if r == nil {
		return 0xFF, ErrBadAddress
	}
	return r.ReadRegion(offset), nil
}

func writeRegion(r Region, offset uint16, value uint8) error {
	if r == nil {
		return ErrBadAddress
	}
	r.WriteRegion(offset, value)
	return nil
}
