package adapter

// NoopPPU is a zero-behavior PPU: every port reads 0xFF, writes are
// discarded, and both tick methods do nothing. Lets engine.New omit a real
// PPU collaborator entirely.
type NoopPPU struct{}

func (NoopPPU) ReadPort(id uint8) uint8              { return 0xFF }
func (NoopPPU) WritePort(id uint8, value uint8)      {}
func (NoopPPU) Tick()                                {}
func (NoopPPU) TickOAMDMA()                          {}
func (NoopPPU) ReadVRAM(offset uint16) uint8         { return 0xFF }
func (NoopPPU) WriteVRAM(offset uint16, value uint8) {}
func (NoopPPU) ReadOAM(offset uint16) uint8          { return 0xFF }
func (NoopPPU) WriteOAM(offset uint16, value uint8)  {}

// NoopJoypad is a zero-behavior Joypad: JOYP always reads as "nothing
// pressed" (all input-line bits high) and writes are discarded.
type NoopJoypad struct{}

func (NoopJoypad) ReadPort(id uint8) uint8         { return 0xFF }
func (NoopJoypad) WritePort(id uint8, value uint8) {}

// NoopRTC is a zero-behavior RTC: every register reads zero and latch
// writes are discarded.
type NoopRTC struct{}

func (NoopRTC) ReadPort(id uint8) uint8         { return 0x00 }
func (NoopRTC) WritePort(id uint8, value uint8) {}

// NoopNetwork is a zero-behavior Network: no transfer ever starts, the
// Network RAM window reads as open-bus, and Tick does nothing.
type NoopNetwork struct{}

func (NoopNetwork) ReadPort(id uint8) uint8             { return 0xFF }
func (NoopNetwork) WritePort(id uint8, value uint8)     {}
func (NoopNetwork) ReadRegion(address uint16) uint8     { return 0xFF }
func (NoopNetwork) WriteRegion(address uint16, v uint8) {}
func (NoopNetwork) Tick(bit14Edge bool)                 {}
