package memory

import (
	"fmt"
	"log/slog"

	"github.com/jaswinn/dmgcore/dmg/addr"
	"github.com/jaswinn/dmgcore/dmg/audio"
	"github.com/jaswinn/dmgcore/dmg/bit"
	"github.com/jaswinn/dmgcore/dmg/serial"
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionUnused
	regionIO
	regionHRAM
)

// SerialPort is the minimal interface for a serial device connected to SB/SC.
// Implementations MUST only accept reads/writes to addr.SB and addr.SC.
type SerialPort interface {
	Write(address uint16, value byte)
	Read(address uint16) byte
	Tick(cycles int)
	Reset()
}

// MMU allows access to all memory mapped I/O and data/registers
type MMU struct {
	cart      *Cartridge
	mbc       MBC
	memory    []byte
	APU       *audio.APU
	regionMap [256]memRegion

	joypad Joypad

	serial SerialPort
	timer  Timer

	dmaActive     bool
	dmaSourceHigh uint8
	dmaBytesDone  uint16 // 0..160
	dmaCycleAccum int
}

// New creates a new memory unity with default data, i.e. nothing cartridge loaded.
// Equivalent to turning on a Gameboy without a cartridge in.
func New() *MMU {
	mmu := &MMU{
		memory: make([]byte, 0x10000),
		cart:   NewCartridge(),
		APU:    audio.New(),
		joypad: *NewJoypad(),
	}
	mmu.serial = serial.NewLogSink(func() { mmu.RequestInterrupt(addr.SerialInterrupt) })
	mmu.timer.TimerInterruptHandler = func() { mmu.RequestInterrupt(addr.TimerInterrupt) }
	mmu.joypad.JoypadInterruptHandler = func() { mmu.RequestInterrupt(addr.JoypadInterrupt) }
	initRegionMap(mmu)
	return mmu
}

// Tick advances any i/o that needs it, if any.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
	if m.serial != nil {
		m.serial.Tick(cycles)
	}
	m.stepDMA(cycles)
	m.APU.Tick(cycles)
}

// stepDMA advances an in-flight OAM DMA transfer by cycles T-cycles, copying
// one byte every 4 T-cycles, matching the real 160-byte/640-cycle transfer
// instead of completing it instantly on the triggering write.
func (m *MMU) stepDMA(cycles int) {
	if !m.dmaActive {
		return
	}
	m.dmaCycleAccum += cycles
	for m.dmaCycleAccum >= 4 && m.dmaActive {
		m.dmaCycleAccum -= 4
		src := uint16(m.dmaSourceHigh)<<8 + m.dmaBytesDone
		m.memory[0xFE00+m.dmaBytesDone] = m.readRaw(src)
		m.dmaBytesDone++
		if m.dmaBytesDone >= 160 {
			m.dmaActive = false
		}
	}
}

// SetTimerSeed initializes the internal timer divider seed and DIV register.
func (m *MMU) SetTimerSeed(seed uint16) {
	m.timer.SetSeed(seed)
}

// NewWithCartridge creates a new memory unit with the provided cartridge data
// loaded. Equivalent to turning on a Gameboy with a cartridge in. Returns
// ErrUnsupportedMBC if the cartridge header selects a banking controller
// this emulator does not implement.
func NewWithCartridge(cart *Cartridge) (*MMU, error) {
	mmu := New()
	mmu.cart = cart

	switch cart.mbcType {
	case NoMBCType:
		mmu.mbc = NewNoMBC(cart.data)
	case MBC1Type, MBC1MultiType:
		mmu.mbc = NewMBC1(cart.data, cart.hasBattery, cart.ramBankCount)
	default:
		return nil, fmt.Errorf("%w: cartridge type 0x%02X", ErrUnsupportedMBC, cart.cartType)
	}

	return mmu, nil
}

func initRegionMap(m *MMU) {
	// ROM: 0x0000-0x7FFF
	for i := 0x00; i <= 0x7F; i++ {
		m.regionMap[i] = regionROM
	}
	// VRAM: 0x8000-0x9FFF
	for i := 0x80; i <= 0x9F; i++ {
		m.regionMap[i] = regionVRAM
	}
	// External RAM: 0xA000-0xBFFF
	for i := 0xA0; i <= 0xBF; i++ {
		m.regionMap[i] = regionExtRAM
	}
	// Work RAM: 0xC000-0xDFFF
	for i := 0xC0; i <= 0xDF; i++ {
		m.regionMap[i] = regionWRAM
	}
	// Echo RAM: 0xE000-0xFDFF
	for i := 0xE0; i <= 0xFD; i++ {
		m.regionMap[i] = regionEcho
	}
	// OAM: 0xFE00-0xFE9F, Unused: 0xFEA0-0xFEFF
	m.regionMap[0xFE] = regionOAM
	// IO + HRAM: 0xFF00-0xFFFF
	m.regionMap[0xFF] = regionIO
}

// RequestInterrupt sets the interrupt flag (IF register) of the chosen interrupt to 1.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	interruptFlags := m.Read(addr.IF)

	var bitPos uint8
	switch interrupt {
	case addr.VBlankInterrupt:
		bitPos = 0
	case addr.LCDSTATInterrupt:
		bitPos = 1
	case addr.TimerInterrupt:
		bitPos = 2
	case addr.SerialInterrupt:
		bitPos = 3
	case addr.JoypadInterrupt:
		bitPos = 4
	default:
		panic(fmt.Sprintf("Unknown interrupt: 0x%02X", uint8(interrupt)))
	}

	newFlags := bit.Set(bitPos, interruptFlags)

	m.Write(addr.IF, newFlags)
}

func (m *MMU) ReadBit(index uint8, address uint16) bool {
	return bit.IsSet(index, m.Read(address))
}

func (m *MMU) SetBit(index uint8, address uint16, set bool) {
	value := m.Read(address)
	if set {
		value = bit.Set(index, value)
	} else {
		value = bit.Reset(index, value)
	}
	m.Write(address, value)
}

// Read returns the byte at address, as seen by the CPU. While an OAM DMA
// transfer is active, the CPU's bus access is restricted to HRAM: any other
// address reads back as 0xFF, matching real hardware.
func (m *MMU) Read(address uint16) byte {
	if m.dmaActive && !isHRAM(address) {
		return 0xFF
	}
	return m.readRaw(address)
}

func isHRAM(address uint16) bool {
	return address >= 0xFF80 && address <= 0xFFFE
}

// readRaw reads without the DMA bus restriction; used for the CPU path
// above once it's cleared to proceed, and for the DMA engine's own source
// reads (which must see the real bus regardless of the transfer it's driving).
func (m *MMU) readRaw(address uint16) byte {
	switch m.regionMap[address>>8] {
	case regionROM, regionExtRAM:
		if m.mbc == nil {
			slog.Warn("Reading from ROM/external RAM with no cartridge", "addr", fmt.Sprintf("0x%04X", address))
			return 0xFF
		}
		return m.mbc.Read(address)
	case regionVRAM, regionWRAM:
		return m.memory[address]
	case regionEcho:
		if address <= 0xFDFF {
			return m.memory[address-0x2000]
		}
		return m.memory[address-0x2000]
	case regionOAM:
		if address <= 0xFE9F {
			return m.memory[address]
		}
		// Unused area 0xFEA0-0xFEFF
		return m.memory[address]
	case regionIO:
		if address == addr.P1 {
			return m.joypad.Read()
		}
		if address == addr.SB || address == addr.SC {
			return m.serial.Read(address)
		}
		if address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC {
			return m.timer.Read(address)
		}
		if address >= 0xFF10 && address <= 0xFF3F {
			return m.APU.ReadRegister(address)
		}
		// Just in case, we always read the upper 3 bits of IF as 1.
		// They're not used, but have caused me some headaches when checking for
		// when the halt bug triggers (IF != 0).
		if address == addr.IF {
			return m.memory[address] | 0xE0
		}
		if address >= 0xFF80 {
			// HRAM
			return m.memory[address]
		}
		// Other IO registers
		return m.memory[address]
	default:
		panic(fmt.Sprintf("Attempted read at unmapped address: 0x%X", address))
	}
}

// Write stores a byte at address, as seen by the CPU. While an OAM DMA
// transfer is active, only HRAM and the DMA trigger register itself accept
// writes; everything else is dropped.
func (m *MMU) Write(address uint16, value byte) {
	if m.dmaActive && !isHRAM(address) && address != addr.DMA {
		return
	}
	m.writeRaw(address, value)
}

func (m *MMU) writeRaw(address uint16, value byte) {
	switch m.regionMap[address>>8] {
	case regionROM:
		if m.mbc == nil {
			slog.Warn("Writing to ROM with no cartridge", "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
			return
		}
		m.mbc.Write(address, value)
	case regionVRAM:
		m.memory[address] = value
	case regionExtRAM:
		if m.mbc == nil {
			slog.Warn("Writing to external RAM with no cartridge", "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
			return
		}
		m.mbc.Write(address, value)
	case regionWRAM:
		m.memory[address] = value
	case regionEcho:
		if address <= 0xFDFF {
			m.memory[address-0x2000] = value
		}
	case regionOAM:
		if address <= 0xFE9F {
			m.memory[address] = value
		} else {
			// Unused area 0xFEA0-0xFEFF
			m.memory[address] = value
		}
	case regionIO:
		if address == addr.P1 {
			m.joypad.Write(value)
			return
		}
		if address == addr.SB || address == addr.SC {
			m.serial.Write(address, value)
			return
		}
		if address == addr.DIV || address == addr.TIMA || address == addr.TMA || address == addr.TAC {
			m.timer.Write(address, value)
			return
		}
		if address >= 0xFF10 && address <= 0xFF3F {
			m.APU.WriteRegister(address, value)
			return
		}
		if address == addr.IF {
			// This goddamn register has its upper 3 bits always set as 1...
			// Beware if you're trying to match halt bug behavior.
			m.memory[address] = value | 0xE0
			return
		}
		if address == addr.DMA {
			m.dmaSourceHigh = value
			m.dmaBytesDone = 0
			m.dmaCycleAccum = 0
			m.dmaActive = true
			m.memory[address] = value
			return
		}
		if address >= 0xFF80 {
			// HRAM
			m.memory[address] = value
			return
		}
		// Other IO registers
		m.memory[address] = value
	default:
		panic(fmt.Sprintf("Attempted write at unmapped address: 0x%X", address))
	}
}

// HandleKeyPress marks key as held on the joypad, raising the Joypad
// interrupt on the press transition.
func (m *MMU) HandleKeyPress(key JoypadKey) {
	m.joypad.Press(key)
}

// HandleKeyRelease marks key as no longer held on the joypad.
func (m *MMU) HandleKeyRelease(key JoypadKey) {
	m.joypad.Release(key)
}
