package memory

import "github.com/jaswinn/dmgcore/dmg/util"

const titleLength = 11

const (
	entryPointAddress       = 0x100
	logoAddress             = 0x104
	titleAddress            = 0x134
	manufacturerCodeAddress = 0x13F
	cgbFlagAddress          = 0x143
	newLicenseCodeAddress   = 0x144
	sgbFlagAddress          = 0x146
	cartridgeTypeAddress    = 0x147
	romSizeAddress          = 0x148
	ramSizeAddress          = 0x149
	destinationCodeAddress  = 0x14A
	oldLicenseCodeAddress   = 0x14B
	versionNumberAddress    = 0x14C
	headerChecksumAddress   = 0x14D
	globalChecksumAddress   = 0x14E
)

// MBCType identifies the memory bank controller a cartridge header selects.
// Only NoMBCType and MBC1Type are backed by a working implementation; the
// rest are recognized so NewWithCartridge can report ErrUnsupportedMBC
// instead of misreading the ROM as plain, unbanked data.
type MBCType uint8

const (
	NoMBCType MBCType = iota
	MBC1Type
	MBC1MultiType
	MBC2Type
	MBC3Type
	MBC5Type
	MBCUnknownType
)

// mbcTypeFromHeader maps the cartridge-type byte at 0x0147 to the MBC family
// it selects. https://gbdev.io/pandocs/The_Cartridge_Header.html
func mbcTypeFromHeader(cartType uint8) MBCType {
	switch cartType {
	case 0x00, 0x08, 0x09:
		return NoMBCType
	case 0x01, 0x02, 0x03:
		return MBC1Type
	case 0x05, 0x06:
		return MBC2Type
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return MBC3Type
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return MBC5Type
	default:
		return MBCUnknownType
	}
}

// hasBatteryFromHeader reports whether the cartridge-type byte includes a
// battery-backed RAM (or RTC) option.
func hasBatteryFromHeader(cartType uint8) bool {
	switch cartType {
	case 0x03, 0x06, 0x09, 0x0F, 0x10, 0x13, 0x1B, 0x1E, 0xFF:
		return true
	default:
		return false
	}
}

func hasRTCFromHeader(cartType uint8) bool {
	return cartType == 0x0F || cartType == 0x10
}

func hasRumbleFromHeader(cartType uint8) bool {
	switch cartType {
	case 0x1C, 0x1D, 0x1E:
		return true
	default:
		return false
	}
}

// ramBankCountFromHeader maps the RAM-size byte at 0x0149 to a number of
// 8 KiB external RAM banks.
func ramBankCountFromHeader(ramSize uint8) uint8 {
	switch ramSize {
	case 0x00:
		return 0
	case 0x01, 0x02:
		return 1
	case 0x03:
		return 4
	case 0x04:
		return 16
	case 0x05:
		return 8
	default:
		return 0
	}
}

type Cartridge struct {
	data           []byte
	title          string
	headerChecksum uint16
	globalChecksum uint16
	version        uint8
	cartType       uint8
	romSize        uint8
	ramSize        uint8

	mbcType      MBCType
	hasBattery   bool
	hasRTC       bool
	hasRumble    bool
	ramBankCount uint8
}

// NewCartridge creates an empty cartridge, useful only for debugging purposes.
func NewCartridge() *Cartridge {
	return &Cartridge{
		data:    make([]byte, 0x10000),
		mbcType: NoMBCType,
	}
}

// NewCartridgeWithData initializes a new Cartridge from a slice of bytes,
// parsing the header at 0x0100-0x014F into the fields NewWithCartridge needs
// to pick and configure an MBC.
func NewCartridgeWithData(bytes []byte) *Cartridge {
	titleBytes := bytes[titleAddress : titleAddress+titleLength]
	cartType := bytes[cartridgeTypeAddress]
	ramSize := bytes[ramSizeAddress]

	cart := &Cartridge{
		data:           make([]byte, len(bytes)),
		title:          cleanGameboyTitle(titleBytes),
		headerChecksum: util.CombineBytes(bytes[headerChecksumAddress+1], bytes[headerChecksumAddress]),
		globalChecksum: util.CombineBytes(bytes[globalChecksumAddress+1], bytes[globalChecksumAddress]),
		version:        bytes[versionNumberAddress],
		cartType:       cartType,
		romSize:        bytes[romSizeAddress],
		ramSize:        ramSize,

		mbcType:      mbcTypeFromHeader(cartType),
		hasBattery:   hasBatteryFromHeader(cartType),
		hasRTC:       hasRTCFromHeader(cartType),
		hasRumble:    hasRumbleFromHeader(cartType),
		ramBankCount: ramBankCountFromHeader(ramSize),
	}

	copy(cart.data, bytes)

	return cart
}
