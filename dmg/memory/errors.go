package memory

import "errors"

// ErrUnsupportedMBC is returned by NewWithCartridge when the cartridge
// header selects a banking controller this emulator does not implement.
// Only plain ROM and MBC1 cartridges are supported; everything else is
// rejected at power-on rather than silently misread.
var ErrUnsupportedMBC = errors.New("memory: unsupported MBC type")
