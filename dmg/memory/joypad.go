package memory

import "github.com/jaswinn/dmgcore/dmg/bit"

// JoypadKey represents a key on the Gameboy joypad
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

// Joypad models the P1 (FF00) column-select register: two 4-bit button
// groups (d-pad, face/start/select) multiplexed onto bits 0-3 by the
// selection bits in 4-5. 0 means pressed/selected, 1 means released/
// not-selected, matching the real, active-low hardware register.
type Joypad struct {
	buttons  uint8 // low 4 bits: A,B,Select,Start
	dpad     uint8 // low 4 bits: Right,Left,Up,Down
	selected uint8 // raw selection bits (4-5) as last written to P1

	// JoypadInterruptHandler is invoked whenever a press transitions any bit
	// from released (1) to pressed (0), per the joypad interrupt's edge
	// trigger semantics.
	JoypadInterruptHandler func()
}

// NewJoypad creates a Joypad with no keys held.
func NewJoypad() *Joypad {
	return &Joypad{buttons: 0x0F, dpad: 0x0F}
}

// Read returns the current P1 value as the CPU would see it: bits 6-7
// always 1, bits 4-5 the last-written selection, bits 0-3 the selected
// button group (ANDed together if both groups are selected at once, 0x0F
// if neither is selected).
func (j *Joypad) Read() uint8 {
	result := uint8(0b11000000) | (j.selected & 0b00110000)

	selectDpad := !bit.IsSet(4, j.selected)
	selectButtons := !bit.IsSet(5, j.selected)

	switch {
	case selectButtons && !selectDpad:
		result |= j.buttons & 0x0F
	case selectDpad && !selectButtons:
		result |= j.dpad & 0x0F
	case selectButtons && selectDpad:
		result |= j.buttons & j.dpad & 0x0F
	default:
		result |= 0x0F
	}

	return result
}

// Write stores the selection bits (4-5); the rest of P1 is read-only.
func (j *Joypad) Write(value uint8) {
	j.selected = value & 0b00110000
}

// Press marks key as held, raising the joypad interrupt if this is the key's
// press transition (it was released before this call).
func (j *Joypad) Press(key JoypadKey) {
	oldButtons, oldDpad := j.buttons, j.dpad

	switch key {
	case JoypadRight:
		j.dpad = bit.Reset(0, j.dpad)
	case JoypadLeft:
		j.dpad = bit.Reset(1, j.dpad)
	case JoypadUp:
		j.dpad = bit.Reset(2, j.dpad)
	case JoypadDown:
		j.dpad = bit.Reset(3, j.dpad)
	case JoypadA:
		j.buttons = bit.Reset(0, j.buttons)
	case JoypadB:
		j.buttons = bit.Reset(1, j.buttons)
	case JoypadSelect:
		j.buttons = bit.Reset(2, j.buttons)
	case JoypadStart:
		j.buttons = bit.Reset(3, j.buttons)
	}

	transitioned := (oldButtons & ^j.buttons) | (oldDpad & ^j.dpad)
	if transitioned != 0 && j.JoypadInterruptHandler != nil {
		j.JoypadInterruptHandler()
	}
}

// Release marks key as no longer held.
func (j *Joypad) Release(key JoypadKey) {
	switch key {
	case JoypadRight:
		j.dpad = bit.Set(0, j.dpad)
	case JoypadLeft:
		j.dpad = bit.Set(1, j.dpad)
	case JoypadUp:
		j.dpad = bit.Set(2, j.dpad)
	case JoypadDown:
		j.dpad = bit.Set(3, j.dpad)
	case JoypadA:
		j.buttons = bit.Set(0, j.buttons)
	case JoypadB:
		j.buttons = bit.Set(1, j.buttons)
	case JoypadSelect:
		j.buttons = bit.Set(2, j.buttons)
	case JoypadStart:
		j.buttons = bit.Set(3, j.buttons)
	}
}
