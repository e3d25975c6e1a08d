package cpu

import (
	"errors"
	"fmt"
)

// ErrInvalidOpcode is wrapped with the offending byte whenever the CPU
// fetches one of the eleven bytes the Sharp LR35902 leaves undefined.
var ErrInvalidOpcode = errors.New("cpu: invalid opcode")

// ErrStopped is raised by the STOP instruction. This emulator does not
// implement the DMG/GBC speed-switch or button-wake behavior STOP is
// normally paired with, so executing it is treated as a fatal condition
// the harness should surface rather than silently idle through.
var ErrStopped = errors.New("cpu: stop instruction executed")

func (c *CPU) fail(err error) int {
	if c.Err == nil {
		c.Err = fmt.Errorf("%w at pc=0x%04X (opcode 0x%02X)", err, c.pc, c.currentOpcode)
	}
	return 4
}
