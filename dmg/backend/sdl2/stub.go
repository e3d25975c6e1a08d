//go:build !sdl2

package sdl2

import (
	"fmt"

	"github.com/jaswinn/dmgcore/dmg/emulator"
)

// Backend stub for when SDL2 is not available.
type Backend struct{}

// New creates a stub SDL2 backend that returns an error from Run.
func New(emu *emulator.Emulator) *Backend {
	return &Backend{}
}

// Run always fails; rebuild with -tags sdl2 and SDL2 development libraries installed.
func (b *Backend) Run() error {
	return fmt.Errorf("SDL2 backend not available - rebuild with -tags sdl2")
}
