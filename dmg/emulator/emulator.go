// Package emulator wires the CPU, MMU and PPU together into the runnable
// harness: spec.md's frame loop of stepping the CPU and advancing every
// other component by the T-cycles it reports, until a frame is complete.
package emulator

import (
	"fmt"
	"io/ioutil"
	"log/slog"

	"github.com/jaswinn/dmgcore/dmg/cpu"
	"github.com/jaswinn/dmgcore/dmg/memory"
	"github.com/jaswinn/dmgcore/dmg/video"
)

// CyclesPerFrame is the number of T-cycles in one 160x144 frame at the
// DMG's ~59.7Hz refresh rate (154 scanlines * 456 T-cycles).
const CyclesPerFrame = 70224

// Emulator is the root struct tying together one CPU, one MMU and one PPU.
// CPU.Step() is the only thing that advances emulated time; everything else
// (timer, serial, OAM DMA, PPU) is driven off the T-cycle count it reports.
type Emulator struct {
	cpu *cpu.CPU
	gpu *video.GPU
	mem *memory.MMU

	paused bool

	frameCount       uint64
	instructionCount uint64

	maxFrames    uint64
	minLoopCount int
}

// New creates an emulator instance with an empty (zero-filled, no-MBC)
// debug cartridge loaded.
func New() *Emulator {
	mem, err := memory.NewWithCartridge(memory.NewCartridge())
	if err != nil {
		// An empty debug cartridge is always NoMBCType, so this can't happen.
		panic(err)
	}

	return newFrom(mem)
}

// NewWithFile creates an emulator instance and loads the ROM file at path.
func NewWithFile(path string) (*Emulator, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded ROM data", "size", len(data))

	mem, err := memory.NewWithCartridge(memory.NewCartridgeWithData(data))
	if err != nil {
		return nil, err
	}

	return newFrom(mem), nil
}

func newFrom(mem *memory.MMU) *Emulator {
	return &Emulator{
		cpu: cpu.New(mem),
		gpu: video.NewGpu(mem),
		mem: mem,
	}
}

// RunUntilFrame runs CPU.Step() in a loop, ticking the MMU (timer, serial,
// OAM DMA) and the PPU by the reported T-cycles each time, until at least
// one frame's worth of cycles (CyclesPerFrame) has elapsed. Per spec.md §5.
func (e *Emulator) RunUntilFrame() {
	if e.paused {
		return
	}

	total := 0
	for total < CyclesPerFrame {
		cycles := e.cpu.Step()
		e.mem.Tick(cycles)
		e.gpu.Tick(cycles)
		e.instructionCount++
		total += cycles

		if e.cpu.Err != nil {
			slog.Error("CPU halted on error", "err", e.cpu.Err, "pc", fmt.Sprintf("0x%04X", e.cpu.PC()))
			return
		}
	}

	e.frameCount++
	if e.frameCount%60 == 0 {
		slog.Debug("Frame completed", "frame", e.frameCount, "pc", fmt.Sprintf("0x%04X", e.cpu.PC()))
	}
}

// ConfigureCompletionDetection arms RunUntilComplete's stopping conditions.
// Test ROMs (blargg-style) spin on a tight loop once they've written their
// result to the serial port, so "PC hasn't moved in minLoopCount consecutive
// frames" is used as a completion signal alongside an absolute frame cap.
func (e *Emulator) ConfigureCompletionDetection(maxFrames uint64, minLoopCount int) {
	e.maxFrames = maxFrames
	e.minLoopCount = minLoopCount
}

// RunUntilComplete runs frames until either maxFrames is reached or the
// loop-detection configured via ConfigureCompletionDetection fires.
func (e *Emulator) RunUntilComplete() {
	var lastPC uint16
	loopCount := 0

	for e.frameCount < e.maxFrames {
		e.RunUntilFrame()
		if e.cpu.Err != nil {
			return
		}

		pc := e.cpu.PC()
		if e.minLoopCount > 0 {
			if pc == lastPC {
				loopCount++
				if loopCount >= e.minLoopCount {
					return
				}
			} else {
				loopCount = 0
			}
		}
		lastPC = pc
	}
}

// GetCurrentFrame returns the PPU's current framebuffer.
func (e *Emulator) GetCurrentFrame() *video.FrameBuffer {
	return e.gpu.GetFrameBuffer()
}

// GetMMU exposes the memory unit, for disassembly and test harnesses.
func (e *Emulator) GetMMU() *memory.MMU {
	return e.mem
}

// GetCPU exposes the CPU, for disassembly and register introspection.
func (e *Emulator) GetCPU() *cpu.CPU {
	return e.cpu
}

// HandleKeyPress marks key as held on the joypad.
func (e *Emulator) HandleKeyPress(key memory.JoypadKey) {
	e.mem.HandleKeyPress(key)
}

// HandleKeyRelease marks key as no longer held on the joypad.
func (e *Emulator) HandleKeyRelease(key memory.JoypadKey) {
	e.mem.HandleKeyRelease(key)
}

// GetInstructionCount returns the number of CPU.Step() calls executed so far.
func (e *Emulator) GetInstructionCount() uint64 {
	return e.instructionCount
}

// GetFrameCount returns the number of complete frames produced so far.
func (e *Emulator) GetFrameCount() uint64 {
	return e.frameCount
}

// Pause stops RunUntilFrame from advancing emulation.
func (e *Emulator) Pause() {
	e.paused = true
	slog.Info("Emulator paused")
}

// Resume lets RunUntilFrame advance emulation again.
func (e *Emulator) Resume() {
	e.paused = false
	slog.Info("Emulator resumed")
}

// Paused reports whether the emulator is currently paused.
func (e *Emulator) Paused() bool {
	return e.paused
}
