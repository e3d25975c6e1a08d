package render

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/jaswinn/dmgcore/dmg/emulator"
	"github.com/jaswinn/dmgcore/dmg/memory"
	"github.com/jaswinn/dmgcore/dmg/timing"
)

const (
	width  = 160
	height = 144

	minTermWidth  = width + 2
	minTermHeight = height/2 + 2
)


// TerminalRenderer draws the 160x144 framebuffer as half-block Unicode
// cells in a tcell.Screen, and maps a handful of keys to the joypad plus
// pause/quit controls.
type TerminalRenderer struct {
	screen   tcell.Screen
	emulator *emulator.Emulator
	limiter  timing.Limiter
	running  bool
}

func NewTerminalRenderer(emu *emulator.Emulator) (*TerminalRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %v", err)
	}

	return &TerminalRenderer{
		screen:   screen,
		emulator: emu,
		limiter:  timing.NewTickerLimiter(),
		running:  true,
	}, nil
}

func (t *TerminalRenderer) Run() error {
	defer func() {
		slog.Info("Finishing terminal")
		t.screen.Fini()
	}()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	events := make(chan tcell.Event)
	go func() {
		for t.running {
			events <- t.screen.PollEvent()
		}
	}()

	for t.running {
		select {
		case ev := <-events:
			t.handleEvent(ev)
		case <-signals:
			t.running = false
			slog.Info("Received signal to stop")
			return nil
		default:
			t.emulator.RunUntilFrame()
			t.render()
			t.screen.Show()
			t.limiter.WaitForNextFrame()
		}
	}

	return nil
}

func (t *TerminalRenderer) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.running = false
		case tcell.KeyEnter:
			t.emulator.HandleKeyPress(memory.JoypadStart)
		case tcell.KeyRight:
			t.emulator.HandleKeyPress(memory.JoypadRight)
		case tcell.KeyLeft:
			t.emulator.HandleKeyPress(memory.JoypadLeft)
		case tcell.KeyUp:
			t.emulator.HandleKeyPress(memory.JoypadUp)
		case tcell.KeyDown:
			t.emulator.HandleKeyPress(memory.JoypadDown)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'a':
				t.emulator.HandleKeyPress(memory.JoypadA)
			case 's':
				t.emulator.HandleKeyPress(memory.JoypadB)
			case 'q':
				t.emulator.HandleKeyPress(memory.JoypadSelect)
			case ' ':
				if t.emulator.Paused() {
					t.emulator.Resume()
					t.limiter.Reset()
				} else {
					t.emulator.Pause()
				}
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *TerminalRenderer) render() {
	termWidth, termHeight := t.screen.Size()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		t.screen.Clear()
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		for i, ch := range msg {
			t.screen.SetContent(i, termHeight/2, ch, nil, style)
		}
		return
	}

	t.screen.Clear()
	t.drawGameBoy()
	t.drawStatus(termWidth, termHeight)
}

func (t *TerminalRenderer) drawGameBoy() {
	fb := t.emulator.GetCurrentFrame()
	lines := RenderFrameToHalfBlocks(fb.ToSlice(), width, height)

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for y, line := range lines {
		for x, ch := range line {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (t *TerminalRenderer) drawStatus(termWidth, termHeight int) {
	status := "RUNNING"
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if t.emulator.Paused() {
		status = "PAUSED"
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}

	cpu := t.emulator.GetCPU()
	line := fmt.Sprintf(" %s  PC:0x%04X SP:0x%04X  Frame:%d  SPACE=pause/resume ESC=quit ",
		status, cpu.PC(), cpu.SP(), t.emulator.GetFrameCount())

	y := termHeight - 1
	for x, ch := range line {
		if x >= termWidth {
			break
		}
		t.screen.SetContent(x, y, ch, nil, style)
	}
}
