//go:build sdl2

// Package sdl2 presents the emulator's framebuffer in a real window via
// SDL2, with keyboard-to-joypad mapping. Building this requires SDL2
// development libraries installed; default builds skip it entirely (see
// stub.go) so `go build ./...` with no tags never requires cgo/SDL2 headers.
package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/jaswinn/dmgcore/dmg/display"
	"github.com/jaswinn/dmgcore/dmg/emulator"
	"github.com/jaswinn/dmgcore/dmg/memory"
	"github.com/jaswinn/dmgcore/dmg/video"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	windowWidth  = display.DefaultWindowWidth
	windowHeight = display.DefaultWindowHeight
)

// Backend drives an emulator.Emulator in its own window, polling SDL events
// for joypad input and quit, rendering one texture update per frame.
type Backend struct {
	emu      *emulator.Emulator
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pixels   []byte
	running  bool
}

// New creates an SDL2 backend for emu. Call Run to take over the window loop.
func New(emu *emulator.Emulator) *Backend {
	return &Backend{emu: emu}
}

// Run initializes SDL2, opens the window, and blocks in the render loop
// until the user closes the window or presses Escape.
func (b *Backend) Run() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"dmgcore",
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		windowWidth,
		windowHeight,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("failed to create window: %v", err)
	}
	b.window = window
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %v", err)
	}
	b.renderer = renderer
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		return fmt.Errorf("failed to create texture: %v", err)
	}
	b.texture = texture
	defer texture.Destroy()

	b.pixels = make([]byte, video.FramebufferWidth*video.FramebufferHeight*display.RGBABytesPerPixel)
	b.running = true

	slog.Info("SDL2 backend initialized")

	for b.running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			b.handleEvent(event)
		}
		if !b.running {
			break
		}

		b.emu.RunUntilFrame()
		b.renderFrame(b.emu.GetCurrentFrame())
	}

	return nil
}

func (b *Backend) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		b.running = false
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			b.handleKeyDown(e.Keysym.Sym)
		} else if e.Type == sdl.KEYUP {
			b.handleKeyUp(e.Keysym.Sym)
		}
	}
}

func (b *Backend) handleKeyDown(key sdl.Keycode) {
	switch key {
	case sdl.K_ESCAPE:
		b.running = false
	case sdl.K_RETURN:
		b.emu.HandleKeyPress(memory.JoypadStart)
	case sdl.K_RIGHT:
		b.emu.HandleKeyPress(memory.JoypadRight)
	case sdl.K_LEFT:
		b.emu.HandleKeyPress(memory.JoypadLeft)
	case sdl.K_UP:
		b.emu.HandleKeyPress(memory.JoypadUp)
	case sdl.K_DOWN:
		b.emu.HandleKeyPress(memory.JoypadDown)
	case sdl.K_a:
		b.emu.HandleKeyPress(memory.JoypadA)
	case sdl.K_s:
		b.emu.HandleKeyPress(memory.JoypadB)
	case sdl.K_q:
		b.emu.HandleKeyPress(memory.JoypadSelect)
	case sdl.K_SPACE:
		if b.emu.Paused() {
			b.emu.Resume()
		} else {
			b.emu.Pause()
		}
	}
}

func (b *Backend) handleKeyUp(key sdl.Keycode) {
	switch key {
	case sdl.K_RETURN:
		b.emu.HandleKeyRelease(memory.JoypadStart)
	case sdl.K_RIGHT:
		b.emu.HandleKeyRelease(memory.JoypadRight)
	case sdl.K_LEFT:
		b.emu.HandleKeyRelease(memory.JoypadLeft)
	case sdl.K_UP:
		b.emu.HandleKeyRelease(memory.JoypadUp)
	case sdl.K_DOWN:
		b.emu.HandleKeyRelease(memory.JoypadDown)
	case sdl.K_a:
		b.emu.HandleKeyRelease(memory.JoypadA)
	case sdl.K_s:
		b.emu.HandleKeyRelease(memory.JoypadB)
	case sdl.K_q:
		b.emu.HandleKeyRelease(memory.JoypadSelect)
	}
}

func (b *Backend) renderFrame(frame *video.FrameBuffer) {
	frameData := frame.ToSlice()

	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			srcIdx := y*video.FramebufferWidth + x
			dstIdx := srcIdx * display.RGBABytesPerPixel

			r, g, b2, a := gbColorToRGBA(frameData[srcIdx])

			// ABGR byte order for little-endian RGBA8888
			b.pixels[dstIdx] = byte(a)
			b.pixels[dstIdx+1] = byte(b2)
			b.pixels[dstIdx+2] = byte(g)
			b.pixels[dstIdx+3] = byte(r)
		}
	}

	b.texture.Update(nil, unsafe.Pointer(&b.pixels[0]), video.FramebufferWidth*display.RGBABytesPerPixel)

	b.renderer.SetDrawColor(display.GrayscaleBlack, display.GrayscaleBlack, display.GrayscaleBlack, display.FullAlpha)
	b.renderer.Clear()
	b.renderer.Copy(b.texture, nil, nil)
	b.renderer.Present()
}

func gbColorToRGBA(gbColor uint32) (r, g, b, a uint8) {
	switch gbColor {
	case uint32(video.WhiteColor):
		return display.GrayscaleWhite, display.GrayscaleWhite, display.GrayscaleWhite, display.FullAlpha
	case uint32(video.LightGreyColor):
		return display.GrayscaleLightGray, display.GrayscaleLightGray, display.GrayscaleLightGray, display.FullAlpha
	case uint32(video.DarkGreyColor):
		return display.GrayscaleDarkGray, display.GrayscaleDarkGray, display.GrayscaleDarkGray, display.FullAlpha
	case uint32(video.BlackColor):
		return display.GrayscaleBlack, display.GrayscaleBlack, display.GrayscaleBlack, display.FullAlpha
	}

	red := uint8((gbColor >> display.RGBARShift) & display.RGBAColorMask)
	return red, red, red, display.FullAlpha
}
