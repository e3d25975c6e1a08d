package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/jaswinn/dmgcore/dmg/backend/sdl2"
	"github.com/jaswinn/dmgcore/dmg/emulator"
	"github.com/jaswinn/dmgcore/dmg/render"
)

func main() {
	app := cli.NewApp()
	app.Name = "dmgcore"
	app.Description = "A Game Boy (DMG) emulation core"
	app.Usage = "dmgcore [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a terminal interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Interactive display backend: terminal (default) or sdl2 (requires -tags sdl2 build)",
			Value: "terminal",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}

		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))

		emu, err := emulator.NewWithFile(romPath)
		if err != nil {
			return err
		}

		for i := 0; i < frames; i++ {
			emu.RunUntilFrame()

			if i%10 == 0 {
				slog.Info("Frame progress", "completed", i+1, "total", frames)
			}
		}

		slog.Info("Headless execution completed", "frames", frames)
		return nil
	}

	emu, err := emulator.NewWithFile(romPath)
	if err != nil {
		return err
	}

	if c.String("backend") == "sdl2" {
		return sdl2.New(emu).Run()
	}

	renderer, err := render.NewTerminalRenderer(emu)
	if err != nil {
		return err
	}
	return renderer.Run()
}
