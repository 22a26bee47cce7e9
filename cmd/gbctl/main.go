// Command gbctl is a thin harness that constructs an Engine, loads a
// data-store image and an optional SRAM save file, and drives Cycle in a
// loop. It contains no opcode interpreter: driving real game logic through
// the engine's instruction primitives is the host program's job, not this
// harness's.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/oisin-vance/gbcore"
	"github.com/oisin-vance/gbcore/adapter/sdl2"
	"github.com/oisin-vance/gbcore/adapter/tui"
)

func main() {
	app := cli.NewApp()
	app.Name = "gbctl"
	app.Usage = "gbctl [options] <data-store image>"
	app.Description = "Drives a gbcore Engine against a data-store image and an optional SRAM save file."
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "image", Usage: "path to the data-store image to load"},
		cli.StringFlag{Name: "sram", Usage: "path to an SRAM save file to load at startup"},
		cli.IntFlag{Name: "cycles", Usage: "number of machine cycles to run", Value: 1000},
		cli.BoolFlag{Name: "monitor", Usage: "render a live tui of interrupts/timer/APU state while running"},
		cli.BoolFlag{Name: "audio", Usage: "feed the APU's mix output to an sdl2 audio sink (requires -tags sdl2)"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("gbctl failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	imagePath := c.String("image")
	if imagePath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no data-store image path provided")
		}
		imagePath = c.Args().Get(0)
	}

	e := gbcore.New()

	if err := e.DataStore.LoadImageFile(imagePath); err != nil {
		return fmt.Errorf("gbctl: loading image: %w", err)
	}
	slog.Info("loaded data-store image", "path", imagePath, "banks", e.DataStore.BankCount())

	if sramPath := c.String("sram"); sramPath != "" {
		if err := e.SRAM.Load(sramPath); err != nil {
			return fmt.Errorf("gbctl: loading SRAM: %w", err)
		}
		slog.Info("loaded SRAM save", "path", sramPath, "banks", e.SRAM.BankCount())
	}

	if c.Bool("audio") {
		sink, err := sdl2.Open(gbcore.DefaultSampleRate)
		if err != nil {
			slog.Warn("audio sink unavailable, continuing silently", "error", err)
		} else {
			defer sink.Close()
			e.SetAudioSampleCallback(sink.Push)
		}
	}

	var monitor *tui.Monitor
	if c.Bool("monitor") {
		m, err := tui.New(e.Interrupt, e.Timer, e.APU)
		if err != nil {
			slog.Warn("tui monitor unavailable, continuing headless", "error", err)
		} else {
			monitor = m
			defer monitor.Close()
		}
	}

	total := c.Int("cycles")
	const batch = 4
	for run := 0; run < total; run += batch {
		n := batch
		if total-run < batch {
			n = total - run
		}
		if err := e.Cycle(n); err != nil {
			return fmt.Errorf("gbctl: cycle: %w", err)
		}
		if monitor != nil {
			monitor.Draw()
		}
	}

	stats := e.Stats()
	slog.Info("run complete", "total_ticks", stats.TotalTicks, "cycle_calls", stats.CycleCalls)
	return nil
}
