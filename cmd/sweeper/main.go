// Package main is the entry point for sweeper.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/dmorhart/sweeper/internal/app"
	"github.com/dmorhart/sweeper/internal/telemetry"
)

func main() {
	// Load .env for local development; env vars might be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	rows := flag.IntP("rows", "r", 0, "field height; skips the menu when all three values are set")
	columns := flag.IntP("columns", "c", 0, "field width")
	mines := flag.IntP("mines", "m", 0, "number of mines")
	debug := flag.BoolP("debug", "d", false, "play on stdin/stdout instead of the terminal UI")
	flag.Parse()

	ctx := context.Background()

	// The game still works without observability.
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *debug {
		if err := runDebug(*rows, *columns, *mines); err != nil {
			log.Fatalf("Debug game error: %v", err)
		}
		return
	}

	a, err := app.New(app.Config{Rows: *rows, Columns: *columns, Mines: *mines})
	if err != nil {
		log.Fatalf("Failed to initialize the terminal: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		a.Close()
		log.Fatalf("Application error: %v", err)
	}
}
