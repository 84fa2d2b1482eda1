package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"ratscrew/internal/config"
	"ratscrew/internal/console"
	"ratscrew/internal/table"
	"ratscrew/replay"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	scriptPath := flag.String("script", "", "replay a YAML game script instead of playing")
	asTape := flag.Bool("tape", false, "with -script, print the replay tape as JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ratscrew: %v\n", err)
		os.Exit(2)
	}
	logger := config.NewLogger(cfg.Logging, os.Stderr)

	if *scriptPath != "" {
		if err := runScript(*scriptPath, *asTape, os.Stdout); err != nil {
			logger.Error("replay failed", "script", *scriptPath, "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	con := console.New(os.Stdin, os.Stdout)
	tbl := table.New(cfg.Game.Engine(), con, con, table.Options{
		ClearScreen: cfg.Console.ClearScreen,
		ShowRules:   cfg.Console.ShowRules,
	}, logger)

	winner, err := tbl.Run(ctx)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		logger.Info("game abandoned")
	case err != nil:
		logger.Error("game failed", "error", err)
		os.Exit(1)
	default:
		logger.Debug("game finished", "winner", winner)
	}
}

func runScript(path string, asTape bool, w io.Writer) error {
	script, err := replay.LoadScript(path)
	if err != nil {
		return err
	}
	tape, err := replay.GenerateReplayTape(script)
	if err != nil {
		return err
	}
	if asTape {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(replay.ToWireReplayTape(tape))
	}
	for _, line := range tape.Lines() {
		fmt.Fprintln(w, line)
	}
	return nil
}
