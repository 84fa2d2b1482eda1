// Package table drives one rat screw game against an I/O collaborator: it
// asks for the players and their keys, feeds input batches to the engine
// and prints every resulting status line.
package table

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ratscrew/ratscrew"
)

// IO is the console collaborator.
type IO interface {
	ReadInt(prompt string, min, max int) (int, error)
	ReadLine(prompt string) (string, error)
	Print(line string)
	ClearScreen()
}

// ActionSource yields the next batch of raw key presses. It blocks until
// one is available.
type ActionSource interface {
	NextBatch(prompt string) (string, error)
}

type Options struct {
	ClearScreen bool
	ShowRules   bool
}

// Table represents a single game session at the console.
type Table struct {
	cfg    ratscrew.Config
	io     IO
	source ActionSource
	opts   Options
	logger *slog.Logger
}

func New(cfg ratscrew.Config, io IO, source ActionSource, opts Options, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{cfg: cfg, io: io, source: source, opts: opts, logger: logger}
}

// Run plays a full game and returns the winner's index. ctx is checked
// before setup and between rounds; a round in progress is never cut short.
func (t *Table) Run(ctx context.Context) (int, error) {
	game, err := ratscrew.NewGame(t.cfg)
	if err != nil {
		return ratscrew.NoPlayer, err
	}
	logger := t.logger.With("game_id", game.ID())

	t.io.Print("Starting new rat screw game")
	if t.opts.ShowRules {
		for _, line := range Rules {
			t.io.Print(line)
		}
	}
	if err := ctx.Err(); err != nil {
		return ratscrew.NoPlayer, err
	}

	n, err := t.io.ReadInt("How many players are part of this game? ", t.cfg.MinPlayers, t.cfg.MaxPlayers)
	if err != nil {
		return ratscrew.NoPlayer, fmt.Errorf("read player count: %w", err)
	}
	t.io.Print(fmt.Sprintf("%d players are part of this game", n))

	if err := t.setupPlayers(game, n, logger); err != nil {
		return ratscrew.NoPlayer, err
	}
	for _, line := range Controls(game) {
		t.io.Print(line)
	}

	events, err := game.Start()
	if err != nil {
		return ratscrew.NoPlayer, err
	}
	logger.Info("game started", "players", n, "decks", t.cfg.Decks)
	t.emit(events, logger)

	for !game.Ended() {
		round := game.Round()
		batch, err := t.source.NextBatch(fmt.Sprintf("[player #%d] > ", game.CurrentPlayer()))
		if err != nil {
			return ratscrew.NoPlayer, fmt.Errorf("read actions: %w", err)
		}
		events, err := game.HandleInput(batch)
		if err != nil {
			logger.Error("input rejected", "round", round, "input", batch, "error", err)
			return ratscrew.NoPlayer, err
		}
		t.emit(events, logger)

		if game.Round() != round && !game.Ended() {
			if err := ctx.Err(); err != nil {
				return ratscrew.NoPlayer, err
			}
		}
	}

	winner, _ := game.Winner()
	logger.Info("game over", "winner", winner, "rounds", game.Round())
	return winner, nil
}

func (t *Table) setupPlayers(game *ratscrew.Game, n int, logger *slog.Logger) error {
	for i := 0; i < n; i++ {
		t.io.Print(fmt.Sprintf("Setting up player #%d", i))
		playKey, err := t.readKey(game, fmt.Sprintf("Input key for playing cards by player #%d: ", i), "")
		if err != nil {
			return err
		}
		slapKey, err := t.readKey(game, fmt.Sprintf("Input key for slapping card stack by player #%d: ", i), playKey)
		if err != nil {
			return err
		}
		if _, err := game.AddPlayer(playKey, slapKey); err != nil {
			return err
		}
		logger.Debug("player seated", "player", i, "play_key", playKey, "slap_key", slapKey)
	}
	return nil
}

// readKey prompts until the key is free; taken is the key the same player
// already picked.
func (t *Table) readKey(game *ratscrew.Game, prompt, taken string) (string, error) {
	for {
		key, err := t.io.ReadLine(prompt)
		if err != nil {
			return "", fmt.Errorf("read action key: %w", err)
		}
		err = game.ValidateKey(key)
		if err == nil && key == taken {
			err = &ratscrew.InvalidKeyError{Key: key, Reason: "already used for playing"}
		}
		var keyErr *ratscrew.InvalidKeyError
		if errors.As(err, &keyErr) {
			t.io.Print("Invalid action key, please try again")
			continue
		}
		if err != nil {
			return "", err
		}
		return key, nil
	}
}

func (t *Table) emit(events []ratscrew.Event, logger *slog.Logger) {
	for _, e := range events {
		switch e.Type {
		case ratscrew.EventRoundStarted:
			if t.opts.ClearScreen && e.Round > 1 {
				t.io.ClearScreen()
			}
		case ratscrew.EventRoundWon:
			logger.Info("round won", "round", e.Round, "player", e.Player, "reason", e.Reason.String(), "cards", e.Cards)
		case ratscrew.EventSlapPenalty:
			logger.Debug("bad slap", "round", e.Round, "player", e.Player, "card", e.Card.String())
		}
		t.io.Print(e.String())
	}
}
