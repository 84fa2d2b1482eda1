package table

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratscrew/card"
	"ratscrew/ratscrew"
)

// scriptedIO answers prompts from a fixed list of lines and records output.
type scriptedIO struct {
	lines   []string
	batches []string
	printed []string
	clears  int
}

func (s *scriptedIO) next(list *[]string) (string, error) {
	if len(*list) == 0 {
		return "", io.EOF
	}
	line := (*list)[0]
	*list = (*list)[1:]
	return line, nil
}

func (s *scriptedIO) ReadLine(string) (string, error) { return s.next(&s.lines) }

func (s *scriptedIO) ReadInt(_ string, min, max int) (int, error) {
	line, err := s.next(&s.lines)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, err
	}
	if n < min || n > max {
		return 0, errors.New("out of range")
	}
	return n, nil
}

func (s *scriptedIO) NextBatch(string) (string, error) { return s.next(&s.batches) }

func (s *scriptedIO) Print(line string) { s.printed = append(s.printed, line) }

func (s *scriptedIO) ClearScreen() { s.clears++ }

func (s *scriptedIO) output() string { return strings.Join(s.printed, "\n") }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func shortGameConfig() ratscrew.Config {
	cfg := ratscrew.DefaultConfig()
	cfg.Seed = 1
	cfg.MaxPlayers = 2
	cfg.DeckOverride = []card.Card{
		card.Of(card.Jack, card.Hearts),
		card.Of(card.Three, card.Spades),
		card.Of(card.Nine, card.Clubs),
	}
	return cfg
}

func TestRun_PlaysShortGame(t *testing.T) {
	sio := &scriptedIO{
		lines:   []string{"2", "a", "s", "a", "  ", "k", "l"},
		batches: []string{"a", "k"},
	}
	tbl := New(shortGameConfig(), sio, sio, Options{ShowRules: true}, quietLogger())

	winner, err := tbl.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, winner)

	out := sio.output()
	assert.Contains(t, out, "Rules:")
	assert.Contains(t, out, "2 players are part of this game")
	assert.Equal(t, 2, strings.Count(out, "Invalid action key, please try again"))
	assert.Contains(t, out, `player #1: play "k", slap "l"`)
	assert.Contains(t, out, "Player #0 played jack of hearts (1 owed).")
	assert.Contains(t, out, "Player #0 won round 1 and takes 3 cards (face_card).")
	assert.True(t, strings.HasSuffix(out, "Player #0 has won the game!"))
	assert.Empty(t, sio.batches)
}

func TestRun_SlapKeyMustDifferFromPlayKey(t *testing.T) {
	sio := &scriptedIO{
		lines:   []string{"2", "a", "a", "s", "k", "l"},
		batches: []string{"a", "k"},
	}
	tbl := New(shortGameConfig(), sio, sio, Options{}, quietLogger())

	_, err := tbl.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(sio.output(), "Invalid action key, please try again"))
	assert.NotContains(t, sio.output(), "Rules:")
}

func TestRun_InputRunsOut(t *testing.T) {
	sio := &scriptedIO{
		lines:   []string{"2", "a", "s", "k", "l"},
		batches: []string{"a"},
	}
	tbl := New(shortGameConfig(), sio, sio, Options{}, quietLogger())

	winner, err := tbl.Run(context.Background())
	require.ErrorIs(t, err, io.EOF)
	assert.Equal(t, ratscrew.NoPlayer, winner)
}

func TestRun_CancelledBeforeSetup(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sio := &scriptedIO{lines: []string{"2"}}
	tbl := New(shortGameConfig(), sio, sio, Options{}, quietLogger())

	_, err := tbl.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, sio.lines, 1)
}

func TestRun_RejectsBadConfig(t *testing.T) {
	cfg := ratscrew.DefaultConfig()
	cfg.Decks = 0
	sio := &scriptedIO{}
	_, err := New(cfg, sio, sio, Options{}, nil).Run(context.Background())

	var cfgErr *ratscrew.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestEmit_ClearsScreenForLaterRounds(t *testing.T) {
	sio := &scriptedIO{}
	tbl := New(ratscrew.DefaultConfig(), sio, sio, Options{ClearScreen: true}, quietLogger())

	tbl.emit([]ratscrew.Event{
		{Type: ratscrew.EventRoundStarted, Round: 1, Player: 0},
		{Type: ratscrew.EventRoundWon, Round: 1, Player: 1, Cards: 4, Reason: ratscrew.WinSlap},
		{Type: ratscrew.EventRoundStarted, Round: 2, Player: 1},
	}, quietLogger())

	assert.Equal(t, 1, sio.clears)
	assert.Equal(t, []string{
		"--- Round 1: player #0 goes first ---",
		"Player #1 won round 1 and takes 4 cards (slap).",
		"--- Round 2: player #1 goes first ---",
	}, sio.printed)
}
