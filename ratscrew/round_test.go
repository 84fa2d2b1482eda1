package ratscrew

import (
	"errors"
	"testing"

	"ratscrew/card"
)

// startedGame returns a running 52-card game whose hands and round stack
// are replaced by the given cards (bottom to top, last card played first).
// Hands that small can never reach the 52 cards needed to win the game.
func startedGame(t *testing.T, hands ...[]card.Card) *Game {
	t.Helper()
	g := newTestGame(t, seededConfig(), len(hands))
	if _, err := g.Start(); err != nil {
		t.Fatalf("Start err: %v", err)
	}
	for i, h := range hands {
		g.players[i].SetHand(card.NewPile(h...))
	}
	g.stack = NewRoundStack()
	return g
}

func mustInput(t *testing.T, g *Game, raw string) []Event {
	t.Helper()
	events, err := g.HandleInput(raw)
	if err != nil {
		t.Fatalf("HandleInput(%q) err: %v", raw, err)
	}
	return events
}

func hasEvent(events []Event, typ EventType) (Event, bool) {
	for _, e := range events {
		if e.Type == typ {
			return e, true
		}
	}
	return Event{}, false
}

var (
	jackH  = card.Of(card.Jack, card.Hearts)
	queenH = card.Of(card.Queen, card.Hearts)
	kingS  = card.Of(card.King, card.Spades)
	twoC   = card.Of(card.Two, card.Clubs)
	threeS = card.Of(card.Three, card.Spades)
	fourD  = card.Of(card.Four, card.Diamonds)
	fiveH  = card.Of(card.Five, card.Hearts)
	fiveS  = card.Of(card.Five, card.Spades)
	sixS   = card.Of(card.Six, card.Spades)
	nineC  = card.Of(card.Nine, card.Clubs)
)

func TestRound_FaceCardTimeoutGoesToPreviousPlayer(t *testing.T) {
	g := startedGame(t, []card.Card{jackH}, []card.Card{threeS})
	g.stack.AddPenaltyCard(nineC)

	events := mustInput(t, g, "a")
	if e, ok := hasEvent(events, EventCardPlayed); !ok || e.Card != jackH || e.Countdown != 1 {
		t.Fatalf("expected jack played with countdown 1, got %+v", events)
	}
	if g.CurrentPlayer() != 1 {
		t.Fatalf("face card must pass the turn, current=%d", g.CurrentPlayer())
	}

	events = mustInput(t, g, "k")
	won, ok := hasEvent(events, EventRoundWon)
	if !ok {
		t.Fatalf("expected round win, got %+v", events)
	}
	if won.Player != 0 || won.Reason != WinFaceCard || won.Cards != 3 {
		t.Fatalf("unexpected round win: %+v", won)
	}

	snap := g.Snapshot()
	if snap.Players[0].HandSize != 3 || snap.Players[1].HandSize != 0 {
		t.Fatalf("expected hands 3/0, got %d/%d", snap.Players[0].HandSize, snap.Players[1].HandSize)
	}
	if snap.CurrentPlayer != 0 || snap.Round != 2 {
		t.Fatalf("winner should start round 2, got current=%d round=%d", snap.CurrentPlayer, snap.Round)
	}
	if len(snap.PlayedCards) != 0 || len(snap.PenaltyCards) != 0 || snap.NeedFaceCard {
		t.Fatalf("round stack not reset: %+v", snap)
	}
	want := []card.Card{nineC, jackH, threeS}
	for i, c := range g.players[0].Hand() {
		if c != want[i] {
			t.Fatalf("hand[%d]=%v, want %v", i, c, want[i])
		}
	}
}

func TestRound_ValidSlapByAnyPlayerWins(t *testing.T) {
	g := startedGame(t, []card.Card{twoC}, []card.Card{fourD})
	g.stack.AddPlayedCard(fiveH)
	g.stack.AddPlayedCard(fiveS)

	events := mustInput(t, g, "l")
	won, ok := hasEvent(events, EventRoundWon)
	if !ok || won.Player != 1 || won.Reason != WinSlap {
		t.Fatalf("expected player 1 to win by slap, got %+v", events)
	}
	if g.Player(1).HandSize() != 3 || g.CurrentPlayer() != 1 {
		t.Fatalf("slapper should hold 3 cards and start, got %d cards current=%d", g.Player(1).HandSize(), g.CurrentPlayer())
	}
}

func TestRound_ValidSlapWithEmptyHand(t *testing.T) {
	g := startedGame(t, []card.Card{twoC}, nil)
	g.stack.AddPlayedCard(fiveH)
	g.stack.AddPlayedCard(sixS)
	g.stack.AddPlayedCard(fiveS)

	events := mustInput(t, g, "l")
	if won, ok := hasEvent(events, EventRoundWon); !ok || won.Player != 1 {
		t.Fatalf("player without cards may still win a sandwich, got %+v", events)
	}
}

func TestRound_InvalidSlapEmptiesCurrentPlayersHand(t *testing.T) {
	g := startedGame(t, []card.Card{twoC}, []card.Card{fourD})
	g.stack.AddPlayedCard(fiveH)
	g.stack.AddPlayedCard(sixS)

	events, err := g.processPlayerActionsLocked("s")
	if err != nil {
		t.Fatalf("process err: %v", err)
	}
	if _, ok := hasEvent(events, EventSlapPenalty); !ok {
		t.Fatalf("expected penalty event, got %+v", events)
	}
	if g.players[0].HandSize() != 0 {
		t.Fatalf("penalty should empty the hand")
	}
	if !g.turnOver || g.roundWinner != NoPlayer {
		t.Fatalf("expected turn over with no winner, turnOver=%v winner=%d", g.turnOver, g.roundWinner)
	}
	if pen := g.stack.Penalty(); len(pen) != 1 || pen[0] != twoC {
		t.Fatalf("penalty pile: %v", pen)
	}
}

func TestRound_InvalidSlapAdvancesTurn(t *testing.T) {
	g := startedGame(t, []card.Card{twoC}, []card.Card{fourD})
	g.stack.AddPlayedCard(fiveH)
	g.stack.AddPlayedCard(sixS)

	events := mustInput(t, g, "s")
	if _, ok := hasEvent(events, EventPlayerUp); !ok || g.CurrentPlayer() != 1 {
		t.Fatalf("expected the turn to pass to player 1, got %+v", events)
	}
	if g.Round() != 1 {
		t.Fatalf("an invalid slap must not end the round")
	}
}

func TestRound_InvalidSlapByOtherPlayerKeepsTurn(t *testing.T) {
	g := startedGame(t, []card.Card{twoC, threeS}, []card.Card{fourD})
	g.stack.AddPlayedCard(fiveH)
	g.stack.AddPlayedCard(sixS)

	if _, err := g.processPlayerActionsLocked("l"); err != nil {
		t.Fatal(err)
	}
	if g.turnOver {
		t.Fatalf("another player's bad slap must not end the current turn")
	}
	if g.players[1].HandSize() != 0 || g.stack.Size() != 3 {
		t.Fatalf("expected player 1 to forfeit their card")
	}
}

func TestRound_InvalidSlapWithNoCards(t *testing.T) {
	g := startedGame(t, []card.Card{twoC}, nil)
	g.stack.AddPlayedCard(fiveH)

	events := mustInput(t, g, "l")
	if _, ok := hasEvent(events, EventSlapNoCards); !ok {
		t.Fatalf("expected no-cards slap event, got %+v", events)
	}
	if g.stack.Size() != 1 || g.CurrentPlayer() != 0 || g.turnOver {
		t.Fatalf("a slap with nothing to forfeit must change nothing")
	}
}

func TestRound_PlayEndsTheBatch(t *testing.T) {
	g := startedGame(t, []card.Card{fiveS, threeS}, []card.Card{fourD})
	g.stack.AddPlayedCard(card.Of(card.Three, card.Hearts))
	g.stack.AddPlayedCard(sixS)

	// after "a" the pile reads 3 6 3, a sandwich; "l" must not be seen
	events := mustInput(t, g, "al")
	if _, ok := hasEvent(events, EventSlapValid); ok {
		t.Fatalf("keys after a play must be ignored, got %+v", events)
	}
	if !g.stack.IsValidSlap() {
		t.Fatalf("expected a sandwich on the table")
	}

	events = mustInput(t, g, "l")
	if won, ok := hasEvent(events, EventRoundWon); !ok || won.Player != 1 {
		t.Fatalf("expected the next batch to win for player 1, got %+v", events)
	}
}

func TestRound_DuplicateKeysCountOnce(t *testing.T) {
	g := startedGame(t, []card.Card{twoC, threeS, fourD}, []card.Card{nineC})
	g.stack.AddPlayedCard(fiveH)

	mustInput(t, g, "ss")
	if g.players[0].HandSize() != 2 || len(g.stack.Penalty()) != 1 {
		t.Fatalf("expected a single penalty, hand=%d penalty=%d", g.players[0].HandSize(), len(g.stack.Penalty()))
	}
}

func TestRound_FailedSlapKeepsScanning(t *testing.T) {
	g := startedGame(t, []card.Card{twoC, threeS, fourD}, []card.Card{nineC})
	g.stack.AddPlayedCard(fiveH)

	events := mustInput(t, g, "sa")
	pen, ok := hasEvent(events, EventSlapPenalty)
	if !ok || pen.Card != fourD {
		t.Fatalf("expected top card forfeited first, got %+v", events)
	}
	played, ok := hasEvent(events, EventCardPlayed)
	if !ok || played.Card != threeS {
		t.Fatalf("expected the play after the failed slap, got %+v", events)
	}
}

func TestRound_WinningSlapEndsTheBatch(t *testing.T) {
	g := startedGame(t, []card.Card{twoC}, []card.Card{nineC})
	g.stack.AddPlayedCard(fiveH)
	g.stack.AddPlayedCard(fiveS)

	events := mustInput(t, g, "las")
	if _, ok := hasEvent(events, EventCardPlayed); ok {
		t.Fatalf("play after a winning slap must be ignored, got %+v", events)
	}
	if g.Player(0).HandSize() != 1 {
		t.Fatalf("player 0 should still hold their card")
	}
}

func TestRound_OtherPlayersPlayKeyIgnored(t *testing.T) {
	g := startedGame(t, []card.Card{twoC}, []card.Card{nineC})

	events := mustInput(t, g, "k?")
	if len(events) != 0 {
		t.Fatalf("expected no events, got %+v", events)
	}
	if g.Player(1).HandSize() != 1 || g.CurrentPlayer() != 0 {
		t.Fatalf("state changed on ignored keys")
	}
}

func TestRound_PlainCardEndsTurnWhenNothingOwed(t *testing.T) {
	g := startedGame(t, []card.Card{twoC, threeS}, []card.Card{nineC})

	mustInput(t, g, "a")
	if g.CurrentPlayer() != 1 || g.Snapshot().PreviousPlayer != 0 {
		t.Fatalf("expected turn to pass to 1 with previous 0")
	}
}

func TestRound_FaceCardChain(t *testing.T) {
	g := startedGame(t,
		[]card.Card{fourD, threeS, twoC, queenH},
		[]card.Card{kingS, sixS},
	)

	mustInput(t, g, "a") // queen, 2 owed
	mustInput(t, g, "k") // six, 1 owed, player 1 keeps the turn
	if g.CurrentPlayer() != 1 || g.stack.Countdown() != 1 {
		t.Fatalf("expected player 1 to keep playing with 1 owed, current=%d countdown=%d", g.CurrentPlayer(), g.stack.Countdown())
	}
	mustInput(t, g, "k") // king answers, 3 owed by player 0
	if g.CurrentPlayer() != 0 || g.stack.Countdown() != 3 {
		t.Fatalf("king should pass the turn with 3 owed")
	}
	mustInput(t, g, "a")
	mustInput(t, g, "a")
	events := mustInput(t, g, "a")

	won, ok := hasEvent(events, EventRoundWon)
	if !ok || won.Player != 1 || won.Reason != WinFaceCard || won.Cards != 6 {
		t.Fatalf("expected player 1 to take 6 cards, got %+v", events)
	}
}

func TestRound_RunningOutWhileOwingGivesStackToPrevious(t *testing.T) {
	g := startedGame(t, []card.Card{twoC, queenH}, []card.Card{fourD})

	mustInput(t, g, "a")
	events := mustInput(t, g, "k")

	won, ok := hasEvent(events, EventRoundWon)
	if !ok || won.Player != 0 || won.Reason != WinEmptyHand {
		t.Fatalf("expected player 0 to win when player 1 ran dry, got %+v", events)
	}
	if g.Player(1).HandSize() != 0 || g.Player(0).HandSize() != 3 {
		t.Fatalf("unexpected hands after round")
	}
}

func TestRound_BadSlapWhileOwingKeepsFaceCardOwner(t *testing.T) {
	g := startedGame(t,
		[]card.Card{queenH},
		[]card.Card{twoC, fiveH},
		[]card.Card{threeS, fourD},
	)

	mustInput(t, g, "a")
	played := mustInput(t, g, "k")
	if e, ok := hasEvent(played, EventCardPlayed); !ok || e.Action != ActionPlay {
		t.Fatalf("expected a play event, got %+v", played)
	}

	slapped := mustInput(t, g, "l")
	if e, ok := hasEvent(slapped, EventSlapPenalty); !ok || e.Action != ActionSlap || e.Card != twoC {
		t.Fatalf("expected player 1 to forfeit the two of clubs, got %+v", slapped)
	}
	snap := g.Snapshot()
	if snap.CurrentPlayer != 2 || snap.PreviousPlayer != 0 {
		t.Fatalf("expected current 2 and previous 0, got current %d previous %d", snap.CurrentPlayer, snap.PreviousPlayer)
	}

	events := mustInput(t, g, "z")
	won, ok := hasEvent(events, EventRoundWon)
	if !ok || won.Player != 0 || won.Reason != WinFaceCard {
		t.Fatalf("expected the queen's owner to take the stack, got %+v", events)
	}
}

func TestRound_LastFaceCardPassesTurn(t *testing.T) {
	g := startedGame(t, []card.Card{queenH}, []card.Card{fourD, threeS})

	events := mustInput(t, g, "a")
	if _, ok := hasEvent(events, EventRoundWon); ok {
		t.Fatalf("playing a last face card must not end the round")
	}
	if g.CurrentPlayer() != 1 {
		t.Fatalf("expected player 1 to answer")
	}
}

func TestRound_AllCardsOnTheTable(t *testing.T) {
	g := startedGame(t, []card.Card{fiveH}, []card.Card{sixS})

	mustInput(t, g, "a")
	events := mustInput(t, g, "k")

	won, ok := hasEvent(events, EventRoundWon)
	if !ok || won.Player != 1 || won.Reason != WinNoPlayLeft {
		t.Fatalf("expected last player to play to take the stack, got %+v", events)
	}
}

func TestGame_PlaysToTheEnd(t *testing.T) {
	cfg := seededConfig()
	cfg.MaxPlayers = 2
	cfg.DeckOverride = []card.Card{jackH, threeS, nineC}
	g := newTestGame(t, cfg, 2)
	if _, err := g.Start(); err != nil {
		t.Fatalf("Start err: %v", err)
	}

	mustInput(t, g, "a")
	events := mustInput(t, g, "k")

	if _, ok := hasEvent(events, EventGameWon); !ok {
		t.Fatalf("expected game won, got %+v", events)
	}
	if idx, ok := g.Winner(); !ok || idx != 0 {
		t.Fatalf("expected player 0 to win, got %d %v", idx, ok)
	}
	if !g.Ended() {
		t.Fatalf("game should be over")
	}
	if _, err := g.HandleInput("a"); !errors.Is(err, ErrGameEnded) {
		t.Fatalf("expected ErrGameEnded, got %v", err)
	}
}

func TestEvent_String(t *testing.T) {
	e := Event{Type: EventCardPlayed, Player: 2, Card: jackH, NeedFaceCard: true, Countdown: 1}
	if got := e.String(); got != "Player #2 played jack of hearts (1 owed)." {
		t.Fatalf("unexpected line: %q", got)
	}
	won := Event{Type: EventRoundWon, Player: 0, Round: 4, Cards: 12, Reason: WinSlap}
	if got := won.String(); got != "Player #0 won round 4 and takes 12 cards (slap)." {
		t.Fatalf("unexpected line: %q", got)
	}
}
