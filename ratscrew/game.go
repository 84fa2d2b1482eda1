package ratscrew

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"ratscrew/card"
)

// Game is one rat screw session: the seated players, their action keys and
// the state of the round in progress.
type Game struct {
	cfg Config
	rng *rand.Rand
	id  uuid.UUID

	mu sync.Mutex

	players []*Player
	keys    keyRegistry

	phase Phase
	stack *RoundStack

	// round state
	round    int
	current  int
	previous int
	turnOver bool

	// endedByPlay is set when the current turn ended by playing a face
	// card or a card with nothing owed.
	endedByPlay bool
	roundWinner int
	winReason   WinReason

	winner int
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(seed)),
		id:          uuid.New(),
		keys:        newKeyRegistry(),
		phase:       PhaseSetup,
		stack:       NewRoundStack(),
		current:     NoPlayer,
		previous:    NoPlayer,
		roundWinner: NoPlayer,
		winner:      NoPlayer,
	}, nil
}

func (g *Game) ID() string { return g.id.String() }

func (g *Game) Config() Config { return g.cfg }

// ValidateKey checks a candidate action key against every key claimed so
// far, so a prompt can reject it before the player is added.
func (g *Game) ValidateKey(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseSetup {
		return ErrGameStarted
	}
	return g.keys.validate(key)
}

// AddPlayer seats the next player with the given keys.
func (g *Game) AddPlayer(playKey, slapKey string) (*Player, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseSetup {
		return nil, ErrGameStarted
	}
	if len(g.players) >= g.cfg.MaxPlayers {
		return nil, &ConfigurationError{Field: "players", Reason: fmt.Sprintf("at most %d players", g.cfg.MaxPlayers)}
	}
	idx := len(g.players)
	pr, sr, err := g.keys.register(idx, playKey, slapKey)
	if err != nil {
		return nil, err
	}
	p := &Player{
		Index:   idx,
		playKey: pr,
		slapKey: sr,
		hand:    card.NewPile(),
	}
	g.players = append(g.players, p)
	return p, nil
}

func (g *Game) Player(idx int) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()
	if idx < 0 || idx >= len(g.players) {
		return nil
	}
	return g.players[idx]
}

func (g *Game) NumPlayers() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.players)
}

// Start deals the deck evenly and opens the first round with player #0.
// Cards that cannot be dealt evenly seed the penalty pile.
func (g *Game) Start() ([]Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseSetup {
		return nil, ErrGameStarted
	}
	n := len(g.players)
	if n < g.cfg.MinPlayers || n > g.cfg.MaxPlayers {
		return nil, &ConfigurationError{
			Field:  "players",
			Reason: fmt.Sprintf("%d players, need %d to %d", n, g.cfg.MinPlayers, g.cfg.MaxPlayers),
		}
	}

	deck, piles, err := g.dealLocked(n)
	if err != nil {
		return nil, err
	}
	for i, p := range g.players {
		p.hand = piles[i]
	}
	leftover := deck.Size()
	for !deck.Empty() {
		if _, err := g.stack.ForfeitFrom(deck); err != nil {
			return nil, ErrInvalidState(err.Error())
		}
	}

	g.phase = PhaseAwaitingAction
	events := []Event{{
		Type:    EventGameStarted,
		Player:  NoPlayer,
		Cards:   piles[0].Size(),
		Penalty: leftover,
	}}
	events = append(events, g.startRoundLocked(0)...)
	return events, nil
}

func (g *Game) dealLocked(n int) (*card.Deck, []*card.Deck, error) {
	if len(g.cfg.DeckOverride) > 0 {
		// DeckOverride lists the deal order; the top of a pile is dealt first.
		ordered := slices.Clone(g.cfg.DeckOverride)
		slices.Reverse(ordered)
		deck := card.NewPile(ordered...)
		piles, err := deck.Deal(n)
		return deck, piles, err
	}
	deck := card.NewDeck(g.cfg.Decks, g.rng)
	piles, err := deck.DealIntoPiles(n)
	return deck, piles, err
}

// HandleInput processes one batch of raw key presses and reports what
// happened.
func (g *Game) HandleInput(raw string) ([]Event, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case PhaseSetup:
		return nil, ErrGameNotStarted
	case PhaseGameWon:
		return nil, ErrGameEnded
	}

	events, err := g.processPlayerActionsLocked(raw)
	if err != nil {
		return events, err
	}
	if g.roundWinner == NoPlayer && g.turnOver {
		events = append(events, g.advanceTurnLocked()...)
	}
	if g.roundWinner != NoPlayer {
		events = append(events, g.resolveRoundLocked()...)
	}
	return events, nil
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

func (g *Game) Ended() bool {
	return g.Phase() == PhaseGameWon
}

func (g *Game) CurrentPlayer() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

func (g *Game) Round() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

// Winner returns the game winner once the game has ended.
func (g *Game) Winner() (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.winner, g.winner != NoPlayer
}

// checkForWinnerLocked finds the player holding every card in play.
func (g *Game) checkForWinnerLocked() (int, bool) {
	total := g.cfg.TotalCards()
	for idx, p := range g.players {
		if p.HandSize() == total {
			return idx, true
		}
	}
	return NoPlayer, false
}
