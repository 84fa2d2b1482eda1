package ratscrew

import (
	"fmt"

	"ratscrew/card"
)

const (
	DefaultMinPlayers = 2
	DefaultMaxPlayers = 52
)

type Config struct {
	// Table
	MinPlayers int
	MaxPlayers int

	// Number of standard 52-card sets shuffled together.
	Decks int

	// RNG seed (0 => time-based)
	Seed int64

	// Optional fixed deal order, first element dealt first. When set the
	// deck is not shuffled and its length replaces 52*Decks as the card
	// count a player must collect to win.
	DeckOverride []card.Card
}

func DefaultConfig() Config {
	return Config{
		MinPlayers: DefaultMinPlayers,
		MaxPlayers: DefaultMaxPlayers,
		Decks:      1,
	}
}

// TotalCards is the number of cards in play for a game with this config.
func (c Config) TotalCards() int {
	if len(c.DeckOverride) > 0 {
		return len(c.DeckOverride)
	}
	return 52 * c.Decks
}

func (c Config) validate() error {
	if c.Decks <= 0 {
		return &ConfigurationError{Field: "Decks", Reason: "must be > 0"}
	}
	if c.MinPlayers < 2 {
		return &ConfigurationError{Field: "MinPlayers", Reason: "must be >= 2"}
	}
	if c.MinPlayers > c.MaxPlayers {
		return &ConfigurationError{Field: "MinPlayers", Reason: "must be <= MaxPlayers"}
	}
	if c.MaxPlayers > c.TotalCards() {
		return &ConfigurationError{
			Field:  "MaxPlayers",
			Reason: fmt.Sprintf("%d players cannot share %d cards", c.MaxPlayers, c.TotalCards()),
		}
	}
	if len(c.DeckOverride) > 0 {
		seen := make(map[card.Card]int, len(c.DeckOverride))
		for i, cc := range c.DeckOverride {
			if cc.IsZero() {
				return &ConfigurationError{Field: "DeckOverride", Reason: fmt.Sprintf("invalid card at %d", i)}
			}
			seen[cc]++
			if seen[cc] > c.Decks {
				return &ConfigurationError{
					Field:  "DeckOverride",
					Reason: fmt.Sprintf("duplicate card %s (at most %d copies)", cc, c.Decks),
				}
			}
		}
	}
	return nil
}
