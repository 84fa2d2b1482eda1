package replay

import (
	"fmt"
	"slices"

	"ratscrew/card"
	"ratscrew/ratscrew"
)

// defaultSeed keeps scripts without a seed or deck reproducible.
const defaultSeed = 1

type normalizedPlayer struct {
	name string
	play string
	slap string
}

type normalizedScript struct {
	cfg     ratscrew.Config
	players []normalizedPlayer
	inputs  []string
}

func normalizeScript(s Script) (normalizedScript, error) {
	var out normalizedScript

	cfg := ratscrew.DefaultConfig()
	if s.Decks < 0 {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_decks", Message: "decks must be >= 0"}
	}
	if s.Decks > 0 {
		cfg.Decks = s.Decks
	}
	cfg.Seed = s.Seed
	if len(s.Deck) > 0 {
		deck, err := card.ParseCodes(s.Deck)
		if err != nil {
			return out, &ReplayError{StepIndex: -1, Reason: "invalid_deck", Message: err.Error()}
		}
		cfg.DeckOverride = deck
	} else if cfg.Seed == 0 {
		cfg.Seed = defaultSeed
	}

	if len(s.Players) < ratscrew.DefaultMinPlayers {
		return out, &ReplayError{
			StepIndex: -1,
			Reason:    "invalid_players",
			Message:   fmt.Sprintf("at least %d players are required", ratscrew.DefaultMinPlayers),
		}
	}
	if len(s.Players) > cfg.TotalCards() {
		return out, &ReplayError{
			StepIndex: -1,
			Reason:    "invalid_players",
			Message:   fmt.Sprintf("%d players but only %d cards", len(s.Players), cfg.TotalCards()),
		}
	}
	cfg.MaxPlayers = max(len(s.Players), cfg.MinPlayers)

	out.players = make([]normalizedPlayer, 0, len(s.Players))
	for i, p := range s.Players {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("player #%d", i)
		}
		out.players = append(out.players, normalizedPlayer{name: name, play: p.Play, slap: p.Slap})
	}
	out.cfg = cfg
	out.inputs = slices.Clone(s.Inputs)
	return out, nil
}
