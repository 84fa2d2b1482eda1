package ratscrew

import "ratscrew/card"

type PlayerSnapshot struct {
	Index    int
	PlayKey  string
	SlapKey  string
	HandSize int
}

type Snapshot struct {
	GameID string
	Phase  Phase
	Round  int

	CurrentPlayer  int
	PreviousPlayer int
	TurnOver       bool

	NeedFaceCard bool
	Countdown    int
	PlayedCards  []card.Card
	PenaltyCards []card.Card

	Players []PlayerSnapshot
	Winner  int
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		GameID:         g.id.String(),
		Phase:          g.phase,
		Round:          g.round,
		CurrentPlayer:  g.current,
		PreviousPlayer: g.previous,
		TurnOver:       g.turnOver,
		NeedFaceCard:   g.stack.NeedFaceCard(),
		Countdown:      g.stack.Countdown(),
		PlayedCards:    g.stack.Played(),
		PenaltyCards:   g.stack.Penalty(),
		Winner:         g.winner,
	}
	for _, p := range g.players {
		s.Players = append(s.Players, PlayerSnapshot{
			Index:    p.Index,
			PlayKey:  p.PlayKey(),
			SlapKey:  p.SlapKey(),
			HandSize: p.HandSize(),
		})
	}
	return s
}

// TotalHeld counts the cards in hands and on the table; it never changes
// during a game.
func (s Snapshot) TotalHeld() int {
	total := len(s.PlayedCards) + len(s.PenaltyCards)
	for _, p := range s.Players {
		total += p.HandSize
	}
	return total
}
