package ratscrew

import (
	"fmt"

	"ratscrew/card"
)

type EventType byte

const (
	EventGameStarted  EventType = 1
	EventRoundStarted EventType = 2
	EventCardPlayed   EventType = 3
	EventSlapValid    EventType = 4
	EventSlapPenalty  EventType = 5
	EventSlapNoCards  EventType = 6
	EventTurnOver     EventType = 7
	EventPlayerUp     EventType = 8
	EventRoundWon     EventType = 9
	EventGameWon      EventType = 10
)

var EventTypeDictionary = map[EventType]string{
	EventGameStarted:  "gameStarted",
	EventRoundStarted: "roundStarted",
	EventCardPlayed:   "cardPlayed",
	EventSlapValid:    "slapValid",
	EventSlapPenalty:  "slapPenalty",
	EventSlapNoCards:  "slapNoCards",
	EventTurnOver:     "turnOver",
	EventPlayerUp:     "playerUp",
	EventRoundWon:     "roundWon",
	EventGameWon:      "gameWon",
}

func (t EventType) String() string { return EventTypeDictionary[t] }

// Event is one observable step of the game. Fields that do not apply to
// Type are left zero.
type Event struct {
	Type   EventType
	Round  int
	Player int
	// Action is the key press that produced the event, ActionNone for
	// events the engine raises on its own.
	Action ActionType

	Card         card.Card
	NeedFaceCard bool
	Countdown    int

	Reason WinReason
	// Cards is the number of cards dealt per player (gameStarted) or
	// collected (roundWon).
	Cards int
	// Penalty is the number of leftover cards seeding the penalty pile.
	Penalty int
}

// String renders the event as one console status line.
func (e Event) String() string {
	switch e.Type {
	case EventGameStarted:
		return fmt.Sprintf("Dealt %d cards to each player, %d left in the penalty pile.", e.Cards, e.Penalty)
	case EventRoundStarted:
		return fmt.Sprintf("--- Round %d: player #%d goes first ---", e.Round, e.Player)
	case EventCardPlayed:
		if e.NeedFaceCard {
			return fmt.Sprintf("Player #%d played %s (%d owed).", e.Player, e.Card, e.Countdown)
		}
		return fmt.Sprintf("Player #%d played %s.", e.Player, e.Card)
	case EventSlapValid:
		return fmt.Sprintf("Player #%d slapped the stack!", e.Player)
	case EventSlapPenalty:
		return fmt.Sprintf("Player #%d slapped a bad stack and lost %s to the penalty pile.", e.Player, e.Card)
	case EventSlapNoCards:
		return fmt.Sprintf("Player #%d slapped a bad stack with no cards to lose.", e.Player)
	case EventTurnOver:
		return fmt.Sprintf("Player #%d, your turn is over.", e.Player)
	case EventPlayerUp:
		return fmt.Sprintf("Player #%d is up.", e.Player)
	case EventRoundWon:
		return fmt.Sprintf("Player #%d won round %d and takes %d cards (%s).", e.Player, e.Round, e.Cards, e.Reason)
	case EventGameWon:
		return fmt.Sprintf("Player #%d has won the game!", e.Player)
	}
	return "unknown event"
}
