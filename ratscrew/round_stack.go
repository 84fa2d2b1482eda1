package ratscrew

import "ratscrew/card"

// faceCardCountdown is how many non-face replies the table owes per rank.
var faceCardCountdown = map[card.Rank]int{
	card.Jack:  1,
	card.Queen: 2,
	card.King:  3,
	card.Ace:   4,
}

// RoundStack holds the cards put down during one round: the face-up played
// pile and a separate penalty pile. Only the played pile counts for slaps.
type RoundStack struct {
	played  *card.Deck
	penalty *card.Deck

	needFaceCard bool
	countdown    int
}

func NewRoundStack() *RoundStack {
	return &RoundStack{
		played:  card.NewPile(),
		penalty: card.NewPile(),
	}
}

// AddPlayedCard puts c on top of the played pile and updates the face-card
// countdown: a face card resets it to that rank's value, any other card
// uses up one reply while a response is owed.
func (rs *RoundStack) AddPlayedCard(c card.Card) {
	rs.played.AddCard(c, true)
	if c.IsFace() {
		rs.needFaceCard = true
		rs.countdown = faceCardCountdown[c.Rank()]
		return
	}
	if rs.needFaceCard && rs.countdown > 0 {
		rs.countdown--
	}
}

func (rs *RoundStack) AddPenaltyCard(c card.Card) {
	rs.penalty.AddCard(c, true)
}

// ForfeitFrom moves the top card of src onto the penalty pile.
func (rs *RoundStack) ForfeitFrom(src card.Container) (card.Card, error) {
	return card.MoveCard(rs.penalty, src, true)
}

// HasStackBeenWon reports that the owed face-card response ran out.
func (rs *RoundStack) HasStackBeenWon() bool {
	return rs.needFaceCard && rs.countdown < 1
}

// IsValidSlap reports a double (top two cards share rank) or a sandwich
// (top and third card share rank) on the played pile.
func (rs *RoundStack) IsValidSlap() bool {
	n := rs.played.Size()
	if n < 2 {
		return false
	}
	top, _ := rs.played.SeeCard(0)
	second, _ := rs.played.SeeCard(1)
	if top.SameRank(second) {
		return true
	}
	if n >= 3 {
		third, _ := rs.played.SeeCard(2)
		if top.SameRank(third) {
			return true
		}
	}
	return false
}

func (rs *RoundStack) NeedFaceCard() bool { return rs.needFaceCard }

// Countdown is only meaningful while NeedFaceCard is true.
func (rs *RoundStack) Countdown() int { return rs.countdown }

// Played returns the played pile bottom to top.
func (rs *RoundStack) Played() []card.Card { return rs.played.Cards() }

// Penalty returns the penalty pile bottom to top.
func (rs *RoundStack) Penalty() []card.Card { return rs.penalty.Cards() }

func (rs *RoundStack) Size() int { return rs.played.Size() + rs.penalty.Size() }

func (rs *RoundStack) reset() {
	rs.played.Clear()
	rs.penalty.Clear()
	rs.needFaceCard = false
	rs.countdown = 0
}
