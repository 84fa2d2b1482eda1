package ratscrew

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"ratscrew/card"
)

type Player struct {
	Index int

	playKey rune
	slapKey rune

	hand *card.Deck
}

func (p *Player) PlayKey() string { return string(p.playKey) }
func (p *Player) SlapKey() string { return string(p.slapKey) }

func (p *Player) HandSize() int { return p.hand.Size() }

// Hand returns the player's cards bottom to top.
func (p *Player) Hand() []card.Card { return p.hand.Cards() }

// SetHand replaces the hand; it exists for setup and tests.
func (p *Player) SetHand(d *card.Deck) { p.hand = d }

// PlayCard takes the top card of the hand.
func (p *Player) PlayCard() (card.Card, error) {
	c, err := p.hand.DealCard(false)
	if err != nil {
		return card.Card{}, fmt.Errorf("player #%d: %w", p.Index, err)
	}
	return c, nil
}

// TakeRoundStack moves the played pile and then the penalty pile under the
// hand, leaving both piles of rs empty.
func (p *Player) TakeRoundStack(rs *RoundStack) {
	p.hand.Combine(rs.played, false)
	p.hand.Combine(rs.penalty, false)
	rs.reset()
}

// ValidateActionKey checks that key is a single printable character not yet
// claimed by any player.
func ValidateActionKey(key string, claimed map[rune]int) error {
	if utf8.RuneCountInString(key) != 1 {
		return &InvalidKeyError{Key: key, Reason: "must be exactly one character"}
	}
	r, _ := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return &InvalidKeyError{Key: key, Reason: "must be a printable character"}
	}
	if owner, ok := claimed[r]; ok {
		return &InvalidKeyError{Key: key, Reason: fmt.Sprintf("already used by player #%d", owner)}
	}
	return nil
}
