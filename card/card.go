package card

import (
	"fmt"
	"strings"
)

// Card is an immutable playing card. The zero value is not a valid card;
// build cards with New, Of or ParseCode.
type Card struct {
	rank Rank
	suit Suit
}

// New builds a card from its rank and suit names, ignoring case.
func New(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{rank: r, suit: s}, nil
}

// Of builds a card from enum values. It panics on values outside the
// enumerations, which can only come from a programming error.
func Of(r Rank, s Suit) Card {
	if !r.valid() || !s.valid() {
		panic(fmt.Sprintf("card.Of: invalid rank %d or suit %d", r, s))
	}
	return Card{rank: r, suit: s}
}

func (c Card) Rank() Rank { return c.rank }
func (c Card) Suit() Suit { return c.suit }

func (c Card) IsFace() bool { return c.rank.IsFace() }

// SameRank ignores suits.
func (c Card) SameRank(o Card) bool { return c.rank == o.rank }

func (c Card) IsZero() bool { return c == Card{} }

func (c Card) String() string {
	if c.IsZero() {
		return "invalid"
	}
	return c.rank.String() + " of " + c.suit.String()
}

// Code returns the compact form accepted by ParseCode, e.g. "Jh" or "10s".
func (c Card) Code() string {
	var r string
	switch c.rank {
	case Jack:
		r = "J"
	case Queen:
		r = "Q"
	case King:
		r = "K"
	case Ace:
		r = "A"
	default:
		r = c.rank.String()
	}
	return r + string(c.suit.Symbol())
}

// ParseCode 将字符串 (如 "As", "Td", "10h") 转换为 Card
func ParseCode(code string) (Card, error) {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return Card{}, &ValidationError{Field: "code", Value: code}
	}

	var s Suit
	switch code[len(code)-1] {
	case 'h', 'H':
		s = Hearts
	case 'd', 'D':
		s = Diamonds
	case 'c', 'C':
		s = Clubs
	case 's', 'S':
		s = Spades
	default:
		return Card{}, &ValidationError{Field: "code", Value: code}
	}

	var r Rank
	switch rankStr := strings.ToUpper(code[:len(code)-1]); rankStr {
	case "A":
		r = Ace
	case "K":
		r = King
	case "Q":
		r = Queen
	case "J":
		r = Jack
	case "T", "10":
		r = Ten
	default:
		if len(rankStr) != 1 || rankStr[0] < '2' || rankStr[0] > '9' {
			return Card{}, &ValidationError{Field: "code", Value: code}
		}
		r = Rank(rankStr[0] - '0')
	}
	return Card{rank: r, suit: s}, nil
}

// Standard returns one ordered set of 52 cards, suit by suit.
func Standard() []Card {
	out := make([]Card, 0, 52)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			out = append(out, Card{rank: r, suit: s})
		}
	}
	return out
}
