package card

import "strings"

type Suit byte

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitNames = [...]string{
	Hearts:   "hearts",
	Diamonds: "diamonds",
	Clubs:    "clubs",
	Spades:   "spades",
}

// Suits lists the four suits in deck-building order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

func (s Suit) valid() bool { return s <= Spades }

func (s Suit) String() string {
	if !s.valid() {
		return "?"
	}
	return suitNames[s]
}

// Symbol 花色符号 (used by the compact card code)
func (s Suit) Symbol() byte {
	switch s {
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	case Clubs:
		return 'c'
	case Spades:
		return 's'
	}
	return '?'
}

// ParseSuit accepts a suit name in any case.
func ParseSuit(raw string) (Suit, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for s, n := range suitNames {
		if n == name {
			return Suit(s), nil
		}
	}
	return 0, &ValidationError{Field: "suit", Value: raw}
}
