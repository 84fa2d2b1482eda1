package card

import (
	"strconv"
	"strings"
)

type Rank byte

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists the thirteen ranks from Two to Ace.
func Ranks() []Rank {
	out := make([]Rank, 0, 13)
	for r := Two; r <= Ace; r++ {
		out = append(out, r)
	}
	return out
}

func (r Rank) valid() bool { return r >= Two && r <= Ace }

// IsFace reports whether the rank demands a response when played.
func (r Rank) IsFace() bool { return r >= Jack && r <= Ace }

func (r Rank) String() string {
	switch r {
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	}
	if !r.valid() {
		return "?"
	}
	return strconv.Itoa(int(r))
}

// ParseRank accepts "2".."10" and face names in any case.
func ParseRank(raw string) (Rank, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, r := range Ranks() {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, &ValidationError{Field: "rank", Value: raw}
}
