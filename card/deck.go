package card

import (
	"fmt"
	"math/rand"
)

// Container is the capability shared by every pile of cards.
type Container interface {
	Size() int
	DealCard(fromBottom bool) (Card, error)
	AddCard(c Card, onTop bool)
	SeeCard(indexFromTop int) (Card, error)
}

var _ Container = (*Deck)(nil)

// MoveCard deals the top card of src and adds it to dst.
func MoveCard(dst, src Container, onTop bool) (Card, error) {
	c, err := src.DealCard(false)
	if err != nil {
		return Card{}, fmt.Errorf("move card: %w", err)
	}
	dst.AddCard(c, onTop)
	return c, nil
}

// Deck is an ordered pile of cards.
//
// cards[0] is the bottom and cards[len-1] is the top. The top is the end
// cards are played from and the end SeeCard counts from.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck builds nDecks standard sets and shuffles them. A nil rng falls
// back to the global source.
func NewDeck(nDecks int, rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	for range nDecks {
		d.cards = append(d.cards, Standard()...)
	}
	d.Shuffle()
	return d
}

// NewPile builds an unshuffled pile from cards listed bottom to top, i.e.
// in the order they were placed.
func NewPile(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Size 获取总牌数
func (d *Deck) Size() int { return len(d.cards) }

func (d *Deck) Empty() bool { return len(d.cards) == 0 }

// Cards returns a copy ordered bottom to top.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) Shuffle() {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

func (d *Deck) DealCard(fromBottom bool) (Card, error) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, ErrEmptyContainer
	}
	if fromBottom {
		c := d.cards[0]
		d.cards = d.cards[1:]
		return c, nil
	}
	c := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return c, nil
}

func (d *Deck) AddCard(c Card, onTop bool) {
	if onTop {
		d.cards = append(d.cards, c)
		return
	}
	d.cards = append([]Card{c}, d.cards...)
}

func (d *Deck) SeeCard(indexFromTop int) (Card, error) {
	n := len(d.cards)
	if indexFromTop < 0 || indexFromTop >= n {
		return Card{}, &IndexOutOfRangeError{Index: indexFromTop, Size: n}
	}
	return d.cards[n-1-indexFromTop], nil
}

// DealIntoPiles shuffles and then deals as much of the deck as possible
// evenly into nPiles piles. The size%nPiles leftover cards stay in d.
func (d *Deck) DealIntoPiles(nPiles int) ([]*Deck, error) {
	if nPiles < 1 {
		return nil, fmt.Errorf("cannot deal into %d piles", nPiles)
	}
	d.Shuffle()
	return d.Deal(nPiles)
}

// Deal is DealIntoPiles without the shuffle: cards leave from the top and
// go round-robin onto the top of each pile.
func (d *Deck) Deal(nPiles int) ([]*Deck, error) {
	if nPiles < 1 {
		return nil, fmt.Errorf("cannot deal into %d piles", nPiles)
	}
	piles := make([]*Deck, nPiles)
	each := len(d.cards) / nPiles
	for i := range piles {
		piles[i] = &Deck{cards: make([]Card, 0, each), rng: d.rng}
	}
	leftover := len(d.cards) % nPiles
	for len(d.cards) > leftover {
		for _, p := range piles {
			c, err := d.DealCard(false)
			if err != nil {
				return nil, err
			}
			p.AddCard(c, true)
		}
	}
	return piles, nil
}

// Combine moves every card of other into d, keeping other's order, either
// above d's top or below d's bottom. other is left empty.
func (d *Deck) Combine(other *Deck, onTop bool) {
	if other == nil || other == d || len(other.cards) == 0 {
		return
	}
	if onTop {
		d.cards = append(d.cards, other.cards...)
	} else {
		merged := make([]Card, 0, len(d.cards)+len(other.cards))
		merged = append(merged, other.cards...)
		d.cards = append(merged, d.cards...)
	}
	other.cards = nil
}

// Clear drops every card and returns them bottom to top.
func (d *Deck) Clear() []Card {
	out := d.cards
	d.cards = nil
	return out
}
