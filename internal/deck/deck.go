package deck

import (
	"math/rand"

	"github.com/smp46/slaythecli/internal/card"
)

// Piles holds the four ordered card piles a player works with during combat.
// A card instance lives in exactly one pile at a time; the total only shrinks
// when a card exhausts.
type Piles struct {
	Draw    []card.Card `json:"draw"`
	Hand    []card.Card `json:"hand"`
	Discard []card.Card `json:"discard"`
	Exhaust []card.Card `json:"exhaust"`
}

// New builds piles from a deck list, shuffling it into the draw pile.
func New(cards []card.Card, rng *rand.Rand) *Piles {
	draw := make([]card.Card, len(cards))
	copy(draw, cards)
	rng.Shuffle(len(draw), func(i, j int) {
		draw[i], draw[j] = draw[j], draw[i]
	})
	return &Piles{
		Draw:    draw,
		Hand:    []card.Card{},
		Discard: []card.Card{},
		Exhaust: []card.Card{},
	}
}

// DrawCards moves up to n cards from the draw pile to the hand. If the draw
// pile runs out mid-draw and the discard pile is non-empty, the discard pile
// is reshuffled into a fresh draw pile and drawing continues. If both piles
// are empty, fewer cards are drawn; that is not an error. Returns the number
// of cards actually drawn.
func (p *Piles) DrawCards(n int, rng *rand.Rand) int {
	drawn := 0
	for drawn < n {
		if len(p.Draw) == 0 {
			if len(p.Discard) == 0 {
				break
			}
			p.reshuffleDiscard(rng)
		}
		p.Hand = append(p.Hand, p.Draw[0])
		p.Draw = p.Draw[1:]
		drawn++
	}
	return drawn
}

func (p *Piles) reshuffleDiscard(rng *rand.Rand) {
	p.Draw = p.Discard
	p.Discard = []card.Card{}
	rng.Shuffle(len(p.Draw), func(i, j int) {
		p.Draw[i], p.Draw[j] = p.Draw[j], p.Draw[i]
	})
}

// FindInHand returns the index of the first card in hand with the given name.
func (p *Piles) FindInHand(name string) (int, bool) {
	for i, c := range p.Hand {
		if c.Name == name {
			return i, true
		}
	}
	return 0, false
}

// PlayFromHand removes the card at index i from the hand and moves it to the
// discard pile, or to the exhaust pile for single-use cards. Returns the card
// that moved.
func (p *Piles) PlayFromHand(i int) card.Card {
	c := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	if c.Exhausts {
		p.Exhaust = append(p.Exhaust, c)
	} else {
		p.Discard = append(p.Discard, c)
	}
	return c
}

// DiscardHand moves every card left in the hand to the discard pile.
func (p *Piles) DiscardHand() {
	p.Discard = append(p.Discard, p.Hand...)
	p.Hand = []card.Card{}
}

// Remaining returns every card still in play (draw, hand, discard), in that
// order. Exhausted cards are gone for good.
func (p *Piles) Remaining() []card.Card {
	out := make([]card.Card, 0, len(p.Draw)+len(p.Hand)+len(p.Discard))
	out = append(out, p.Draw...)
	out = append(out, p.Hand...)
	out = append(out, p.Discard...)
	return out
}

// InPlay is the count of cards across draw, hand, and discard.
func (p *Piles) InPlay() int {
	return len(p.Draw) + len(p.Hand) + len(p.Discard)
}

// Clone returns a deep copy, for read-only snapshots.
func (p *Piles) Clone() *Piles {
	clone := func(src []card.Card) []card.Card {
		out := make([]card.Card, len(src))
		copy(out, src)
		return out
	}
	return &Piles{
		Draw:    clone(p.Draw),
		Hand:    clone(p.Hand),
		Discard: clone(p.Discard),
		Exhaust: clone(p.Exhaust),
	}
}
