package card

import (
	"fmt"

	"github.com/smp46/slaythecli/internal/entity"
)

// Card is an immutable definition of a playable card. The effect is a flat
// tagged record rather than a behavior: the combat resolver reads whichever
// fields are non-zero. Piles hold value copies of these definitions.
type Card struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`

	// Effect payload.
	Damage int `json:"damage,omitempty"` // dealt to the target
	Block  int `json:"block,omitempty"`  // gained by the player
	Draw   int `json:"draw,omitempty"`   // cards drawn by the player

	// Gain applies to the player, Inflict to the target.
	Gain    map[entity.StatusKind]int `json:"gain,omitempty"`
	Inflict map[entity.StatusKind]int `json:"inflict,omitempty"`

	RequiresTarget bool `json:"requires_target"`
	// Exhausts marks a single-use card: after play it is removed from the
	// combat permanently instead of going to the discard pile.
	Exhausts bool `json:"exhausts,omitempty"`
}

// Catalog maps card names to their definitions.
type Catalog map[string]Card

// Get looks a card up by name.
func (c Catalog) Get(name string) (Card, bool) {
	def, ok := c[name]
	return def, ok
}

// BuildDeck resolves a list of card names against the catalog into a deck of
// card instances, preserving order and duplicates.
func (c Catalog) BuildDeck(names []string) ([]Card, error) {
	deck := make([]Card, 0, len(names))
	for _, name := range names {
		def, ok := c[name]
		if !ok {
			return nil, fmt.Errorf("unknown card: %s", name)
		}
		deck = append(deck, def)
	}
	return deck, nil
}

// Validate checks that every status kind a card references is known.
func (c Card) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("card has no name")
	}
	for kind := range c.Gain {
		if !entity.Known(kind) {
			return fmt.Errorf("card %s gains unknown status %q", c.Name, kind)
		}
	}
	for kind := range c.Inflict {
		if !entity.Known(kind) {
			return fmt.Errorf("card %s inflicts unknown status %q", c.Name, kind)
		}
	}
	if c.RequiresTarget && c.Damage == 0 && len(c.Inflict) == 0 {
		return fmt.Errorf("card %s requires a target but has no targeted effect", c.Name)
	}
	return nil
}
