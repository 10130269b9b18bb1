package card

import "github.com/smp46/slaythecli/internal/entity"

// Character is a playable starting loadout: a max HP and a deck list.
type Character struct {
	Name  string   `json:"name"`
	MaxHP int      `json:"max_hp"`
	Deck  []string `json:"deck"`
}

// Builtin returns the default card catalog.
func Builtin() Catalog {
	cards := []Card{
		{
			Name:           "Strike",
			Description:    "Deal 6 damage.",
			Cost:           1,
			Damage:         6,
			RequiresTarget: true,
		},
		{
			Name:        "Defend",
			Description: "Gain 5 block.",
			Cost:        1,
			Block:       5,
		},
		{
			Name:           "Bash",
			Description:    "Deal 7 damage. Gain 5 block.",
			Cost:           2,
			Damage:         7,
			Block:          5,
			RequiresTarget: true,
		},
		{
			Name:           "Neutralize",
			Description:    "Deal 3 damage. Apply 1 weak. Apply 2 vulnerable.",
			Cost:           0,
			Damage:         3,
			Inflict:        map[entity.StatusKind]int{entity.Weak: 1, entity.Vulnerable: 2},
			RequiresTarget: true,
		},
		{
			Name:        "Survivor",
			Description: "Gain 8 block and 1 strength.",
			Cost:        1,
			Block:       8,
			Gain:        map[entity.StatusKind]int{entity.Strength: 1},
		},
		{
			Name:           "Pommel Strike",
			Description:    "Deal 4 damage. Draw 1 card.",
			Cost:           1,
			Damage:         4,
			Draw:           1,
			RequiresTarget: true,
		},
		{
			Name:        "Warcry",
			Description: "Draw 1 card. Exhaust.",
			Cost:        0,
			Draw:        1,
			Exhausts:    true,
		},
	}

	out := make(Catalog, len(cards))
	for _, c := range cards {
		out[c.Name] = c
	}
	return out
}

// BuiltinCharacters returns the default starting characters.
func BuiltinCharacters() map[string]Character {
	return map[string]Character{
		"ironclad": {
			Name:  "ironclad",
			MaxHP: 80,
			Deck: []string{
				"Strike", "Strike", "Strike", "Strike", "Strike",
				"Defend", "Defend", "Defend", "Defend",
				"Bash",
			},
		},
		"silent": {
			Name:  "silent",
			MaxHP: 70,
			Deck: []string{
				"Strike", "Strike", "Strike", "Strike", "Strike",
				"Defend", "Defend", "Defend", "Defend", "Defend",
				"Neutralize", "Survivor",
			},
		},
	}
}
