package monster

import (
	"fmt"
	"math/rand"

	"github.com/smp46/slaythecli/internal/entity"
)

// louse bites for a fixed amount between 5 and 7, rolled once when it spawns.
type louse struct {
	bite int
}

func newLouse(rng *rand.Rand) Behavior {
	return &louse{bite: 5 + rng.Intn(3)}
}

func (l *louse) Kind() string { return "louse" }

func (l *louse) Next(*Monster, *rand.Rand) Intent {
	return Intent{
		Name:   fmt.Sprintf("Bite %d", l.bite),
		Damage: l.bite,
	}
}

// cultist ramps: its first action does nothing, then it attacks for 7, 8, 9
// and so on, applying 1 weak on every odd-damage attack.
type cultist struct {
	calls int
}

func (c *cultist) Kind() string { return "cultist" }

func (c *cultist) Next(*Monster, *rand.Rand) Intent {
	defer func() { c.calls++ }()

	if c.calls == 0 {
		return Intent{Name: "Incantation"}
	}

	damage := 6 + c.calls
	intent := Intent{
		Name:   fmt.Sprintf("Dark Strike %d", damage),
		Damage: damage,
	}
	if damage%2 != 0 {
		intent.Inflict = map[entity.StatusKind]int{entity.Weak: 1}
	}
	return intent
}

// jawWorm converts pain into armor: it attacks for half the HP it has lost so
// far (rounded down) and blocks for the other half (rounded up).
type jawWorm struct{}

func (jawWorm) Kind() string { return "jaw_worm" }

func (jawWorm) Next(m *Monster, _ *rand.Rand) Intent {
	lost := m.Entity.MaxHP - m.Entity.HP
	return Intent{
		Name:   fmt.Sprintf("Chomp %d", lost/2),
		Damage: lost / 2,
		Block:  (lost + 1) / 2,
	}
}
