package monster

import (
	"fmt"
	"math/rand"

	"github.com/smp46/slaythecli/internal/entity"
)

// Intent is a monster's telegraphed next action. It is rolled ahead of time
// so the presentation layer can show it before it executes; execution applies
// it exactly as rolled.
type Intent struct {
	Name    string                    `json:"name"`
	Damage  int                       `json:"damage,omitempty"`
	Block   int                       `json:"block,omitempty"` // self block
	Inflict map[entity.StatusKind]int `json:"inflict,omitempty"`
}

// Behavior selects a monster's next action. Implementations draw randomness
// only from the rng they are given, so a combat is reproducible from a seed.
type Behavior interface {
	Kind() string
	Next(m *Monster, rng *rand.Rand) Intent
}

// Monster is one enemy in a combat: an entity plus its action policy and the
// currently telegraphed intent. IDs are assigned per combat, in spawn order.
type Monster struct {
	ID       int            `json:"id"`
	Entity   *entity.Entity `json:"entity"`
	Intent   Intent         `json:"intent"`
	Behavior Behavior       `json:"-"`
}

// Roll telegraphs the monster's next action.
func (m *Monster) Roll(rng *rand.Rand) {
	m.Intent = m.Behavior.Next(m, rng)
}

// Spawn creates a monster of the given kind. The rng seeds any spawn-time
// randomness the behavior has (the louse rolls its bite once, here).
func Spawn(id int, kind string, maxHP int, rng *rand.Rand) (*Monster, error) {
	factory, ok := behaviors[kind]
	if !ok {
		return nil, fmt.Errorf("unknown monster kind: %s", kind)
	}
	return &Monster{
		ID:       id,
		Entity:   entity.New(kind, maxHP),
		Behavior: factory(rng),
	}, nil
}

var behaviors = map[string]func(rng *rand.Rand) Behavior{
	"louse":    newLouse,
	"cultist":  func(*rand.Rand) Behavior { return &cultist{} },
	"jaw_worm": func(*rand.Rand) Behavior { return jawWorm{} },
}

// Kinds lists the known monster kinds.
func Kinds() []string {
	out := make([]string, 0, len(behaviors))
	for k := range behaviors {
		out = append(out, k)
	}
	return out
}
