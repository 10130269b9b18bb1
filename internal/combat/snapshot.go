package combat

import (
	"github.com/smp46/slaythecli/internal/deck"
	"github.com/smp46/slaythecli/internal/entity"
	"github.com/smp46/slaythecli/internal/monster"
)

// MonsterView is a monster as the presentation layer sees it: state plus
// telegraph, no behavior.
type MonsterView struct {
	ID       int            `json:"id"`
	Entity   *entity.Entity `json:"entity"`
	Intent   monster.Intent `json:"intent"`
	Defeated bool           `json:"defeated"`
}

// Snapshot is a read-only copy of session state, taken after each command for
// rendering. Mutating a snapshot has no effect on the session.
type Snapshot struct {
	ID       string         `json:"id"`
	Phase    Phase          `json:"phase"`
	Turn     int            `json:"turn"`
	Energy   int            `json:"energy"`
	Player   *entity.Entity `json:"player"`
	Monsters []MonsterView  `json:"monsters"`
	Piles    *deck.Piles    `json:"piles"`
}

func (s *Session) Snapshot() Snapshot {
	monsters := make([]MonsterView, 0, len(s.Monsters))
	for _, m := range s.Monsters {
		monsters = append(monsters, MonsterView{
			ID:       m.ID,
			Entity:   m.Entity.Clone(),
			Intent:   m.Intent,
			Defeated: m.Entity.Defeated(),
		})
	}
	return Snapshot{
		ID:       s.ID,
		Phase:    s.Phase,
		Turn:     s.Turn,
		Energy:   s.Energy,
		Player:   s.Player.Clone(),
		Monsters: monsters,
		Piles:    s.Piles.Clone(),
	}
}
