package combat

import (
	"github.com/smp46/slaythecli/internal/entity"
	"github.com/smp46/slaythecli/internal/monster"
	"github.com/smp46/slaythecli/internal/telemetry"
)

// PlayCard plays the first card in hand with the given name. Targeted cards
// need the ID of a living monster; pass NoTarget otherwise. A rejected play
// changes nothing: the card stays in hand and no energy is spent.
func (s *Session) PlayCard(name string, targetID int) error {
	if s.terminal() {
		return ErrActionAfterTerminal
	}

	idx, ok := s.Piles.FindInHand(name)
	if !ok {
		return ErrCardNotInHand
	}
	c := s.Piles.Hand[idx]

	var target *monster.Monster
	if c.RequiresTarget {
		target = s.monsterByID(targetID)
		if target == nil || target.Entity.Defeated() {
			return ErrInvalidTarget
		}
	}

	if c.Cost > s.Energy {
		return ErrInsufficientEnergy
	}

	s.Energy -= c.Cost
	s.Piles.PlayFromHand(idx)

	s.Player.AddBlock(c.Block)
	for kind, n := range c.Gain {
		s.Player.ApplyStatus(kind, n)
	}
	if c.Draw > 0 {
		s.Piles.DrawCards(c.Draw, s.rng)
	}

	dealt := 0
	if target != nil {
		// Statuses land before damage, so a card's own vulnerable
		// amplifies its own hit.
		for kind, n := range c.Inflict {
			target.Entity.ApplyStatus(kind, n)
			s.record(telemetry.EventStatusApplied, telemetry.EventMetadata{
				"status": string(kind),
				"amount": n,
				"target": target.Entity.Name,
				"turn":   s.Turn,
			})
		}
		dealt = entity.DamageDealt(s.Player, target.Entity, c.Damage)
		target.Entity.ApplyDamage(dealt)
	}

	s.record(telemetry.EventCardPlayed, telemetry.EventMetadata{
		"card":   c.Name,
		"cost":   c.Cost,
		"damage": dealt,
		"turn":   s.Turn,
	})
	if c.Exhausts {
		s.record(telemetry.EventCardExhausted, telemetry.EventMetadata{
			"card": c.Name,
			"turn": s.Turn,
		})
	}

	s.checkVictory()
	return nil
}

// EndTurn discards the hand and resolves the monster turn: each living
// monster, in list order, runs turn-start upkeep and then executes its
// telegraphed intent. If the player survives, a new player turn begins with
// reset block and energy, a fresh hand, and new telegraphs.
func (s *Session) EndTurn() error {
	if s.terminal() {
		return ErrActionAfterTerminal
	}

	s.Piles.DiscardHand()
	s.Phase = PhaseMonsterTurn
	s.record(telemetry.EventTurnEnded, telemetry.EventMetadata{"turn": s.Turn})

	for _, m := range s.Monsters {
		if m.Entity.Defeated() {
			continue
		}
		m.Entity.StartTurn()
	}

	for _, m := range s.Monsters {
		if m.Entity.Defeated() {
			continue
		}

		m.Entity.AddBlock(m.Intent.Block)
		for kind, n := range m.Intent.Inflict {
			s.Player.ApplyStatus(kind, n)
			s.record(telemetry.EventStatusApplied, telemetry.EventMetadata{
				"status": string(kind),
				"amount": n,
				"target": s.Player.Name,
				"turn":   s.Turn,
			})
		}

		dealt := 0
		if m.Intent.Damage > 0 {
			dealt = entity.DamageDealt(m.Entity, s.Player, m.Intent.Damage)
			s.Player.ApplyDamage(dealt)
		}

		s.record(telemetry.EventMonsterAction, telemetry.EventMetadata{
			"monster": m.Entity.Name,
			"id":      m.ID,
			"intent":  m.Intent.Name,
			"damage":  dealt,
			"turn":    s.Turn,
		})

		if s.Player.Defeated() {
			s.Phase = PhaseDefeat
			s.record(telemetry.EventDefeat, telemetry.EventMetadata{"turn": s.Turn})
			return nil
		}
	}

	s.startPlayerTurn()
	return nil
}

func (s *Session) startPlayerTurn() {
	s.Phase = PhasePlayerTurn
	s.Turn++
	s.Player.StartTurn()
	s.Energy = s.energyPerTurn
	s.Piles.DrawCards(s.handSize, s.rng)
	for _, m := range s.Monsters {
		if m.Entity.Defeated() {
			continue
		}
		m.Roll(s.rng)
	}
}

func (s *Session) checkVictory() {
	for _, m := range s.Monsters {
		if !m.Entity.Defeated() {
			return
		}
	}
	s.Phase = PhaseVictory
	s.record(telemetry.EventVictory, telemetry.EventMetadata{"turn": s.Turn})
}
