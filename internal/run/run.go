package run

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/smp46/slaythecli/internal/card"
	"github.com/smp46/slaythecli/internal/combat"
	"github.com/smp46/slaythecli/internal/entity"
	"github.com/smp46/slaythecli/internal/telemetry"
)

// State tracks a run through its encounter list.
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Encounter is one fight in a run.
type Encounter struct {
	Monsters []combat.MonsterSpec `json:"monsters" yaml:"monsters"`
}

// Options configures a run.
type Options struct {
	Character  card.Character
	Catalog    card.Catalog
	Encounters []Encounter

	EnergyPerTurn int
	HandSize      int
	Seed          int64
	Events        telemetry.Recorder
}

// Run carries one player through an ordered list of encounters. HP persists
// between fights; block and statuses do not. Cards exhausted in a fight are
// gone for the rest of the run.
type Run struct {
	Player     *entity.Entity
	Encounters []Encounter
	Index      int
	State      State

	cards   []card.Card
	opts    Options
	rng     *rand.Rand
	current *combat.Session
}

func New(opts Options) (*Run, error) {
	if len(opts.Encounters) == 0 {
		return nil, errors.New("run needs at least one encounter")
	}
	cards, err := opts.Catalog.BuildDeck(opts.Character.Deck)
	if err != nil {
		return nil, fmt.Errorf("build deck for %s: %w", opts.Character.Name, err)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Run{
		Player:     entity.New(opts.Character.Name, opts.Character.MaxHP),
		Encounters: opts.Encounters,
		State:      StateInProgress,
		cards:      cards,
		opts:       opts,
		rng:        rand.New(rand.NewSource(seed)),
	}, nil
}

// StartEncounter begins the next fight. The player's surviving cards from the
// previous fight become the new deck.
func (r *Run) StartEncounter() (*combat.Session, error) {
	if r.State != StateInProgress {
		return nil, fmt.Errorf("run is over: %s", r.State)
	}
	if r.current != nil {
		return nil, errors.New("an encounter is already in progress")
	}

	r.Player.ClearCombatState()
	s, err := combat.NewSession(combat.Options{
		Player:        r.Player,
		Deck:          r.cards,
		Monsters:      r.Encounters[r.Index].Monsters,
		EnergyPerTurn: r.opts.EnergyPerTurn,
		HandSize:      r.opts.HandSize,
		RNG:           r.rng,
		Events:        r.opts.Events,
	})
	if err != nil {
		return nil, err
	}
	r.current = s
	return s, nil
}

// FinishEncounter settles the current fight. On victory the run advances,
// keeping the cards that were not exhausted; on defeat the run is lost.
func (r *Run) FinishEncounter() error {
	if r.current == nil {
		return errors.New("no encounter in progress")
	}

	switch r.current.Phase {
	case combat.PhaseVictory:
		r.cards = r.current.Piles.Remaining()
		r.current = nil
		r.Index++
		if r.Index >= len(r.Encounters) {
			r.State = StateWon
		}
		return nil
	case combat.PhaseDefeat:
		r.current = nil
		r.State = StateLost
		return nil
	default:
		return errors.New("encounter has not ended")
	}
}

// Remaining reports how many encounters are left, including any in progress.
func (r *Run) Remaining() int {
	return len(r.Encounters) - r.Index
}
