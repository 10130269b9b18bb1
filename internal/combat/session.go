package combat

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/smp46/slaythecli/internal/card"
	"github.com/smp46/slaythecli/internal/deck"
	"github.com/smp46/slaythecli/internal/entity"
	"github.com/smp46/slaythecli/internal/monster"
	"github.com/smp46/slaythecli/internal/telemetry"
)

// Phase is the combat state machine. A session starts in PhasePlayerTurn and
// passes through PhaseMonsterTurn inside EndTurn; PhaseVictory and
// PhaseDefeat are terminal.
type Phase string

const (
	PhasePlayerTurn  Phase = "player_turn"
	PhaseMonsterTurn Phase = "monster_turn"
	PhaseVictory     Phase = "victory"
	PhaseDefeat      Phase = "defeat"
)

// Command rejections. All leave the session untouched.
var (
	ErrInsufficientEnergy  = errors.New("insufficient energy")
	ErrInvalidTarget       = errors.New("invalid target")
	ErrCardNotInHand       = errors.New("card not in hand")
	ErrActionAfterTerminal = errors.New("combat has ended")
)

// NoTarget is the target ID for cards that do not take one.
const NoTarget = -1

const (
	DefaultEnergyPerTurn = 3
	DefaultHandSize      = 5
)

// MonsterSpec names one monster to spawn at combat start.
type MonsterSpec struct {
	Kind  string `json:"kind" yaml:"kind"`
	MaxHP int    `json:"max_hp" yaml:"max_hp"`
}

// Options configures a new combat session. Deck and Monsters are required;
// everything else has a default.
type Options struct {
	ID         string
	PlayerName string
	// Player carries an existing entity into the combat (HP persists across
	// encounters in a run). When nil, a fresh entity is built from MaxHP.
	Player   *entity.Entity
	MaxHP    int
	Deck     []card.Card
	Monsters []MonsterSpec

	EnergyPerTurn int
	HandSize      int

	// RNG drives shuffles and monster behavior. Defaults to a time-seeded
	// source; inject a fixed seed for reproducible combats.
	RNG *rand.Rand
	// Events receives telemetry. Optional; recording is best-effort.
	Events telemetry.Recorder
}

// Session is one combat: a player, their piles, and a set of monsters. It is
// exclusively owned by its caller and all methods are synchronous; nothing
// here is safe for concurrent use.
type Session struct {
	ID       string
	Phase    Phase
	Turn     int
	Energy   int
	Player   *entity.Entity
	Piles    *deck.Piles
	Monsters []*monster.Monster

	energyPerTurn int
	handSize      int
	rng           *rand.Rand
	events        telemetry.Recorder
}

// NewSession assembles a combat and runs the first turn start: the deck is
// shuffled, the opening hand drawn, energy set, and every monster telegraphs
// its first action.
func NewSession(opts Options) (*Session, error) {
	if len(opts.Deck) == 0 {
		return nil, errors.New("combat needs a deck")
	}
	if len(opts.Monsters) == 0 {
		return nil, errors.New("combat needs at least one monster")
	}

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	energy := opts.EnergyPerTurn
	if energy <= 0 {
		energy = DefaultEnergyPerTurn
	}
	handSize := opts.HandSize
	if handSize <= 0 {
		handSize = DefaultHandSize
	}

	player := opts.Player
	if player == nil {
		name := opts.PlayerName
		if name == "" {
			name = "player"
		}
		if opts.MaxHP <= 0 {
			return nil, errors.New("combat needs a player max HP")
		}
		player = entity.New(name, opts.MaxHP)
	}
	if player.Defeated() {
		return nil, errors.New("player is already defeated")
	}

	monsters := make([]*monster.Monster, 0, len(opts.Monsters))
	for i, spec := range opts.Monsters {
		if spec.MaxHP <= 0 {
			return nil, fmt.Errorf("monster %d (%s) needs a max HP", i, spec.Kind)
		}
		m, err := monster.Spawn(i, spec.Kind, spec.MaxHP, rng)
		if err != nil {
			return nil, err
		}
		monsters = append(monsters, m)
	}

	s := &Session{
		ID:            id,
		Phase:         PhasePlayerTurn,
		Turn:          1,
		Energy:        energy,
		Player:        player,
		Piles:         deck.New(opts.Deck, rng),
		Monsters:      monsters,
		energyPerTurn: energy,
		handSize:      handSize,
		rng:           rng,
		events:        opts.Events,
	}

	s.Piles.DrawCards(s.handSize, s.rng)
	for _, m := range s.Monsters {
		m.Roll(s.rng)
	}

	s.record(telemetry.EventSessionStarted, telemetry.EventMetadata{
		"player":   s.Player.Name,
		"monsters": len(s.Monsters),
		"deck":     s.Piles.InPlay(),
	})

	return s, nil
}

func (s *Session) terminal() bool {
	return s.Phase == PhaseVictory || s.Phase == PhaseDefeat
}

func (s *Session) monsterByID(id int) *monster.Monster {
	for _, m := range s.Monsters {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (s *Session) record(t telemetry.EventType, meta telemetry.EventMetadata) {
	if s.events == nil {
		return
	}
	_ = s.events.RecordEvent(s.ID, t, meta)
}
