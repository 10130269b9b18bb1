package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smp46/slaythecli/internal/card"
	"github.com/smp46/slaythecli/internal/combat"
	"github.com/smp46/slaythecli/internal/entity"
)

func newTestRun(t *testing.T, encounters []Encounter) *Run {
	t.Helper()
	r, err := New(Options{
		Character: card.Character{
			Name:  "hero",
			MaxHP: 50,
			Deck:  []string{"Strike", "Strike", "Strike", "Strike", "Strike", "Defend", "Defend"},
		},
		Catalog:    card.Builtin(),
		Encounters: encounters,
		Seed:       11,
	})
	require.NoError(t, err)
	return r
}

func weakMonster() []combat.MonsterSpec {
	return []combat.MonsterSpec{{Kind: "louse", MaxHP: 6}}
}

// winFight plays Strikes at monster 0 until the fight ends, ending turns as
// energy runs out.
func winFight(t *testing.T, s *combat.Session) {
	t.Helper()
	for i := 0; i < 100 && s.Phase == combat.PhasePlayerTurn; i++ {
		err := s.PlayCard("Strike", 0)
		switch {
		case err == nil:
			continue
		case s.Phase != combat.PhasePlayerTurn:
			return
		default:
			require.NoError(t, s.EndTurn())
		}
	}
	require.Equal(t, combat.PhaseVictory, s.Phase)
}

func TestNew_Rejections(t *testing.T) {
	_, err := New(Options{Catalog: card.Builtin(), Character: card.Character{Deck: []string{"Strike"}}})
	assert.Error(t, err, "no encounters")

	_, err = New(Options{
		Catalog:    card.Builtin(),
		Character:  card.Character{Name: "hero", MaxHP: 50, Deck: []string{"Nope"}},
		Encounters: []Encounter{{Monsters: weakMonster()}},
	})
	assert.Error(t, err, "deck references unknown card")
}

func TestRun_WinsAfterLastEncounter(t *testing.T) {
	r := newTestRun(t, []Encounter{
		{Monsters: weakMonster()},
		{Monsters: weakMonster()},
	})

	for r.State == StateInProgress {
		s, err := r.StartEncounter()
		require.NoError(t, err)
		winFight(t, s)
		require.NoError(t, r.FinishEncounter())
	}

	assert.Equal(t, StateWon, r.State)
	assert.Equal(t, 0, r.Remaining())
}

func TestRun_HPCarriesOverAndStatusesDoNot(t *testing.T) {
	r := newTestRun(t, []Encounter{
		{Monsters: []combat.MonsterSpec{{Kind: "cultist", MaxHP: 20}}},
		{Monsters: weakMonster()},
	})

	s, err := r.StartEncounter()
	require.NoError(t, err)

	// Let the cultist ramp once so the player takes a hit and picks up weak.
	require.NoError(t, s.EndTurn())
	require.NoError(t, s.EndTurn())
	require.Less(t, s.Player.HP, 50)

	winFight(t, s)
	hp := s.Player.HP
	require.NoError(t, r.FinishEncounter())

	next, err := r.StartEncounter()
	require.NoError(t, err)
	assert.Equal(t, hp, next.Player.HP, "damage persists between fights")
	assert.Empty(t, next.Player.Status, "statuses do not")
	assert.Equal(t, 0, next.Player.Block)
}

func TestRun_DefeatEndsRun(t *testing.T) {
	r := newTestRun(t, []Encounter{
		{Monsters: []combat.MonsterSpec{{Kind: "louse", MaxHP: 100}}},
	})

	s, err := r.StartEncounter()
	require.NoError(t, err)
	for s.Phase == combat.PhasePlayerTurn {
		require.NoError(t, s.EndTurn())
	}
	require.Equal(t, combat.PhaseDefeat, s.Phase)
	require.NoError(t, r.FinishEncounter())

	assert.Equal(t, StateLost, r.State)
	_, err = r.StartEncounter()
	assert.Error(t, err, "a lost run cannot continue")
}

func TestRun_ExhaustedCardsStayGone(t *testing.T) {
	catalog := card.Builtin()
	r, err := New(Options{
		Character: card.Character{
			Name:  "hero",
			MaxHP: 50,
			Deck:  []string{"Warcry", "Strike", "Strike"},
		},
		Catalog: catalog,
		Encounters: []Encounter{
			{Monsters: weakMonster()},
			{Monsters: weakMonster()},
		},
		Seed: 3,
	})
	require.NoError(t, err)

	s, err := r.StartEncounter()
	require.NoError(t, err)
	require.NoError(t, s.PlayCard("Warcry", combat.NoTarget))
	winFight(t, s)
	require.NoError(t, r.FinishEncounter())

	next, err := r.StartEncounter()
	require.NoError(t, err)
	assert.Equal(t, 2, next.Piles.InPlay(), "the exhausted card left the run")
	_, found := next.Piles.FindInHand("Warcry")
	assert.False(t, found)
}

func TestRun_FinishRequiresEndedEncounter(t *testing.T) {
	r := newTestRun(t, []Encounter{{Monsters: weakMonster()}})

	assert.Error(t, r.FinishEncounter(), "nothing started yet")

	_, err := r.StartEncounter()
	require.NoError(t, err)
	assert.Error(t, r.FinishEncounter(), "fight still running")

	_, err = r.StartEncounter()
	assert.Error(t, err, "one encounter at a time")
}

func TestRun_PlayerEntityIsShared(t *testing.T) {
	r := newTestRun(t, []Encounter{{Monsters: weakMonster()}})

	s, err := r.StartEncounter()
	require.NoError(t, err)

	s.Player.ApplyStatus(entity.Strength, 1)
	assert.Equal(t, 1, r.Player.StatusAmount(entity.Strength))
}
