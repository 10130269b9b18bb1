package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smp46/slaythecli/internal/entity"
)

func TestDefault_FillsEverything(t *testing.T) {
	c := Default()

	assert.Equal(t, 3, c.Balance.EnergyPerTurn)
	assert.Equal(t, 5, c.Balance.HandSize)
	require.Len(t, c.Encounters, 3)
	assert.Equal(t, "louse", c.Encounters[0].Monsters[0].Kind)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
balance:
  energy_per_turn: 4
cards:
  - name: Uppercut
    description: Deal 13 damage. Apply 1 weak.
    cost: 2
    damage: 13
    inflict:
      weak: 1
    requires_target: true
characters:
  - name: brawler
    max_hp: 60
    deck: [Uppercut, Strike, Strike]
encounters:
  - monsters:
      - kind: cultist
        max_hp: 40
`), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Balance.EnergyPerTurn)
	assert.Equal(t, 5, c.Balance.HandSize, "unset fields keep defaults")

	catalog, err := c.Catalog()
	require.NoError(t, err)
	up, ok := catalog.Get("Uppercut")
	require.True(t, ok)
	assert.Equal(t, 13, up.Damage)
	assert.Equal(t, 1, up.Inflict[entity.Weak])
	_, ok = catalog.Get("Strike")
	assert.True(t, ok, "built-ins survive the merge")

	chars, err := c.CharacterMap()
	require.NoError(t, err)
	require.Contains(t, chars, "brawler")
	assert.Equal(t, 60, chars["brawler"].MaxHP)
	require.Contains(t, chars, "ironclad")

	encounters := c.RunEncounters()
	require.Len(t, encounters, 1)
	assert.Equal(t, "cultist", encounters[0].Monsters[0].Kind)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCatalog_RejectsInvalidCard(t *testing.T) {
	c := Default()
	c.Cards = []CardConfig{{Name: "Hex", Inflict: map[string]int{"confusion": 1}}}

	_, err := c.Catalog()
	assert.Error(t, err)
}

func TestCharacterMap_Rejections(t *testing.T) {
	c := Default()
	c.Characters = []CharacterConfig{{MaxHP: 10, Deck: []string{"Strike"}}}
	_, err := c.CharacterMap()
	assert.Error(t, err, "nameless character")

	c.Characters = []CharacterConfig{{Name: "ghost", Deck: []string{"Strike"}}}
	_, err = c.CharacterMap()
	assert.Error(t, err, "character without HP")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SLAYTHECLI_ADDR", ":9999")
	t.Setenv("SLAYTHECLI_SEED", "42")

	e, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9999", e.Addr)
	assert.Equal(t, int64(42), e.Seed)
	assert.Equal(t, "info", e.LogLevel, "defaults apply to unset vars")
}
