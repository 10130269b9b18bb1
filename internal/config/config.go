package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smp46/slaythecli/internal/card"
	"github.com/smp46/slaythecli/internal/combat"
	"github.com/smp46/slaythecli/internal/entity"
	"github.com/smp46/slaythecli/internal/run"
)

type Config struct {
	Balance    Balance           `yaml:"balance" json:"balance"`
	Cards      []CardConfig      `yaml:"cards" json:"cards"`
	Characters []CharacterConfig `yaml:"characters" json:"characters"`
	Encounters []EncounterConfig `yaml:"encounters" json:"encounters"`
}

type Balance struct {
	EnergyPerTurn int `yaml:"energy_per_turn" json:"energy_per_turn"`
	HandSize      int `yaml:"hand_size" json:"hand_size"`
}

// CardConfig adds to or overrides the built-in catalog.
type CardConfig struct {
	Name           string         `yaml:"name" json:"name"`
	Description    string         `yaml:"description" json:"description"`
	Cost           int            `yaml:"cost" json:"cost"`
	Damage         int            `yaml:"damage" json:"damage"`
	Block          int            `yaml:"block" json:"block"`
	Draw           int            `yaml:"draw" json:"draw"`
	Gain           map[string]int `yaml:"gain" json:"gain"`
	Inflict        map[string]int `yaml:"inflict" json:"inflict"`
	RequiresTarget bool           `yaml:"requires_target" json:"requires_target"`
	Exhausts       bool           `yaml:"exhausts" json:"exhausts"`
}

type CharacterConfig struct {
	Name  string   `yaml:"name" json:"name"`
	MaxHP int      `yaml:"max_hp" json:"max_hp"`
	Deck  []string `yaml:"deck" json:"deck"`
}

type EncounterConfig struct {
	Monsters []combat.MonsterSpec `yaml:"monsters" json:"monsters"`
}

func (c *Config) ApplyDefaults() {
	if c.Balance.EnergyPerTurn == 0 {
		c.Balance.EnergyPerTurn = combat.DefaultEnergyPerTurn
	}
	if c.Balance.HandSize == 0 {
		c.Balance.HandSize = combat.DefaultHandSize
	}
	if len(c.Encounters) == 0 {
		c.Encounters = []EncounterConfig{
			{Monsters: []combat.MonsterSpec{{Kind: "louse", MaxHP: 10}, {Kind: "louse", MaxHP: 10}}},
			{Monsters: []combat.MonsterSpec{{Kind: "jaw_worm", MaxHP: 30}}},
			{Monsters: []combat.MonsterSpec{{Kind: "cultist", MaxHP: 50}}},
		}
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}

// Catalog merges configured cards over the built-in catalog.
func (c *Config) Catalog() (card.Catalog, error) {
	cat := card.Builtin()
	for _, cc := range c.Cards {
		def := card.Card{
			Name:           cc.Name,
			Description:    cc.Description,
			Cost:           cc.Cost,
			Damage:         cc.Damage,
			Block:          cc.Block,
			Draw:           cc.Draw,
			Gain:           statusMap(cc.Gain),
			Inflict:        statusMap(cc.Inflict),
			RequiresTarget: cc.RequiresTarget,
			Exhausts:       cc.Exhausts,
		}
		if err := def.Validate(); err != nil {
			return nil, err
		}
		cat[def.Name] = def
	}
	return cat, nil
}

// CharacterMap merges configured characters over the built-in ones.
func (c *Config) CharacterMap() (map[string]card.Character, error) {
	chars := card.BuiltinCharacters()
	for _, cc := range c.Characters {
		if cc.Name == "" {
			return nil, fmt.Errorf("character has no name")
		}
		if cc.MaxHP <= 0 {
			return nil, fmt.Errorf("character %s needs a max HP", cc.Name)
		}
		chars[cc.Name] = card.Character{Name: cc.Name, MaxHP: cc.MaxHP, Deck: cc.Deck}
	}
	return chars, nil
}

// RunEncounters converts the configured encounter list for the run package.
func (c *Config) RunEncounters() []run.Encounter {
	out := make([]run.Encounter, 0, len(c.Encounters))
	for _, e := range c.Encounters {
		out = append(out, run.Encounter{Monsters: e.Monsters})
	}
	return out
}

func statusMap(in map[string]int) map[entity.StatusKind]int {
	if len(in) == 0 {
		return nil
	}
	out := make(map[entity.StatusKind]int, len(in))
	for k, v := range in {
		out[entity.StatusKind(k)] = v
	}
	return out
}
