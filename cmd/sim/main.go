// Command sim plays full runs headlessly with a simple greedy policy and
// prints balance stats from the recorded telemetry. Useful for checking how
// card or encounter tweaks shift win rates before trying them by hand.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/smp46/slaythecli/internal/card"
	"github.com/smp46/slaythecli/internal/combat"
	"github.com/smp46/slaythecli/internal/config"
	"github.com/smp46/slaythecli/internal/run"
	"github.com/smp46/slaythecli/internal/telemetry"
)

const maxTurnsPerFight = 200

func main() {
	runs := flag.Int("runs", 100, "number of runs to simulate")
	character := flag.String("character", "ironclad", "character to play")
	configPath := flag.String("config", "", "optional YAML config path")
	seed := flag.Int64("seed", 1, "base RNG seed (run i uses seed+i)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	characters, err := cfg.CharacterMap()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	char, ok := characters[*character]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown character %q\n", *character)
		os.Exit(1)
	}

	events := telemetry.NewMemoryRepository()
	for i := 0; i < *runs; i++ {
		if err := simulate(char, catalog, cfg, *seed+int64(i), events); err != nil {
			fmt.Fprintf(os.Stderr, "run %d: %v\n", i, err)
			os.Exit(1)
		}
	}

	all, err := events.GetEvents(time.Time{}, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	stats, err := telemetry.CalculateStats(all, time.Time{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func simulate(char card.Character, catalog card.Catalog, cfg *config.Config, seed int64, events telemetry.Recorder) error {
	r, err := run.New(run.Options{
		Character:     char,
		Catalog:       catalog,
		Encounters:    cfg.RunEncounters(),
		EnergyPerTurn: cfg.Balance.EnergyPerTurn,
		HandSize:      cfg.Balance.HandSize,
		Seed:          seed,
		Events:        events,
	})
	if err != nil {
		return err
	}

	for r.State == run.StateInProgress {
		s, err := r.StartEncounter()
		if err != nil {
			return err
		}
		if err := playOut(s); err != nil {
			return err
		}
		if err := r.FinishEncounter(); err != nil {
			return err
		}
	}
	return nil
}

// playOut drives one fight with a greedy policy: play any affordable attack
// at the first living monster, then any other affordable card, then end the
// turn. The turn cap guards against degenerate stalls in modded configs.
func playOut(s *combat.Session) error {
	for turns := 0; s.Phase == combat.PhasePlayerTurn; turns++ {
		if turns >= maxTurnsPerFight {
			return fmt.Errorf("fight exceeded %d turns", maxTurnsPerFight)
		}
		for s.Phase == combat.PhasePlayerTurn {
			name, target, ok := pick(s)
			if !ok {
				break
			}
			if err := s.PlayCard(name, target); err != nil {
				return err
			}
		}
		if s.Phase != combat.PhasePlayerTurn {
			return nil
		}
		if err := s.EndTurn(); err != nil {
			return err
		}
	}
	return nil
}

func pick(s *combat.Session) (string, int, bool) {
	target := -1
	for _, m := range s.Monsters {
		if !m.Entity.Defeated() {
			target = m.ID
			break
		}
	}

	var fallback *card.Card
	for i := range s.Piles.Hand {
		c := &s.Piles.Hand[i]
		if c.Cost > s.Energy {
			continue
		}
		if c.RequiresTarget {
			if target >= 0 {
				return c.Name, target, true
			}
			continue
		}
		if fallback == nil {
			fallback = c
		}
	}
	if fallback != nil {
		return fallback.Name, combat.NoTarget, true
	}
	return "", 0, false
}
