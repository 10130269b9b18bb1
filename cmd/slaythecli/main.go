package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/smp46/slaythecli/internal/card"
	"github.com/smp46/slaythecli/internal/combat"
	"github.com/smp46/slaythecli/internal/config"
	"github.com/smp46/slaythecli/internal/run"
)

func main() {
	character := flag.String("character", "ironclad", "starting character")
	configPath := flag.String("config", "", "optional YAML config path")
	seed := flag.Int64("seed", 0, "RNG seed (0 = random)")
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
		names := make([]string, 0, len(characters))
		for name := range characters {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(os.Stderr, "unknown character %q (have: %s)\n", *character, strings.Join(names, ", "))
		os.Exit(1)
	}

	r, err := run.New(run.Options{
		Character:     char,
		Catalog:       catalog,
		Encounters:    cfg.RunEncounters(),
		EnergyPerTurn: cfg.Balance.EnergyPerTurn,
		HandSize:      cfg.Balance.HandSize,
		Seed:          *seed,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g := &game{run: r, catalog: catalog, in: bufio.NewScanner(os.Stdin)}
	g.play()
}

type game struct {
	run     *run.Run
	catalog card.Catalog
	in      *bufio.Scanner
}

func (g *game) play() {
	for g.run.State == run.StateInProgress {
		s, err := g.run.StartEncounter()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println("New encounter!")
		display(s.Snapshot())

		for s.Phase == combat.PhasePlayerTurn {
			fmt.Print("> ")
			if !g.in.Scan() {
				return
			}
			g.dispatch(s, strings.Fields(strings.TrimSpace(g.in.Text())))
		}

		switch s.Phase {
		case combat.PhaseVictory:
			fmt.Println("You win the encounter!")
		case combat.PhaseDefeat:
			fmt.Println("You have been defeated. Game over.")
		}
		if err := g.run.FinishEncounter(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if g.run.State == run.StateWon {
		fmt.Println("You win the game!")
	}
}

func (g *game) dispatch(s *combat.Session, args []string) {
	if len(args) == 0 {
		return
	}
	switch args[0] {
	case "play":
		g.cmdPlay(s, args[1:])
	case "end":
		if err := s.EndTurn(); err != nil {
			fmt.Println(err)
			return
		}
		if s.Phase == combat.PhasePlayerTurn {
			display(s.Snapshot())
		}
	case "inspect":
		g.cmdInspect(s, args[1:])
	case "describe":
		g.cmdDescribe(args[1:])
	case "status":
		display(s.Snapshot())
	case "help":
		printHelp()
	case "quit", "exit":
		os.Exit(0)
	default:
		fmt.Printf("unknown command %q (try help)\n", args[0])
	}
}

func (g *game) cmdPlay(s *combat.Session, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: play <card> [target]")
		return
	}

	target := combat.NoTarget
	if n, err := strconv.Atoi(args[len(args)-1]); err == nil && len(args) > 1 {
		target = n
		args = args[:len(args)-1]
	}
	name := strings.Join(args, " ")

	if err := s.PlayCard(name, target); err != nil {
		fmt.Println("Card application failed:", err)
		return
	}
	display(s.Snapshot())
}

func (g *game) cmdInspect(s *combat.Session, args []string) {
	if len(args) == 0 {
		fmt.Println("usage: inspect draw|hand|discard|exhaust")
		return
	}
	snap := s.Snapshot()
	var pile []card.Card
	switch args[0] {
	case "draw":
		pile = snap.Piles.Draw
	case "hand":
		pile = snap.Piles.Hand
	case "discard":
		pile = snap.Piles.Discard
	case "exhaust":
		pile = snap.Piles.Exhaust
	default:
		fmt.Printf("unknown pile %q\n", args[0])
		return
	}
	if len(pile) == 0 {
		fmt.Println("(empty)")
		return
	}
	for _, c := range pile {
		fmt.Printf("  %s (%d)\n", c.Name, c.Cost)
	}
}

func (g *game) cmdDescribe(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: describe <card>")
		return
	}
	name := strings.Join(args, " ")
	def, ok := g.catalog.Get(name)
	if !ok {
		fmt.Printf("unknown card %q\n", name)
		return
	}
	fmt.Printf("%s: %s\n", def.Name, def.Description)
}

func printHelp() {
	fmt.Println(`commands:
  play <card> [target]   play a card from your hand
  end                    end your turn
  inspect <pile>         show draw, hand, discard, or exhaust
  describe <card>        show a card's description
  status                 redraw the encounter
  quit`)
}
