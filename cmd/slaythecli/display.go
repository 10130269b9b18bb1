package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smp46/slaythecli/internal/combat"
	"github.com/smp46/slaythecli/internal/entity"
	"github.com/smp46/slaythecli/internal/monster"
)

func display(s combat.Snapshot) {
	fmt.Printf("--- turn %d | energy %d ---\n", s.Turn, s.Energy)
	fmt.Printf("%s\n", entityLine(s.Player))
	for _, m := range s.Monsters {
		if m.Defeated {
			fmt.Printf("  [%d] %s (defeated)\n", m.ID, m.Entity.Name)
			continue
		}
		fmt.Printf("  [%d] %s | intends: %s\n", m.ID, entityLine(m.Entity), intentLine(m.Intent))
	}
	fmt.Println("hand:")
	for _, c := range s.Piles.Hand {
		fmt.Printf("  %s (%d) - %s\n", c.Name, c.Cost, c.Description)
	}
	fmt.Printf("draw %d | discard %d | exhaust %d\n",
		len(s.Piles.Draw), len(s.Piles.Discard), len(s.Piles.Exhaust))
}

func entityLine(e *entity.Entity) string {
	line := fmt.Sprintf("%s %d/%d HP", e.Name, e.HP, e.MaxHP)
	if e.Block > 0 {
		line += fmt.Sprintf(" (%d block)", e.Block)
	}
	if statuses := statusLine(e.Status); statuses != "" {
		line += " [" + statuses + "]"
	}
	return line
}

func statusLine(status map[entity.StatusKind]int) string {
	if len(status) == 0 {
		return ""
	}
	parts := make([]string, 0, len(status))
	for kind, amount := range status {
		parts = append(parts, fmt.Sprintf("%s %d", kind, amount))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func intentLine(in monster.Intent) string {
	parts := []string{in.Name}
	if in.Damage > 0 {
		parts = append(parts, fmt.Sprintf("%d damage", in.Damage))
	}
	if in.Block > 0 {
		parts = append(parts, fmt.Sprintf("%d block", in.Block))
	}
	for kind, amount := range in.Inflict {
		parts = append(parts, fmt.Sprintf("%s %d", kind, amount))
	}
	return strings.Join(parts, ", ")
}
