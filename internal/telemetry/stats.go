package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period       string            `json:"period"`
	EventCounts  map[EventType]int `json:"event_counts"`
	Sessions     int               `json:"sessions"`
	Victories    int               `json:"victories"`
	Defeats      int               `json:"defeats"`
	WinRate      float64           `json:"win_rate"`
	CardsPlayed  int               `json:"cards_played"`
	CardsPerTurn float64           `json:"cards_per_turn"`
	TurnsEnded   int               `json:"turns_ended"`
	DamageDealt  int               `json:"damage_dealt"`
	DamageTaken  int               `json:"damage_taken"`
	CardUsage    map[string]int    `json:"card_usage"`
}

// CalculateStats computes balance stats from events recorded since a cutoff.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:      since.Format("2006-01-02"),
		EventCounts: make(map[EventType]int),
		CardUsage:   make(map[string]int),
	}

	for _, event := range events {
		if event.Timestamp.Before(since) {
			continue
		}
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventSessionStarted:
			stats.Sessions++
		case EventVictory:
			stats.Victories++
		case EventDefeat:
			stats.Defeats++
		case EventTurnEnded:
			stats.TurnsEnded++
		case EventCardPlayed:
			stats.CardsPlayed++
			if name, ok := metadata["card"].(string); ok {
				stats.CardUsage[name]++
			}
			if dmg, ok := metadata["damage"].(float64); ok {
				stats.DamageDealt += int(dmg)
			}
		case EventMonsterAction:
			if dmg, ok := metadata["damage"].(float64); ok {
				stats.DamageTaken += int(dmg)
			}
		}
	}

	if done := stats.Victories + stats.Defeats; done > 0 {
		stats.WinRate = float64(stats.Victories) / float64(done)
	}
	if stats.TurnsEnded > 0 {
		stats.CardsPerTurn = float64(stats.CardsPlayed) / float64(stats.TurnsEnded)
	}

	return stats, nil
}
