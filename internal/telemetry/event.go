package telemetry

import "time"

type EventType string

const (
	EventSessionStarted EventType = "session_started"
	EventCardPlayed     EventType = "card_played"
	EventCardExhausted  EventType = "card_exhausted"
	EventStatusApplied  EventType = "status_applied"
	EventTurnEnded      EventType = "turn_ended"
	EventMonsterAction  EventType = "monster_action"
	EventVictory        EventType = "victory"
	EventDefeat         EventType = "defeat"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id,omitempty"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
