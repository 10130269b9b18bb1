package server

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/smp46/slaythecli/internal/card"
	"github.com/smp46/slaythecli/internal/combat"
	"github.com/smp46/slaythecli/internal/config"
	"github.com/smp46/slaythecli/internal/telemetry"
)

// App holds the in-memory state for the server.
// This makes it obvious what the handlers depend on.
type App struct {
	Sessions   combat.Repository
	Events     telemetry.Repository
	Catalog    card.Catalog
	Characters map[string]card.Character
	Cfg        *config.Config

	// Seed, when non-zero, makes session RNGs reproducible: session n gets
	// Seed+n. Zero means time-seeded.
	Seed int64

	// mu serializes combat commands. Sessions are single-owner state; the
	// store is concurrent-safe but the sessions themselves are not.
	mu   sync.Mutex
	next int64
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// commandStatus maps combat rejections onto HTTP statuses.
func commandStatus(err error) int {
	switch {
	case errors.Is(err, combat.ErrActionAfterTerminal):
		return http.StatusConflict
	case errors.Is(err, combat.ErrInsufficientEnergy),
		errors.Is(err, combat.ErrInvalidTarget),
		errors.Is(err, combat.ErrCardNotInHand):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (app *App) sessionRNG() *rand.Rand {
	if app.Seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	app.next++
	return rand.New(rand.NewSource(app.Seed + app.next))
}

func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	// Card catalog
	Handle(mux, rr, "GET /api/catalog", "List card definitions", "", func(w http.ResponseWriter, r *http.Request) {
		cards := make([]card.Card, 0, len(app.Catalog))
		for _, c := range app.Catalog {
			cards = append(cards, c)
		}
		sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })
		writeJSON(w, http.StatusOK, cards)
	})

	// Characters
	Handle(mux, rr, "GET /api/characters", "List starting characters", "", func(w http.ResponseWriter, r *http.Request) {
		chars := make([]card.Character, 0, len(app.Characters))
		for _, c := range app.Characters {
			chars = append(chars, c)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i].Name < chars[j].Name })
		writeJSON(w, http.StatusOK, chars)
	})

	// Start a combat session
	Handle(mux, rr, "POST /api/sessions", "Start a combat session",
		`{"character":"ironclad","monsters":[{"kind":"louse","max_hp":10}]}`,
		func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Character string               `json:"character"`
				Monsters  []combat.MonsterSpec `json:"monsters"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}

			char, ok := app.Characters[body.Character]
			if !ok {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown character: " + body.Character})
				return
			}
			deck, err := app.Catalog.BuildDeck(char.Deck)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}

			monsters := body.Monsters
			if len(monsters) == 0 && len(app.Cfg.Encounters) > 0 {
				monsters = app.Cfg.Encounters[0].Monsters
			}

			app.mu.Lock()
			defer app.mu.Unlock()

			s, err := combat.NewSession(combat.Options{
				PlayerName:    char.Name,
				MaxHP:         char.MaxHP,
				Deck:          deck,
				Monsters:      monsters,
				EnergyPerTurn: app.Cfg.Balance.EnergyPerTurn,
				HandSize:      app.Cfg.Balance.HandSize,
				RNG:           app.sessionRNG(),
				Events:        app.Events,
			})
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			if err := app.Sessions.Put(r.Context(), s); err != nil {
				writeError(w, http.StatusInternalServerError, err)
				return
			}
			writeJSON(w, http.StatusCreated, s.Snapshot())
		})

	// List sessions
	Handle(mux, rr, "GET /api/sessions", "List session ids", "", func(w http.ResponseWriter, r *http.Request) {
		ids, err := app.Sessions.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		sort.Strings(ids)
		writeJSON(w, http.StatusOK, ids)
	})

	// Session snapshot
	Handle(mux, rr, "GET /api/sessions/{id}", "Session snapshot", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()

		s, ok, err := app.Sessions.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		writeJSON(w, http.StatusOK, s.Snapshot())
	})

	// Play a card
	Handle(mux, rr, "POST /api/sessions/{id}/play", "Play a card from hand",
		`{"card":"Strike","target":0}`,
		func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Card   string `json:"card"`
				Target *int   `json:"target"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			target := combat.NoTarget
			if body.Target != nil {
				target = *body.Target
			}

			app.mu.Lock()
			defer app.mu.Unlock()

			s, ok, err := app.Sessions.Get(r.Context(), r.PathValue("id"))
			if err != nil {
				writeError(w, http.StatusInternalServerError, err)
				return
			}
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
				return
			}
			if err := s.PlayCard(body.Card, target); err != nil {
				writeError(w, commandStatus(err), err)
				return
			}
			writeJSON(w, http.StatusOK, s.Snapshot())
		})

	// End turn
	Handle(mux, rr, "POST /api/sessions/{id}/end-turn", "End the player turn", "", func(w http.ResponseWriter, r *http.Request) {
		app.mu.Lock()
		defer app.mu.Unlock()

		s, ok, err := app.Sessions.Get(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		if err := s.EndTurn(); err != nil {
			writeError(w, commandStatus(err), err)
			return
		}
		writeJSON(w, http.StatusOK, s.Snapshot())
	})

	// Tear down a session
	Handle(mux, rr, "DELETE /api/sessions/{id}", "Delete a session", "", func(w http.ResponseWriter, r *http.Request) {
		ok, err := app.Sessions.Delete(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	})

	// Balance stats
	Handle(mux, rr, "GET /api/stats", "Telemetry stats", "", func(w http.ResponseWriter, r *http.Request) {
		events, err := app.Events.GetEvents(time.Time{}, nil)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		stats, err := telemetry.CalculateStats(events, time.Time{})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	})
}
