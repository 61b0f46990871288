// Package snapshot derives and commits daily analytics facts. Rows are
// immutable once committed for their composite key: a repeat write is a
// logged no-op, which makes the daily sweep safe to run zero or many times
// for the same date.
package snapshot

import (
	"context"
	"log/slog"
	"math"

	"github.com/rosterhub/devstore/internal/dependencies/clock"
	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/store"
)

// Engine produces and locks daily analytics rows
type Engine struct {
	store  store.DocumentStore
	clock  clock.Clock
	logger *slog.Logger
}

// NewEngine creates a new snapshot engine
func NewEngine(store store.DocumentStore, clock clock.Clock, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// CommitPlayerDay commits a (date, playerId) row if absent. Returns false if
// a row already exists for the key; the stored value is never overwritten.
func (e *Engine) CommitPlayerDay(st *model.State, date string, playerID model.PlayerID, status model.PlayerStatus, matchDayTag string) bool {
	if st.HasPlayerSnapshot(date, playerID) {
		e.logger.Info("player snapshot skipped (locked)",
			slog.String("date", date),
			slog.String("player_id", string(playerID)),
		)
		return false
	}

	st.DailyPlayerAnalytics = append(st.DailyPlayerAnalytics, model.DailyPlayerAnalytics{
		Date:        date,
		PlayerID:    playerID,
		Status:      status,
		MatchDayTag: matchDayTag,
	})
	e.logger.Info("player snapshot committed",
		slog.String("date", date),
		slog.String("player_id", string(playerID)),
		slog.String("status", string(status)),
	)
	return true
}

// CommitEventDay commits a (date, eventType) aggregate row if absent
func (e *Engine) CommitEventDay(st *model.State, date string, eventType string, count int, totalMinutes int) bool {
	if st.HasEventSnapshot(date, eventType) {
		e.logger.Info("event snapshot skipped (locked)",
			slog.String("date", date),
			slog.String("event_type", eventType),
		)
		return false
	}

	avg := 0
	if count > 0 {
		avg = int(math.Round(float64(totalMinutes) / float64(count)))
	}

	st.DailyEventAnalytics = append(st.DailyEventAnalytics, model.DailyEventAnalytics{
		Date:          date,
		EventType:     eventType,
		Count:         count,
		TotalDuration: totalMinutes,
		AvgDuration:   avg,
	})
	e.logger.Info("event snapshot committed",
		slog.String("date", date),
		slog.String("event_type", eventType),
		slog.Int("count", count),
		slog.Int("total_minutes", totalMinutes),
	)
	return true
}

// SweepDay snapshots the given day: one status row per player and one
// aggregate row per event type occurring on that day. Already-committed keys
// are skipped, so the sweep is idempotent.
func (e *Engine) SweepDay(ctx context.Context, day string) error {
	if err := model.ValidateDate(day); err != nil {
		return err
	}

	return e.store.Update(ctx, func(st *model.State) error {
		for i := range st.Players {
			p := &st.Players[i]
			e.CommitPlayerDay(st, day, p.ID, p.Status, st.PlayerTags[p.ID])
		}

		type agg struct {
			count int
			total int
		}
		byType := map[string]*agg{}
		for i := range st.Events {
			ev := &st.Events[i]
			if ev.Date != day {
				continue
			}
			a := byType[ev.Type]
			if a == nil {
				a = &agg{}
				byType[ev.Type] = a
			}
			a.count++
			a.total += ev.DurationMinutes()
		}
		for eventType, a := range byType {
			e.CommitEventDay(st, day, eventType, a.count, a.total)
		}
		return nil
	})
}

// SetPlayerStatus updates a player's live availability and immediately
// commits today's snapshot so same-day dashboards aren't blank. On a
// transition to the fully-available status the player's same-day wellness
// reason and notes are cleared as part of the same operation.
func (e *Engine) SetPlayerStatus(ctx context.Context, playerID model.PlayerID, status model.PlayerStatus) error {
	today := e.clock.Now().Format(model.DateLayout)

	return e.store.Update(ctx, func(st *model.State) error {
		player := st.FindPlayer(playerID)
		if player == nil {
			return model.ErrPlayerNotFound
		}

		player.Status = status
		e.CommitPlayerDay(st, today, playerID, status, st.PlayerTags[playerID])

		if status == model.StatusAvailable {
			if entry := st.WellnessSettings[playerID]; entry != nil && entry.Date == today {
				entry.Reason = ""
				entry.Notes = nil
			}
		}
		return nil
	})
}
