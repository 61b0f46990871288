// Package notify materializes per-recipient notification rows. Downstream
// delivery polls rows by recipient id; this package's only contract is one
// row per recipient, queryable by userId.
package notify

import (
	"context"
	"log/slog"

	"github.com/rosterhub/devstore/internal/dependencies/clock"
	"github.com/rosterhub/devstore/internal/dependencies/identifier"
	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/store"
)

// Service creates and queries notification rows
type Service struct {
	store  store.DocumentStore
	ids    identifier.Source
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new notification service
func New(store store.DocumentStore, ids identifier.Source, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// FanOut appends one notification row per recipient id to the given state.
// Empty and duplicate recipient ids are skipped. It operates on state rather
// than the store so callers can compose it into a larger single operation.
func (s *Service) FanOut(st *model.State, recipientIDs []string, title, message, category string) []model.Notification {
	seen := map[string]bool{}
	created := make([]model.Notification, 0, len(recipientIDs))
	now := s.clock.Now()

	for _, recipient := range recipientIDs {
		if recipient == "" || seen[recipient] {
			continue
		}
		seen[recipient] = true

		n := model.Notification{
			ID:        model.NotificationID(s.ids.NewID()),
			UserID:    recipient,
			Title:     title,
			Message:   message,
			Category:  category,
			IsRead:    false,
			CreatedAt: now,
		}
		st.Notifications = append(st.Notifications, n)
		created = append(created, n)
	}

	if len(created) > 0 {
		s.logger.Info("notifications created",
			slog.String("category", category),
			slog.Int("recipients", len(created)),
		)
	}
	return created
}

// ForUser returns the notifications addressed to the given recipient id,
// newest last.
func (s *Service) ForUser(ctx context.Context, userID string) []model.Notification {
	st := s.store.Load(ctx)

	var out []model.Notification
	for _, n := range st.Notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkRead marks one of the recipient's notifications as read
func (s *Service) MarkRead(ctx context.Context, userID string, id model.NotificationID) error {
	return s.store.Update(ctx, func(st *model.State) error {
		for i := range st.Notifications {
			n := &st.Notifications[i]
			if n.ID == id && n.UserID == userID {
				n.IsRead = true
				return nil
			}
		}
		return model.ErrNotificationNotFound
	})
}
