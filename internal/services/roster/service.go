// Package roster is the create/delete entry point for players, staff, and
// events. Creation enforces the cross-kind id uniqueness the identity
// resolver's ordering depends on; deletion delegates to the integrity engine
// inside one store update so cascades are all-or-nothing.
package roster

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rosterhub/devstore/internal/dependencies/clock"
	"github.com/rosterhub/devstore/internal/dependencies/identifier"
	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/services/identity"
	"github.com/rosterhub/devstore/internal/services/integrity"
	"github.com/rosterhub/devstore/internal/store"
)

// Service manages roster entities
type Service struct {
	store     store.DocumentStore
	integrity *integrity.Engine
	ids       identifier.Source
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a new roster service
func New(
	store store.DocumentStore,
	integrityEngine *integrity.Engine,
	ids identifier.Source,
	clock clock.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:     store,
		integrity: integrityEngine,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

// CreatePlayer adds a player to the roster
func (s *Service) CreatePlayer(ctx context.Context, name, email, position string) (*model.Player, error) {
	var player model.Player

	err := s.store.Update(ctx, func(st *model.State) error {
		if st.FindPlayerByEmail(email) != nil {
			return model.ErrDuplicateEmail
		}

		id := s.ids.NewID()
		if identity.IDInUse(st, id) {
			return model.ErrIDInUse
		}

		player = model.Player{
			ID:        model.PlayerID(id),
			Name:      name,
			Email:     email,
			Position:  position,
			Status:    model.StatusAvailable,
			CreatedAt: s.clock.Now(),
		}
		st.Players = append(st.Players, player)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("name", player.Name),
	)
	return &player, nil
}

// CreateStaff adds a staff member with its embedded login identity
func (s *Service) CreateStaff(ctx context.Context, name, email, password string, permissions model.StaffPermissions) (*model.Staff, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var staff model.Staff

	err = s.store.Update(ctx, func(st *model.State) error {
		if st.FindStaffByEmail(email) != nil {
			return model.ErrDuplicateEmail
		}

		id := s.ids.NewID()
		userID := s.ids.NewID()
		if identity.IDInUse(st, id) || identity.IDInUse(st, userID) {
			return model.ErrIDInUse
		}

		staff = model.Staff{
			ID:           model.StaffID(id),
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Permissions:  permissions,
			User: model.StaffUser{
				ID:    userID,
				Email: email,
			},
			CreatedAt: s.clock.Now(),
		}
		st.Staff = append(st.Staff, staff)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("staff created",
		slog.String("staff_id", string(staff.ID)),
		slog.String("name", staff.Name),
	)
	return &staff, nil
}

// CreateEvent adds a calendar event with a polymorphic participant list
func (s *Service) CreateEvent(ctx context.Context, title, eventType, date, startTime, endTime string, playerIDs []model.PlayerID, staffIDs []model.StaffID) (*model.Event, error) {
	if err := model.ValidateDate(date); err != nil {
		return nil, err
	}

	var event model.Event

	err := s.store.Update(ctx, func(st *model.State) error {
		id := s.ids.NewID()
		if identity.IDInUse(st, id) {
			return model.ErrIDInUse
		}

		event = model.Event{
			ID:           model.EventID(id),
			Title:        title,
			Type:         eventType,
			Date:         date,
			StartTime:    startTime,
			EndTime:      endTime,
			Participants: []model.EventParticipant{},
			CreatedAt:    s.clock.Now(),
		}
		st.Events = append(st.Events, event)

		if err := s.integrity.ReplaceEventParticipants(st, event.ID, playerIDs, staffIDs); err != nil {
			return err
		}
		event = *st.FindEvent(event.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// UpdateEventParticipants replaces an event's full participant set
func (s *Service) UpdateEventParticipants(ctx context.Context, eventID model.EventID, playerIDs []model.PlayerID, staffIDs []model.StaffID) error {
	return s.store.Update(ctx, func(st *model.State) error {
		return s.integrity.ReplaceEventParticipants(st, eventID, playerIDs, staffIDs)
	})
}

// DeletePlayer removes a player and cascades to every dependent record
func (s *Service) DeletePlayer(ctx context.Context, playerID model.PlayerID) error {
	return s.store.Update(ctx, func(st *model.State) error {
		return s.integrity.DeletePlayer(st, playerID)
	})
}

// DeleteStaff removes a staff member, credential half included
func (s *Service) DeleteStaff(ctx context.Context, staffID model.StaffID) error {
	return s.store.Update(ctx, func(st *model.State) error {
		return s.integrity.DeleteStaff(st, staffID)
	})
}

// Player returns one player by id
func (s *Service) Player(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	st := s.store.Load(ctx)
	p := st.FindPlayer(id)
	if p == nil {
		return nil, model.ErrPlayerNotFound
	}
	result := *p
	return &result, nil
}

// Players returns the full roster
func (s *Service) Players(ctx context.Context) []model.Player {
	return s.store.Load(ctx).Players
}
