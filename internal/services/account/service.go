// Package account handles login against the dev store. A player's login
// account is 1:1 with the player row and created lazily on the first login
// attempt; staff credentials live embedded in the staff row.
package account

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rosterhub/devstore/internal/dependencies/clock"
	"github.com/rosterhub/devstore/internal/dependencies/identifier"
	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/store"
)

// Service handles player and staff authentication
type Service struct {
	store  store.DocumentStore
	ids    identifier.Source
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new account service
func New(store store.DocumentStore, ids identifier.Source, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Login authenticates a player by email. If the player has no login account
// yet, one is created with the supplied password; otherwise the password is
// verified against the stored hash. Deactivated accounts are rejected.
func (s *Service) Login(ctx context.Context, email, password string) (*model.PlayerUserAccount, error) {
	var account model.PlayerUserAccount

	err := s.store.Update(ctx, func(st *model.State) error {
		player := st.FindPlayerByEmail(email)
		if player == nil {
			return model.ErrInvalidCredentials
		}

		existing := st.FindAccountForPlayer(player.ID)
		if existing == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			account = model.PlayerUserAccount{
				ID:           model.AccountID(s.ids.NewID()),
				PlayerID:     player.ID,
				Email:        player.Email,
				PasswordHash: string(hash),
				IsActive:     true,
				CreatedAt:    s.clock.Now(),
			}
			st.PlayerUsers = append(st.PlayerUsers, account)

			s.logger.Info("player account created",
				slog.String("player_id", string(player.ID)),
				slog.String("account_id", string(account.ID)),
			)
			return nil
		}

		if !existing.IsActive {
			return model.ErrAccountInactive
		}
		if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)); err != nil {
			return model.ErrInvalidCredentials
		}
		account = *existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// StaffLogin authenticates a staff member against the embedded credential
func (s *Service) StaffLogin(ctx context.Context, email, password string) (*model.Staff, error) {
	st := s.store.Load(ctx)

	staff := st.FindStaffByEmail(email)
	if staff == nil {
		return nil, model.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	result := *staff
	return &result, nil
}
