package model

import "time"

// PlayerID uniquely identifies a roster player
type PlayerID string

// AccountID uniquely identifies a player's login account
type AccountID string

// PlayerStatus is a player's availability state
type PlayerStatus string

const (
	// StatusAvailable is the fully-available label; transitioning to it
	// clears the player's same-day wellness reason and notes.
	StatusAvailable PlayerStatus = "AVAILABLE"
	StatusLimited   PlayerStatus = "LIMITED"
	StatusInjured   PlayerStatus = "INJURED"
	StatusAway      PlayerStatus = "AWAY"
)

// Player is the canonical roster identity
type Player struct {
	ID        PlayerID     `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Position  string       `json:"position"`
	Status    PlayerStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// PlayerUserAccount is the login identity for a player, 1:1 with Player and
// created lazily on first login attempt.
type PlayerUserAccount struct {
	ID           AccountID `json:"id"`
	PlayerID     PlayerID  `json:"playerId"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password"` // bcrypt hash
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// MediaFile is an uploaded file attached to a player
type MediaFile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// WellnessEntry is a player's free-text availability reason for one day
type WellnessEntry struct {
	PlayerID PlayerID `json:"playerId"`
	Date     string   `json:"date"` // YYYY-MM-DD
	Reason   string   `json:"reason"`
	Notes    *string  `json:"notes"`
}

// FindPlayer returns the player with the given id, or nil
func (s *State) FindPlayer(id PlayerID) *Player {
	for i := range s.Players {
		if s.Players[i].ID == id {
			return &s.Players[i]
		}
	}
	return nil
}

// FindPlayerByEmail returns the player with the given email, or nil
func (s *State) FindPlayerByEmail(email string) *Player {
	for i := range s.Players {
		if s.Players[i].Email == email {
			return &s.Players[i]
		}
	}
	return nil
}

// FindAccount returns the player account with the given id, or nil
func (s *State) FindAccount(id AccountID) *PlayerUserAccount {
	for i := range s.PlayerUsers {
		if s.PlayerUsers[i].ID == id {
			return &s.PlayerUsers[i]
		}
	}
	return nil
}

// FindAccountForPlayer returns the account linked to the given player, or nil
func (s *State) FindAccountForPlayer(playerID PlayerID) *PlayerUserAccount {
	for i := range s.PlayerUsers {
		if s.PlayerUsers[i].PlayerID == playerID {
			return &s.PlayerUsers[i]
		}
	}
	return nil
}
