package model

import "errors"

// Common errors used across the application
var (
	// Roster errors
	ErrPlayerNotFound     = errors.New("player not found")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrIDInUse            = errors.New("id already in use by another record")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrUnknownParticipant = errors.New("participant references no known player or staff member")

	// Account errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is deactivated")

	// Chat errors
	ErrRoomNotFound     = errors.New("chat room not found")
	ErrNotRoomMember    = errors.New("actor is not a member of the room")
	ErrNotRoomAdmin     = errors.New("actor is not a room admin")
	ErrPlayerSelfLeave  = errors.New("players cannot remove themselves from a room")
	ErrParticipantGone  = errors.New("participant not found in room")
	ErrRoomCreateDenied = errors.New("only administrative staff can create rooms")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Integrity errors
	ErrCascadeIncomplete = errors.New("cascade left the identity resolvable")
)
