package model

import "time"

// RoomID uniquely identifies a chat room
type RoomID string

// MessageID uniquely identifies a chat message within its room
type MessageID string

// Participant roles within a room
const (
	RoomRoleAdmin  = "admin"
	RoomRoleMember = "member"
)

// ChatParticipant is one membership row of a room. UserID is not a single
// namespace: historical rows were written against player ids, player-account
// ids, or staff-user ids interchangeably, so membership checks go through the
// identity resolver. IsActive is a pointer because legacy rows omit the field
// and an absent value counts as active.
type ChatParticipant struct {
	ID       string     `json:"id"`
	UserID   string     `json:"userId"`
	Role     string     `json:"role"`
	IsActive *bool      `json:"isActive"`
	JoinedAt time.Time  `json:"joinedAt"`
	LeftAt   *time.Time `json:"leftAt,omitempty"`
}

// Active reports whether the participant row is active. Only an explicit
// false deactivates.
func (p *ChatParticipant) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// ChatMessage is one message, embedded inside its room
type ChatMessage struct {
	ID        MessageID `json:"id"`
	RoomID    RoomID    `json:"roomId"`
	SenderID  string    `json:"senderId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	ReadBy    []string  `json:"readBy"`
}

// ChatRoom holds its participant list and full message history
type ChatRoom struct {
	ID           RoomID            `json:"id"`
	Name         string            `json:"name"`
	CreatedBy    string            `json:"createdBy"`
	Participants []ChatParticipant `json:"participants"`
	Messages     []ChatMessage     `json:"messages"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// FindRoom returns the chat room with the given id, or nil
func (s *State) FindRoom(id RoomID) *ChatRoom {
	for i := range s.ChatRooms {
		if s.ChatRooms[i].ID == id {
			return &s.ChatRooms[i]
		}
	}
	return nil
}
