// Package chat resolves room membership and message fan-out. New participant
// rows store the canonical membership id, so membership tests are exact-match
// on fresh data; the multi-key fallback chain exists for legacy rows written
// against player ids, account ids, or staff-user ids interchangeably.
package chat

import (
	"context"
	"log/slog"

	"github.com/rosterhub/devstore/internal/dependencies/clock"
	"github.com/rosterhub/devstore/internal/dependencies/identifier"
	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/services/identity"
	"github.com/rosterhub/devstore/internal/services/notify"
	"github.com/rosterhub/devstore/internal/store"
)

// Controller manages chat rooms, membership, and message fan-out
type Controller struct {
	store    store.DocumentStore
	notifier *notify.Service
	ids      identifier.Source
	clock    clock.Clock
	logger   *slog.Logger
}

// NewController creates a new chat controller
func NewController(
	store store.DocumentStore,
	notifier *notify.Service,
	ids identifier.Source,
	clock clock.Clock,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		store:    store,
		notifier: notifier,
		ids:      ids,
		clock:    clock,
		logger:   logger,
	}
}

// IsMember reports whether the actor is an active participant of the room,
// matching against every canonical id on both sides.
func (c *Controller) IsMember(st *model.State, room *model.ChatRoom, actorID string) bool {
	return c.findParticipant(st, room, actorID) != nil
}

// findParticipant returns the active participant row matching the actor
// under any of its canonical ids, or nil.
func (c *Controller) findParticipant(st *model.State, room *model.ChatRoom, actorID string) *model.ChatParticipant {
	if actorID == "" {
		return nil
	}
	for i := range room.Participants {
		p := &room.Participants[i]
		if !p.Active() {
			continue
		}
		if identity.SameActor(st, p.UserID, actorID) {
			return p
		}
		// Legacy rows sometimes carried the actor id in the row id itself.
		if p.ID != "" && identity.SameActor(st, p.ID, actorID) {
			return p
		}
	}
	return nil
}

// CreateRoom creates a room with the creator as its admin participant. Only
// actors resolving to an administrative role may create rooms. Every supplied
// participant id is normalized to its canonical membership id before being
// stored.
func (c *Controller) CreateRoom(ctx context.Context, creatorID, name string, participantIDs []string) (*model.ChatRoom, error) {
	var room *model.ChatRoom

	err := c.store.Update(ctx, func(st *model.State) error {
		creator := identity.Resolve(st, creatorID)
		if !creator.IsAdmin() {
			return model.ErrRoomCreateDenied
		}

		now := c.clock.Now()
		active := true
		creatorMemberID := identity.AccountID(st, creator)

		participants := []model.ChatParticipant{{
			ID:       c.ids.NewID(),
			UserID:   creatorMemberID,
			Role:     model.RoomRoleAdmin,
			IsActive: &active,
			JoinedAt: now,
		}}

		seen := map[string]bool{creatorMemberID: true}
		for _, raw := range participantIDs {
			actor := identity.Resolve(st, raw)
			if actor.Kind == model.KindPlatformUser {
				// Unresolvable ids get no membership; fail closed.
				continue
			}
			memberID := identity.AccountID(st, actor)
			if seen[memberID] {
				continue
			}
			seen[memberID] = true
			isActive := true
			participants = append(participants, model.ChatParticipant{
				ID:       c.ids.NewID(),
				UserID:   memberID,
				Role:     model.RoomRoleMember,
				IsActive: &isActive,
				JoinedAt: now,
			})
		}

		st.ChatRooms = append(st.ChatRooms, model.ChatRoom{
			ID:           model.RoomID(c.ids.NewID()),
			Name:         name,
			CreatedBy:    creatorMemberID,
			Participants: participants,
			Messages:     []model.ChatMessage{},
			CreatedAt:    now,
		})
		room = &st.ChatRooms[len(st.ChatRooms)-1]

		c.logger.Info("chat room created",
			slog.String("room_id", string(room.ID)),
			slog.String("created_by", creatorMemberID),
			slog.Int("participants", len(participants)),
		)

		created := *room
		room = &created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// RemoveParticipant deactivates a participant. Players may not remove
// themselves; admins may remove anyone; non-admins only themselves. Removal
// is a soft delete so message history attribution stays valid.
func (c *Controller) RemoveParticipant(ctx context.Context, roomID model.RoomID, actorID, targetID string) error {
	return c.store.Update(ctx, func(st *model.State) error {
		room := st.FindRoom(roomID)
		if room == nil {
			return model.ErrRoomNotFound
		}

		actor := c.findParticipant(st, room, actorID)
		if actor == nil {
			return model.ErrNotRoomMember
		}
		target := c.findParticipant(st, room, targetID)
		if target == nil {
			return model.ErrParticipantGone
		}

		removingSelf := identity.SameActor(st, actorID, targetID)
		if removingSelf {
			if identity.Resolve(st, actorID).Kind == model.KindPlayer {
				return model.ErrPlayerSelfLeave
			}
		} else if actor.Role != model.RoomRoleAdmin {
			return model.ErrNotRoomAdmin
		}

		inactive := false
		left := c.clock.Now()
		target.IsActive = &inactive
		target.LeftAt = &left

		c.logger.Info("chat participant removed",
			slog.String("room_id", string(roomID)),
			slog.String("target", target.UserID),
			slog.Bool("self", removingSelf),
		)
		return nil
	})
}

// PostMessage appends a message to the room and creates one chat notification
// per remaining active participant, addressed to each recipient's own
// account id, never to the sender.
func (c *Controller) PostMessage(ctx context.Context, roomID model.RoomID, senderID, content string) (*model.ChatMessage, error) {
	var message model.ChatMessage

	err := c.store.Update(ctx, func(st *model.State) error {
		room := st.FindRoom(roomID)
		if room == nil {
			return model.ErrRoomNotFound
		}
		if !c.IsMember(st, room, senderID) {
			return model.ErrNotRoomMember
		}

		sender := identity.Resolve(st, senderID)
		senderAccountID := identity.AccountID(st, sender)

		message = model.ChatMessage{
			ID:        model.MessageID(c.ids.NewID()),
			RoomID:    roomID,
			SenderID:  senderAccountID,
			Content:   content,
			Timestamp: c.clock.Now(),
			ReadBy:    []string{senderAccountID},
		}
		room.Messages = append(room.Messages, message)

		var recipients []string
		for i := range room.Participants {
			p := &room.Participants[i]
			if !p.Active() {
				continue
			}
			if identity.SameActor(st, p.UserID, senderID) {
				continue
			}
			actor := identity.Resolve(st, p.UserID)
			if actor.Kind == model.KindPlatformUser {
				continue
			}
			recipients = append(recipients, identity.AccountID(st, actor))
		}

		c.notifier.FanOut(st, recipients, room.Name, content, model.NotificationCategoryChat)

		c.logger.Info("chat message posted",
			slog.String("room_id", string(roomID)),
			slog.String("sender", senderAccountID),
			slog.Int("recipients", len(recipients)),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// RoomsFor returns every room the actor is an active member of
func (c *Controller) RoomsFor(ctx context.Context, actorID string) []model.ChatRoom {
	st := c.store.Load(ctx)

	var rooms []model.ChatRoom
	for i := range st.ChatRooms {
		if c.IsMember(st, &st.ChatRooms[i], actorID) {
			rooms = append(rooms, st.ChatRooms[i])
		}
	}
	return rooms
}
