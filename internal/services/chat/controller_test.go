package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/devstore/internal/dependencies/mocks"
	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/services/notify"
	"github.com/rosterhub/devstore/internal/store/memory"
	"github.com/rosterhub/devstore/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	store      *memory.Store
	clock      *mocks.MockClock
	ids        *mocks.MockIDSource
	notifier   *notify.Service
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ids = mocks.NewMockIDSource()
	logger := testutil.NopLogger()
	s.notifier = notify.New(s.store, s.ids, s.clock, logger)
	s.controller = NewController(s.store, s.notifier, s.ids, s.clock, logger)
	s.ctx = context.Background()

	st := model.NewState()
	st.Players = append(st.Players,
		model.Player{ID: "p1", Name: "Jane", Email: "jane@example.com"},
		model.Player{ID: "p2", Name: "Mara", Email: "mara@example.com"},
	)
	st.PlayerUsers = append(st.PlayerUsers, model.PlayerUserAccount{
		ID: "u1", PlayerID: "p1", Email: "jane@example.com", IsActive: true,
	})
	st.Staff = append(st.Staff,
		model.Staff{
			ID: "s1", Name: "Sam", Email: "sam@example.com",
			Permissions: model.StaffPermissions{IsAdmin: true},
			User:        model.StaffUser{ID: "su1", Email: "sam@example.com"},
		},
		model.Staff{
			ID: "s2", Name: "Noa", Email: "noa@example.com",
			User: model.StaffUser{ID: "su2", Email: "noa@example.com"},
		},
	)
	s.Require().NoError(s.store.Save(s.ctx, st))
}

// CreateRoom tests

func (s *ControllerSuite) TestCreateRoomByAdmin() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Team chat", []string{"p1", "p2"})
	s.Require().NoError(err)

	s.Equal("Team chat", room.Name)
	s.Require().Len(room.Participants, 3)
	s.Equal(model.RoomRoleAdmin, room.Participants[0].Role)
	s.Equal("su1", room.Participants[0].UserID)
}

func (s *ControllerSuite) TestCreateRoomNormalizesParticipantIDs() {
	// Jane supplied by her player id; she has an account, so the stored
	// membership id is the account id.
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1", "p2"})
	s.Require().NoError(err)

	var userIDs []string
	for _, p := range room.Participants[1:] {
		userIDs = append(userIDs, p.UserID)
	}
	s.ElementsMatch([]string{"u1", "p2"}, userIDs)
}

func (s *ControllerSuite) TestCreateRoomDeduplicatesAliases() {
	// p1 and u1 are the same actor under two ids.
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1", "u1"})
	s.Require().NoError(err)
	s.Len(room.Participants, 2)
}

func (s *ControllerSuite) TestCreateRoomSkipsUnresolvableIDs() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"ghost", "p2"})
	s.Require().NoError(err)
	s.Len(room.Participants, 2)
}

func (s *ControllerSuite) TestCreateRoomDeniedForNonAdminStaff() {
	_, err := s.controller.CreateRoom(s.ctx, "s2", "Room", nil)
	s.ErrorIs(err, model.ErrRoomCreateDenied)
}

func (s *ControllerSuite) TestCreateRoomDeniedForPlayer() {
	_, err := s.controller.CreateRoom(s.ctx, "p1", "Room", nil)
	s.ErrorIs(err, model.ErrRoomCreateDenied)
}

// Membership tests

func (s *ControllerSuite) TestMembershipSymmetricAcrossCanonicalIDs() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1"})
	s.Require().NoError(err)

	st := s.store.Load(s.ctx)
	stored := st.FindRoom(room.ID)
	// Jane was stored under her account id; every alias must match.
	s.True(s.controller.IsMember(st, stored, "u1"))
	s.True(s.controller.IsMember(st, stored, "p1"))
	// The admin likewise under either staff id.
	s.True(s.controller.IsMember(st, stored, "s1"))
	s.True(s.controller.IsMember(st, stored, "su1"))
	// Non-participants never match.
	s.False(s.controller.IsMember(st, stored, "p2"))
	s.False(s.controller.IsMember(st, stored, "ghost"))
}

func (s *ControllerSuite) TestMembershipMatchesLegacyPlayerIDRow() {
	// A legacy participant row written against the bare player id, with no
	// isActive field at all.
	st := s.store.Load(s.ctx)
	st.ChatRooms = append(st.ChatRooms, model.ChatRoom{
		ID:           "legacy",
		Participants: []model.ChatParticipant{{ID: "row1", UserID: "p1"}},
	})
	s.Require().NoError(s.store.Save(s.ctx, st))

	st = s.store.Load(s.ctx)
	room := st.FindRoom("legacy")
	s.True(s.controller.IsMember(st, room, "u1"))
	s.True(s.controller.IsMember(st, room, "p1"))
}

func (s *ControllerSuite) TestInactiveParticipantIsNotMember() {
	inactive := false
	st := s.store.Load(s.ctx)
	st.ChatRooms = append(st.ChatRooms, model.ChatRoom{
		ID:           "r1",
		Participants: []model.ChatParticipant{{ID: "row1", UserID: "u1", IsActive: &inactive}},
	})
	s.Require().NoError(s.store.Save(s.ctx, st))

	st = s.store.Load(s.ctx)
	s.False(s.controller.IsMember(st, st.FindRoom("r1"), "p1"))
}

// RemoveParticipant tests

func (s *ControllerSuite) TestAdminRemovesParticipant() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1"})
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RemoveParticipant(s.ctx, room.ID, "s1", "p1"))

	st := s.store.Load(s.ctx)
	stored := st.FindRoom(room.ID)
	s.False(s.controller.IsMember(st, stored, "p1"))
	// Soft delete: row retained with leftAt set.
	s.Len(stored.Participants, 2)
	var target *model.ChatParticipant
	for i := range stored.Participants {
		if stored.Participants[i].UserID == "u1" {
			target = &stored.Participants[i]
		}
	}
	s.Require().NotNil(target)
	s.False(target.Active())
	s.NotNil(target.LeftAt)
}

func (s *ControllerSuite) TestPlayerCannotSelfLeave() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1"})
	s.Require().NoError(err)

	err = s.controller.RemoveParticipant(s.ctx, room.ID, "p1", "u1")
	s.ErrorIs(err, model.ErrPlayerSelfLeave)
}

func (s *ControllerSuite) TestNonAdminStaffCanSelfLeave() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"s2"})
	s.Require().NoError(err)

	s.Require().NoError(s.controller.RemoveParticipant(s.ctx, room.ID, "s2", "s2"))

	st := s.store.Load(s.ctx)
	s.False(s.controller.IsMember(st, st.FindRoom(room.ID), "s2"))
}

func (s *ControllerSuite) TestNonAdminCannotRemoveOthers() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"s2", "p1"})
	s.Require().NoError(err)

	err = s.controller.RemoveParticipant(s.ctx, room.ID, "s2", "p1")
	s.ErrorIs(err, model.ErrNotRoomAdmin)
}

func (s *ControllerSuite) TestRemoveFromUnknownRoom() {
	err := s.controller.RemoveParticipant(s.ctx, "ghost", "s1", "p1")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

// PostMessage tests

func (s *ControllerSuite) TestPostMessageAppendsToRoom() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1"})
	s.Require().NoError(err)

	msg, err := s.controller.PostMessage(s.ctx, room.ID, "s1", "get well soon")
	s.Require().NoError(err)
	s.Equal("get well soon", msg.Content)
	s.Equal("su1", msg.SenderID)
	s.Equal([]string{"su1"}, msg.ReadBy)

	st := s.store.Load(s.ctx)
	s.Len(st.FindRoom(room.ID).Messages, 1)
}

func (s *ControllerSuite) TestPostMessageFansOutExcludingSender() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1", "p2"})
	s.Require().NoError(err)

	_, err = s.controller.PostMessage(s.ctx, room.ID, "s1", "hello")
	s.Require().NoError(err)

	st := s.store.Load(s.ctx)
	s.Require().Len(st.Notifications, 2)

	var recipients []string
	for _, n := range st.Notifications {
		s.Equal(model.NotificationCategoryChat, n.Category)
		s.Equal("hello", n.Message)
		recipients = append(recipients, n.UserID)
	}
	// Jane is addressed by her account id, not her player id; the sender
	// gets nothing.
	s.ElementsMatch([]string{"u1", "p2"}, recipients)
}

func (s *ControllerSuite) TestPostMessageSenderAliasStillExcluded() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1"})
	s.Require().NoError(err)

	// Jane posts via her player id even though her membership row holds the
	// account id.
	_, err = s.controller.PostMessage(s.ctx, room.ID, "p1", "hi coach")
	s.Require().NoError(err)

	st := s.store.Load(s.ctx)
	s.Require().Len(st.Notifications, 1)
	s.Equal("su1", st.Notifications[0].UserID)
}

func (s *ControllerSuite) TestPostMessageSkipsInactiveParticipants() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", []string{"p1", "p2"})
	s.Require().NoError(err)
	s.Require().NoError(s.controller.RemoveParticipant(s.ctx, room.ID, "s1", "p2"))

	_, err = s.controller.PostMessage(s.ctx, room.ID, "s1", "hello")
	s.Require().NoError(err)

	st := s.store.Load(s.ctx)
	s.Require().Len(st.Notifications, 1)
	s.Equal("u1", st.Notifications[0].UserID)
}

func (s *ControllerSuite) TestPostMessageNonMemberRejected() {
	room, err := s.controller.CreateRoom(s.ctx, "s1", "Room", nil)
	s.Require().NoError(err)

	_, err = s.controller.PostMessage(s.ctx, room.ID, "p2", "let me in")
	s.ErrorIs(err, model.ErrNotRoomMember)
}

// RoomsFor tests

func (s *ControllerSuite) TestRoomsForActor() {
	r1, err := s.controller.CreateRoom(s.ctx, "s1", "Room A", []string{"p1"})
	s.Require().NoError(err)
	_, err = s.controller.CreateRoom(s.ctx, "s1", "Room B", []string{"p2"})
	s.Require().NoError(err)

	rooms := s.controller.RoomsFor(s.ctx, "u1")
	s.Require().Len(rooms, 1)
	s.Equal(r1.ID, rooms[0].ID)

	s.Len(s.controller.RoomsFor(s.ctx, "s1"), 2)
}
