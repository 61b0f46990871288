package integrity

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/services/identity"
	"github.com/rosterhub/devstore/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	engine *Engine
	state  *model.State
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.engine = NewEngine(testutil.NopLogger())
	s.state = model.NewState()

	s.state.Players = append(s.state.Players,
		model.Player{ID: "p1", Name: "Jane", Email: "jane@example.com"},
		model.Player{ID: "p2", Name: "Mara", Email: "mara@example.com"},
	)
	s.state.PlayerUsers = append(s.state.PlayerUsers, model.PlayerUserAccount{
		ID: "u1", PlayerID: "p1", Email: "jane@example.com", IsActive: true,
	})
	s.state.Staff = append(s.state.Staff, model.Staff{
		ID: "s1", Name: "Sam", Email: "sam@example.com",
		User: model.StaffUser{ID: "su1", Email: "sam@example.com"},
	})
	s.state.Events = append(s.state.Events, model.Event{
		ID: "e1", Title: "Training", Type: "Training", Date: "2024-01-01",
		Participants: []model.EventParticipant{
			{PlayerID: "p1"},
			{PlayerID: "p2"},
			{StaffID: "s1"},
		},
	})
	s.state.PlayerTags["p1"] = "MD+1"
	s.state.PlayerAvatars["p1"] = "avatars/p1.png"
	s.state.PlayerNotes["p1"] = "left footed"
	s.state.PlayerMediaFiles["p1"] = []model.MediaFile{{ID: "m1", Name: "clip.mp4"}}
	s.state.WellnessSettings["p1"] = &model.WellnessEntry{PlayerID: "p1", Date: "2024-01-01", Reason: "knee"}
	s.state.ReportFolders = append(s.state.ReportFolders,
		model.ReportFolder{ID: "f1", Name: "Jane's uploads", CreatedBy: "p1"},
		model.ReportFolder{ID: "f2", Name: "Coaching", CreatedBy: "s1"},
	)
	s.state.CoachNotes = append(s.state.CoachNotes, model.CoachNote{
		ID: "n1", PlayerID: "p1", Title: "Rehab plan",
	})
}

// DeletePlayer tests

func (s *EngineSuite) TestDeletePlayerRemovesEveryDependentRecord() {
	err := s.engine.DeletePlayer(s.state, "p1")
	s.Require().NoError(err)

	s.Nil(s.state.FindPlayer("p1"))
	s.Nil(s.state.FindAccountForPlayer("p1"))
	s.NotContains(s.state.PlayerTags, model.PlayerID("p1"))
	s.NotContains(s.state.PlayerAvatars, model.PlayerID("p1"))
	s.NotContains(s.state.PlayerNotes, model.PlayerID("p1"))
	s.NotContains(s.state.PlayerMediaFiles, model.PlayerID("p1"))
	s.NotContains(s.state.WellnessSettings, model.PlayerID("p1"))

	for _, ev := range s.state.Events {
		for _, p := range ev.Participants {
			s.NotEqual(model.PlayerID("p1"), p.PlayerID)
		}
	}
	for _, f := range s.state.ReportFolders {
		s.NotEqual("p1", f.CreatedBy)
	}
	for _, n := range s.state.CoachNotes {
		s.NotEqual(model.PlayerID("p1"), n.PlayerID)
	}
}

func (s *EngineSuite) TestDeletePlayerLeavesOtherRecordsAlone() {
	err := s.engine.DeletePlayer(s.state, "p1")
	s.Require().NoError(err)

	s.NotNil(s.state.FindPlayer("p2"))
	s.NotNil(s.state.FindStaff("s1"))
	s.Len(s.state.Events[0].Participants, 2)
	s.Len(s.state.ReportFolders, 1)
	s.Equal("f2", s.state.ReportFolders[0].ID)
}

func (s *EngineSuite) TestDeletePlayerUnresolvableAfterward() {
	s.Require().NoError(s.engine.DeletePlayer(s.state, "p1"))

	s.Equal(model.KindPlatformUser, identity.Resolve(s.state, "p1").Kind)
	s.Equal(model.KindPlatformUser, identity.Resolve(s.state, "u1").Kind)
}

func (s *EngineSuite) TestDeletePlayerNotFound() {
	err := s.engine.DeletePlayer(s.state, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// DeleteStaff tests

func (s *EngineSuite) TestDeleteStaffRemovesBothIdentityHalves() {
	err := s.engine.DeleteStaff(s.state, "s1")
	s.Require().NoError(err)

	s.Nil(s.state.FindStaff("s1"))
	s.Equal(model.KindPlatformUser, identity.Resolve(s.state, "s1").Kind)
	s.Equal(model.KindPlatformUser, identity.Resolve(s.state, "su1").Kind)
}

func (s *EngineSuite) TestDeleteStaffStripsEventParticipation() {
	s.Require().NoError(s.engine.DeleteStaff(s.state, "s1"))

	for _, ev := range s.state.Events {
		for _, p := range ev.Participants {
			s.NotEqual(model.StaffID("s1"), p.StaffID)
		}
	}
}

func (s *EngineSuite) TestDeleteStaffNotFound() {
	err := s.engine.DeleteStaff(s.state, "ghost")
	s.ErrorIs(err, model.ErrStaffNotFound)
}

// ReplaceEventParticipants tests

func (s *EngineSuite) TestReplaceEventParticipantsFullSet() {
	err := s.engine.ReplaceEventParticipants(s.state, "e1", []model.PlayerID{"p2"}, []model.StaffID{"s1"})
	s.Require().NoError(err)

	ev := s.state.FindEvent("e1")
	s.Require().Len(ev.Participants, 2)
	s.Equal(model.PlayerID("p2"), ev.Participants[0].PlayerID)
	s.Equal(model.StaffID("s1"), ev.Participants[1].StaffID)
}

func (s *EngineSuite) TestReplaceEventParticipantsRepeatedEditsNoAccumulation() {
	for i := 0; i < 5; i++ {
		err := s.engine.ReplaceEventParticipants(s.state, "e1", []model.PlayerID{"p1", "p2"}, nil)
		s.Require().NoError(err)
	}
	s.Len(s.state.FindEvent("e1").Participants, 2)
}

func (s *EngineSuite) TestReplaceEventParticipantsUnknownPlayer() {
	err := s.engine.ReplaceEventParticipants(s.state, "e1", []model.PlayerID{"ghost"}, nil)
	s.ErrorIs(err, model.ErrUnknownParticipant)
}

func (s *EngineSuite) TestReplaceEventParticipantsEventNotFound() {
	err := s.engine.ReplaceEventParticipants(s.state, "ghost", nil, nil)
	s.ErrorIs(err, model.ErrEventNotFound)
}
