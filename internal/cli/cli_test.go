package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/store/file"
	"github.com/rosterhub/devstore/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	path string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "devstore.json")
}

// run executes one CLI invocation against the suite's document file and
// returns its combined output.
func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--backend", "file", "--path", s.path}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func (s *CLISuite) TestSeedThenShowPlayers() {
	out, err := s.run("seed")
	s.Require().NoError(err)
	s.Contains(out, "seeded: 2 players")

	out, err = s.run("show", "players")
	s.Require().NoError(err)

	var players []model.Player
	s.Require().NoError(json.Unmarshal([]byte(out), &players))
	s.Len(players, 2)
}

func (s *CLISuite) TestShowWholeDocument() {
	_, err := s.run("seed")
	s.Require().NoError(err)

	out, err := s.run("show")
	s.Require().NoError(err)

	var st model.State
	s.Require().NoError(json.Unmarshal([]byte(out), &st))
	s.Len(st.Players, 2)
	s.Len(st.Staff, 1)
	s.Len(st.ChatRooms, 1)
}

func (s *CLISuite) TestShowUnknownCollection() {
	_, err := s.run("show", "nonsense")
	s.Error(err)
}

func (s *CLISuite) TestSweepWritesEventAggregates() {
	_, err := s.run("seed")
	s.Require().NoError(err)

	st := file.New(s.path, testutil.NopLogger()).Load(context.Background())
	s.Require().Len(st.Events, 1)
	today := st.Events[0].Date

	out, err := s.run("sweep", "--date", today)
	s.Require().NoError(err)
	s.Contains(out, "sweep complete for "+today)

	out, err = s.run("show", "dailyEventAnalytics")
	s.Require().NoError(err)

	var rows []model.DailyEventAnalytics
	s.Require().NoError(json.Unmarshal([]byte(out), &rows))
	s.Require().Len(rows, 1)
	s.Equal("Training", rows[0].EventType)
	s.Equal(1, rows[0].Count)
	s.Equal(90, rows[0].TotalDuration)
}

func (s *CLISuite) TestVerifyReportsAndRepairsOrphans() {
	_, err := s.run("seed")
	s.Require().NoError(err)

	out, err := s.run("verify")
	s.Require().NoError(err)
	s.Contains(out, "document is consistent")

	// Plant a membership row pointing at an id nothing resolves.
	docStore := file.New(s.path, testutil.NopLogger())
	err = docStore.Update(context.Background(), func(st *model.State) error {
		st.ChatRooms[0].Participants = append(st.ChatRooms[0].Participants, model.ChatParticipant{
			ID:     "cp-orphan",
			UserID: "ghost",
			Role:   model.RoomRoleMember,
		})
		return nil
	})
	s.Require().NoError(err)

	out, err = s.run("verify")
	s.Require().NoError(err)
	s.Contains(out, "found 1 orphaned entries")

	out, err = s.run("verify", "--repair")
	s.Require().NoError(err)
	s.Contains(out, "repaired 1 orphaned entries")

	out, err = s.run("verify")
	s.Require().NoError(err)
	s.Contains(out, "document is consistent")
}
