// Package integrity maintains cross-collection consistency under create and
// delete. Cascades run against the in-memory state inside one store Update,
// so a failed cascade persists nothing.
package integrity

import (
	"log/slog"

	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/services/identity"
)

// Engine executes cascades and orphan repair over a State value
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a new integrity engine
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logger}
}

// cascadeStep is one dependent-collection cleanup in a cascade table. Each
// step reports how many rows it touched.
type cascadeStep struct {
	collection string
	run        func(st *model.State, id string) int
}

// playerCascade lists every collection that depends on a player row. The
// whole table runs together; a player removed with any step skipped is a
// correctness bug.
var playerCascade = []cascadeStep{
	{"playerUsers", func(st *model.State, id string) int {
		return removeAccounts(st, model.PlayerID(id))
	}},
	{"playerMediaFiles", func(st *model.State, id string) int {
		return deleteKey(st.PlayerMediaFiles, model.PlayerID(id))
	}},
	{"playerAvatars", func(st *model.State, id string) int {
		return deleteKey(st.PlayerAvatars, model.PlayerID(id))
	}},
	{"playerNotes", func(st *model.State, id string) int {
		return deleteKey(st.PlayerNotes, model.PlayerID(id))
	}},
	{"playerTags", func(st *model.State, id string) int {
		return deleteKey(st.PlayerTags, model.PlayerID(id))
	}},
	{"wellnessSettings", func(st *model.State, id string) int {
		return deleteKey(st.WellnessSettings, model.PlayerID(id))
	}},
	{"events.participants", func(st *model.State, id string) int {
		return stripEventParticipants(st, func(p model.EventParticipant) bool {
			return p.PlayerID == model.PlayerID(id)
		})
	}},
	{"reportFolders", func(st *model.State, id string) int {
		return removeFoldersCreatedBy(st, id)
	}},
	{"coachNotes", func(st *model.State, id string) int {
		return removeNotesForPlayer(st, model.PlayerID(id))
	}},
}

// staffCascade lists the collections depending on a staff row. The embedded
// login identity lives inside the staff row itself, so removing the row
// removes profile and credential in one step; there is no intermediate state
// in which the old credential still works.
var staffCascade = []cascadeStep{
	{"events.participants", func(st *model.State, id string) int {
		return stripEventParticipants(st, func(p model.EventParticipant) bool {
			return p.StaffID == model.StaffID(id)
		})
	}},
}

// DeletePlayer removes the player and every dependent record in one pass
func (e *Engine) DeletePlayer(st *model.State, playerID model.PlayerID) error {
	if st.FindPlayer(playerID) == nil {
		return model.ErrPlayerNotFound
	}

	for _, step := range playerCascade {
		n := step.run(st, string(playerID))
		if n > 0 {
			e.logger.Debug("cascade step",
				slog.String("entity", "player"),
				slog.String("id", string(playerID)),
				slog.String("collection", step.collection),
				slog.Int("rows", n),
			)
		}
	}

	st.Players = removePlayerRow(st.Players, playerID)

	if identity.Resolve(st, string(playerID)).Kind != model.KindPlatformUser {
		return model.ErrCascadeIncomplete
	}

	e.logger.Info("player deleted",
		slog.String("player_id", string(playerID)),
	)
	return nil
}

// DeleteStaff removes the staff row, credential half included, and verifies
// the identity is unresolvable afterward.
func (e *Engine) DeleteStaff(st *model.State, staffID model.StaffID) error {
	staff := st.FindStaff(staffID)
	if staff == nil {
		return model.ErrStaffNotFound
	}
	userID := staff.User.ID

	for _, step := range staffCascade {
		step.run(st, string(staffID))
	}

	st.Staff = removeStaffRow(st.Staff, staffID)

	// Post-condition: neither half of the identity may still resolve.
	if identity.Resolve(st, string(staffID)).Kind != model.KindPlatformUser {
		return model.ErrCascadeIncomplete
	}
	if userID != "" && identity.Resolve(st, userID).Kind != model.KindPlatformUser {
		return model.ErrCascadeIncomplete
	}

	e.logger.Info("staff deleted",
		slog.String("staff_id", string(staffID)),
		slog.String("user_id", userID),
	)
	return nil
}

// ReplaceEventParticipants replaces the full participant set of an event with
// delete-then-recreate semantics, never a partial diff.
func (e *Engine) ReplaceEventParticipants(st *model.State, eventID model.EventID, playerIDs []model.PlayerID, staffIDs []model.StaffID) error {
	event := st.FindEvent(eventID)
	if event == nil {
		return model.ErrEventNotFound
	}

	participants := make([]model.EventParticipant, 0, len(playerIDs)+len(staffIDs))
	for _, pid := range playerIDs {
		if st.FindPlayer(pid) == nil {
			return model.ErrUnknownParticipant
		}
		participants = append(participants, model.EventParticipant{PlayerID: pid})
	}
	for _, sid := range staffIDs {
		if st.FindStaff(sid) == nil {
			return model.ErrUnknownParticipant
		}
		participants = append(participants, model.EventParticipant{StaffID: sid})
	}

	event.Participants = participants
	return nil
}

func removeAccounts(st *model.State, playerID model.PlayerID) int {
	kept := st.PlayerUsers[:0]
	removed := 0
	for _, acc := range st.PlayerUsers {
		if acc.PlayerID == playerID {
			removed++
			continue
		}
		kept = append(kept, acc)
	}
	st.PlayerUsers = kept
	return removed
}

func stripEventParticipants(st *model.State, match func(model.EventParticipant) bool) int {
	removed := 0
	for i := range st.Events {
		kept := st.Events[i].Participants[:0]
		for _, p := range st.Events[i].Participants {
			if match(p) {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		st.Events[i].Participants = kept
	}
	return removed
}

func removeFoldersCreatedBy(st *model.State, creatorID string) int {
	kept := st.ReportFolders[:0]
	removed := 0
	for _, f := range st.ReportFolders {
		if f.CreatedBy == creatorID {
			removed++
			continue
		}
		kept = append(kept, f)
	}
	st.ReportFolders = kept
	return removed
}

func removeNotesForPlayer(st *model.State, playerID model.PlayerID) int {
	kept := st.CoachNotes[:0]
	removed := 0
	for _, n := range st.CoachNotes {
		if n.PlayerID == playerID {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	st.CoachNotes = kept
	return removed
}

func removePlayerRow(players []model.Player, id model.PlayerID) []model.Player {
	kept := players[:0]
	for _, p := range players {
		if p.ID == id {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func removeStaffRow(staff []model.Staff, id model.StaffID) []model.Staff {
	kept := staff[:0]
	for _, s := range staff {
		if s.ID == id {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func deleteKey[V any](m map[model.PlayerID]V, key model.PlayerID) int {
	if _, ok := m[key]; !ok {
		return 0
	}
	delete(m, key)
	return 1
}
