package integrity

import (
	"log/slog"

	"github.com/rosterhub/devstore/internal/model"
	"github.com/rosterhub/devstore/internal/services/identity"
)

// Report summarizes what an orphan repair pass changed
type Report struct {
	DeactivatedChatParticipants int
	RemovedNoteVisibility       int
	RemovedFolderVisibility     int
	RemovedReportVisibility     int
}

// Total returns the number of rows the pass touched
func (r Report) Total() int {
	return r.DeactivatedChatParticipants +
		r.RemovedNoteVisibility +
		r.RemovedFolderVisibility +
		r.RemovedReportVisibility
}

// Repair scans access and membership lists for entries whose referenced id
// has no live actor behind it (unresolvable ids, and accounts whose player
// row is gone) and neutralizes them: chat participants are soft-deactivated
// (message history attribution stays intact), visibility entries are dropped.
// Reads already fail closed on such entries, so repair is cleanup, not a
// correctness gate.
func (e *Engine) Repair(st *model.State) Report {
	var report Report

	falseVal := false
	for i := range st.ChatRooms {
		room := &st.ChatRooms[i]
		for j := range room.Participants {
			p := &room.Participants[j]
			if !p.Active() {
				continue
			}
			if !identity.Live(st, p.UserID) {
				p.IsActive = &falseVal
				report.DeactivatedChatParticipants++
			}
		}
	}

	for i := range st.CoachNotes {
		kept, removed := pruneVisibility(st, st.CoachNotes[i].Visibility)
		st.CoachNotes[i].Visibility = kept
		report.RemovedNoteVisibility += removed
	}
	for i := range st.ReportFolders {
		kept, removed := pruneVisibility(st, st.ReportFolders[i].Visibility)
		st.ReportFolders[i].Visibility = kept
		report.RemovedFolderVisibility += removed
	}
	for i := range st.Reports {
		kept, removed := pruneVisibility(st, st.Reports[i].Visibility)
		st.Reports[i].Visibility = kept
		report.RemovedReportVisibility += removed
	}

	if report.Total() > 0 {
		e.logger.Info("orphan repair",
			slog.Int("chat_participants_deactivated", report.DeactivatedChatParticipants),
			slog.Int("note_visibility_removed", report.RemovedNoteVisibility),
			slog.Int("folder_visibility_removed", report.RemovedFolderVisibility),
			slog.Int("report_visibility_removed", report.RemovedReportVisibility),
		)
	}
	return report
}

func pruneVisibility(st *model.State, entries []model.VisibilityEntry) ([]model.VisibilityEntry, int) {
	kept := entries[:0]
	removed := 0
	for _, entry := range entries {
		subject := entry.Subject()
		if subject != "" && !identity.Live(st, subject) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	return kept, removed
}
