package identity

import "github.com/rosterhub/devstore/internal/model"

// CanView evaluates a visibility list for the given actor id. Access reads
// fail closed: an actor that resolves to nothing known gets no access, and a
// visibility entry naming an unresolvable id grants nothing.
func CanView(st *model.State, visibility []model.VisibilityEntry, actorID string) bool {
	if !Live(st, actorID) {
		return false
	}

	for _, entry := range visibility {
		if !entry.CanView {
			continue
		}
		subject := entry.Subject()
		if subject == "" {
			continue
		}
		if !Live(st, subject) {
			// Entry references an id with no live actor behind it; no access.
			continue
		}
		if SameActor(st, subject, actorID) {
			return true
		}
	}
	return false
}
