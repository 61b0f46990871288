package model

// ActorKind tags the resolved identity space of an actor
type ActorKind string

const (
	KindPlayer       ActorKind = "player"
	KindStaff        ActorKind = "staff"
	KindPlatformUser ActorKind = "platform_user"
)

// Actor is the canonical descriptor every "who is this" id resolves to.
// Resolution is total: ids matching no known record come back as a
// PlatformUser placeholder rather than an error.
type Actor struct {
	Kind        ActorKind
	ID          string // the owning record's primary id, or the raw id for platform users
	DisplayName string
	Email       string
	Role        string
}

// IsAdmin reports whether the actor resolved to an administrative staff role
func (a Actor) IsAdmin() bool {
	return a.Kind == KindStaff && a.Role == "admin"
}
