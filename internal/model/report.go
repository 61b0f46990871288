package model

import "time"

// VisibilityEntry grants or denies view access to one actor. Entries mix
// staff ids and platform-user ids; consumers reconcile them through the
// identity resolver and treat unresolvable entries as no access.
type VisibilityEntry struct {
	StaffID string `json:"staffId,omitempty"`
	UserID  string `json:"userId,omitempty"`
	CanView bool   `json:"canView"`
}

// Subject returns whichever id the entry names
func (v VisibilityEntry) Subject() string {
	if v.StaffID != "" {
		return v.StaffID
	}
	return v.UserID
}

// CoachNote is a staff-authored note, optionally about one player
type CoachNote struct {
	ID         string            `json:"id"`
	PlayerID   PlayerID          `json:"playerId,omitempty"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	CreatedBy  string            `json:"createdBy"`
	Visibility []VisibilityEntry `json:"visibility"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ReportFolder groups reports and carries its own visibility list
type ReportFolder struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	CreatedBy  string            `json:"createdBy"`
	Visibility []VisibilityEntry `json:"visibility"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// Report is a document inside a folder
type Report struct {
	ID         string            `json:"id"`
	FolderID   string            `json:"folderId"`
	Title      string            `json:"title"`
	CreatedBy  string            `json:"createdBy"`
	Visibility []VisibilityEntry `json:"visibility"`
	CreatedAt  time.Time         `json:"createdAt"`
}
