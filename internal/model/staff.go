package model

import "time"

// StaffID uniquely identifies a staff member
type StaffID string

// StaffUser is the login half of a staff identity, embedded in the staff row
// rather than stored as a separate collection. Deleting the staff row removes
// both halves in one step, so a deleted staff member can never still log in.
type StaffUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// StaffPermissions are the per-staff capability flags
type StaffPermissions struct {
	IsAdmin           bool `json:"isAdmin"`
	ManageRoster      bool `json:"manageRoster"`
	ManageCalendar    bool `json:"manageCalendar"`
	ManageChat        bool `json:"manageChat"`
	ManageReports     bool `json:"manageReports"`
	ManageWellness    bool `json:"manageWellness"`
	ViewAnalytics     bool `json:"viewAnalytics"`
	SendNotifications bool `json:"sendNotifications"`
	UploadMedia       bool `json:"uploadMedia"`
	EditCoachNotes    bool `json:"editCoachNotes"`
}

// Staff is a staff member profile with its embedded login identity
type Staff struct {
	ID           StaffID          `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"password"` // bcrypt hash
	Permissions  StaffPermissions `json:"permissions"`
	User         StaffUser        `json:"user"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// Role returns the staff member's access-control role label
func (s *Staff) Role() string {
	if s.Permissions.IsAdmin {
		return "admin"
	}
	return "staff"
}

// FindStaff returns the staff member with the given id, or nil
func (s *State) FindStaff(id StaffID) *Staff {
	for i := range s.Staff {
		if s.Staff[i].ID == id {
			return &s.Staff[i]
		}
	}
	return nil
}

// FindStaffByUserID returns the staff member whose embedded user has the
// given id, or nil
func (s *State) FindStaffByUserID(userID string) *Staff {
	for i := range s.Staff {
		if s.Staff[i].User.ID == userID {
			return &s.Staff[i]
		}
	}
	return nil
}

// FindStaffByEmail returns the staff member with the given email, or nil
func (s *State) FindStaffByEmail(email string) *Staff {
	for i := range s.Staff {
		if s.Staff[i].Email == email {
			return &s.Staff[i]
		}
	}
	return nil
}
