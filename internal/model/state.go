package model

import "encoding/json"

// State is the whole backing document: every collection the dev store
// persists, held in memory as one unit. Callers load it, mutate it, and save
// it back within one logical operation.
type State struct {
	Players       []Player            `json:"players"`
	PlayerUsers   []PlayerUserAccount `json:"playerUsers"`
	Staff         []Staff             `json:"staff"`
	Events        []Event             `json:"events"`
	ChatRooms     []ChatRoom          `json:"chatRooms"`
	Reports       []Report            `json:"reports"`
	ReportFolders []ReportFolder      `json:"reportFolders"`
	CoachNotes    []CoachNote         `json:"coachNotes"`

	DailyPlayerAnalytics []DailyPlayerAnalytics `json:"dailyPlayerAnalytics"`
	DailyEventAnalytics  []DailyEventAnalytics  `json:"dailyEventAnalytics"`

	Notifications []Notification `json:"notifications"`

	WellnessSettings map[PlayerID]*WellnessEntry `json:"wellnessSettings"`

	// Small per-player keyed maps.
	PlayerTags       map[PlayerID]string      `json:"playerTags"`
	PlayerAvatars    map[PlayerID]string      `json:"playerAvatars"`
	PlayerMediaFiles map[PlayerID][]MediaFile `json:"playerMediaFiles"`
	PlayerNotes      map[PlayerID]string      `json:"playerNotes"`
}

// NewState returns a structurally valid empty document: every collection
// initialized, never nil. Load paths fall back to this on missing or corrupt
// backing data.
func NewState() *State {
	return &State{
		Players:              []Player{},
		PlayerUsers:          []PlayerUserAccount{},
		Staff:                []Staff{},
		Events:               []Event{},
		ChatRooms:            []ChatRoom{},
		Reports:              []Report{},
		ReportFolders:        []ReportFolder{},
		CoachNotes:           []CoachNote{},
		DailyPlayerAnalytics: []DailyPlayerAnalytics{},
		DailyEventAnalytics:  []DailyEventAnalytics{},
		Notifications:        []Notification{},
		WellnessSettings:     map[PlayerID]*WellnessEntry{},
		PlayerTags:           map[PlayerID]string{},
		PlayerAvatars:        map[PlayerID]string{},
		PlayerMediaFiles:     map[PlayerID][]MediaFile{},
		PlayerNotes:          map[PlayerID]string{},
	}
}

// Normalize fills in any nil collection on a document decoded from external
// data, so downstream code never range-checks for nil maps or slices.
func (s *State) Normalize() {
	if s.Players == nil {
		s.Players = []Player{}
	}
	if s.PlayerUsers == nil {
		s.PlayerUsers = []PlayerUserAccount{}
	}
	if s.Staff == nil {
		s.Staff = []Staff{}
	}
	if s.Events == nil {
		s.Events = []Event{}
	}
	if s.ChatRooms == nil {
		s.ChatRooms = []ChatRoom{}
	}
	if s.Reports == nil {
		s.Reports = []Report{}
	}
	if s.ReportFolders == nil {
		s.ReportFolders = []ReportFolder{}
	}
	if s.CoachNotes == nil {
		s.CoachNotes = []CoachNote{}
	}
	if s.DailyPlayerAnalytics == nil {
		s.DailyPlayerAnalytics = []DailyPlayerAnalytics{}
	}
	if s.DailyEventAnalytics == nil {
		s.DailyEventAnalytics = []DailyEventAnalytics{}
	}
	if s.Notifications == nil {
		s.Notifications = []Notification{}
	}
	if s.WellnessSettings == nil {
		s.WellnessSettings = map[PlayerID]*WellnessEntry{}
	}
	if s.PlayerTags == nil {
		s.PlayerTags = map[PlayerID]string{}
	}
	if s.PlayerAvatars == nil {
		s.PlayerAvatars = map[PlayerID]string{}
	}
	if s.PlayerMediaFiles == nil {
		s.PlayerMediaFiles = map[PlayerID][]MediaFile{}
	}
	if s.PlayerNotes == nil {
		s.PlayerNotes = map[PlayerID]string{}
	}
}

// Clone returns a deep copy of the document via a JSON round trip. Backends
// that hand out in-memory state use this so callers cannot alias stored data.
func (s *State) Clone() *State {
	data, err := json.Marshal(s)
	if err != nil {
		return NewState()
	}
	clone := &State{}
	if err := json.Unmarshal(data, clone); err != nil {
		return NewState()
	}
	clone.Normalize()
	return clone
}
