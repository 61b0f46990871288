package model

// DailyPlayerAnalytics is an immutable daily fact about one player. A row is
// committed at most once per (date, playerId) pair; the lock is implicit in
// existence.
type DailyPlayerAnalytics struct {
	Date        string       `json:"date"` // YYYY-MM-DD
	PlayerID    PlayerID     `json:"playerId"`
	Status      PlayerStatus `json:"status"`
	MatchDayTag string       `json:"matchDayTag,omitempty"`
}

// DailyEventAnalytics is an immutable daily aggregate over one event type.
// Committed at most once per (date, eventType) pair.
type DailyEventAnalytics struct {
	Date          string `json:"date"` // YYYY-MM-DD
	EventType     string `json:"eventType"`
	Count         int    `json:"count"`
	TotalDuration int    `json:"totalDuration"` // whole minutes
	AvgDuration   int    `json:"avgDuration"`   // integer-rounded
}

// HasPlayerSnapshot reports whether a row already exists for the composite key
func (s *State) HasPlayerSnapshot(date string, playerID PlayerID) bool {
	for i := range s.DailyPlayerAnalytics {
		if s.DailyPlayerAnalytics[i].Date == date && s.DailyPlayerAnalytics[i].PlayerID == playerID {
			return true
		}
	}
	return false
}

// FindPlayerSnapshot returns the committed row for the composite key, or nil
func (s *State) FindPlayerSnapshot(date string, playerID PlayerID) *DailyPlayerAnalytics {
	for i := range s.DailyPlayerAnalytics {
		if s.DailyPlayerAnalytics[i].Date == date && s.DailyPlayerAnalytics[i].PlayerID == playerID {
			return &s.DailyPlayerAnalytics[i]
		}
	}
	return nil
}

// HasEventSnapshot reports whether a row already exists for the composite key
func (s *State) HasEventSnapshot(date string, eventType string) bool {
	for i := range s.DailyEventAnalytics {
		if s.DailyEventAnalytics[i].Date == date && s.DailyEventAnalytics[i].EventType == eventType {
			return true
		}
	}
	return false
}

// FindEventSnapshot returns the committed row for the composite key, or nil
func (s *State) FindEventSnapshot(date string, eventType string) *DailyEventAnalytics {
	for i := range s.DailyEventAnalytics {
		if s.DailyEventAnalytics[i].Date == date && s.DailyEventAnalytics[i].EventType == eventType {
			return &s.DailyEventAnalytics[i]
		}
	}
	return nil
}
