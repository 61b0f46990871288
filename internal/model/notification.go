package model

import "time"

// NotificationID uniquely identifies a notification row
type NotificationID string

// Notification categories
const (
	NotificationCategoryChat   = "chat"
	NotificationCategorySystem = "system"
)

// Notification addresses exactly one recipient. Fan-out to several actors is
// expressed as N rows, never as a list-valued recipient field.
type Notification struct {
	ID        NotificationID `json:"id"`
	UserID    string         `json:"userId"` // the recipient's canonical account id
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Category  string         `json:"category"`
	IsRead    bool           `json:"isRead"`
	CreatedAt time.Time      `json:"createdAt"`
}
