package entities

import "time"

// Notification is one inbox item. An empty VoterID addresses the admin
// inbox. Dismissed items stay on disk with IsHidden set so the history
// view can still show them.
type Notification struct {
	ID        string
	Type      string
	Message   string
	VoterID   string
	IsRead    bool
	IsHidden  bool
	CreatedAt time.Time
}
