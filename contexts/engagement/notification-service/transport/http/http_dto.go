package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NotificationPayload struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	IsHidden  bool      `json:"is_hidden"`
	CreatedAt time.Time `json:"created_at"`
}

type InboxResponse struct {
	Notifications []NotificationPayload `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// NotificationActionRequest carries one inbox action. ID is required
// for the single-item actions and ignored by the bulk ones.
type NotificationActionRequest struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
}

type NotificationActionResponse struct {
	OK       bool  `json:"ok"`
	Affected int64 `json:"affected"`
}

// AppendNotificationRequest lets an admin push a notification to one
// voter, or to the admin feed when voter_id is empty.
type AppendNotificationRequest struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
	VoterID string `json:"voter_id,omitempty"`
}
