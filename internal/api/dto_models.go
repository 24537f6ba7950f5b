package api

import "qaboard-backend-go/internal/models"

// ErrorResponse is the standard error body of the write API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// UpvoteResponse reports the counter value after a successful upvote.
type UpvoteResponse struct {
	UpvotesCount int `json:"upvotesCount"`
}

// SessionResponse describes the data source mode of the running session.
type SessionResponse struct {
	Mode          string `json:"mode"` // "live" or "demo"
	WritesEnabled bool   `json:"writesEnabled"`
}

// MeResponse is the authenticated user's profile plus the admin flag that
// gates visibility of the seeding action in a client.
type MeResponse struct {
	User    *models.User `json:"user"`
	IsAdmin bool         `json:"isAdmin"`
}
