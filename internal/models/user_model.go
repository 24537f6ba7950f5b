package models

import "time"

// User represents a signed-in identity. The profile document is created lazily
// on first sign-in and never mutated by this app afterwards.
type User struct {
	UID         string    `json:"uid" firestore:"uid"` // Firebase Auth UID, also the document ID
	Email       string    `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	PhotoURL    string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
