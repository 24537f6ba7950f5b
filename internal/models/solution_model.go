package models

import "time"

// Solution represents an answer owned by exactly one question
// (questions/{id}/solutions subcollection).
type Solution struct {
	ID           string    `json:"id" firestore:"id"` // Also the document ID
	ContentEn    string    `json:"contentEn" firestore:"contentEn"`
	ContentZh    string    `json:"contentZh,omitempty" firestore:"contentZh,omitempty"`
	UpvotesCount int       `json:"upvotesCount" firestore:"upvotesCount"`
	CreatedBy    string    `json:"createdBy,omitempty" firestore:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
