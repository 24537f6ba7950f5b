package models

import "time"

// Question represents a question posted under a category.
// UpvotesCount is mutated only through the upvote protocol (vote record plus
// counter increment in one transaction); questions are never deleted.
type Question struct {
	ID           string    `json:"id" firestore:"id"` // Also the document ID
	Category     string    `json:"category" firestore:"category"` // Category slug; not a foreign-key constraint
	TitleEn      string    `json:"titleEn" firestore:"titleEn"`
	TitleZh      string    `json:"titleZh,omitempty" firestore:"titleZh,omitempty"`
	DetailEn     string    `json:"detailEn,omitempty" firestore:"detailEn,omitempty"`
	DetailZh     string    `json:"detailZh,omitempty" firestore:"detailZh,omitempty"`
	UpvotesCount int       `json:"upvotesCount" firestore:"upvotesCount"`
	CreatedBy    string    `json:"createdBy,omitempty" firestore:"createdBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
