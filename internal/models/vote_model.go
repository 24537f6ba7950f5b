package models

import "time"

// Vote records that one identity upvoted one target (question or solution).
// The document ID is the voter's UID, so existence of the document is the sole
// source of truth for "already voted". Votes are never updated or deleted.
type Vote struct {
	UID       string    `json:"uid" firestore:"uid"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
