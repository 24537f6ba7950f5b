package db

import "errors"

// ErrNotFound is returned when a document is not found in Firestore.
// Repositories wrap it with context; callers match it with errors.Is.
var ErrNotFound = errors.New("document not found")

// ErrAlreadyVoted is returned by the upvote transactions when a vote document
// already exists for the (identity, target) pair. No mutation is performed.
var ErrAlreadyVoted = errors.New("already voted")
