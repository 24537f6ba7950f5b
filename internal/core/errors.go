package core

import "errors"

// ErrUnauthenticated is returned when a write is attempted with no resolved
// identity. Surfaced as a blocking 401; the operation leaves no partial state.
var ErrUnauthenticated = errors.New("sign-in required")

// ErrDemoMode is returned when a write is attempted while the session serves
// from the snapshot. No remote I/O is issued.
var ErrDemoMode = errors.New("disabled in demo mode")

// ErrValidation is returned when a required text field is empty. Wrapped with
// the field name; checked before any write.
var ErrValidation = errors.New("validation failed")
