package auth

import "errors"

// ErrInvalidFormat is returned when the login email does not match the
// expected name@soccercentralsa.com shape.
var ErrInvalidFormat = errors.New("email must look like name@soccercentralsa.com")

// FailureKind classifies a failed authentication attempt; used as a
// metrics label and for callers that need more than the message.
type FailureKind string

const (
	FailureNone              FailureKind = ""
	FailureInvalidFormat     FailureKind = "invalid_format"
	FailurePlayerNotFound    FailureKind = "player_not_found"
	FailureInvalidCredential FailureKind = "invalid_credential"
)
