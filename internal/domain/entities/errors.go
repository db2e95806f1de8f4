package entities

import "errors"

// Domain errors
var (
	// Meeting errors
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrDuplicateContent = errors.New("document content unchanged")

	// Person errors
	ErrPersonNotFound = errors.New("person not found")
	ErrInvalidName    = errors.New("invalid name")

	// Action item errors
	ErrActionItemNotFound = errors.New("action item not found")
	ErrBlockerNotFound    = errors.New("blocker not found")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrAlreadyExported    = errors.New("action item already exported")

	// Job errors
	ErrJobNotFound     = errors.New("job not found")
	ErrJobNotClaimable = errors.New("job cannot be claimed")

	// Generic errors
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidRequest = errors.New("invalid request")
)
