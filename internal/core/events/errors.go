package events

import "errors"

var (
	// ErrEventNotFound indicates the requested event doesn't exist
	ErrEventNotFound = errors.New("event not found")

	// ErrCommentNotFound indicates the event has no comment with that id
	ErrCommentNotFound = errors.New("comment not found")

	// ErrNoPhoto indicates the event has no photo attachment
	ErrNoPhoto = errors.New("event has no photo")

	// ErrNotAuthorized indicates the caller is neither the event's author nor an admin
	ErrNotAuthorized = errors.New("not authorized")

	// ErrTitleRequired indicates the title field is missing
	ErrTitleRequired = errors.New("title is required")

	// ErrBodyRequired indicates the body field is missing
	ErrBodyRequired = errors.New("body is required")

	// ErrContentEmpty indicates comment text is empty
	ErrContentEmpty = errors.New("comment text is required")

	// ErrContentTooLong indicates comment text exceeds the length limit
	ErrContentTooLong = errors.New("comment text exceeds 2000 characters")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrNoPhoto)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrBodyRequired) ||
		errors.Is(err, ErrContentEmpty) ||
		errors.Is(err, ErrContentTooLong)
}
