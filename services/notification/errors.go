package notification

import "errors"

// ErrDuplicateEmail indicates the email is already subscribed
var ErrDuplicateEmail = errors.New("email already subscribed")

// ErrInvalidEmail indicates the email failed validation
var ErrInvalidEmail = errors.New("invalid email address")
