package content

import "errors"

// ErrNotFound indicates no content record matches the given key
var ErrNotFound = errors.New("content not found")

// ErrInvalidCredentials indicates a failed admin login. Unknown username and
// wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidInput indicates the request failed validation
var ErrInvalidInput = errors.New("invalid input")
