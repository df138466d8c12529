package donation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/irakoze/inanga/internal/pkg/models"
)

// ErrNotFound indicates no donation record matches the given key
var ErrNotFound = errors.New("donation not found")

// ErrGatewayUnavailable indicates the payment gateway rejected or failed the
// request-to-pay call; the pending record is left for the sweeper
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// FieldError names a single violated input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field of a request
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// TerminalStateError reports an attempted transition out of a terminal state
// with a different target
type TerminalStateError struct {
	Current models.DonationStatus
	Target  models.DonationStatus
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("donation already %s, cannot transition to %s", e.Current, e.Target)
}
