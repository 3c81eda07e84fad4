package minisite

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the public site does not exist or is not
// published. The public handler maps it to a 404.
var ErrNotFound = errors.New("mini-site not found")

// ValidationError carries a message safe to surface verbatim to the editor UI.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err should map to a 400.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
