package cli

import (
	"errors"
	"fmt"
)

// InvalidNumberError reports console input that should have been a number.
// Input is the offending text exactly as entered, after trimming.
type InvalidNumberError struct {
	Input string
	Kind  string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s is not a valid %s.", e.Input, e.Kind)
}

func invalidInteger(text string) error {
	return &InvalidNumberError{Input: text, Kind: "number"}
}

func invalidDecimal(text string) error {
	return &InvalidNumberError{Input: text, Kind: "decimal number"}
}

// errIncompleteInput is returned when input ends partway through an action.
var errIncompleteInput = errors.New("input closed before the project was complete")

// errorKind labels err for logging.
func errorKind(err error) string {
	var numErr *InvalidNumberError
	switch {
	case errors.As(err, &numErr):
		return "invalid_number"
	case isPersistenceError(err):
		return "persistence"
	default:
		return "other"
	}
}
