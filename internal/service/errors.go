package service

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/projects/internal/repository"
)

// PersistenceError reports a failure of the project store. Op names the
// use case that failed.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err wraps repository.ErrProjectNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrProjectNotFound)
}

func persistenceErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
