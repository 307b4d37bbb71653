package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate marks a unique-constraint violation so services can answer
// with a conflict instead of a generic store failure.
var ErrDuplicate = errors.New("duplicate key")

const pqUniqueViolation = "23505"

func mapDuplicate(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ErrDuplicate
	}
	return err
}
