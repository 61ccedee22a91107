package database

import (
	"errors"

	"github.com/lib/pq"

	apperrors "github.com/kvasnikov/workorders/pkg/errors"
)

// uniqueViolation is the postgres error code raised when an insert hits
// an existing primary key.
const uniqueViolation = pq.ErrorCode("23505")

// translateExecError maps a driver error from a mutation onto the
// application taxonomy: duplicate key becomes CONFLICT, anything else
// INTERNAL.
func translateExecError(err error, conflictMsg, internalMsg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return apperrors.NewConflictError(conflictMsg)
	}
	return apperrors.NewInternalError(internalMsg, err)
}
