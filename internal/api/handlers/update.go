package handlers

import (
	"context"
)

// replaceByID is the single update routine every entity handler shares:
// fetch the record or fail NOT_FOUND, replace its mutable fields, then
// persist durably. The id is the lookup key and is never reassigned.
func replaceByID[E any](
	ctx context.Context,
	id int,
	get func(context.Context, int) (*E, error),
	save func(context.Context, *E) error,
	apply func(*E),
) (*E, error) {
	record, err := get(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(record)

	if err := save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
