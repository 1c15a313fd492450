package inventory

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-kit-inventory/internal/model"
)

// RetryOnConflict runs fn and, on a concurrent modification, runs it exactly
// once more with the same inputs. A second conflict surfaces as a transient failure.
func RetryOnConflict(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if !errors.Is(err, model.ErrConcurrentModification) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &model.TransientFailureError{Op: op, Cause: err}
	}
	err = fn(ctx)
	if errors.Is(err, model.ErrConcurrentModification) {
		return &model.TransientFailureError{Op: op, Cause: err}
	}
	return err
}
