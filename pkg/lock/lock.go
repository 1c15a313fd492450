// Package lock provides per-key mutual exclusion. Multi-key acquisition
// always happens in sorted key order so two callers locking the same pair of
// keys from opposite ends cannot deadlock.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var ErrNotAcquired = errors.New("lock not acquired")

type NotAcquiredError struct {
	Key   string
	Cause error
}

func (e *NotAcquiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lock %s not acquired: %v", e.Key, e.Cause)
	}
	return fmt.Sprintf("lock %s not acquired", e.Key)
}

func (e *NotAcquiredError) Is(target error) bool { return target == ErrNotAcquired }

func (e *NotAcquiredError) Unwrap() error { return e.Cause }

// Release gives back every key taken by one Acquire call.
type Release func()

type Locker interface {
	Acquire(ctx context.Context, keys ...string) (Release, error)
}

// Order returns the deduplicated keys in acquisition order.
func Order(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
