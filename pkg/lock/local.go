package lock

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	ch   chan struct{}
	refs int
}

// LocalLocker is an in-process keyed mutex. Entries are reference counted and
// dropped once nobody holds or waits on them.
type LocalLocker struct {
	mu   sync.Mutex
	keys map[string]*entry
	wait time.Duration
}

// NewLocalLocker builds a locker; a positive wait bounds how long Acquire
// blocks on a single key before giving up with ErrNotAcquired.
func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{keys: make(map[string]*entry), wait: wait}
}

func (l *LocalLocker) Acquire(ctx context.Context, keys ...string) (Release, error) {
	ordered := Order(keys)
	held := make([]string, 0, len(ordered))
	for _, k := range ordered {
		if err := l.lockKey(ctx, k); err != nil {
			l.unlockAll(held)
			return nil, err
		}
		held = append(held, k)
	}
	var once sync.Once
	return func() { once.Do(func() { l.unlockAll(held) }) }, nil
}

func (l *LocalLocker) ref(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.keys[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.keys[key] = e
	}
	e.refs++
	return e
}

func (l *LocalLocker) unref(key string, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.keys, key)
	}
}

func (l *LocalLocker) lockKey(ctx context.Context, key string) error {
	e := l.ref(key)

	var timeout <-chan time.Time
	if l.wait > 0 {
		t := time.NewTimer(l.wait)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case e.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.unref(key, e)
		return &NotAcquiredError{Key: key, Cause: ctx.Err()}
	case <-timeout:
		l.unref(key, e)
		return &NotAcquiredError{Key: key}
	}
}

func (l *LocalLocker) unlockAll(held []string) {
	for i := len(held) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.keys[held[i]]
		l.mu.Unlock()
		if e == nil {
			continue
		}
		<-e.ch
		l.unref(held[i], e)
	}
}
