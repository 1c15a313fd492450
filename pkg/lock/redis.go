package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LockClient is the subset of cache.RedisClient the distributed locker needs.
type LockClient interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ExtendLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

type RedisLockerConfig struct {
	Prefix     string
	TTL        time.Duration
	Retries    int
	RetryDelay time.Duration
}

// RedisLocker takes SET NX locks with a per-acquisition token so a release
// never drops a lock that expired and was re-taken by someone else. Held
// locks are renewed every TTL/3 until released.
type RedisLocker struct {
	client LockClient
	cfg    RedisLockerConfig
}

func NewRedisLocker(client LockClient, cfg RedisLockerConfig) *RedisLocker {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Second
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 100 * time.Millisecond
	}
	return &RedisLocker{client: client, cfg: cfg}
}

func (l *RedisLocker) Acquire(ctx context.Context, keys ...string) (Release, error) {
	token := uuid.New().String()
	ordered := Order(keys)
	held := make([]string, 0, len(ordered))
	for _, k := range ordered {
		if err := l.lockKey(ctx, l.cfg.Prefix+k, token); err != nil {
			l.releaseAll(held, token)
			return nil, err
		}
		held = append(held, l.cfg.Prefix+k)
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	go l.renew(held, token, stop, done)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			l.releaseAll(held, token)
		})
	}, nil
}

// renew keeps held alive until stop closes. A key whose token changed is
// dropped from renewal; the release script leaves it alone as well.
func (l *RedisLocker) renew(held []string, token string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(l.renewEvery())
	defer ticker.Stop()

	live := append([]string(nil), held...)
	for len(live) > 0 {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		ctx, cancel := context.WithTimeout(context.Background(), l.cfg.TTL)
		kept := live[:0]
		for _, key := range live {
			ok, err := l.client.ExtendLock(ctx, key, token, l.cfg.TTL)
			if err != nil || ok {
				// a failed call is retried on the next tick
				kept = append(kept, key)
			}
		}
		cancel()
		live = kept
	}
	<-stop
}

func (l *RedisLocker) renewEvery() time.Duration {
	d := l.cfg.TTL / 3
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}

func (l *RedisLocker) lockKey(ctx context.Context, key, token string) error {
	var lastErr error
	for i := 0; i < l.cfg.Retries; i++ {
		ok, err := l.client.AcquireLock(ctx, key, token, l.cfg.TTL)
		if err != nil {
			lastErr = err
		} else if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return &NotAcquiredError{Key: key, Cause: ctx.Err()}
		case <-time.After(l.cfg.RetryDelay):
		}
	}
	return &NotAcquiredError{Key: key, Cause: lastErr}
}

func (l *RedisLocker) releaseAll(held []string, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), l.cfg.TTL)
	defer cancel()
	for i := len(held) - 1; i >= 0; i-- {
		_ = l.client.ReleaseLock(ctx, held[i], token)
	}
}
