package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atomicstack/burrow/internal/logging"
	"github.com/gofrs/flock"
)

// ErrLockTimeout is returned when another process holds the store lock for
// longer than the configured timeout.
var ErrLockTimeout = errors.New("store lock timeout")

const (
	defaultLockTimeout = 5 * time.Second
	lockRetryInterval  = 50 * time.Millisecond
)

// withLock runs fn while holding an exclusive lock next to path.
func withLock(path string, timeout time.Duration, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}
	lock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w after %v", ErrLockTimeout, timeout)
		}
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w after %v", ErrLockTimeout, timeout)
	}
	defer func() {
		if uerr := lock.Unlock(); uerr != nil {
			logging.Error(fmt.Errorf("release lock %s: %w", lock.Path(), uerr))
		}
	}()
	return fn()
}

// writeAtomic replaces path with data via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
