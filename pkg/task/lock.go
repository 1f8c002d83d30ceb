package task

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
)

// lockRetry is how often a waiting run polls the file lock.
const lockRetry = 100 * time.Millisecond

// Locker serializes runs of the same script, inside this process with a
// one-slot channel and across processes with a lock file.
type Locker struct {
	dir    string
	mu     sync.Mutex
	inproc map[string]chan struct{}
}

// NewLocker returns a Locker keeping its lock files in dir. An empty dir
// means <tmp>/mysqlprobe-locks.
func NewLocker(dir string) *Locker {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "mysqlprobe-locks")
	}
	return &Locker{dir: dir, inproc: make(map[string]chan struct{})}
}

// Lock blocks until the caller holds the lock for script, or ctx is done.
// The returned func releases it.
func (l *Locker) Lock(ctx context.Context, script string) (func(), error) {
	abs, err := filepath.Abs(script)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", script, err)
	}

	slot := l.slot(abs)
	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for %s: %w", script, ctx.Err())
	}
	release := func() { <-slot }

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		release()
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	fileLock := flock.New(l.path(abs))
	locked, err := fileLock.TryLockContext(ctx, lockRetry)
	if err != nil || !locked {
		release()
		if err == nil {
			err = ctx.Err()
		}
		return nil, fmt.Errorf("acquiring lock for %s: %w", script, err)
	}

	log.Debug().Str("script", abs).Str("lock", fileLock.Path()).Msg("script lock held")

	return func() {
		_ = fileLock.Unlock()
		release()
	}, nil
}

func (l *Locker) slot(abs string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.inproc[abs]
	if !ok {
		ch = make(chan struct{}, 1)
		l.inproc[abs] = ch
	}
	return ch
}

// path names the lock file for an absolute script path.
func (l *Locker) path(abs string) string {
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(l.dir, hex.EncodeToString(sum[:8])+".lock")
}
