package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	lockFileName     = ".drawerrc.lock"
	lockTimeout      = 5 * time.Second
	staleLockTimeout = 30 * time.Second
	lockPollInterval = 50 * time.Millisecond
)

// ErrLockTimeout is returned when another process holds the config lock for
// longer than lockTimeout.
var ErrLockTimeout = errors.New("config: lock timeout")

// WithLock runs fn while holding the config lock file.
func WithLock(fn func() error) error {
	lockPath, err := lockFilePath()
	if err != nil {
		return err
	}
	lockFile, err := acquireLock(lockPath)
	if err != nil {
		return err
	}
	defer releaseLock(lockFile, lockPath)
	return fn()
}

func lockFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, lockFileName), nil
}

// acquireLock creates the lock file exclusively, polling until lockTimeout.
// Locks older than staleLockTimeout belong to a dead process and are removed.
func acquireLock(lockPath string) (*os.File, error) {
	deadline := time.Now().Add(lockTimeout)
	for {
		if info, err := os.Stat(lockPath); err == nil && time.Since(info.ModTime()) > staleLockTimeout {
			_ = os.Remove(lockPath)
		}

		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockPollInterval)
	}
}

func releaseLock(f *os.File, lockPath string) {
	if f != nil {
		_ = f.Close()
	}
	_ = os.Remove(lockPath)
}
