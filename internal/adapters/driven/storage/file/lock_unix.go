//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package file

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// lockDir takes a blocking exclusive flock on the directory itself.
// flock locks belong to the open file description, so two opens of the same
// directory exclude each other even inside one process.
func lockDir(dir string) (func() error, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	fd := int(f.Fd()) //nolint:gosec // G115: uintptr->int is safe on 64-bit

	for {
		err = unix.Flock(fd, unix.LOCK_EX)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return func() error {
		unlockErr := unix.Flock(fd, unix.LOCK_UN)
		return errors.Join(unlockErr, f.Close())
	}, nil
}
