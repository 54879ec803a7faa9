//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package file

import "github.com/custodia-labs/sercha-sources/internal/core/domain"

func lockDir(string) (func() error, error) {
	return nil, domain.ErrLockUnsupported
}
