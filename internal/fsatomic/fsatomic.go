// Package fsatomic wraps the platform's exclusive-create primitives. Callers
// learn whether a path was taken from the create call itself; there is never a
// separate existence check that could race.
package fsatomic

import (
	"errors"
	"io/fs"
	"os"
)

// CreateFile creates path exclusively and opens it read-write with mode 0600.
// If path already exists in any form the call fails without touching it.
func CreateFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
}

// Mkdir creates the directory at path with mode 0700, failing if the path
// already exists in any form.
func Mkdir(path string) error {
	return os.Mkdir(path, 0o700)
}

// IsExist reports whether err means the target path was already occupied. The
// check is typed; error text is never inspected.
func IsExist(err error) bool {
	return errors.Is(err, fs.ErrExist)
}
