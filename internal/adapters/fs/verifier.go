// Package fs provides the filesystem used by the adapters and small
// existence probes over it.
package fs

import (
	"errors"
	iofs "io/fs"

	"github.com/spf13/afero"
	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// New returns the operating system filesystem.
func New() afero.Fs {
	return afero.NewOsFs()
}

// Exists reports whether path exists. Absence is not an error; any other
// stat failure (permissions, I/O) is.
func Exists(fsys afero.Fs, path string) (bool, error) {
	if _, err := fsys.Stat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return true, nil
}

// DirExists reports whether path exists and is a directory.
func DirExists(fsys afero.Fs, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}
	return info.IsDir(), nil
}

// FirstExisting returns the first of paths that exists.
func FirstExisting(fsys afero.Fs, paths ...string) (string, bool, error) {
	for _, p := range paths {
		ok, err := Exists(fsys, p)
		if err != nil {
			return "", false, err
		}
		if ok {
			return p, true, nil
		}
	}
	return "", false, nil
}
