package vdf

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.DocumentLoader on top of a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// Load opens and parses the document at path.
func (l *Loader) Load(path string) (*domain.Node, error) {
	path = filepath.Clean(path)

	f, err := l.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrDocumentNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	node, err := ParseReader(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	return node, nil
}
