// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/protonrun/internal/core/domain"

// DocumentLoader reads Valve key/value documents such as libraryfolders.vdf
// and appmanifest_<id>.acf.
//
//go:generate go run go.uber.org/mock/mockgen -source=document_loader.go -destination=mocks/mock_document_loader.go -package=mocks
type DocumentLoader interface {
	// Load parses the document at path. A missing file is reported with
	// domain.ErrDocumentNotFound; malformed content is never an error.
	Load(path string) (*domain.Node, error)
}
