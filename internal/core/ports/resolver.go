package ports

import (
	"context"

	"go.trai.ch/protonrun/internal/core/domain"
)

// EnvironmentResolver finds the runtime and prefix environment of a target.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type EnvironmentResolver interface {
	// Resolve runs one resolution pass. Expected absences leave fields of
	// the result empty; only unexpected failures return an error.
	Resolve(ctx context.Context, target domain.Target) (*domain.RuntimeEnvironment, error)
}
