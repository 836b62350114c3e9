package ports

import (
	"context"

	"go.trai.ch/protonrun/internal/core/domain"
)

// Launcher starts processes and waits for them.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Launch runs the request to completion and returns the child's exit
	// status. An error means the process could not be started at all.
	Launch(ctx context.Context, req domain.LaunchRequest) (int, error)
}
