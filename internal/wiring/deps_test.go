package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.trai.ch/protonrun/internal/core/ports"
	_ "go.trai.ch/protonrun/internal/wiring"
)

// TestGraftNodes builds every port from the registered nodes.
func TestGraftNodes(t *testing.T) {
	ctx := context.Background()

	fsys, _, err := graft.ExecuteFor[afero.Fs](ctx)
	require.NoError(t, err)
	require.NotNil(t, fsys)

	log, _, err := graft.ExecuteFor[ports.Logger](ctx)
	require.NoError(t, err)
	require.NotNil(t, log)

	loader, _, err := graft.ExecuteFor[ports.ConfigLoader](ctx)
	require.NoError(t, err)
	require.NotNil(t, loader)

	docs, _, err := graft.ExecuteFor[ports.DocumentLoader](ctx)
	require.NoError(t, err)
	require.NotNil(t, docs)

	launcher, _, err := graft.ExecuteFor[ports.Launcher](ctx)
	require.NoError(t, err)
	require.NotNil(t, launcher)

	resolver, _, err := graft.ExecuteFor[ports.EnvironmentResolver](ctx)
	require.NoError(t, err)
	require.NotNil(t, resolver)
}
