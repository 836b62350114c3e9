package config_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/protonrun/internal/adapters/config"
	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/protonrun/internal/core/ports"
)

// setupHome points the home and config directories at fixed paths so the
// loader never sees the real user configuration.
func setupHome(t *testing.T) afero.Fs {
	t.Helper()
	t.Setenv("HOME", "/home/deck")
	t.Setenv("XDG_CONFIG_HOME", "")
	return afero.NewMemMapFs()
}

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	fsys := setupHome(t)

	cfg, err := config.NewLoader(fsys).Load("", ports.ConfigOverrides{})
	require.NoError(t, err)

	assert.Equal(t, domain.RocketLeagueAppID, cfg.AppID)
	assert.Equal(t, "/home/deck/.steam/steam", cfg.SteamRoot)
	assert.Equal(t, "RLBot.exe", cfg.Executable)
	assert.Equal(t, 23234, cfg.Port)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Empty(t, cfg.ExtraEnv)
}

func TestLoad_DefaultFile(t *testing.T) {
	tests := []struct {
		name string
		xdg  string
		path string
	}{
		{
			name: "XDG_CONFIG_HOME",
			xdg:  "/xdg",
			path: "/xdg/protonrun/config.yaml",
		},
		{
			name: "home config fallback",
			xdg:  "",
			path: "/home/deck/.config/protonrun/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := setupHome(t)
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)
			writeFile(t, fsys, tt.path, `
app_id: 440
steam_root: /games/steam
target: game.exe
port: 9000
log_format: JSON
extra_env:
  - WINEDEBUG=-all
  - DXVK_HUD=fps
`)

			cfg, err := config.NewLoader(fsys).Load("", ports.ConfigOverrides{})
			require.NoError(t, err)

			assert.Equal(t, domain.AppID("440"), cfg.AppID)
			assert.Equal(t, "/games/steam", cfg.SteamRoot)
			assert.Equal(t, "game.exe", cfg.Executable)
			assert.Equal(t, 9000, cfg.Port)
			assert.Equal(t, "json", cfg.LogFormat)
			assert.Equal(t, map[string]string{"WINEDEBUG": "-all", "DXVK_HUD": "fps"}, cfg.ExtraEnv)
		})
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	fsys := setupHome(t)
	writeFile(t, fsys, "/etc/protonrun.yaml", "steam_root: ~/alt/steam\n")

	cfg, err := config.NewLoader(fsys).Load("/etc/protonrun.yaml", ports.ConfigOverrides{})
	require.NoError(t, err)

	assert.Equal(t, "/home/deck/alt/steam", cfg.SteamRoot)
}

func TestLoad_Precedence(t *testing.T) {
	fsys := setupHome(t)
	writeFile(t, fsys, "/home/deck/.config/protonrun/config.yaml", "app_id: 440\nlog_format: pretty\nport: 1000\n")
	t.Setenv("PROTONRUN_APP_ID", "730")
	t.Setenv("PROTONRUN_PORT", "2000")

	cfg, err := config.NewLoader(fsys).Load("", ports.ConfigOverrides{})
	require.NoError(t, err)
	assert.Equal(t, domain.AppID("730"), cfg.AppID, "environment beats file")
	assert.Equal(t, 2000, cfg.Port)
	assert.Equal(t, "pretty", cfg.LogFormat)

	cfg, err = config.NewLoader(fsys).Load("", ports.ConfigOverrides{AppID: "570", LogFormat: "json"})
	require.NoError(t, err)
	assert.Equal(t, domain.AppID("570"), cfg.AppID, "flags beat environment")
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		overrides ports.ConfigOverrides
		wantErr   error
	}{
		{
			name:    "malformed yaml",
			content: "app_id: [unclosed\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "non numeric app id",
			content: "app_id: rocket\n",
			wantErr: domain.ErrInvalidAppID,
		},
		{
			name:      "non numeric app id flag",
			overrides: ports.ConfigOverrides{AppID: "12a"},
			wantErr:   domain.ErrInvalidAppID,
		},
		{
			name:    "port out of range",
			content: "port: 70000\n",
			wantErr: domain.ErrInvalidPort,
		},
		{
			name:    "unknown log format",
			content: "log_format: fancy\n",
			wantErr: domain.ErrInvalidLogFormat,
		},
		{
			name:    "extra env without separator",
			content: "extra_env:\n  - WINEDEBUG\n",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := setupHome(t)
			writeFile(t, fsys, "/cfg/config.yaml", tt.content)

			cfg, err := config.NewLoader(fsys).Load("/cfg/config.yaml", tt.overrides)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	fsys := setupHome(t)

	_, err := config.NewLoader(fsys).Load("/nope/config.yaml", ports.ConfigOverrides{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/home/deck")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/xdg/protonrun/config.yaml", path)
}
