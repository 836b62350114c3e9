// Package config loads the protonrun configuration with viper: built-in
// defaults, then an optional YAML file, then PROTONRUN_* environment
// variables, then command-line overrides.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	fsadapter "go.trai.ch/protonrun/internal/adapters/fs"
	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/protonrun/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// AppName names the config directory and the environment prefix.
	AppName = "protonrun"
	// FileName is the config file looked up in the config directory.
	FileName = "config.yaml"

	// DefaultExecutable and DefaultPort form the command printed by default.
	DefaultExecutable = "RLBot.exe"
	DefaultPort       = 23234
	// DefaultLogFormat lets the detector choose.
	DefaultLogFormat = "auto"
)

const (
	keyAppID     = "app_id"
	keySteamRoot = "steam_root"
	keyTarget    = "target"
	keyPort      = "port"
	keyExtraEnv  = "extra_env"
	keyLogFormat = "log_format"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading config files from fsys.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// Load builds the configuration. An explicit path must exist; the default
// location is optional.
func (l *Loader) Load(path string, overrides ports.ConfigOverrides) (*domain.Config, error) {
	v := viper.New()
	v.SetDefault(keyAppID, domain.RocketLeagueAppID.String())
	v.SetDefault(keySteamRoot, "")
	v.SetDefault(keyTarget, DefaultExecutable)
	v.SetDefault(keyPort, DefaultPort)
	v.SetDefault(keyExtraEnv, []string{})
	v.SetDefault(keyLogFormat, DefaultLogFormat)

	if err := l.readFile(v, path); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(AppName)
	v.AutomaticEnv()

	if overrides.AppID != "" {
		v.Set(keyAppID, overrides.AppID)
	}
	if overrides.LogFormat != "" {
		v.Set(keyLogFormat, overrides.LogFormat)
	}

	return build(v)
}

func (l *Loader) readFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			// Without a home directory there is no default file to read.
			return nil //nolint:nilerr // the default file is optional
		}
		path = defaultPath
	}

	exists, err := fsadapter.Exists(l.fs, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	if !exists {
		if explicit {
			return zerr.With(domain.ErrConfigReadFailed, "path", path)
		}
		return nil
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

func build(v *viper.Viper) (*domain.Config, error) {
	cfg := &domain.Config{
		AppID:      domain.AppID(strings.TrimSpace(v.GetString(keyAppID))),
		Executable: v.GetString(keyTarget),
		Port:       v.GetInt(keyPort),
		LogFormat:  strings.ToLower(v.GetString(keyLogFormat)),
	}

	if err := cfg.AppID.Validate(); err != nil {
		return nil, err
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, zerr.With(domain.ErrInvalidPort, "port", cfg.Port)
	}
	switch cfg.LogFormat {
	case "auto", "pretty", "json":
	default:
		return nil, zerr.With(domain.ErrInvalidLogFormat, "log_format", cfg.LogFormat)
	}

	extraEnv, err := parseExtraEnv(v.GetStringSlice(keyExtraEnv))
	if err != nil {
		return nil, err
	}
	cfg.ExtraEnv = extraEnv

	steamRoot, err := expandSteamRoot(v.GetString(keySteamRoot))
	if err != nil {
		return nil, err
	}
	cfg.SteamRoot = steamRoot

	return cfg, nil
}

// parseExtraEnv turns KEY=VALUE entries into a map. Entries are kept as a
// list because viper folds map keys to lower case.
func parseExtraEnv(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			return nil, zerr.With(domain.ErrConfigParseFailed, keyExtraEnv, entry)
		}
		env[key] = value
	}
	return env, nil
}

func expandSteamRoot(root string) (string, error) {
	if root != "" && root != "~" && !strings.HasPrefix(root, "~/") {
		return filepath.Clean(root), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrHomeDirUnavailable.Error())
	}
	if root == "" {
		return domain.DefaultSteamRoot(home), nil
	}
	return filepath.Join(home, strings.TrimPrefix(root, "~")), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/protonrun/config.yaml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrHomeDirUnavailable.Error())
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName, FileName), nil
}
