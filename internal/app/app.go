// Package app implements the application layer for protonrun.
package app

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"go.trai.ch/protonrun/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/protonrun/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/protonrun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Env.
const (
	FormatShell = "shell"
	FormatYAML  = "yaml"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.EnvironmentResolver
	launcher     ports.Launcher
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.EnvironmentResolver,
	launcher ports.Launcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		launcher:     launcher,
		logger:       log,
	}
}

// Options are the settings shared by every command.
type Options struct {
	ConfigPath string
	AppID      string
	LogFormat  string
	Verbose    bool
}

// RunRequest is a command to launch inside the prefix.
type RunRequest struct {
	Args []string
	Dir  string
}

// logConfigurer is implemented by loggers whose rendering can be changed
// after construction.
type logConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// PrintCommand writes the shell-quoted command that starts the configured
// executable and port inside the prefix.
func (a *App) PrintCommand(ctx context.Context, opts Options, w io.Writer) error {
	cfg, env, err := a.resolve(ctx, opts)
	if err != nil {
		return err
	}
	if err := requireRuntime(env); err != nil {
		return err
	}

	line, err := shell.Join(env.LaunchCommand([]string{cfg.Executable, strconv.Itoa(cfg.Port)}))
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, line); err != nil {
		return zerr.Wrap(err, domain.ErrOutputFailed.Error())
	}
	return nil
}

// Env writes the prefix environment as shell export lines or as YAML.
func (a *App) Env(ctx context.Context, opts Options, format string, w io.Writer) error {
	if format != FormatShell && format != FormatYAML {
		return zerr.With(domain.ErrInvalidOutputFormat, "format", format)
	}

	_, env, err := a.resolve(ctx, opts)
	if err != nil {
		return err
	}
	if env.LibraryRoot == "" {
		return zerr.With(domain.ErrRuntimeNotFound, "hint", hint(env))
	}

	if format == FormatYAML {
		return writeYAML(w, env.Environment)
	}

	for _, key := range env.EnvironmentKeys() {
		value, err := shell.Quote([]string{env.Environment[key]})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "export %s=%s\n", key, value[0]); err != nil {
			return zerr.Wrap(err, domain.ErrOutputFailed.Error())
		}
	}
	return nil
}

// Resolve writes everything a resolution pass found as YAML. Unresolved
// steps are omitted instead of failing.
func (a *App) Resolve(ctx context.Context, opts Options, w io.Writer) error {
	_, env, err := a.resolve(ctx, opts)
	if err != nil {
		return err
	}
	return writeYAML(w, newResolution(env))
}

// Run launches req inside the prefix and returns the child's exit status.
func (a *App) Run(ctx context.Context, opts Options, req RunRequest) (int, error) {
	if len(req.Args) == 0 {
		return 0, domain.ErrNoCommand
	}

	_, env, err := a.resolve(ctx, opts)
	if err != nil {
		return 0, err
	}
	if err := requireRuntime(env); err != nil {
		return 0, err
	}

	a.logger.Debug("running in prefix " + env.CompatDataPath)

	return a.launcher.Launch(ctx, domain.LaunchRequest{
		Args: env.LaunchCommand(req.Args),
		Env:  env.Environment,
		Dir:  req.Dir,
	})
}

// resolve loads the configuration, applies its logging settings and runs a
// resolution pass.
func (a *App) resolve(ctx context.Context, opts Options) (*domain.Config, *domain.RuntimeEnvironment, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath, ports.ConfigOverrides{
		AppID:     opts.AppID,
		LogFormat: opts.LogFormat,
	})
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load configuration")
	}

	a.configureLogger(cfg.LogFormat, opts.Verbose)

	env, err := a.resolver.Resolve(ctx, cfg.Target())
	if err != nil {
		return nil, nil, err
	}

	if env.Resolved() {
		a.logger.Debug("using " + env.RuntimeBinaryPath)
	}
	return cfg, env, nil
}

func (a *App) configureLogger(format string, verbose bool) {
	lc, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}
	lc.SetVerbose(verbose)

	mode := detector.ResolveFormat(detector.DetectEnvironment(), format)
	lc.SetJSON(mode == detector.FormatJSON)
}

func requireRuntime(env *domain.RuntimeEnvironment) error {
	if env.Resolved() {
		return nil
	}
	return zerr.With(zerr.With(domain.ErrRuntimeNotFound, "app_id", env.AppID.String()), "hint", hint(env))
}

// hint explains the first resolution step that found nothing.
func hint(env *domain.RuntimeEnvironment) string {
	switch {
	case env.LibraryRoot == "":
		return "the application is not installed in any Steam library"
	case !env.CompatDataExists:
		return "the application has never been started with Proton, launch it once from Steam"
	case env.RuntimeVersion == "":
		return "the prefix has no Proton version marker"
	default:
		return "Proton " + env.RuntimeVersion + " is not installed in any Steam library"
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, domain.ErrOutputFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrOutputFailed.Error())
	}
	return nil
}

// resolution is the YAML view of a RuntimeEnvironment.
type resolution struct {
	AppID             string            `yaml:"app_id"`
	Resolved          bool              `yaml:"resolved"`
	LibraryRoot       string            `yaml:"library_root,omitempty"`
	AppName           string            `yaml:"app_name,omitempty"`
	ManifestPath      string            `yaml:"manifest,omitempty"`
	CompatDataPath    string            `yaml:"compat_data,omitempty"`
	CompatDataExists  bool              `yaml:"compat_data_exists"`
	RuntimeVersion    string            `yaml:"runtime_version,omitempty"`
	RuntimeDir        string            `yaml:"runtime_dir,omitempty"`
	RuntimeBinaryPath string            `yaml:"runtime_binary,omitempty"`
	Environment       map[string]string `yaml:"environment,omitempty"`
	Hint              string            `yaml:"hint,omitempty"`
}

func newResolution(env *domain.RuntimeEnvironment) resolution {
	r := resolution{
		AppID:             env.AppID.String(),
		Resolved:          env.Resolved(),
		LibraryRoot:       env.LibraryRoot,
		AppName:           env.AppName,
		ManifestPath:      env.ManifestPath,
		CompatDataPath:    env.CompatDataPath,
		CompatDataExists:  env.CompatDataExists,
		RuntimeVersion:    env.RuntimeVersion,
		RuntimeDir:        env.RuntimeDir,
		RuntimeBinaryPath: env.RuntimeBinaryPath,
		Environment:       env.Environment,
	}
	if !r.Resolved {
		r.Hint = hint(env)
	}
	return r
}
