// Package shell starts processes inside a prefix and quotes command lines for
// the shell.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/protonrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.Launcher using os/exec.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch runs the request with the inherited environment overlaid by
// req.Env and forwards the standard streams. A non-zero exit status is
// returned as the code, not as an error.
func (l *Launcher) Launch(ctx context.Context, req domain.LaunchRequest) (int, error) {
	if len(req.Args) == 0 {
		return 0, domain.ErrNoCommand
	}

	name := req.Args[0]
	env := mergeEnvironment(os.Environ(), req.Env)

	// The program is looked up in the merged PATH, not the parent's.
	executable := name
	if !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, req.Args[1:]...) //nolint:gosec // user provided command
	cmd.Args[0] = name
	cmd.Env = env
	cmd.Dir = req.Dir
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if req.Stdin != nil {
		cmd.Stdin = req.Stdin
	}
	if req.Stdout != nil {
		cmd.Stdout = req.Stdout
	}
	if req.Stderr != nil {
		cmd.Stderr = req.Stderr
	}

	l.logger.Debug("launching " + executable)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, zerr.With(zerr.Wrap(err, domain.ErrLaunchFailed.Error()), "command", name)
	}

	return 0, nil
}

// mergeEnvironment lays overrides over sysEnv and returns sorted KEY=VALUE
// entries.
func mergeEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the PATH found in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if p, ok := strings.CutPrefix(e, "PATH="); ok {
			path = p
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
