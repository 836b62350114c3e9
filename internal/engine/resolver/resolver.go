// Package resolver finds the Proton runtime and prefix environment of a Steam
// application from the Steam library index.
package resolver

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	fsadapter "go.trai.ch/protonrun/internal/adapters/fs"
	"go.trai.ch/protonrun/internal/core/domain"
	"go.trai.ch/protonrun/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.EnvironmentResolver.
type Resolver struct {
	loader ports.DocumentLoader
	fs     afero.Fs
	logger ports.Logger
}

// NewResolver creates a Resolver reading Steam documents through loader and
// probing paths on fsys.
func NewResolver(loader ports.DocumentLoader, fsys afero.Fs, logger ports.Logger) *Resolver {
	return &Resolver{
		loader: loader,
		fs:     fsys,
		logger: logger,
	}
}

// Pass is one resolution for a single target. It holds the library index
// loaded when the pass began; the filesystem is probed on every call.
type Pass struct {
	resolver *Resolver
	target   domain.Target
	folders  []domain.LibraryFolder
}

// Begin loads the library index of target.SteamRoot and starts a pass.
// Steam always writes the index, so its absence is an error.
func (r *Resolver) Begin(target domain.Target) (*Pass, error) {
	if err := target.AppID.Validate(); err != nil {
		return nil, err
	}

	path := domain.LibraryFoldersPath(target.SteamRoot)
	exists, err := fsadapter.Exists(r.fs, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, zerr.With(domain.ErrRequiredFileMissing, "path", path)
	}

	doc, err := r.loader.Load(path)
	if err != nil {
		return nil, err
	}

	folders := domain.LibraryFolders(doc)
	r.logger.Debug(fmtCount(len(folders), "library folder") + " in " + path)

	return &Pass{
		resolver: r,
		target:   target,
		folders:  folders,
	}, nil
}

// LocateLibraryFolder returns the absolute path of the first library entry
// whose apps list the target application.
func (p *Pass) LocateLibraryFolder() (string, bool, error) {
	for _, folder := range p.folders {
		if !folder.HasApp(p.target.AppID) {
			continue
		}
		abs, err := absPath(folder.Path)
		if err != nil {
			return "", false, err
		}
		p.resolver.logger.Debug("application " + p.target.AppID.String() + " found in library " + folder.Key)
		return abs, true, nil
	}
	return "", false, nil
}

// ManifestPath returns the application manifest, looked up in the library
// holding the application and then in the default Steam library.
func (p *Pass) ManifestPath(libraryRoot string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if libraryRoot != "" {
		candidates = append(candidates, domain.ManifestPath(libraryRoot, p.target.AppID))
	}
	candidates = append(candidates, domain.ManifestPath(p.target.SteamRoot, p.target.AppID))

	return fsadapter.FirstExisting(p.resolver.fs, candidates...)
}

// ReadManifest loads the application manifest at path and returns the
// application's display name. A manifest without one yields "".
func (p *Pass) ReadManifest(path string) (string, error) {
	doc, err := p.resolver.loader.Load(path)
	if err != nil {
		return "", err
	}
	name, ok := doc.Lookup(domain.ManifestRootKey, domain.ManifestNameKey)
	if !ok {
		return "", nil
	}
	return name.Value(), nil
}

// CompatDataPath returns the prefix directory of the target below
// libraryRoot.
func (p *Pass) CompatDataPath(libraryRoot string) string {
	return domain.CompatDataPath(libraryRoot, p.target.AppID)
}

// CompatDataExists reports whether the prefix directory is on disk. It is
// missing until the application has been started under Proton once.
func (p *Pass) CompatDataExists(compatData string) (bool, error) {
	return fsadapter.Exists(p.resolver.fs, compatData)
}

// RuntimeVersion reads the Proton version from the prefix version marker.
// The marker holds "<version>-<build>"; only the part before the first "-"
// is kept. A missing or blank marker is reported as not found.
func (p *Pass) RuntimeVersion(compatData string) (string, bool, error) {
	markerPath := filepath.Join(compatData, domain.VersionMarkerFileName)

	exists, err := fsadapter.Exists(p.resolver.fs, markerPath)
	if err != nil || !exists {
		return "", false, err
	}

	data, err := afero.ReadFile(p.resolver.fs, markerPath)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrVersionMarkerReadFailed.Error()), "path", markerPath)
	}

	version := firstLine(data)
	version, _, _ = strings.Cut(version, "-")
	if version == "" {
		p.resolver.logger.Warn("version marker " + markerPath + " is empty")
		return "", false, nil
	}
	return version, true, nil
}

// FindRuntimeVersionDir returns the "Proton <version>" install directory
// matching the prefix version marker.
func (p *Pass) FindRuntimeVersionDir(compatData string) (string, bool, error) {
	version, ok, err := p.RuntimeVersion(compatData)
	if err != nil || !ok {
		return "", false, err
	}
	return p.runtimeDir(version)
}

// runtimeDir scans every library entry, not only the one holding the
// application, for the install directory of version.
func (p *Pass) runtimeDir(version string) (string, bool, error) {
	dirName := domain.RuntimeDirName(version)

	for _, folder := range p.folders {
		root, err := absPath(folder.Path)
		if err != nil {
			return "", false, err
		}
		candidate := domain.RuntimeDirPath(root, dirName)
		exists, err := fsadapter.DirExists(p.resolver.fs, candidate)
		if err != nil {
			return "", false, err
		}
		if exists {
			return candidate, true, nil
		}
	}

	p.resolver.logger.Debug(dirName + " is not installed in any library")
	return "", false, nil
}

// PrepareEnvironment returns the variables a process needs to run in the
// prefix. Extra variables of the target are included but cannot replace
// STEAM_COMPAT_DATA_PATH.
func (p *Pass) PrepareEnvironment(compatData string) map[string]string {
	env := make(map[string]string, len(p.target.ExtraEnv)+1)
	for k, v := range p.target.ExtraEnv {
		env[k] = v
	}
	env[domain.CompatDataEnvVar] = compatData
	return env
}

// Resolve runs a complete pass for target. Steps that find nothing leave
// their fields empty; only unexpected failures are returned, wrapped in
// domain.ErrEnvironmentResolutionFailed.
func (r *Resolver) Resolve(ctx context.Context, target domain.Target) (*domain.RuntimeEnvironment, error) {
	env, err := r.resolve(ctx, target)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvironmentResolutionFailed.Error()), "app_id", target.AppID.String())
	}
	return env, nil
}

func (r *Resolver) resolve(ctx context.Context, target domain.Target) (*domain.RuntimeEnvironment, error) {
	pass, err := r.Begin(target)
	if err != nil {
		return nil, err
	}

	result := &domain.RuntimeEnvironment{AppID: target.AppID}

	libraryRoot, found, err := pass.LocateLibraryFolder()
	if err != nil {
		return nil, err
	}
	if !found {
		r.logger.Warn("application " + target.AppID.String() + " is not installed in any Steam library")
		return result, nil
	}
	result.LibraryRoot = libraryRoot

	manifest, found, err := pass.ManifestPath(libraryRoot)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, zerr.With(domain.ErrManifestNotFound, "path", domain.ManifestPath(libraryRoot, target.AppID))
	}
	result.ManifestPath = manifest

	result.AppName, err = pass.ReadManifest(manifest)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.CompatDataPath = pass.CompatDataPath(libraryRoot)
	result.Environment = pass.PrepareEnvironment(result.CompatDataPath)

	result.CompatDataExists, err = pass.CompatDataExists(result.CompatDataPath)
	if err != nil {
		return nil, err
	}
	if !result.CompatDataExists {
		r.logger.Debug("no compat data at " + result.CompatDataPath)
		return result, nil
	}

	version, found, err := pass.RuntimeVersion(result.CompatDataPath)
	if err != nil || !found {
		return result, err
	}
	result.RuntimeVersion = version

	dir, found, err := pass.runtimeDir(version)
	if err != nil || !found {
		return result, err
	}
	result.RuntimeDir = dir
	result.RuntimeBinaryPath = domain.RuntimeBinaryPath(dir)

	return result, nil
}

func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrLibraryPathInvalid.Error()), "path", path)
	}
	return abs, nil
}

func firstLine(data []byte) string {
	sc := bufio.NewScanner(bytes.NewReader(data))
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

func fmtCount(n int, noun string) string {
	s := noun
	if n != 1 {
		s += "s"
	}
	return strconv.Itoa(n) + " " + s
}
