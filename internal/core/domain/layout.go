package domain

import "path/filepath"

const (
	// SteamDirName is the Steam directory relative to the home directory.
	SteamDirName = ".steam/steam"

	// SteamAppsDirName is the directory under a Steam or library root that
	// holds manifests, compat data and installed content.
	SteamAppsDirName = "steamapps"

	// CompatDataDirName holds one prefix directory per application.
	CompatDataDirName = "compatdata"

	// CommonDirName holds installed application and tool content.
	CommonDirName = "common"

	// LibraryFoldersFileName is the library index inside SteamAppsDirName.
	LibraryFoldersFileName = "libraryfolders.vdf"

	// VersionMarkerFileName records the runtime that created a prefix.
	VersionMarkerFileName = "version"

	// RuntimeDirPrefix prefixes the version in a runtime install directory.
	RuntimeDirPrefix = "Proton "

	// RuntimeBinaryName is the runtime launcher inside its install directory.
	RuntimeBinaryName = "proton"

	// RunInPrefixVerb makes the runtime execute a command in an existing prefix.
	RunInPrefixVerb = "runinprefix"

	// CompatDataEnvVar tells the runtime which prefix to use.
	CompatDataEnvVar = "STEAM_COMPAT_DATA_PATH"

	// LibraryFoldersRootKey is the top-level key of the library index.
	LibraryFoldersRootKey = "libraryfolders"

	// LibraryPathKey and LibraryAppsKey are the fields of a library entry.
	LibraryPathKey = "path"
	LibraryAppsKey = "apps"

	// ManifestRootKey is the top-level key of an application manifest.
	ManifestRootKey = "AppState"
	// ManifestNameKey holds the application's display name.
	ManifestNameKey = "name"
)

// DefaultSteamRoot returns the conventional Steam root below home.
func DefaultSteamRoot(home string) string {
	return filepath.Join(home, SteamDirName)
}

// SteamAppsPath returns <root>/steamapps.
func SteamAppsPath(root string) string {
	return filepath.Join(root, SteamAppsDirName)
}

// LibraryFoldersPath returns the library index path for a Steam root.
func LibraryFoldersPath(steamRoot string) string {
	return filepath.Join(SteamAppsPath(steamRoot), LibraryFoldersFileName)
}

// ManifestFileName returns appmanifest_<id>.acf.
func ManifestFileName(id AppID) string {
	return "appmanifest_" + id.String() + ".acf"
}

// ManifestPath returns the manifest path for id below a library root.
func ManifestPath(libraryRoot string, id AppID) string {
	return filepath.Join(SteamAppsPath(libraryRoot), ManifestFileName(id))
}

// CompatDataPath returns <library_root>/steamapps/compatdata/<id>.
func CompatDataPath(libraryRoot string, id AppID) string {
	return filepath.Join(SteamAppsPath(libraryRoot), CompatDataDirName, id.String())
}

// RuntimeDirName returns the install directory name for a runtime version.
func RuntimeDirName(version string) string {
	return RuntimeDirPrefix + version
}

// RuntimeDirPath returns <library_root>/steamapps/common/<dirName>.
func RuntimeDirPath(libraryRoot, dirName string) string {
	return filepath.Join(SteamAppsPath(libraryRoot), CommonDirName, dirName)
}

// RuntimeBinaryPath returns the runtime launcher inside a runtime directory.
func RuntimeBinaryPath(runtimeDir string) string {
	return filepath.Join(runtimeDir, RuntimeBinaryName)
}
