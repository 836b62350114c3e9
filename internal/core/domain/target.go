package domain

// Target names the application a resolution pass works for and where Steam
// lives on this machine.
type Target struct {
	// AppID is the application whose prefix is resolved.
	AppID AppID
	// SteamRoot is the Steam installation directory, usually ~/.steam/steam.
	SteamRoot string
	// ExtraEnv holds additional variables the runtime needs. They are merged
	// into the prepared environment but never replace STEAM_COMPAT_DATA_PATH.
	ExtraEnv map[string]string
}

// Config is the user configuration of protonrun.
type Config struct {
	AppID     AppID
	SteamRoot string
	// Executable and Port form the default command printed by the root command.
	Executable string
	Port       int
	ExtraEnv   map[string]string
	LogFormat  string
}

// Target returns the resolution target described by the configuration.
func (c *Config) Target() Target {
	return Target{
		AppID:     c.AppID,
		SteamRoot: c.SteamRoot,
		ExtraEnv:  c.ExtraEnv,
	}
}
