// Package paths locates the per-user files of tablo.
package paths

import "path/filepath"

const (
	appName = "tablo"

	// StyleFile is the name of the global style file inside ConfigDir.
	StyleFile = "style.yaml"
)

// ConfigDir returns the tablo configuration directory for the current platform
func ConfigDir() string {
	return ConfigDirFor(Host)
}

// ConfigDirFor resolves the configuration directory on platform.
// It returns "" when the directory cannot be determined.
func ConfigDirFor(platform Platform) string {
	switch platform.OS() {
	case "windows":
		// %APPDATA%\tablo\
		appData := platform.Getenv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, appName)
	case "darwin":
		// ~/Library/Application Support/tablo/
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", appName)
	default: // linux, etc.
		// $XDG_CONFIG_HOME/tablo/, falling back to ~/.config/tablo/
		if xdg := platform.Getenv("XDG_CONFIG_HOME"); filepath.IsAbs(xdg) {
			return filepath.Join(xdg, appName)
		}
		home, err := platform.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", appName)
	}
}

// GlobalStyleFile returns the path of the user-wide style file, or "" when
// there is no configuration directory.
func GlobalStyleFile() string {
	return GlobalStyleFileFor(Host)
}

// GlobalStyleFileFor resolves the global style file on platform.
func GlobalStyleFileFor(platform Platform) string {
	dir := ConfigDirFor(platform)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, StyleFile)
}
