// Package core locates pathintel's per-user files under ~/.pathintel.
package core

import (
	"os"
	"path/filepath"
)

// dataDirName is the directory under the user's home holding the log and config files.
const dataDirName = ".pathintel"

// Paths are the per-user locations pathintel reads and writes.
type Paths struct {
	HomeDir string
	// DataDir holds LogFile and ConfigFile and is created on first use.
	DataDir    string
	LogFile    string
	ConfigFile string
}

var defaultPaths *Paths

// pathsFor lays out the data files under homeDir.
func pathsFor(homeDir string) *Paths {
	dataDir := filepath.Join(homeDir, dataDirName)
	return &Paths{
		HomeDir:    homeDir,
		DataDir:    dataDir,
		LogFile:    filepath.Join(dataDir, "pathintel.log"),
		ConfigFile: filepath.Join(dataDir, "config.yaml"),
	}
}

func ensureDefaultPaths() {
	if defaultPaths != nil {
		return
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	paths := pathsFor(homeDir)
	if err := os.MkdirAll(paths.DataDir, 0755); err != nil {
		panic(err)
	}
	defaultPaths = paths
}

// HomeDir returns the current user's home directory.
func HomeDir() string {
	ensureDefaultPaths()
	return defaultPaths.HomeDir
}

// DataDir returns ~/.pathintel, creating it if needed.
func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

// LogFile is where the CLI writes its zap logs.
func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

// ConfigFile is the YAML config read when no --config flag is given.
func ConfigFile() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigFile
}

// ResetPaths clears the cached paths so the next accessor recomputes them
// from the current home directory.
func ResetPaths() {
	defaultPaths = nil
}
