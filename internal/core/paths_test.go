package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	ResetPaths()
	defer ResetPaths()

	assert.Equal(t, home, HomeDir())
	assert.Equal(t, filepath.Join(home, ".pathintel"), DataDir())
	assert.Equal(t, filepath.Join(home, ".pathintel", "pathintel.log"), LogFile())
	assert.Equal(t, filepath.Join(home, ".pathintel", "config.yaml"), ConfigFile())

	info, err := os.Stat(DataDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPathsFor(t *testing.T) {
	p := pathsFor("/home/u")
	assert.Equal(t, &Paths{
		HomeDir:    "/home/u",
		DataDir:    filepath.Join("/home/u", ".pathintel"),
		LogFile:    filepath.Join("/home/u", ".pathintel", "pathintel.log"),
		ConfigFile: filepath.Join("/home/u", ".pathintel", "config.yaml"),
	}, p)
}
