package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "yellow", s.Bird.Color)
	assert.Greater(t, s.Bird.EyeSize, 0.0)
	for _, v := range []float64{s.Volumes.Flap, s.Volumes.Score, s.Volumes.Collision, s.Volumes.Music} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestValidateClampsVolumes(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"negative becomes zero", -0.5, 0},
		{"above one is clamped", 3.7, 1},
		{"in range untouched", 0.4, 0.4},
		{"zero stays zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.Volumes.Flap = tt.in
			s.Validate()
			assert.Equal(t, tt.expected, s.Volumes.Flap)
		})
	}
}

func TestValidateCosmetics(t *testing.T) {
	s := DefaultSettings()
	s.Bird.Color = "plaid"
	s.Bird.EyeSize = -3
	s.Validate()

	assert.Equal(t, "yellow", s.Bird.Color, "unknown color falls back to default")
	assert.Equal(t, DefaultSettings().Bird.EyeSize, s.Bird.EyeSize, "non-positive eye size falls back to default")
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("bird:\n  color: red\n  eye_size: 5\nvolumes:\n  flap: 2.0\n  score: 0.1\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "red", s.Bird.Color)
	assert.Equal(t, 5.0, s.Bird.EyeSize)
	assert.Equal(t, 1.0, s.Volumes.Flap, "over-range volume clamped")
	assert.Equal(t, 0.1, s.Volumes.Score)
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err, "explicit custom path must exist")
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	// Run from a temp dir with no local or user config so the embedded
	// defaults are exercised.
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}
