package config

import (
	_ "embed"
)

//go:embed defaults/flappybird.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the hardcoded default settings, used as the final
// fallback if even the embedded YAML fails to parse.
func DefaultSettings() Settings {
	return Settings{
		Bird: BirdSettings{
			Color:   "yellow",
			EyeSize: 7,
		},
		Volumes: VolumeSettings{
			Flap:      0.8,
			Score:     0.9,
			Collision: 1.0,
			Music:     0.5,
		},
	}
}
