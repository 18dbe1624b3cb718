// Package config provides YAML-based settings loading for the game,
// with embedded defaults and validation of cosmetic and volume values.
package config

// Settings contains the player-adjustable configuration read at session
// construction time. Physics and obstacle tuning are fixed constants in the
// game package; settings only cover cosmetics and audio volumes.
type Settings struct {
	Bird    BirdSettings   `yaml:"bird"`
	Volumes VolumeSettings `yaml:"volumes"`
}

// BirdSettings holds cosmetic parameters for the bird.
type BirdSettings struct {
	Color   string  `yaml:"color"`    // Named color, e.g. "yellow", "red"
	EyeSize float64 `yaml:"eye_size"` // Eye radius in logical units
}

// VolumeSettings holds per-cue volume scalars in [0, 1].
type VolumeSettings struct {
	Flap      float64 `yaml:"flap"`
	Score     float64 `yaml:"score"`
	Collision float64 `yaml:"collision"`
	Music     float64 `yaml:"music"`
}

// knownColors lists the color names settings may use.
var knownColors = map[string]bool{
	"yellow":  true,
	"red":     true,
	"green":   true,
	"blue":    true,
	"magenta": true,
	"cyan":    true,
	"white":   true,
	"orange":  true,
}

// Validate normalizes out-of-range values in place rather than failing:
// unknown colors fall back to the default, non-positive eye sizes fall back
// to the default, and volumes are clamped into [0, 1].
func (s *Settings) Validate() {
	def := DefaultSettings()

	if !knownColors[s.Bird.Color] {
		s.Bird.Color = def.Bird.Color
	}
	if s.Bird.EyeSize <= 0 {
		s.Bird.EyeSize = def.Bird.EyeSize
	}

	s.Volumes.Flap = clampVolume(s.Volumes.Flap)
	s.Volumes.Score = clampVolume(s.Volumes.Score)
	s.Volumes.Collision = clampVolume(s.Volumes.Collision)
	s.Volumes.Music = clampVolume(s.Volumes.Music)
}

func clampVolume(v float64) float64 {
	if v != v { // NaN from a malformed file is treated as silent
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
