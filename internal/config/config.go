package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThatOtherAndrew/glclock/internal/logging"
	"github.com/ThatOtherAndrew/glclock/internal/models"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/constraints"
)

type Settings struct {
	ClearColor      [4]float32   `toml:"clear_color"`
	DiskSegments    int          `toml:"disk_segments"`
	DiskColor       models.Color `toml:"disk_color,inline"`
	SecondHandColor models.Color `toml:"second_hand_color,inline"`
	MinuteHandColor models.Color `toml:"minute_hand_color,inline"`
	HourHandColor   models.Color `toml:"hour_hand_color,inline"`
	VSync           bool         `toml:"vsync"`
	ShaderDir       string       `toml:"shader_dir"`
	LogLevel        string       `toml:"log_level"`
}

func Default() *Settings {
	return &Settings{
		ClearColor:      [4]float32{0.78, 0.63, 0.78, 1.0},
		DiskSegments:    30,
		DiskColor:       models.White,
		SecondHandColor: models.Color{R: 200, G: 30, B: 30},
		MinuteHandColor: models.Color{R: 40, G: 40, B: 40},
		HourHandColor:   models.Color{R: 20, G: 20, B: 20},
		VSync:           true,
		LogLevel:        "info",
	}
}

// Hands returns the default hand geometry with the configured colours.
func (s *Settings) Hands() [3]models.HandSpec {
	hands := models.Hands()
	hands[0].Color = s.SecondHandColor
	hands[1].Color = s.MinuteHandColor
	hands[2].Color = s.HourHandColor
	return hands
}

func GetSettingsPath() (string, error) {
	baseDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(baseDir, "clock")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.toml"), nil
}

func LoadSettings() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return Load(settingsPath)
}

// Load reads settings from path, writing a default file there if none
// exists. A malformed file falls back to defaults rather than failing.
func Load(path string) (*Settings, error) {
	defaultSettings := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Info("Creating default settings file at %s", path)
			if err := createDefaultSettings(path, defaultSettings); err != nil {
				logging.Warn("Failed to create default settings file: %v", err)
			}
			return defaultSettings, nil
		}
		return nil, err
	}

	settings := Default()
	if err := decode(data, settings); err != nil {
		logging.Warn("Invalid settings file, using defaults: %v", err)
		return defaultSettings, nil
	}

	settings.validate(defaultSettings)
	return settings, nil
}

// decode warns about keys Settings does not know and still applies the
// rest of the file.
func decode(data []byte, settings *Settings) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	err := dec.Decode(settings)

	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		return err
	}
	for _, e := range strict.Errors {
		logging.Warn("Unrecognised setting key '%s' in settings file", strings.Join(e.Key(), "."))
	}
	return toml.Unmarshal(data, settings)
}

func (s *Settings) validate(defaults *Settings) {
	for i, c := range s.ClearColor {
		if clamped := Clamp(c, 0, 1); clamped != c {
			logging.Warn("Invalid clear_color component %.2f, must be between 0.0 and 1.0, using %.2f", c, clamped)
			s.ClearColor[i] = clamped
		}
	}

	if s.DiskSegments < 1 {
		logging.Warn("Invalid disk_segments value %d, must be at least 1, using default %d",
			s.DiskSegments, defaults.DiskSegments)
		s.DiskSegments = defaults.DiskSegments
	}

	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		logging.Warn("Invalid log_level %q, using default %q", s.LogLevel, defaults.LogLevel)
		s.LogLevel = defaults.LogLevel
	}
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Clamp[T constraints.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
