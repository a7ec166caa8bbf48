package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Themes accepted by the settings file.
const (
	ThemeDefault = "default"
	ThemeNeon    = "neon"
	ThemeMono    = "mono"
)

// ErrUnknownSetting is returned by Settings.Set for an unrecognized key.
var ErrUnknownSetting = errors.New("unknown setting")

// SettingKeys lists the keys accepted by Settings.Set, in display order.
var SettingKeys = []string{"mode", "difficulty", "theme", "low_end_mode", "bell"}

// Settings are the user's persisted preferences.
type Settings struct {
	Mode       string `yaml:"mode" validate:"oneof=cpu pvp"`
	Difficulty string `yaml:"difficulty" validate:"oneof=easy medium hard"`
	Theme      string `yaml:"theme" validate:"oneof=default neon mono"`
	// LowEndMode turns off the blinking win line.
	LowEndMode bool `yaml:"low_end_mode"`
	// Bell rings the terminal bell when a round ends.
	Bell bool `yaml:"bell"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		Mode:       ModeCPU,
		Difficulty: DifficultyEasy,
		Theme:      ThemeDefault,
		Bell:       true,
	}
}

// SettingsPath returns ~/.tictactoe/settings.yaml, or empty if home is unavailable.
func SettingsPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "settings.yaml")
}

// LoadSettings reads settings from path (SettingsPath when empty).
// A missing file yields DefaultSettings without error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		path = SettingsPath()
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("config: failed to read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("config: failed to parse settings %s: %w", path, err)
	}
	if err := Validate(s); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// SaveSettings validates s and writes it to path (SettingsPath when empty).
func SaveSettings(path string, s Settings) error {
	if err := Validate(s); err != nil {
		return err
	}
	if path == "" {
		path = SettingsPath()
	}
	if path == "" {
		return errors.New("config: cannot determine settings path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory for %s: %w", path, err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: cannot encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: cannot write settings %s: %w", path, err)
	}
	return nil
}

// Set assigns one setting by key and validates the result. On error s is unchanged.
func (s *Settings) Set(key, value string) error {
	next := *s
	value = strings.TrimSpace(value)

	switch strings.ToLower(key) {
	case "mode":
		next.Mode = strings.ToLower(value)
	case "difficulty":
		next.Difficulty = strings.ToLower(value)
	case "theme":
		next.Theme = strings.ToLower(value)
	case "low_end_mode", "low-end-mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: %w: low_end_mode wants true or false, got %q", ErrInvalid, value)
		}
		next.LowEndMode = b
	case "bell":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config: %w: bell wants true or false, got %q", ErrInvalid, value)
		}
		next.Bell = b
	default:
		return fmt.Errorf("config: %w %q (want one of %s)", ErrUnknownSetting, key, strings.Join(SettingKeys, ", "))
	}

	if err := Validate(next); err != nil {
		return err
	}
	*s = next
	return nil
}

// Get returns one setting as text.
func (s Settings) Get(key string) (string, error) {
	switch strings.ToLower(key) {
	case "mode":
		return s.Mode, nil
	case "difficulty":
		return s.Difficulty, nil
	case "theme":
		return s.Theme, nil
	case "low_end_mode", "low-end-mode":
		return strconv.FormatBool(s.LowEndMode), nil
	case "bell":
		return strconv.FormatBool(s.Bell), nil
	default:
		return "", fmt.Errorf("config: %w %q", ErrUnknownSetting, key)
	}
}
