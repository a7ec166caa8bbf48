package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. TICTACTOE_DIFFICULTY.
const EnvPrefix = "TICTACTOE_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML key so messages match what users edit.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// LoadTicTacToe loads the game tuning.
// Search order: customPath -> ~/.tictactoe/configs/tictactoe.yaml -> ./configs/tictactoe.yaml -> embedded default.
// Mode and difficulty from settings (if non-nil) are layered on top, then
// TICTACTOE_* environment variables, and the result is validated.
func LoadTicTacToe(customPath string, settings *Settings) (TicTacToeConfig, error) {
	cfg, err := loadYAML(customPath)
	if err != nil {
		return cfg, err
	}

	if settings != nil {
		if settings.Mode != "" {
			cfg.Mode = settings.Mode
		}
		if settings.Difficulty != "" {
			cfg.Difficulty = settings.Difficulty
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadYAML(customPath string) (TicTacToeConfig, error) {
	// Start from defaults so a partial file only overrides what it names.
	cfg := DefaultTicTacToeConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("tictactoe.yaml"),
		filepath.Join("configs", "tictactoe.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultTicTacToeConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			return fileCfg, nil
		}
	}

	embedded := DefaultTicTacToeConfig()
	if err := yaml.Unmarshal(defaultTicTacToeYAML, &embedded); err != nil {
		return DefaultTicTacToeConfig(), nil
	}
	return embedded, nil
}

// ApplyEnv overrides cfg with TICTACTOE_* environment variables.
// Unset variables leave the current values alone.
func ApplyEnv(cfg *TicTacToeConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Validate checks a struct against its validate tags. Failures wrap ErrInvalid.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w: %v", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s", fe.Field(), fe.Value(), rule))
	}
	return fmt.Errorf("config: %w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Dir returns ~/.tictactoe, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tictactoe")
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
