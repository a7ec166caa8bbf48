package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// env is everything a command needs after flags, settings and config files
// have been read.
type env struct {
	logger   *log.Logger
	logFile  *os.File
	settings config.Settings
	cfg      config.TicTacToeConfig
}

// newLogger writes to --log-file when given. Interactive commands pass
// io.Discard as the fallback so logs never draw over the board.
func newLogger(fallback io.Writer) (*log.Logger, *os.File, error) {
	out := fallback
	var f *os.File
	if flagLogFile != "" {
		var err error
		f, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tictactoe",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// loadEnv reads settings and the engine config, applies the mode and
// difficulty flags on top, and installs the result for games and the TUI.
func loadEnv(logOut io.Writer, mode, difficulty string) (*env, error) {
	logger, logFile, err := newLogger(logOut)
	if err != nil {
		return nil, err
	}
	e := &env{logger: logger, logFile: logFile}

	e.settings, err = config.LoadSettings(config.SettingsPath())
	if err != nil {
		logger.Warn("ignoring settings file", "path", config.SettingsPath(), "error", err)
	}

	e.cfg, err = config.LoadTicTacToe(flagConfig, &e.settings)
	if err != nil {
		e.close()
		return nil, err
	}
	if err := config.ApplyModePreset(&e.cfg, mode); err != nil {
		e.close()
		return nil, err
	}
	if err := config.ApplyDifficultyPreset(&e.cfg, difficulty); err != nil {
		e.close()
		return nil, err
	}

	tictactoe.SetConfig(e.cfg)
	tictactoe.SetLowEndMode(e.settings.LowEndMode)
	tui.SetTheme(tui.ThemeByName(e.settings.Theme))

	logger.Debug("config loaded", "mode", e.cfg.Mode, "difficulty", e.cfg.Difficulty,
		"cpu_delay_ms", e.cfg.CPUDelayMS, "medium_depth", e.cfg.Engine.MediumDepth,
		"hard_depth", e.cfg.Engine.HardDepth)
	return e, nil
}

func (e *env) close() {
	if e.logFile != nil {
		e.logFile.Close()
	}
}

// openStore opens the results database. Failure only disables history.
func (e *env) openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		e.logger.Warn("results database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func (e *env) modelOptions() []tui.ModelOption {
	opts := []tui.ModelOption{tui.WithLogger(e.logger)}
	if e.settings.Bell {
		opts = append(opts, tui.WithBell(os.Stdout))
	}
	return opts
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
