package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved preferences",
	Long: `Show the preferences stored in ~/.tictactoe/settings.yaml.

Keys:
  mode          cpu or pvp
  difficulty    easy, medium or hard
  theme         default, neon or mono
  low_end_mode  true to stop the winning line from blinking
  bell          false to silence the bell at the end of a round

Examples:
  tictactoe settings
  tictactoe settings set difficulty hard
  tictactoe settings set theme neon
  tictactoe settings reset`,
	Args: cobra.NoArgs,
	Run:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change one preference",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.SettingKeys,
	Run:       runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default preferences",
	Args:  cobra.NoArgs,
	Run:   runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettingsShow(_ *cobra.Command, _ []string) {
	path := config.SettingsPath()
	s, err := config.LoadSettings(path)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Settings (%s)\n", path)
	fmt.Println()
	for _, key := range config.SettingKeys {
		v, _ := s.Get(key)
		fmt.Printf("  %-14s %s\n", key, v)
	}
}

func runSettingsSet(_ *cobra.Command, args []string) {
	path := config.SettingsPath()
	s, err := config.LoadSettings(path)
	if err != nil {
		fatalf("%v", err)
	}
	if err := s.Set(args[0], args[1]); err != nil {
		fatalf("%v", err)
	}
	if err := config.SaveSettings(path, s); err != nil {
		fatalf("%v", err)
	}
	v, _ := s.Get(args[0])
	fmt.Printf("%s = %s\n", args[0], v)
}

func runSettingsReset(_ *cobra.Command, _ []string) {
	if err := config.SaveSettings(config.SettingsPath(), config.DefaultSettings()); err != nil {
		fatalf("%v", err)
	}
	fmt.Println("Settings restored to defaults.")
}
