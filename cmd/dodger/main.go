// dodger is a terminal arcade game: steer a ball across the arena and dodge
// the rocks and slabs flying in from the right.
//
// Usage:
//
//	dodger                  - Play (same as dodger play)
//	dodger play             - Play in the terminal
//	dodger sim              - Run the simulation headless and print its events
//	dodger config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--width, --height <units>  - Arena size in world units (default: 1024x576)
//	--fps <rate>               - Tick rate (default: 60)
//	--seed <value>             - RNG seed for reproducible runs
//	--config <path>            - Custom config YAML
//	--difficulty <preset>      - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

var (
	// Global flags
	flagWidth      float64
	flagHeight     float64
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Dodge obstacles in your terminal",
	Long: `Dodger is a real-time arcade game for the terminal. Steer the ball
around the arena and avoid everything that flies in from the right.
Every obstacle that leaves the arena behind you scores a point.

Available commands:
  play     - Play the game (default)
  sim      - Run the simulation headless and print its events
  config   - Print the effective configuration

Examples:
  dodger
  dodger play --difficulty hard
  dodger sim --seed 42 --frames 600 --hold up
  dodger config > ~/.dodger/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagWidth, "width", core.DefaultArenaW, "Arena width in world units")
	pf.Float64Var(&flagHeight, "height", core.DefaultArenaH, "Arena height in world units")
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the configuration from the --config search order and
// applies --difficulty. It returns the config and the source it came from.
func loadGameConfig() (config.GameConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, "", err
	}
	if err := config.ApplyPreset(&cfg, flagDifficulty); err != nil {
		return config.GameConfig{}, "", err
	}
	return cfg, source, nil
}

// runtimeConfig builds the process-level settings from the global flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagWidth <= 0 || flagHeight <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("arena size must be positive, got %gx%g", flagWidth, flagHeight)
	}
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("fps must be positive, got %d", flagFPS)
	}

	cfg := core.DefaultConfig()
	cfg.ArenaW = flagWidth
	cfg.ArenaH = flagHeight
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg, nil
}
