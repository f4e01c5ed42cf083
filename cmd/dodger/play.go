package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodger/internal/audio"
	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  W/A/S/D, H/J/K/L, arrows  - Move
  P                         - Pause
  Ctrl+S                    - Save a text screenshot to ~/.dodger/screenshots
  ?                         - Show all keys
  Q/Ctrl+C                  - Quit

Without --difficulty a preset picker is shown first. After a crash, press
any key to play again. The game pauses while the terminal is not focused.

Examples:
  dodger play
  dodger play --difficulty easy --mute
  dodger play --seed 7 --log-file /tmp/dodger.log`,
	RunE: runPlay,
}

func init() {
	// The root command plays too, so it takes the same flags.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	rt, err := runtimeConfig()
	if err != nil {
		return err
	}
	gameCfg, source, err := loadGameConfig()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to --log-file or nowhere.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("config loaded", "source", source, "preset", gameCfg.Difficulty.Preset)

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	// Without --difficulty the player picks a preset first.
	if flagDifficulty == "" {
		preset, err := tui.RunDifficultySelector(gameCfg, rt.ScreenW, rt.ScreenH)
		if err != nil {
			return err
		}
		if preset == "" {
			return nil
		}
		if err := config.ApplyPreset(&gameCfg, preset); err != nil {
			return err
		}
		logger.Info("difficulty selected", "preset", preset)
	}

	rt.Muted = flagMute || gameCfg.Audio.Volume == 0
	sound, err := audio.New(rt.Muted, gameCfg.Audio.Volume)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer sound.Close()

	return tui.Run(tui.Options{
		Runtime: rt,
		Game:    gameCfg,
		Sound:   sound,
		Logger:  logger,
	})
}
