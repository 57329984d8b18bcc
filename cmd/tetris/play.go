package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

const tetrisGameID = tetris.GameID

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to tetris.

Controls:
  Left/H/A        - Move left
  Right/L         - Move right
  Up/W/X          - Rotate clockwise
  Down/Z/S        - Rotate counter-clockwise
  D/J             - Drop one row
  Space           - Hard drop
  P/Esc           - Pause
  R               - Restart (after game over)
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at the slowest gravity, speeds up with level
  normal - Start at 30% of the gravity range, speeds up with level
  hard   - Start at 70%, levels come twice as fast
  fixed  - Gravity never changes

Examples:
  tetris play
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml
  tetris play --seed 42 --log-file tetris.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := tetrisGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'tetris list' to see available games", gameID)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs are dropped unless a file is given
	logger, closer, err := newLogger("tetris", io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Set config path and difficulty for games before creation
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)
	tetris.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	return tui.Run(game, cfg, logger)
}
