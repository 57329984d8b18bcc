package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in default configuration as YAML.

Save it to ~/.arcade/configs/tetris.yaml or ./configs/tetris.yaml and edit
it to change the board size, gravity and level progression.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data := config.GetDefaultYAML(tetrisGameID)
	if data == nil {
		return fmt.Errorf("no default config for %q", tetrisGameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
