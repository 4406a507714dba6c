package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/easyeda2kicad/easyeda2kicad/internal/config"
)

const toolVersion = "0.9.0"

var (
	// Global flags
	verbose bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "easyeda2kicad",
	Short: "Convert EasyEDA components into KiCad symbol libraries",
	Long: `easyeda2kicad maintains KiCad symbol library files by patching them in
place: new symbol entries are added, existing ones overwritten and multi-unit
bodies appended, all without disturbing the rest of the file.

Examples:
  easyeda2kicad lib add my.kicad_sym entry.txt       # Append a symbol entry
  easyeda2kicad lib set my.kicad_sym C2040 entry.txt # Overwrite (or first-publish)
  easyeda2kicad lib info my.kicad_sym                # List symbols in a library`,
	Version: toolVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		// First-run marker in the working directory.
		store := &config.Store{Dir: ".", ToolVersion: toolVersion}
		conf, err := store.Load()
		if err != nil {
			return err
		}
		logger.Debug("loaded sidecar config", "version", conf.Version)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
