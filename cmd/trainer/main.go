// trainer is a terminal skill trainer with an aim game and a typing test.
//
// Usage:
//
//	trainer                  - Open the root menu
//	trainer play <activity>  - Start an activity directly (aim, typing)
//	trainer list             - List available activities
//	trainer serve            - Start SSH server for remote sessions
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible target and prompt choice
//	--config <path>    - Config file (.yaml or .toml)
//	--theme <name>     - Starting theme: dark or light
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-trainer/internal/app"
	"github.com/vovakirdan/tui-trainer/internal/config"
	"github.com/vovakirdan/tui-trainer/internal/platform/tui"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagTheme   string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trainer",
	Short: "Trainer - Practice aim and typing speed in your terminal",
	Long: `Trainer is a terminal skill trainer with two activities:

  Aim Game     - Click targets as they appear; your average reaction time is scored
  Typing Game  - Type a short sentence; your words per minute are scored

Click menu options with the mouse. Best scores are kept for the session.

Controls:
  Mouse      - Choose options, hit targets
  Esc        - Leave the current activity
  Ctrl+S     - Save a text screenshot to ~/.trainer/screenshots
  Ctrl+C     - Quit

Examples:
  trainer
  trainer play aim
  trainer --theme light
  trainer --config ./trainer.toml --log-file /tmp/trainer.log
  trainer serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Starting theme: dark or light (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded if empty)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := runInteractive(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file and applies the --theme flag.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newFileLogger returns a logger writing to --log-file. Interactive
// sessions own the terminal, so without a file logs are discarded.
func newFileLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "trainer",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// runInteractive runs one local session, starting with the given activity
// or at the root menu when activityID is empty.
func runInteractive(activityID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newFileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	a, err := app.New(app.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	if activityID != "" {
		if err := a.Launch(activityID); err != nil {
			return err
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var opts []tui.ModelOption
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		opts = append(opts, tui.WithScreenshotDir(filepath.Join(home, ".trainer", "screenshots")))
	}

	logger.Info("session started", "width", width, "height", height, "theme", a.Theme().Name())
	if err := tui.Run(a, width, height, opts...); err != nil {
		return fmt.Errorf("error running trainer: %w", err)
	}
	logger.Info("session ended")
	return nil
}
