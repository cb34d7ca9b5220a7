package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sharmila1320/Kawaiifolio/internal/config"
	"github.com/sharmila1320/Kawaiifolio/internal/game"
	"github.com/sharmila1320/Kawaiifolio/internal/storage"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kawaiifolio",
	Short: "Kawaiifolio - animated pinboard backdrop and portfolio helpers",
	Long: `Kawaiifolio renders the animated particle backdrop of the portfolio
in a desktop window or headlessly to PNG frames, and carries the small
helpers around it: theme preference, saved pins, contact links and the
assistant chat.

Run without arguments to open the background window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackground()
	},
}

var backgroundCmd = &cobra.Command{
	Use:   "background",
	Short: "Open the animated background window",
	Long: `Opens a resizable window running the particle background.

Keys: T toggles light/dark (saved as your preference), S saves a PNG
snapshot, Space pauses, Esc or Q quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBackground()
	},
}

func runBackground() error {
	prefs, err := openPrefs()
	if err != nil {
		return err
	}
	logger.Info("opening background window",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("mode", string(prefs.ThemeMode())))
	return game.Run(cfg, prefs, logger)
}

func openPrefs() (*storage.Prefs, error) {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}
	return storage.NewPrefs(store, logger), nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "Path to the YAML config file")

	rootCmd.AddCommand(backgroundCmd, renderCmd, themeCmd, pinsCmd, contactCmd, chatCmd)
	pinsCmd.AddCommand(pinsListCmd, pinsToggleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
