package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/skinmesh/config"
	"github.com/katalvlaran/skinmesh/internal/logger"
	"github.com/katalvlaran/skinmesh/skeleton"
)

// settings carries the persistent flags shared by all subcommands.
type settings struct {
	configPath string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:   "skinmesh",
		Short: "Generate closed quad meshes around skeleton graphs",
		Long: `skinmesh wraps a skeleton (nodes with radii joined by edges) in a closed
two-sheet shell. It discovers the faces enclosed by the skeleton, fills each
with quads and extrudes the result by the node radii.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&s.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().StringVar(&s.logFile, "log-file", "", "Also log to this file, rotated (overrides config)")

	root.AddCommand(newGenerateCmd(), newCyclesCmd(s), newBuildCmd(s))

	return root
}

// load resolves the config with flag overrides and builds the logger.
// Logs go to the command's error stream; the caller closes the logger when
// the command returns.
func (s *settings) load(cmd *cobra.Command) (*config.Config, *zap.Logger, func() error, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if s.logLevel != "" {
		cfg.Logging.Level = s.logLevel
	}
	if s.logFile != "" {
		cfg.Logging.LogFile = s.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}
	log, closeLog := logger.New(cfg.Logging.Level, cfg.Logging.LogFile, cmd.ErrOrStderr())

	return cfg, log, closeLog, nil
}

// readSkeleton loads the skeleton named by the only argument; "-" reads
// standard input.
func readSkeleton(cmd *cobra.Command, path string) (*skeleton.Skeleton, error) {
	if path == "-" {
		return skeleton.Decode(cmd.InOrStdin())
	}

	return skeleton.Load(path)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
