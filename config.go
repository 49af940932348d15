package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go-tiles/internal/board"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	releaseVersion = "0.2.0"
)

type Config struct {
	size     board.Size
	faces    []string
	seed     int64
	logFile  string
	logLevel string
	version  bool
}

func (c *Config) validate() error {
	if _, err := zerolog.ParseLevel(c.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.logLevel, err)
	}
	return nil
}

// newLogger returns a logger writing to the configured file. The terminal
// belongs to the UI, so without a file everything is discarded.
func (c *Config) newLogger() (zerolog.Logger, io.Closer, error) {
	if c.logFile == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(c.logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("error opening log file: %w", err)
	}

	lvl, _ := zerolog.ParseLevel(c.logLevel)
	logger := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return logger, f, nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TILES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg.size = board.Large

	cmd := &cobra.Command{
		Use:           "go-tiles",
		Short:         "A memory-matching tile game for the terminal.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.VarP(&cfg.size, "size", "s", "board size preselected in the menu: small, medium or large (env: TILES_SIZE)")
	fs.StringSliceVarP(&cfg.faces, "faces", "f", nil, "files or directories with one tile face per line (env: TILES_FACES)")
	fs.Int64Var(&cfg.seed, "seed", 0, "seed for dealing, 0 picks one from the clock (env: TILES_SEED)")
	fs.StringVar(&cfg.logFile, "log-file", "", "write logs to this file (env: TILES_LOG_FILE)")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn or error (env: TILES_LOG_LEVEL)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: TILES_VERSION)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("go-tiles v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
