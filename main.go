package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go-tiles/internal/board"
	"go-tiles/internal/game"
	"go-tiles/internal/scoring"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func run(ctx context.Context, cfg *Config) error {
	logger, closer, err := cfg.newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	faces := board.DefaultFaces
	if len(cfg.faces) > 0 {
		faces, err = game.LoadFaces(cfg.faces)
		if err != nil {
			return err
		}
		if err := game.ValidateFaces(faces); err != nil {
			return err
		}
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Int("faces", len(faces)).Str("size", cfg.size.String()).Msg("starting go-tiles")

	clock := board.NewDeferred()
	sess := game.NewSession(scoring.NewMemoryStorage(), game.GameOptions{
		Faces:     faces,
		Rand:      rand.New(rand.NewSource(seed)),
		Scheduler: clock,
		Logger:    &logger,
	})

	m := newModel(sess, clock, cfg.size, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}

	if sess.RoundsPlayed > 0 {
		fmt.Printf("Rounds played: %d | Total score: %d\n", sess.RoundsPlayed, sess.TotalScore)
	}
	return nil
}

func main() {
	_ = godotenv.Load()

	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}
