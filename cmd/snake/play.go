package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/spectate"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagSpectateAddr string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant. Without a variant, a menu lets you
pick one and returns after each game.

Controls:
  Arrows/WASD/HJKL - Steer (a turn also starts the game)
  Enter            - Start
  Space/P          - Pause / resume
  R                - Restart
  Ctrl+S           - Screenshot to ~/.snake/screenshots
  Esc/B            - Back to menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower base interval
  normal - Config as loaded
  hard   - Faster base interval

Examples:
  snake play
  snake play effects
  snake play classic --difficulty hard
  snake play effects --config ./my-snake.yaml
  snake play effects --spectate :8080`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagSpectateAddr, "spectate", "", "Stream the game to viewers on this address (e.g. :8080)")
}

func runPlay(_ *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	snakeCfg, err := loadSnakeConfig()
	if err != nil {
		return err
	}

	var variant registry.Variant
	if len(args) == 1 {
		if variant, err = registry.Lookup(args[0]); err != nil {
			return fmt.Errorf("%w (run 'snake list' to see variants)", err)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	var publisher tui.Publisher
	if flagSpectateAddr != "" {
		hub := spectate.NewHub(logger)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := hub.Serve(ctx, flagSpectateAddr); err != nil {
				logger.Error("spectate server", "err", err)
			}
		}()
		publisher = hub
	}

	rt := runtimeConfig()
	game := func(v registry.Variant) (bool, error) {
		return tui.Run(newGameConfig(v, snakeCfg, store, logger, publisher, rt))
	}

	if len(args) == 1 {
		_, err := game(variant)
		return err
	}

	for {
		res, err := tui.RunMenu(store, rt)
		if err != nil {
			return err
		}
		rt = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		default:
			back, err := game(res.Variant)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		}
	}
}

// runtimeConfig reads the terminal size, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.Seed = flagSeed
	return cfg
}

func newGameConfig(v registry.Variant, snakeCfg config.SnakeConfig, store *storage.Store, logger *log.Logger, pub tui.Publisher, rt core.RuntimeConfig) tui.GameConfig {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return tui.GameConfig{
		Variant:   v,
		Options:   snake.OptionsFromConfig(snakeCfg, v.Rules, seed),
		Store:     store,
		Logger:    logger,
		Publisher: pub,
		Runtime:   rt,
	}
}
