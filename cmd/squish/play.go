package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/michelv/squish/internal/core"
	"github.com/michelv/squish/internal/game"
	"github.com/michelv/squish/internal/levels"
	"github.com/michelv/squish/internal/platform/tui"
	"github.com/michelv/squish/internal/registry"
	"github.com/michelv/squish/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagLevel      int
	flagLevelDir   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run: the built-in campaign by default, endless generated fields
with --endless, or a custom campaign loaded from --level-dir.

Controls:
  Arrows/WASD  - Move (and push rocks)
  P            - Pause
  R            - Next level / restart
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  squish play
  squish play --endless
  squish play --level 4
  squish play --difficulty hard
  squish play --config ./my-squish.yaml
  squish play --level-dir ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless generated fields")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at the given campaign level (1-indexed)")
	playCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Load the campaign from a directory of level files")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size for the runtime config
	width, height := 80, 24
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

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		game.SetStartLevel(flagLevel)
	}

	var g registry.Game
	switch {
	case flagEndless:
		var err error
		g, err = registry.Create("squish_endless")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
	case flagLevelDir != "":
		loaded, err := levels.NewLoader(flagLevelDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
			os.Exit(1)
		}
		if len(loaded) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no level files found in %s\n", flagLevelDir)
			os.Exit(1)
		}
		setups, err := levels.ToSetups(loaded)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		g = game.New(setups)
	default:
		var err error
		g, err = registry.Create("squish")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
