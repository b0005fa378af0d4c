package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-petri/internal/config"
	"github.com/vovakirdan/tui-petri/internal/core"
	"github.com/vovakirdan/tui-petri/internal/describe"
	"github.com/vovakirdan/tui-petri/internal/game"
	"github.com/vovakirdan/tui-petri/internal/platform/tui"
	"github.com/vovakirdan/tui-petri/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the simulation",
	Long: `Steer your cell around the dish with the mouse and absorb food to grow.

Controls:
  Mouse      - The cell chases the pointer
  G          - Ask for a description of your cell (needs GEMINI_API_KEY)
  Q/Ctrl+C   - Quit (your final mass is recorded)

Difficulty options:
  easy   - More food, faster cell
  normal - Default rules
  hard   - Less food, slower cell

Examples:
  petri play
  petri play --name Blobby
  petri play --difficulty hard
  petri play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagName, "name", "", "Cell name shown above the cell")
}

func runPlay(cmd *cobra.Command, args []string) {
	rules, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&rules, config.DifficultyPreset(flagDifficulty))

	// Get terminal size for the initial viewport
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

	describer, ok := describe.FromEnv()
	if !ok {
		log.Info("no API key set, cell descriptions disabled", "env", describe.APIKeyEnv)
	}

	g := game.New(rules, flagName, describerOrNil(describer, ok))

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
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

// describerOrNil keeps the Describer interface nil when no client exists,
// so the game sees a true nil rather than a typed nil pointer.
func describerOrNil(c *describe.GeminiClient, ok bool) describe.Describer {
	if !ok {
		return nil
	}
	return c
}
