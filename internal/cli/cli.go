// Package cli wires the extraction pipeline into the flbb-stats command.
package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/batch"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/classify"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/config"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/extract"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/schedule"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig   string
	flagVerbose  bool
	flagForce    bool
	flagDivision string
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "flbb-stats",
		Short: "Extract structured game statistics from cached FLBB game pages",
		Long: `Parses the federation game pages cached by the downloader into one
normalized JSON record per finished game, partitioned by division.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "data/config.json", "Path to the pipeline config file")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	root.AddCommand(newExtractCmd(), newGameCmd(), newCatalogCmd())
	return root
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Process every finished game in the schedule catalog",
		RunE:  runExtract,
	}
	cmd.Flags().BoolVar(&flagForce, "force", false, "Reprocess games whose record already exists")
	cmd.Flags().StringVar(&flagDivision, "division", "", "Only process games of one division")
	return cmd
}

func newGameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "game <game-id>",
		Short: "Process a single game page, reprocessing any existing record",
		Args:  cobra.ExactArgs(1),
		RunE:  runGame,
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the per-division status breakdown of the schedule catalog",
		RunE:  runCatalog,
	}
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, runner, _, err := buildPipeline()
	if err != nil {
		return err
	}

	catalog, err := schedule.Load(cfg.ScheduleFile)
	if err != nil {
		return err
	}

	games := catalog.Finished()
	if flagDivision != "" {
		filtered := games[:0]
		for _, g := range games {
			if g.DivisionName == flagDivision {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	stats := runner.ProcessAll(games, flagForce)
	fmt.Fprintf(cmd.OutOrStdout(),
		"processed %d, skipped %d, not started %d, missing page %d, failed %d\n",
		stats.Processed, stats.Skipped, stats.NotStarted, stats.MissingPage, stats.Failed)
	return nil
}

func runGame(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	cfg, runner, store, err := buildPipeline()
	if err != nil {
		return err
	}

	game := schedule.Game{GameID: gameID, Status: schedule.StatusFinished}
	if catalog, err := schedule.Load(cfg.ScheduleFile); err == nil {
		if found, ok := catalog.Find(gameID); ok {
			game = found
			game.Status = schedule.StatusFinished
		} else {
			log.Warn("game not in schedule catalog", "gameID", gameID)
		}
	} else {
		log.Warn("schedule catalog unavailable", "err", err)
	}

	if outcome := runner.ProcessGame(game, true); outcome != batch.OutcomeProcessed {
		return fmt.Errorf("game %s was not processed", gameID)
	}
	fmt.Fprintln(cmd.OutOrStdout(), store.RecordPath(game.DivisionName, gameID))
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	catalog, err := schedule.Load(cfg.ScheduleFile)
	if err != nil {
		return err
	}

	summary := catalog.Summary()
	divisions := make([]string, 0, len(summary))
	for division := range summary {
		divisions = append(divisions, division)
	}
	sort.Strings(divisions)

	w := cmd.OutOrStdout()
	for _, division := range divisions {
		s := summary[division]
		fmt.Fprintf(w, "%-40s total %3d  finished %3d  in progress %3d  not started %3d\n",
			division, s.Total, s.Finished, s.InProgress, s.NotStarted)
	}
	return nil
}

// buildPipeline assembles the runner from configuration: alias map and
// pattern catalog loaded once, shared read-only by every game.
func buildPipeline() (config.Config, *batch.Runner, *storage.Store, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	aliases, err := cfg.LoadAliases()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	patterns, err := cfg.LoadCatalog()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	store, err := storage.New(cfg.RawDir, cfg.OutputDir)
	if err != nil {
		return config.Config{}, nil, nil, err
	}

	deps := extract.Deps{
		Names:      normalize.New(aliases),
		Classifier: classify.NewClassifier(patterns),
	}
	return cfg, batch.New(store, deps), store, nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
