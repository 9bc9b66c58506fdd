package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/paesdiag/internal/atoms"
	"github.com/abhisek/paesdiag/internal/config"
	"github.com/abhisek/paesdiag/internal/engine"
	"github.com/abhisek/paesdiag/internal/store"
	"github.com/abhisek/paesdiag/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "paesdiag",
	Short: "Two-stage adaptive PAES M1 math diagnostic",
	Long: "Paesdiag runs a multistage (MST) math diagnostic: an 8-question routing\n" +
		"stage picks a difficulty tier, a tiered 8-question stage refines it, and the\n" +
		"combined answers yield a PAES score estimate plus atom-level study plan.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("index", "", "Path to the question→atom index JSON (overrides config)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite metadata database (overrides config)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}

// runSession wires the engine to the best available metadata store and
// launches the TUI. A missing metadata source only disables atom diagnosis.
func runSession(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	classifier, err := cfg.Classifier()
	if err != nil {
		return fmt.Errorf("build classifier: %w", err)
	}

	meta, closeMeta, err := openMetadata(cmd, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Metadata unavailable:", err)
		fmt.Fprintln(os.Stderr, "Atom diagnosis will be skipped.")
	}
	if closeMeta != nil {
		defer closeMeta()
	}

	eng := engine.New(engine.Options{
		Classifier: classifier,
		Metadata:   meta,
	})
	return tui.Run(eng)
}

// openMetadata resolves the metadata collaborator: the SQLite database when a
// path is configured, else the JSON index file.
func openMetadata(cmd *cobra.Command, cfg *config.Config) (atoms.Metadata, func() error, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath != "" {
		st, err := store.OpenSQLite(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", dbPath, err)
		}
		return st, st.Close, nil
	}

	indexPath, _ := cmd.Flags().GetString("index")
	if indexPath == "" {
		indexPath = cfg.IndexPath
	}
	st, err := store.OpenIndex(indexPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", indexPath, err)
	}
	return st, nil, nil
}
