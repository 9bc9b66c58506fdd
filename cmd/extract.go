package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/paesdiag/internal/config"
	"github.com/abhisek/paesdiag/internal/indexer"
	"github.com/abhisek/paesdiag/internal/store"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Build the question→atom index from the exam metadata tree",
	Long: "Extract walks the finalized exams tree, collects the atoms tagged on each\n" +
		"MST question, and writes the question_atoms.json index the diagnostic reads.\n" +
		"With --import-db it also loads the index into the SQLite metadata database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dataDir, _ := cmd.Flags().GetString("data")
		if dataDir == "" {
			dataDir = cfg.DataDir
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = cfg.IndexPath
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		log, err := buildLogger(verbose)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer log.Sync()

		ix := &indexer.Indexer{BaseDir: dataDir, Log: log}
		idx, err := ix.WriteFile(out)
		if err != nil {
			return err
		}
		log.Info("index written", zap.String("path", out))

		if importDB, _ := cmd.Flags().GetBool("import-db"); importDB {
			dbPath, _ := cmd.Flags().GetString("db")
			if dbPath == "" {
				dbPath = cfg.DBPath
			}
			if dbPath == "" {
				dbPath, err = store.DefaultDBPath()
				if err != nil {
					return fmt.Errorf("resolve DB path: %w", err)
				}
			}
			st, err := store.OpenSQLite(dbPath)
			if err != nil {
				return fmt.Errorf("open %s: %w", dbPath, err)
			}
			defer st.Close()
			if err := st.ImportIndex(cmd.Context(), idx); err != nil {
				return fmt.Errorf("import index: %w", err)
			}
			log.Info("index imported", zap.String("db", dbPath))
		}

		return nil
	},
}

func init() {
	extractCmd.Flags().String("data", "", "Root of the finalized exams tree (overrides config)")
	extractCmd.Flags().String("out", "", "Output path for the index JSON (overrides config)")
	extractCmd.Flags().Bool("import-db", false, "Also import the index into the SQLite metadata database")
	extractCmd.Flags().Bool("verbose", false, "Log every indexed question")
}

// buildLogger returns a console zap logger, at debug level when verbose.
func buildLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
