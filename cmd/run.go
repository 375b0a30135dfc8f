package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/advisor"
	"github.com/welltegra/welllab/internal/app"
	"github.com/welltegra/welllab/internal/llm"
	"github.com/welltegra/welllab/internal/store"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive study lab",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logger, err := newLogger(cmd, true)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	sessionID := llm.NewSessionID()
	opts := app.Options{
		Catalog:   catalog,
		Logger:    logger.With(zap.String("session", sessionID)),
		SessionID: sessionID,
	}

	adv, err := newAdvisor(cmd, st, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Advisor features will be unavailable.")
		logger.Warn("advisor disabled", zap.Error(err))
	} else {
		opts.Advisor = adv
	}

	logger.Info("starting tui",
		zap.Int("modules", len(catalog.Modules())),
		zap.Bool("advisor", opts.Advisor != nil))
	return app.Run(opts)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// newAdvisor builds an advisor over the provider configured in the
// environment. Every call is recorded in st.
func newAdvisor(cmd *cobra.Command, st *store.Store, logger *zap.Logger) (*advisor.Service, error) {
	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo(), logger)
	if err != nil {
		return nil, err
	}
	logger.Info("llm provider ready", zap.String("model", provider.ModelID()))
	return advisor.NewService(provider, advisor.DefaultConfig()), nil
}
