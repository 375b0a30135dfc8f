package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/course"
	"github.com/welltegra/welllab/internal/logging"
	"github.com/welltegra/welllab/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "welllab",
	Short: "Drilling engineering study lab",
	Long: "WellLab: a terminal study lab for well engineering: a lesson curriculum, " +
		"interactive physics visualizers and an LLM-backed career advisor.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides WELLLAB_DB env var)")
	pf.String("catalog", "", "Path to a course catalog YAML file (overrides WELLLAB_CATALOG env var)")
	pf.String("log", "", "Path to the log file (overrides WELLLAB_LOG env var)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(courseCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WELLLAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadCatalog reads --catalog, then WELLLAB_CATALOG, then the built-in
// curriculum.
func loadCatalog(cmd *cobra.Command) (*course.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = os.Getenv("WELLLAB_CATALOG")
	}
	if path == "" {
		return course.Default()
	}
	cat, err := course.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

// newLogger builds the command's logger. The TUI owns the terminal, so
// interactive runs default to a file in the data directory; other commands
// log to stderr.
func newLogger(cmd *cobra.Command, interactive bool) (*zap.Logger, error) {
	path, _ := cmd.Flags().GetString("log")
	if path == "" {
		path = os.Getenv("WELLLAB_LOG")
	}
	if path == "" && interactive {
		dir, err := store.DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "welllab.log")
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(logging.Config{Path: path, Verbose: verbose})
}
