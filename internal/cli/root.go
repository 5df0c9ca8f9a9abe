package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sdejongh/dirdiff/internal/platform"
	"github.com/sdejongh/dirdiff/pkg/compare"
	"github.com/sdejongh/dirdiff/pkg/config"
	"github.com/sdejongh/dirdiff/pkg/diff"
	"github.com/sdejongh/dirdiff/pkg/logging"
	"github.com/sdejongh/dirdiff/pkg/models"
	"github.com/sdejongh/dirdiff/pkg/output"
	"github.com/sdejongh/dirdiff/pkg/storage"
)

// DiffFlags holds the diff command flag values
type DiffFlags struct {
	Exclude    []string
	All        bool
	NoFormat   bool
	Workers    int
	Comparison string
	Output     string
	ConfigFile string
	LogFile    string
	Verbose    bool
	Quiet      bool
}

var diffFlags DiffFlags

// NewRootCommand creates the dirdiff root command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirdiff <directory1> <directory2>",
		Short: "Compare two directory trees and report differences",
		Long: `dirdiff recursively compares two directory trees and reports, per entry,
whether it was added, removed, modified or unchanged. Regular files are equal
only when their contents match exactly.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDiff,
	}

	cmd.Flags().StringArrayVar(&diffFlags.Exclude, "exclude", nil, "entry name to skip at every directory level (repeatable)")
	cmd.Flags().BoolVar(&diffFlags.All, "all", false, "also report unchanged entries; forces sequential, order-preserving execution")
	cmd.Flags().BoolVar(&diffFlags.NoFormat, "noformat", false, "plain-text output without colors")
	cmd.Flags().IntVar(&diffFlags.Workers, "workers", 0, "worker pool size for parallel mode (0 = CPU count)")
	cmd.Flags().StringVar(&diffFlags.Comparison, "comparison", "", "content comparison strategy: auto, stream, digest")
	cmd.Flags().StringVarP(&diffFlags.Output, "output", "o", "", "output format: auto, color, plain, json")
	cmd.Flags().StringVar(&diffFlags.ConfigFile, "config", "", "config file (default is $HOME/.config/dirdiff/config.yaml)")
	cmd.Flags().StringVar(&diffFlags.LogFile, "log-file", "", "write structured logs to this file")
	cmd.Flags().BoolVarP(&diffFlags.Verbose, "verbose", "v", false, "log progress to stderr and print a summary")
	cmd.Flags().BoolVarP(&diffFlags.Quiet, "quiet", "q", false, "suppress non-error output")

	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	leftRoot := platform.NormalizePath(args[0])
	rightRoot := platform.NormalizePath(args[1])

	if err := validateRoots(leftRoot, rightRoot); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlagsToConfig(cmd, cfg)

	mode := models.ModeParallel
	if diffFlags.All {
		// Reporting every entry only makes sense in strict listing order
		mode = models.ModeSequential
	}

	runID := uuid.New().String()

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	logger = logger.WithFields(logging.Fields{"run_id": runID})

	backend := storage.NewLocal()
	defer backend.Close()

	engine := diff.NewEngine(
		backend,
		buildComparator(cfg, mode),
		buildSink(cfg, leftRoot, rightRoot),
		logger,
		storage.NewExcludeSet(cfg.Diff.Exclude),
		diff.Options{
			Mode:            mode,
			ReportUnchanged: diffFlags.All,
			Workers:         cfg.Performance.Workers,
		},
	)

	report, err := engine.Run(ctx, leftRoot, rightRoot)
	if err != nil {
		logger.Close()
		return fmt.Errorf("diff failed: %w", err)
	}
	report.RunID = runID

	if diffFlags.Verbose && !diffFlags.Quiet {
		printSummary(os.Stderr, report)
	}

	logger.Close()
	os.Exit(report.Status.ExitCode())
	return nil
}

// loadConfig loads configuration from file or returns defaults
func loadConfig() (*config.Config, error) {
	if diffFlags.ConfigFile != "" {
		return config.LoadFromFile(diffFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) {
	cfg.Diff.Exclude = append(cfg.Diff.Exclude, diffFlags.Exclude...)

	if diffFlags.Comparison != "" {
		cfg.Diff.Comparison = diffFlags.Comparison
	}
	if cmd.Flags().Changed("workers") && diffFlags.Workers > 0 {
		cfg.Performance.Workers = diffFlags.Workers
	}
	if diffFlags.Output != "" {
		cfg.Output.Format = diffFlags.Output
	}
	if diffFlags.LogFile != "" {
		cfg.Logging.File = diffFlags.LogFile
	}
}

// buildComparator selects the content comparison strategy. Auto picks the
// streaming compare for sequential runs and the digest compare for parallel
// runs, where every concurrent job needs its own digest state.
func buildComparator(cfg *config.Config, mode models.DiffMode) compare.Comparator {
	method := cfg.Diff.Comparison
	if method == "auto" || method == "" {
		if mode == models.ModeSequential {
			method = "stream"
		} else {
			method = "digest"
		}
	}

	if method == "stream" {
		return compare.NewStreamComparator(cfg.Performance.StreamBufferSize)
	}
	return compare.NewDigestComparator(cfg.Performance.DigestBufferSize)
}

// buildSink selects the renderer for the classification stream
func buildSink(cfg *config.Config, leftRoot, rightRoot string) output.Sink {
	var out io.Writer = os.Stdout
	if diffFlags.Quiet {
		out = io.Discard
	}

	format := cfg.Output.Format
	if diffFlags.NoFormat {
		format = "plain"
	}
	if format == "auto" || format == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "color"
		} else {
			format = "plain"
		}
	}

	switch format {
	case "json":
		return output.NewJSONRenderer(out, leftRoot, rightRoot)
	case "color":
		return output.NewColorRenderer(out, os.Stderr, leftRoot, rightRoot)
	default:
		return output.NewPlainRenderer(out, os.Stderr, leftRoot, rightRoot)
	}
}

// buildLogger sets up file or console logging per configuration
func buildLogger(cfg *config.Config) (logging.Logger, error) {
	if cfg.Logging.File != "" {
		return logging.NewFileLogger(logging.FileLoggerConfig{
			Path:       cfg.Logging.File,
			Format:     logging.Format(cfg.Logging.Format),
			Level:      logging.ParseLevel(cfg.Logging.Level),
			MaxSize:    cfg.Logging.MaxSize,
			MaxBackups: cfg.Logging.MaxBackups,
		})
	}
	if diffFlags.Verbose {
		return logging.NewConsoleLogger(os.Stderr, logging.DebugLevel), nil
	}
	return logging.NewNullLogger(), nil
}

// printSummary writes the run summary to w
func printSummary(w io.Writer, report *models.DiffReport) {
	fmt.Fprintf(w, "\nCompared %d directories, %d file pairs in %s\n",
		report.Stats.DirsScanned, report.Stats.FilesCompared, report.Duration.Round(time.Millisecond))
	fmt.Fprintf(w, "  Added:          %d\n", report.Stats.Added)
	fmt.Fprintf(w, "  Deleted:        %d\n", report.Stats.Deleted)
	fmt.Fprintf(w, "  Modified:       %d\n", report.Stats.Modified)
	fmt.Fprintf(w, "  Unchanged:      %d\n", report.Stats.Unchanged)
	fmt.Fprintf(w, "  Type mismatch:  %d\n", report.Stats.TypeMismatches)
	fmt.Fprintf(w, "  Errors:         %d\n", report.Stats.Errors)
}
