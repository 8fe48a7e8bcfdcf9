// Package cmd provides the CLI commands for autolegal.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// Logger defines the logging interface used by the command.
type Logger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields map[string]interface{})
}

// AppConfig holds application configuration loaded by ConfigLoader.
type AppConfig struct {
	// LogLevel is the log level setting.
	LogLevel string

	// LogAppName is the application name for logging.
	LogAppName string

	// BoxSize is the destination box capacity.
	BoxSize int

	// MatcherEnabled permits the fast constraint-matching strategy.
	MatcherEnabled bool

	// SearchEnabled permits the slow fallback search strategy.
	SearchEnabled bool
}

// Dependencies holds all injectable dependencies for the command.
// This enables testing by allowing mock implementations to be injected.
type Dependencies struct {
	// LoggerFactory creates a logger instance.
	LoggerFactory func() Logger

	// ConfigLoader loads application configuration.
	ConfigLoader func() (*AppConfig, error)

	// SourceFactory creates a TemplateSource for the given path.
	SourceFactory func(path string, log Logger) (domain.TemplateSource, error)

	// CollectionFactory creates the destination collection. A nil owner
	// means the template file named none and a default is substituted.
	CollectionFactory func(cfg *AppConfig, owner *domain.IdentityContext) domain.Collection

	// ResolverFactory creates a RecordResolver honoring the configured
	// strategy gate.
	ResolverFactory func(cfg *AppConfig, log Logger) domain.RecordResolver

	// ImporterFactory creates a BatchImporter around the resolver.
	ImporterFactory func(resolver domain.RecordResolver, log Logger) domain.BatchImporter

	// ReportWriterFactory creates a ReportWriter.
	ReportWriterFactory func() domain.ReportWriter

	// Stdout is the writer for standard output.
	Stdout io.Writer

	// Stderr is the writer for standard error.
	Stderr io.Writer
}

// Command-line flags.
var (
	startIndex     int
	overwrite      bool
	boxSize        int
	disableMatcher bool
	disableSearch  bool
	verbose        bool
)

// defaultDeps holds the production dependencies.
// This is set by the production wiring in main or via SetDefaultDependencies.
var defaultDeps *Dependencies

// SetDefaultDependencies sets the default dependencies for production use.
// This should be called from main() before Execute().
func SetDefaultDependencies(deps *Dependencies) {
	defaultDeps = deps
}

// NewRootCmd creates the root command for autolegal.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(defaultDeps)
}

// NewRootCmdWithDeps creates the root command with explicit dependencies.
// This is the primary constructor that enables testing via dependency injection.
func NewRootCmdWithDeps(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autolegal <template-file>",
		Short: "Resolve record templates into legal records and import them into a box",
		Long: `autolegal reads a YAML template file, resolves each template into a
concrete record that satisfies the target format's constraints, and
places the results into a fixed-capacity box.

Each template first goes through the fast constraint matcher; templates
the matcher cannot fully satisfy fall back to the slower heuristic
search. The final line of output is the batch status; templates that
needed the slow path are listed for observability.

Examples:
  # Import into the first empty slots
  autolegal templates.yaml

  # Overwrite slots 10..N directly
  autolegal templates.yaml --start 10 --overwrite

  # Disable the fallback search (fast strategy only)
  autolegal templates.yaml --no-search

  # Enable verbose logging
  autolegal templates.yaml -v`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args, deps)
		},
	}

	rootCmd.Flags().IntVarP(&startIndex, "start", "s", 0,
		"Slot index to start placing records at")
	rootCmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false,
		"Overwrite the contiguous slot range instead of filling empty slots")
	rootCmd.Flags().IntVarP(&boxSize, "box-size", "b", 0,
		"Destination box capacity (0 uses the configured size)")
	rootCmd.Flags().BoolVar(&disableMatcher, "no-matcher", false,
		"Disable the fast constraint-matching strategy")
	rootCmd.Flags().BoolVar(&disableSearch, "no-search", false,
		"Disable the slow fallback search strategy")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose/debug logging")

	return rootCmd
}

// runImport executes the batch import with injected dependencies.
func runImport(cmd *cobra.Command, args []string, deps *Dependencies) error {
	if deps == nil {
		return errors.New("dependencies not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	templatePath := args[0]

	// Set log level based on verbose flag (best-effort)
	if verbose {
		if err := os.Setenv("LOG_LEVEL", "debug"); err != nil {
			stderr := deps.Stderr
			if stderr == nil {
				stderr = os.Stderr
			}
			fmt.Fprintf(stderr, "warning: could not set log level: %v\n", err)
		}
	}

	log := deps.LoggerFactory()

	log.Info(ctx, "starting autolegal", map[string]interface{}{
		"templates":   templatePath,
		"start_index": startIndex,
		"overwrite":   overwrite,
		"verbose":     verbose,
	})

	cfg, err := deps.ConfigLoader()
	if err != nil {
		log.Error(ctx, "failed to load configuration", err, nil)
		return fmt.Errorf("configuration error: %w", err)
	}

	// Apply flag overrides on top of the configured values.
	if boxSize > 0 {
		cfg.BoxSize = boxSize
	}
	if disableMatcher {
		cfg.MatcherEnabled = false
	}
	if disableSearch {
		cfg.SearchEnabled = false
	}

	source, err := deps.SourceFactory(templatePath, log)
	if err != nil {
		log.Error(ctx, "failed to open template file", err, map[string]interface{}{
			"path": templatePath,
		})
		if errors.Is(err, domain.ErrTemplateFileNotFound) {
			return fmt.Errorf("template file not found: %s", templatePath)
		}
		return err
	}
	defer func() {
		if closeErr := source.Close(); closeErr != nil {
			log.Warn(ctx, "failed to close template source", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	owner, templates, err := source.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load templates", err, nil)
		if errors.Is(err, domain.ErrNoTemplates) {
			return fmt.Errorf("no templates in file: %s", templatePath)
		}
		if errors.Is(err, domain.ErrTemplateFileInvalid) {
			return fmt.Errorf("invalid template file: %s", templatePath)
		}
		return err
	}

	collection := deps.CollectionFactory(cfg, owner)
	resolver := deps.ResolverFactory(cfg, log)
	importer := deps.ImporterFactory(resolver, log)

	report := importer.ImportBatch(ctx, templates, collection, startIndex, overwrite)

	writer := deps.ReportWriterFactory()
	if err := writer.WriteReport(report); err != nil {
		log.Error(ctx, "failed to write report", err, nil)
		return fmt.Errorf("output error: %w", err)
	}

	log.Info(ctx, "batch import finished", map[string]interface{}{
		"batch_id": report.BatchID,
		"status":   string(report.Status),
		"written":  len(report.Written),
		"slow":     len(report.SlowPath),
	})

	if report.Status != domain.StatusOK {
		return fmt.Errorf("import failed: %s", report.Status)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
