// Package main is the entry point for the autolegal CLI application.
// autolegal resolves record templates into format-legal records and
// imports the results into a fixed-capacity box, reporting the batch
// status and which templates needed the slow resolution path.
package main

import (
	"os"

	"github.com/Koi-3088/PKHeX-Plugins/cmd"
	"github.com/Koi-3088/PKHeX-Plugins/internal/adapters/formats"
	"github.com/Koi-3088/PKHeX-Plugins/internal/adapters/input"
	logadapter "github.com/Koi-3088/PKHeX-Plugins/internal/adapters/logger"
	"github.com/Koi-3088/PKHeX-Plugins/internal/adapters/output"
	"github.com/Koi-3088/PKHeX-Plugins/internal/adapters/store"
	"github.com/Koi-3088/PKHeX-Plugins/internal/adapters/strategy"
	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
	"github.com/Koi-3088/PKHeX-Plugins/internal/infrastructure/config"
	"github.com/Koi-3088/PKHeX-Plugins/internal/usecases"
)

func main() {
	cmd.SetDefaultDependencies(buildDependencies())
	cmd.Execute()
}

// buildDependencies wires up the production dependencies.
func buildDependencies() *cmd.Dependencies {
	return &cmd.Dependencies{
		LoggerFactory: func() cmd.Logger {
			adapter, err := logadapter.New(os.Getenv(config.EnvLogLevel), os.Getenv(config.EnvLogAppName))
			if err != nil {
				// An unparseable level must not take the CLI down.
				return logadapter.NewNop()
			}
			return adapter
		},

		ConfigLoader: func() (*cmd.AppConfig, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			return &cmd.AppConfig{
				LogLevel:       cfg.LogLevel,
				LogAppName:     cfg.LogAppName,
				BoxSize:        cfg.BoxSize,
				MatcherEnabled: cfg.MatcherEnabled,
				SearchEnabled:  cfg.SearchEnabled,
			}, nil
		},

		SourceFactory: func(path string, _ cmd.Logger) (domain.TemplateSource, error) {
			return input.NewFileSource(path)
		},

		CollectionFactory: func(cfg *cmd.AppConfig, owner *domain.IdentityContext) domain.Collection {
			if owner == nil {
				owner = formats.NewIdentitySource().ForVersion(0, 0)
			}
			return store.NewBox(cfg.BoxSize, *owner)
		},

		ResolverFactory: func(cfg *cmd.AppConfig, log cmd.Logger) domain.RecordResolver {
			gate := usecases.NewStrategyGate()
			gate.SetMatcherEnabled(cfg.MatcherEnabled)
			gate.SetSearchEnabled(cfg.SearchEnabled)

			rules := formats.NewRegistry()
			return usecases.NewResolver(
				gate,
				strategy.NewRuleMatcher(rules),
				strategy.NewFallbackSearcher(rules),
				rules,
				formats.NewIdentitySource(),
				formats.NewBlankFactory(),
				log,
			)
		},

		ImporterFactory: func(resolver domain.RecordResolver, log cmd.Logger) domain.BatchImporter {
			return usecases.NewImporter(resolver, formats.NewNormalizer(), log)
		},

		ReportWriterFactory: func() domain.ReportWriter {
			return output.NewWriter()
		},

		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
