package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/azure-asbuilt/pkg/export"
	"github.com/de-tools/azure-asbuilt/pkg/models/domain"
	"github.com/de-tools/azure-asbuilt/pkg/services/azure"
	"github.com/de-tools/azure-asbuilt/pkg/services/inventory"
)

// SummaryReporter prints a post-run summary to the console.
type SummaryReporter interface {
	Handle(output string, sections []domain.Section, counts domain.Counts) error
}

type GenerateCmd struct {
	configPath    string
	subscriptions string
	output        string
	logFile       string
	profile       string
	reporter      SummaryReporter
}

func NewGenerateCmd(reporter SummaryReporter) *cobra.Command {
	gc := &GenerateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the as-built document for the configured subscriptions",
		RunE:  gc.run,
	}

	cmd.Flags().StringVarP(&gc.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVarP(&gc.output, "output", "o", "", "Output .docx path (default asbuilt.docx)")
	cmd.Flags().StringVar(&gc.subscriptions, "subscriptions", "", "Comma-separated subscription IDs (overrides AZURE_SUBSCRIPTION_IDS)")
	cmd.Flags().StringVar(&gc.profile, "profile", "", "~/.azure/config profile used when no subscriptions are configured")
	cmd.Flags().StringVar(&gc.logFile, "log-file", "", "Log file path (default asbuilt.log)")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	// A local .env is optional.
	_ = godotenv.Load()

	cfg, err := azure.LoadConfig(gc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if gc.subscriptions != "" {
		cfg.Subscriptions = gc.subscriptions
	}
	if gc.output != "" {
		cfg.Output = gc.output
	}
	if gc.logFile != "" {
		cfg.LogFile = gc.logFile
	}
	if gc.profile != "" {
		cfg.Profile = gc.profile
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}
	defer logFile.Close()

	logger := zerolog.New(zerolog.MultiLevelWriter(
		zerolog.ConsoleWriter{Out: os.Stderr},
		logFile,
	)).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	logger.Info().Msg("starting as-built document generation")

	subscriptionIDs, err := cfg.ResolveSubscriptions()
	if err != nil {
		logger.Error().Err(err).Msg("no subscriptions to query")
		return err
	}

	cred, err := azure.NewCredential()
	if err != nil {
		logger.Error().Err(err).Msg("credential setup failed")
		return err
	}

	sets, err := azure.NewClientSets(cred, subscriptionIDs)
	if err != nil {
		logger.Error().Err(err).Msg("client setup failed")
		return err
	}

	index := inventory.FetchResources(ctx, sets)
	inventory.FetchNetworkDetails(ctx, sets)
	sections, counts := inventory.Process(ctx, index, len(subscriptionIDs))

	if err := gc.save(ctx, cfg.Output, sections, counts); err != nil {
		logger.Error().Err(err).Str("path", cfg.Output).Msg("failed to save document")
		return err
	}
	logger.Info().Str("path", cfg.Output).Msg("document saved")
	logger.Info().Msg("as-built document generation completed")

	return gc.reporter.Handle(cfg.Output, sections, counts)
}

// save writes the document, guaranteeing the file handle is closed on
// both the success and the failure path.
func (gc *GenerateCmd) save(ctx context.Context, path string, sections []domain.Section, counts domain.Counts) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	renderer := export.NewRenderer()
	if err := renderer.Render(ctx, out, sections, counts); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return nil
}
