// Package cli provides the command-line interface for emergencycard.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"emergencycard/internal/config"
	"emergencycard/internal/logging"
	"emergencycard/internal/option"
	"emergencycard/internal/telemetry"
	"emergencycard/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	url        string
	logLevel   string
	logFile    string
}

// NewRootCmd creates the root command, which runs the card UI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "emergencycard",
		Short:         "Patient summary card with an emergency kind picker",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, nil, nil)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a TOML config file")
	cmd.Flags().StringVar(&flags.url, "url", "", "override the emergency kinds endpoint")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "write logs to this file (default: discard)")
	return cmd
}

// loadConfig resolves the config file and applies flag overrides on top.
func loadConfig(flags rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.url != "" {
		cfg.OptionsURL = flags.url
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// run wires logging, telemetry and the option source, then runs the program.
// in and out override the terminal when non-nil.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := logging.New(cfg.Logging(), logFile)
	ctx = logging.WithContext(ctx, logger)

	provider, err := telemetry.NewProvider(ctx, cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown failed")
		}
	}()

	source := option.NewHTTPSource(cfg.OptionsURL, provider.Tracer("emergencycard/option"))
	model := ui.NewAppModel(ctx, source, cfg.Card.Doctor, cfg.Card.Patient)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil || out != nil {
		opts = append(opts, tea.WithInput(in), tea.WithOutput(out))
	} else {
		opts = append(opts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}

	logger.Info().Str("url", cfg.OptionsURL).Bool("telemetry", provider.Enabled()).Msg("starting")
	p := tea.NewProgram(model.AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	model.Card.Unmount()
	return nil
}
