package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/signup/app"
	"github.com/jask/signup/internal/authapi"
	"github.com/jask/signup/internal/config"
	"github.com/jask/signup/internal/logger"
)

// Build info, set via ldflags.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	baseURL    string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "signup",
		Short:         "Create an account from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return runUI(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path (TOML)")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "registration service base URL")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		registerCmd(opts),
		versionCmd(),
		configCmd(opts),
	)
	return cmd
}

// load reads config, applies flag overrides and starts the file logger.
func (o *rootOptions) load() (config.Config, error) {
	cfg, err := o.readConfig()
	if err != nil {
		return config.Config{}, err
	}
	if err := logger.Initialize(cfg.Log.Level, cfg.Log.Path); err != nil {
		return config.Config{}, fmt.Errorf("init logger: %w", err)
	}
	logger.Log.Debugw("config loaded", "base_url", cfg.API.BaseURL, "start_route", cfg.UI.StartRoute)
	return cfg, nil
}

func (o *rootOptions) readConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if o.baseURL != "" {
		cfg.API.BaseURL = o.baseURL
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, nil
}

func newClient(cfg config.Config) *authapi.Client {
	return authapi.NewClient(cfg.API.BaseURL, authapi.WithTimeout(cfg.API.Timeout))
}

func runUI(ctx context.Context, cfg config.Config) error {
	model, err := app.New(cfg, newClient(cfg))
	if err != nil {
		return err
	}
	logger.Log.Infow("starting ui", "version", buildVersion, "route", string(model.Route()))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
