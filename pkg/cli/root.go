// Package cli wires configuration, clients and the notification service into
// cobra commands.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"contact-notif/pkg/clients/hubspot"
	"contact-notif/pkg/clients/slack"
	"contact-notif/pkg/config"
	"contact-notif/pkg/logging"
	"contact-notif/pkg/services"
)

type commandContext struct {
	envFile string
	cfg     *config.Config
	logger  *slog.Logger
}

// load reads the optional env file, then the environment. A missing default
// .env file is not an error.
func (c *commandContext) load() error {
	if c.cfg != nil {
		return nil
	}

	if err := godotenv.Load(c.envFile); err != nil {
		if c.envFile != ".env" || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", c.envFile, err)
		}
	}

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger
	return nil
}

func (c *commandContext) notificationService() services.ContactNotificationService {
	return services.NewContactNotificationService(
		hubspot.NewClient(c.cfg.APIKey, c.cfg.HubSpotAPIBase, nil),
		slack.NewClient(c.cfg.WebhookURL, nil),
		c.cfg,
		c.logger,
	)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "contact-notif",
		Short:         "Post new inbound lead notifications to Slack",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.envFile, "env-file", ".env", "Environment file loaded before reading configuration")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newInvokeCommand(ctx))

	return rootCmd
}
