package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"contact-notif/pkg/api"
	"contact-notif/pkg/middleware"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the workflow action webhook server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = ctx.cfg.Port
			}
			if ctx.cfg.GinMode != "" {
				gin.SetMode(ctx.cfg.GinMode)
			}

			router := gin.New()
			router.Use(gin.Recovery(), middleware.RequestLogger(ctx.logger))
			api.NewHandlers(ctx.notificationService(), ctx.logger).Register(router)

			ctx.logger.Info("server starting", "port", port)
			return router.Run(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (defaults to PORT)")
	return cmd
}
