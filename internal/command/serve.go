package command

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-solver/internal"
)

func Serve() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP and WebSocket",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := newLogger(os.Stdout, conf.LogLevel)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return application.RunApp(ctx, logger, conf)
		},
	}
}
