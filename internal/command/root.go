package command

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
)

const defaultConfigPath = "./config.yml"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Perfect play tic-tac-toe solver",
		Long: heredoc.Doc(`tictactoe solves tic-tac-toe positions by exhaustive minimax
			search. It can serve the solver over HTTP and WebSocket, analyse
			a single board from the command line, or let the engine play
			itself.

			Boards are written as nine cells in row-major order using X, O
			and . for empty cells, optionally split into rows with '|'.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringP("config", "c", defaultConfigPath, "Path to the config file")
	root.PersistentFlags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")

	root.AddCommand(Serve())
	root.AddCommand(Solve())
	root.AddCommand(SelfPlay())

	return root
}

// loadConfig reads the --config file. A missing default file is not an
// error, the environment and defaults are used instead.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		path = ""
	}

	conf, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		conf.LogLevel = level
	}

	return conf, nil
}

// newLogger builds the JSON logger used by every component.
func newLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
