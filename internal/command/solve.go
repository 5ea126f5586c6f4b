package command

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-solver/internal"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

// tictactoe solve <board>
func Solve() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <board>",
		Short: "Print the value and best move of a board",
		Args:  cobra.ExactArgs(1),
		Long: heredoc.Doc(`solve runs the minimax search on the given board and prints
			the value of every legal move together with the move the engine
			would play. Values are from X's point of view: 1 means X wins,
			-1 means O wins and 0 is a draw.`),
		Example: `  tictactoe solve "XX.|OO.|..."`,

		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := entity.ParseBoard(args[0])
			if err != nil {
				return fmt.Errorf("invalid board: %w", err)
			}

			solver, err := newLocalSolver(cmd)
			if err != nil {
				return err
			}

			analysis, err := solver.Solve(cmd.Context(), board)
			if err != nil {
				return err
			}

			printf(cmd, "%s\n\n", board.Grid())

			if analysis.Terminal {
				printf(cmd, "game over: %s\n", analysis.Value)
				return nil
			}

			printf(cmd, "to move: %s\n", analysis.Turn)
			printf(cmd, "value: %d (%s)\n", analysis.Value, analysis.Value)
			printf(cmd, "best move: %s\n", analysis.Move)
			for _, mv := range analysis.Moves {
				printf(cmd, "  %s %2d\n", mv.Move, mv.Value)
			}

			return nil
		},
	}
}

// newLocalSolver wires a solver with in-memory storage for one shot commands.
func newLocalSolver(cmd *cobra.Command) (*usecase.SolverUseCase, error) {
	conf, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), conf.LogLevel)

	engine, err := application.NewEngine(logger, conf.Search)
	if err != nil {
		return nil, err
	}

	return usecase.NewSolverUseCase(logger, repository.NewAnalysisMemoryRepository(), engine), nil
}
