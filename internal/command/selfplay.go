package command

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var errNotDraw = errors.New("self play did not end in a draw")

func SelfPlay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Let the engine play against itself",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := cmd.Flags().GetInt("games")
			if err != nil {
				return err
			}

			if games < 1 {
				return fmt.Errorf("--games must be at least 1, got %d", games)
			}

			solver, err := newLocalSolver(cmd)
			if err != nil {
				return err
			}

			failed := 0
			for i := 1; i <= games; i++ {
				playout, err := solver.SelfPlay(cmd.Context())
				if err != nil {
					return err
				}

				printf(cmd, "game %d: %s %s\n", i, playout.Board.Key(), playout.Value)
				if playout.Value != entity.ValueDraw {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d games", errNotDraw, failed, games)
			}

			return nil
		},
	}

	cmd.Flags().IntP("games", "n", 1, "Number of games to play")

	return cmd
}
