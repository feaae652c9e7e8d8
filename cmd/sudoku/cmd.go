package sudoku

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quest-framework/quest/pkg/csp"
)

func NewSudokuCommand() *cobra.Command {
	var puzzle string

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Completes a sudoku board through the SAT backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			givens := map[Cell]int{}
			if puzzle != "" {
				var err error
				givens, err = Parse(puzzle)
				if err != nil {
					return err
				}
			}
			solution, err := Solve(givens)
			if errors.Is(err, csp.ErrNotSatisfiable) {
				fmt.Println("no solution found")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Print(Render(solution))
			return nil
		},
	}
	cmd.Flags().StringVar(&puzzle, "puzzle", "", "81-character puzzle, '.' for blanks (empty for a blank board)")
	return cmd
}
