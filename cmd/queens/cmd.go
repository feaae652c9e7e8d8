package queens

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quest-framework/quest/pkg/csp"
)

func NewQueensCommand() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Places n queens on an n x n board without attacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			solution, err := Solve(n)
			if err != nil {
				if errors.Is(err, csp.ErrNotSatisfiable) {
					fmt.Println("no solution found")
					return nil
				}
				return err
			}
			fmt.Print("{")
			for column := 1; column < n; column++ {
				fmt.Printf("%d: %d, ", column, solution[column])
			}
			fmt.Printf("%d: %d}\n", n, solution[n])
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 8, "board size")
	return cmd
}
