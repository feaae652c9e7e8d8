package wordsearch

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

var defaultWords = []string{"MATTHEW", "JOE", "MARY", "SARAH", "SALLY"}

func NewWordSearchCommand() *cobra.Command {
	var rows, columns int

	cmd := &cobra.Command{
		Use:   "wordsearch",
		Short: "Hides a set of words in a random letter grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			grid := GenerateGrid(rows, columns, rng)
			solution, err := Solve(grid, defaultWords)
			if err != nil {
				fmt.Println("no solution found")
				return nil
			}
			fmt.Print(Render(grid, solution, rng))
			return nil
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 9, "grid height")
	cmd.Flags().IntVar(&columns, "columns", 9, "grid width")
	return cmd
}
