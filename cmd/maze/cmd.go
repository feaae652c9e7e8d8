package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/quest-framework/quest/pkg/search"
)

func NewMazeCommand() *cobra.Command {
	var rows, columns int
	var sparseness float64
	var algo string

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Finds a path through a randomly generated maze",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(rows, columns, sparseness, algo)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 10, "maze height")
	cmd.Flags().IntVar(&columns, "columns", 10, "maze width")
	cmd.Flags().Float64Var(&sparseness, "sparseness", 0.2, "probability of a cell being blocked")
	cmd.Flags().StringVar(&algo, "algo", "astar", "search algorithm: dfs, bfs or astar")
	return cmd
}

func solve(rows, columns int, sparseness float64, algo string) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m := New(rows, columns, sparseness, Location{0, 0}, Location{rows - 1, columns - 1}, rng)

	var result *search.Result[Location]
	var err error
	switch algo {
	case "dfs":
		result, err = search.DFS(m.Start(), m.GoalTest, m.Successors)
	case "bfs":
		result, err = search.BFS(m.Start(), m.GoalTest, m.Successors)
	case "astar":
		result, err = search.AStar(m.Start(), m.GoalTest, m.Successors, Manhattan(m.Goal()))
	default:
		return fmt.Errorf("unknown algorithm %q", algo)
	}
	if err != nil {
		fmt.Println("no path found")
		fmt.Print(m)
		return nil
	}

	m.Mark(result.Path())
	fmt.Print(m)
	return nil
}
