package dimacs

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quest-framework/quest/internal/sat"
)

func NewDimacsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dimacs <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args[0])
		},
	}
}

func solve(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer file.Close()

	problem, err := Parse(file)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}

	model, err := problem.Solve()
	if errors.Is(err, sat.ErrUnsatisfiable) {
		fmt.Println("no solution found")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println("solution found:")
	for i, value := range model {
		fmt.Printf("%d = %t\n", i+1, value)
	}
	return nil
}
