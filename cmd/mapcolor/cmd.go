package mapcolor

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewMapColorCommand() *cobra.Command {
	var useSAT bool

	cmd := &cobra.Command{
		Use:   "mapcolor",
		Short: "Colors the Australian map with three colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			solution, err := Solve(useSAT)
			if err != nil {
				fmt.Println("no solution found")
				return nil
			}
			for _, region := range Regions {
				fmt.Printf("%s: %s\n", region, solution[region])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useSAT, "sat", false, "solve through the SAT backend instead of backtracking")
	return cmd
}
