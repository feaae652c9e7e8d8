package missionaries

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewMissionariesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "missionaries",
		Short: "Solves the missionaries and cannibals river crossing",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := Solve()
			if err != nil {
				fmt.Println("no solution found")
				return nil
			}
			fmt.Print(Describe(path))
			return nil
		},
	}
}
