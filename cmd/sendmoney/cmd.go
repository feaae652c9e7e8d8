package sendmoney

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewSendMoneyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sendmoney",
		Short: "Solves the SEND + MORE = MONEY cryptarithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			solution, err := Solve()
			if err != nil {
				fmt.Println("no solution found")
				return nil
			}
			for _, letter := range Letters {
				fmt.Printf("%s: %d\n", letter, solution[letter])
			}
			return nil
		},
	}
}
