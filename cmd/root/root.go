package root

import (
	"github.com/spf13/cobra"

	"github.com/quest-framework/quest/cmd/dimacs"
	"github.com/quest-framework/quest/cmd/mapcolor"
	"github.com/quest-framework/quest/cmd/maze"
	"github.com/quest-framework/quest/cmd/missionaries"
	"github.com/quest-framework/quest/cmd/queens"
	"github.com/quest-framework/quest/cmd/sendmoney"
	"github.com/quest-framework/quest/cmd/sudoku"
	"github.com/quest-framework/quest/cmd/wordsearch"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quest",
		Short: "Quest is an open-source state-space search and constraint satisfaction framework",
		Long: `A generic state-space search and constraint satisfaction framework written in Go.
The subcommands solve a handful of classic problems with it.`,
	}

	// add sub-commands
	rootCmd.AddCommand(maze.NewMazeCommand())
	rootCmd.AddCommand(missionaries.NewMissionariesCommand())
	rootCmd.AddCommand(queens.NewQueensCommand())
	rootCmd.AddCommand(mapcolor.NewMapColorCommand())
	rootCmd.AddCommand(sendmoney.NewSendMoneyCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())
	rootCmd.AddCommand(dimacs.NewDimacsCommand())
	rootCmd.AddCommand(wordsearch.NewWordSearchCommand())

	return rootCmd
}
