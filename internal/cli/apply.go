package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubie"
)

var applyVerbose bool

var applyCmd = &cobra.Command{
	Use:   "apply <moves...>",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a Singmaster notation sequence to a solved cube and print the
resulting state.

Examples:
  cubie apply "R U R' U'"
  cubie apply R U R2 F'

The sequence is applied strictly left to right; an unrecognized token
aborts with an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().BoolVarP(&applyVerbose, "verbose", "v", false, "Also print the cubie-level slot dump")
}

func runApply(cmd *cobra.Command, args []string) error {
	sequence := strings.Join(args, " ")

	cube := cubie.New()
	if err := cube.ApplyNotation(sequence); err != nil {
		return fmt.Errorf("applying %q: %w", sequence, err)
	}

	fmt.Printf("Applied: %s\n\n", sequence)
	fmt.Println(cube.Net())
	fmt.Printf("Solved: %v\n", cube.IsSolved())

	if applyVerbose {
		fmt.Println()
		fmt.Print(cube.String())
	}

	return nil
}
