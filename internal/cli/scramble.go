package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubie"
	"github.com/seamusw/cubie/internal/storage"
)

var (
	scrambleLength int
	scrambleSeed   int64
	scrambleSave   bool
	scrambleNotes  string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and apply a random scramble",
	Long: `Generate a random scramble, apply it to a solved cube, and print the
move sequence together with the resulting sticker net.

Use --seed for a reproducible scramble and --save to record it in the
scramble history database.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)

	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default from config, normally 25)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Save the scramble to the history database")
	scrambleCmd.Flags().StringVar(&scrambleNotes, "notes", "", "Notes to store with --save")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	length := scrambleLength
	if length == 0 {
		length = cfg.Scramble.Length
	}

	cube := cubie.New()
	sequence := cubie.NewScrambler(cubie.WithSeed(scrambleSeed)).Scramble(cube, length)

	fmt.Printf("Scramble (%d moves): %s\n\n", length, sequence)
	fmt.Println(cube.Net())

	if scrambleSave {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewScrambleRepository(db).Save(sequence, length, scrambleSeed, scrambleNotes)
		if err != nil {
			return err
		}
		fmt.Printf("Saved scramble %s\n", id)
	}

	return nil
}
