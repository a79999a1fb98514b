package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubie/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scrambles",
	Long:  `Display scrambles previously saved with 'cubie scramble --save', newest first.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum number of scrambles to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	scrambles, err := storage.NewScrambleRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(scrambles) == 0 {
		fmt.Println("No saved scrambles. Use 'cubie scramble --save' to record one.")
		return nil
	}

	for _, s := range scrambles {
		seed := "-"
		if s.Seed != nil {
			seed = fmt.Sprintf("%d", *s.Seed)
		}
		fmt.Printf("%s  %s  len=%-3d seed=%-12s %s\n",
			s.ScrambleID[:8],
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Length, seed, s.Sequence)
		if s.Notes != nil {
			fmt.Printf("          %s\n", *s.Notes)
		}
	}

	return nil
}
