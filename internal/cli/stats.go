package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/bank"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print stored test results per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		records, err := a.stats.All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No tests taken yet.")
			return nil
		}

		fmt.Printf("%-30s %9s %6s %6s %8s\n", "CATEGORY", "ATTEMPTS", "BEST", "LAST", "PASSED")
		for _, category := range a.bank.Categories() {
			record, ok := records[category.ID]
			if !ok {
				continue
			}
			fmt.Printf("%-30s %9d %5d%% %5d%% %8d\n",
				category.Name, record.Attempts, record.HighScore, record.LastScore, record.TimesPassed)
		}

		// Results for categories the current question source no longer
		// carries are still shown, keyed by their stored id.
		for _, id := range staleCategoryIDs(records, a.bank) {
			record := records[id]
			fmt.Printf("%-30s %9d %5d%% %5d%% %8d\n",
				id, record.Attempts, record.HighScore, record.LastScore, record.TimesPassed)
		}
		return nil
	},
}

// staleCategoryIDs returns the record ids absent from the catalog, sorted
// so repeated runs print them in the same order.
func staleCategoryIDs(records map[string]models.StatsRecord, b *bank.QuestionBank) []string {
	var ids []string
	for id := range records {
		if _, err := b.Category(id); err != nil {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
