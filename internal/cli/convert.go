package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/overtone-ring/Kentucky-cdl-prep/internal/bank"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/validator"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.xlsx> <output.json>",
	Short: "Convert an XLSX question workbook into a JSON question source",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := validator.New()

		questionBank, err := bank.LoadXLSXFile(args[0], v)
		if err != nil {
			return err
		}
		if err := bank.WriteFile(args[1], questionBank); err != nil {
			return fmt.Errorf("write question source: %w", err)
		}

		total := 0
		for _, category := range questionBank.Categories() {
			total += len(category.Questions)
		}
		fmt.Printf("Wrote %d categories, %d questions to %s\n", questionBank.Len(), total, args[1])
		return nil
	},
}
