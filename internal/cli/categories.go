package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the test categories in the question source",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		for _, category := range a.bank.Categories() {
			fmt.Printf("%-20s %s (%d questions)\n", category.ID, category.Name, len(category.Questions))
		}
		return nil
	},
}
