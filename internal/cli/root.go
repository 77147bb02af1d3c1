package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cdlprep",
	Short: "Kentucky CDL practice tests in the terminal",
	Long: "cdlprep runs Kentucky commercial driver's license practice tests: " +
		"pick a category, answer the questions, get scored against the 80% bar " +
		"and track your results over time.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("questions", "", "Path to the question source (overrides QUESTIONS_PATH)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(convertCmd)
}
