// reportctl generates warehouse report workbooks from JSON fixture files,
// without a database or a running server. It exists for template diffing:
// rendering the same fixture before and after a layout change must yield
// byte-identical files unless the template itself moved.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/palletops/opsdash/internal/logger"
)

var outputPath string

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Generate warehouse report workbooks from JSON fixtures",
	Long: `reportctl renders the fixed-template warehouse reports (ACO order,
GRN receiving, stock transfer) from JSON fixture files and writes the
resulting .xlsx next to the fixture, or to --output.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitLogging("")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file path (defaults to the report's own filename)")
	rootCmd.AddCommand(acoCmd)
	rootCmd.AddCommand(grnCmd)
	rootCmd.AddCommand(transactionsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
