// Package export implements the command that writes derived shares to CSV.
package export

import (
	"jeffrey-jian/spendsplit/cmd/root"
	"jeffrey-jian/spendsplit/internal/common"

	"github.com/spf13/cobra"
)

var output string

// Cmd represents the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export derived shares to a CSV file",
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file (required)")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) {
	list, err := root.LoadLedger()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}

	rows, err := common.BuildShareRows(list.View(), root.DecimalPlaces())
	if err != nil {
		root.Log.Fatalf("Error building share rows: %v", err)
	}
	if err := common.WriteShareRowsToCSV(rows, output); err != nil {
		root.Log.Fatalf("Error writing CSV: %v", err)
	}

	root.Log.Infof("Exported %d share rows to %s", len(rows), output)
}
