// Package remove implements the command that deletes a transaction.
package remove

import (
	"jeffrey-jian/spendsplit/cmd/root"

	"github.com/spf13/cobra"
)

var index int

// Cmd represents the remove command.
var Cmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a transaction by its display index",
	Run:   removeFunc,
}

func init() {
	Cmd.Flags().IntVarP(&index, "index", "i", 0, "1-based index of the transaction to remove (required)")
	_ = Cmd.MarkFlagRequired("index")
}

func removeFunc(cmd *cobra.Command, args []string) {
	list, err := root.LoadLedger()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	target, err := root.TransactionAt(list, index)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	if err := list.Remove(target); err != nil {
		root.Log.Fatalf("Error removing transaction: %v", err)
	}
	if err := root.SaveLedger(list); err != nil {
		root.Log.Fatalf("Error saving ledger: %v", err)
	}

	root.Log.Infof("Removed transaction: %s", target)
}
