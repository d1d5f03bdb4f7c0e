// Package duplicate implements the command that copies an existing
// transaction with optional edits. The copy's timestamp defaults to the
// current time so it does not collide with the original.
package duplicate

import (
	"time"

	"jeffrey-jian/spendsplit/cmd/root"
	"jeffrey-jian/spendsplit/internal/fraction"
	"jeffrey-jian/spendsplit/internal/models"

	"github.com/spf13/cobra"
)

var (
	index       int
	amount      string
	description string
	payee       string
	timestamp   string
)

// Cmd represents the duplicate command.
var Cmd = &cobra.Command{
	Use:   "duplicate",
	Short: "Duplicate a transaction with optional edits",
	Long: `Duplicate the transaction at the given index. Provided flags override the
copied fields; the timestamp is set to the current time unless specified.`,
	Run: duplicateFunc,
}

func init() {
	Cmd.Flags().IntVarP(&index, "index", "i", 0, "1-based index of the transaction to duplicate (required)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "amount override")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "description override")
	Cmd.Flags().StringVarP(&payee, "payee", "p", "", "payee override")
	Cmd.Flags().StringVarP(&timestamp, "timestamp", "t", "", "timestamp override, e.g. 2023-10-13T12:34:56")
	_ = Cmd.MarkFlagRequired("index")
}

func duplicateFunc(cmd *cobra.Command, args []string) {
	var descriptor models.EditTransactionDescriptor
	if cmd.Flags().Changed("amount") {
		f, err := fraction.Parse(amount)
		if err != nil {
			root.Log.Fatalf("Invalid amount: %v", err)
		}
		descriptor.Amount = &f
	}
	if cmd.Flags().Changed("description") {
		descriptor.Description = &description
	}
	if cmd.Flags().Changed("payee") {
		descriptor.Payee = &payee
	}
	if cmd.Flags().Changed("timestamp") {
		ts, err := time.ParseInLocation(models.TimestampLayout, timestamp, time.Local)
		if err != nil {
			root.Log.Fatalf("Invalid timestamp: %v", err)
		}
		descriptor.Timestamp = &ts
	} else {
		now := time.Now()
		descriptor.Timestamp = &now
	}

	list, err := root.LoadLedger()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	target, err := root.TransactionAt(list, index)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	duplicated, err := models.CreateEditedTransaction(target, descriptor)
	if err != nil {
		root.Log.Fatalf("Invalid duplicated transaction: %v", err)
	}
	if !duplicated.IsRelevant() {
		root.Log.Fatal("The duplicated transaction does not affect your balances")
	}
	if err := list.Add(duplicated); err != nil {
		root.Log.Fatalf("Error adding duplicated transaction: %v", err)
	}
	if err := root.SaveLedger(list); err != nil {
		root.Log.Fatalf("Error saving ledger: %v", err)
	}

	root.Log.Infof("New duplicated transaction added: %s", duplicated)
}
