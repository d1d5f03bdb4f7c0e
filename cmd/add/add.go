// Package add implements the command that records a new transaction.
package add

import (
	"strings"

	"jeffrey-jian/spendsplit/cmd/root"
	"jeffrey-jian/spendsplit/internal/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	amount      string
	description string
	payee       string
	timestamp   string
	portions    []string
)

// Cmd represents the add command.
var Cmd = &cobra.Command{
	Use:   "add",
	Short: "Add a transaction to the ledger",
	Long: `Add a transaction: who paid, how much, and each participant's weight.
Weights are relative; a participant's share is amount * weight / total weight,
computed exactly.`,
	Run: addFunc,
}

func init() {
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "total amount, e.g. 10.00 (required)")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "description of the transaction (required)")
	Cmd.Flags().StringVarP(&payee, "payee", "p", "", "who fronted the money (required)")
	Cmd.Flags().StringVarP(&timestamp, "timestamp", "t", "", "timestamp, e.g. 2023-10-13T12:34:56 (default: now)")
	Cmd.Flags().StringArrayVarP(&portions, "portion", "w", nil, "participant weight as Name=Weight (weight decimal or num/den), repeatable (required)")
	_ = Cmd.MarkFlagRequired("amount")
	_ = Cmd.MarkFlagRequired("description")
	_ = Cmd.MarkFlagRequired("payee")
	_ = Cmd.MarkFlagRequired("portion")
}

func addFunc(cmd *cobra.Command, args []string) {
	// Validate the inbound amount early for a friendly message; the core
	// re-parses the canonical string into an exact fraction.
	if _, err := decimal.NewFromString(strings.TrimSpace(amount)); err != nil {
		root.Log.Fatalf("Invalid amount %q: %v", amount, err)
	}

	builder := models.NewTransactionBuilder().
		WithAmountFromString(amount).
		WithDescription(description).
		WithPayee(payee)
	for _, p := range portions {
		name, weight, ok := strings.Cut(p, "=")
		if !ok {
			root.Log.Fatalf("Invalid portion %q: expected Name=Weight", p)
		}
		builder = builder.WithPortion(name, weight)
	}
	if timestamp != "" {
		builder = builder.WithTimestampFromString(timestamp)
	}

	transaction, err := builder.Build()
	if err != nil {
		root.Log.Fatalf("Invalid transaction: %v", err)
	}
	if !transaction.IsRelevant() {
		root.Log.Fatal("The transaction does not affect any balances")
	}

	list, err := root.LoadLedger()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	if err := list.Add(transaction); err != nil {
		root.Log.Fatalf("Error adding transaction: %v", err)
	}
	if err := root.SaveLedger(list); err != nil {
		root.Log.Fatalf("Error saving ledger: %v", err)
	}

	root.Log.Infof("New transaction added: %s", transaction)
}
