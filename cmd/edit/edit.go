// Package edit implements the command that edits a transaction in place.
// Edits are copy-on-write: a fresh transaction is built from the overrides
// and swapped into the target's slot.
package edit

import (
	"fmt"
	"strings"
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
	portions    []string
)

// Cmd represents the edit command.
var Cmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a transaction by its display index",
	Long: `Edit the transaction at the given index. Only the provided flags change;
every other field keeps its current value.`,
	Run: editFunc,
}

func init() {
	Cmd.Flags().IntVarP(&index, "index", "i", 0, "1-based index of the transaction to edit (required)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "new total amount")
	Cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	Cmd.Flags().StringVarP(&payee, "payee", "p", "", "new payee name")
	Cmd.Flags().StringVarP(&timestamp, "timestamp", "t", "", "new timestamp, e.g. 2023-10-13T12:34:56")
	Cmd.Flags().StringArrayVarP(&portions, "portion", "w", nil, "replacement portion as Name=Weight (weight decimal or num/den), repeatable (replaces the whole set)")
	_ = Cmd.MarkFlagRequired("index")
}

// buildDescriptor translates changed flags into field overrides.
func buildDescriptor(cmd *cobra.Command) (models.EditTransactionDescriptor, error) {
	var d models.EditTransactionDescriptor
	if cmd.Flags().Changed("amount") {
		f, err := fraction.Parse(amount)
		if err != nil {
			return d, err
		}
		d.Amount = &f
	}
	if cmd.Flags().Changed("description") {
		d.Description = &description
	}
	if cmd.Flags().Changed("payee") {
		d.Payee = &payee
	}
	if cmd.Flags().Changed("timestamp") {
		ts, err := time.ParseInLocation(models.TimestampLayout, timestamp, time.Local)
		if err != nil {
			return d, err
		}
		d.Timestamp = &ts
	}
	if cmd.Flags().Changed("portion") {
		parsed := make([]models.Portion, 0, len(portions))
		for _, p := range portions {
			name, weight, ok := strings.Cut(p, "=")
			if !ok {
				return d, fmt.Errorf("invalid portion %q: expected Name=Weight", p)
			}
			portion, err := models.NewPortionFromStrings(name, weight)
			if err != nil {
				return d, err
			}
			parsed = append(parsed, portion)
		}
		d.Portions = parsed
	}
	return d, nil
}

func editFunc(cmd *cobra.Command, args []string) {
	descriptor, err := buildDescriptor(cmd)
	if err != nil {
		root.Log.Fatalf("Invalid edit: %v", err)
	}
	if !descriptor.IsAnyFieldEdited() {
		root.Log.Fatal("At least one field to edit must be provided")
	}

	list, err := root.LoadLedger()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}
	target, err := root.TransactionAt(list, index)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}

	edited, err := models.CreateEditedTransaction(target, descriptor)
	if err != nil {
		root.Log.Fatalf("Invalid edited transaction: %v", err)
	}
	if err := list.SetTransaction(target, edited); err != nil {
		root.Log.Fatalf("Error editing transaction: %v", err)
	}
	if err := root.SaveLedger(list); err != nil {
		root.Log.Fatalf("Error saving ledger: %v", err)
	}

	root.Log.Infof("Edited transaction: %s", edited)
}
