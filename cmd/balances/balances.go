// Package balances implements the command that prints each person's net
// position across the whole ledger.
package balances

import (
	"jeffrey-jian/spendsplit/cmd/root"
	"jeffrey-jian/spendsplit/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the balances command.
var Cmd = &cobra.Command{
	Use:   "balances",
	Short: "Show each person's net balance",
	Long: `Show every person's net balance: amounts they fronted minus shares they
owe. Positive means the group owes them money. Balances always sum to zero.`,
	Run: balancesFunc,
}

func balancesFunc(cmd *cobra.Command, args []string) {
	list, err := root.LoadLedger()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}

	all := report.Balances(list.View())
	if len(all) == 0 {
		cmd.Println("The ledger is empty.")
		return
	}

	places := root.DecimalPlaces()
	for _, b := range all {
		cmd.Printf("%-20s %s\n", b.Person, b.Net.Format(places))
	}
}
