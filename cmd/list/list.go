// Package list implements the command that renders the ledger.
package list

import (
	"jeffrey-jian/spendsplit/cmd/root"
	"jeffrey-jian/spendsplit/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the list command.
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List all transactions with each participant's share",
	Run:   listFunc,
}

func listFunc(cmd *cobra.Command, args []string) {
	list, err := root.LoadLedger()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}

	view := list.View()
	if view.Len() == 0 {
		cmd.Println("The ledger is empty.")
		return
	}

	places := root.DecimalPlaces()
	for i := 0; i < view.Len(); i++ {
		t := view.At(i)
		cmd.Printf("%d. %s: %s paid %s on %s\n",
			i+1, t.Description(), t.Payee(), t.Amount().Format(places),
			t.Timestamp().Format(models.TimestampLayout))
		for _, p := range t.Portions() {
			share, err := t.Share(p.PersonName)
			if err != nil {
				root.Log.Fatalf("Error deriving share: %v", err)
			}
			cmd.Printf("     %-20s %s\n", p.PersonName, share.Format(places))
		}
	}
}
