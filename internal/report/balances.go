// Package report derives ledger-wide summaries from the transaction model.
package report

import (
	"sort"
	"strings"

	"jeffrey-jian/spendsplit/internal/config"
	"jeffrey-jian/spendsplit/internal/fraction"
	"jeffrey-jian/spendsplit/internal/ledger"
	"jeffrey-jian/spendsplit/internal/models"

	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Balance is one person's net position across the whole ledger: amounts they
// fronted minus shares they owe. Positive means the group owes them money.
type Balance struct {
	Person string
	Net    fraction.Fraction
}

// Balances computes every person's exact net balance over the view, sorted
// by person name. The balances of a ledger always sum to exactly zero:
// each transaction contributes its amount to the payee and subtracts exactly
// that amount across the participants' shares.
func Balances(view ledger.View) []Balance {
	type entry struct {
		display string
		net     fraction.Fraction
	}
	entries := make(map[string]*entry)

	lookup := func(name string) *entry {
		key := strings.ToLower(models.NormalizeName(name))
		e, ok := entries[key]
		if !ok {
			e = &entry{display: models.NormalizeName(name)}
			entries[key] = e
		}
		return e
	}

	for i := 0; i < view.Len(); i++ {
		t := view.At(i)
		payee := lookup(t.Payee())
		payee.net = payee.net.Add(t.Amount())
		for name, share := range t.AllShares() {
			participant := lookup(name)
			participant.net = participant.net.Sub(share)
		}
	}

	balances := make([]Balance, 0, len(entries))
	for _, e := range entries {
		balances = append(balances, Balance{Person: e.display, Net: e.net})
	}
	sort.Slice(balances, func(i, j int) bool {
		return strings.ToLower(balances[i].Person) < strings.ToLower(balances[j].Person)
	})

	log.Debugf("Computed balances for %d people over %d transactions", len(balances), view.Len())
	return balances
}
