package models

import (
	"time"

	"jeffrey-jian/spendsplit/internal/fraction"
)

// EditTransactionDescriptor is a sparse set of field overrides for building
// an edited copy of a transaction. A nil field means "keep the existing
// value".
type EditTransactionDescriptor struct {
	Amount      *fraction.Fraction
	Description *string
	Payee       *string
	Portions    []Portion
	Timestamp   *time.Time
}

// IsAnyFieldEdited reports whether at least one override is present.
func (d EditTransactionDescriptor) IsAnyFieldEdited() bool {
	return d.Amount != nil || d.Description != nil || d.Payee != nil ||
		d.Portions != nil || d.Timestamp != nil
}

// CreateEditedTransaction builds a brand-new transaction from orig with the
// descriptor's overrides applied. The original is never mutated; the result
// is validated like any freshly constructed transaction.
func CreateEditedTransaction(orig *Transaction, d EditTransactionDescriptor) (*Transaction, error) {
	amount := orig.Amount()
	if d.Amount != nil {
		amount = *d.Amount
	}
	description := orig.Description()
	if d.Description != nil {
		description = *d.Description
	}
	payee := orig.Payee()
	if d.Payee != nil {
		payee = *d.Payee
	}
	portions := orig.Portions()
	if d.Portions != nil {
		portions = d.Portions
	}
	timestamp := orig.Timestamp()
	if d.Timestamp != nil {
		timestamp = *d.Timestamp
	}
	return NewTransaction(amount, description, payee, portions, timestamp)
}
