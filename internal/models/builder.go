package models

import (
	"fmt"
	"time"

	"jeffrey-jian/spendsplit/internal/fraction"
)

// TransactionBuilder provides a fluent API for constructing transactions.
// The first error sticks and is reported by Build.
type TransactionBuilder struct {
	amount      fraction.Fraction
	description string
	payee       string
	portions    []Portion
	timestamp   time.Time
	err         error
}

// NewTransactionBuilder creates a builder with a zero amount and no portions.
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{}
}

// WithAmount sets the transaction amount.
func (b *TransactionBuilder) WithAmount(amount fraction.Fraction) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.amount = amount
	return b
}

// WithAmountFromString sets the amount from a decimal string such as "10.00".
func (b *TransactionBuilder) WithAmountFromString(amount string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	f, err := fraction.Parse(amount)
	if err != nil {
		b.err = fmt.Errorf("invalid amount: %w", err)
		return b
	}
	b.amount = f
	return b
}

// WithDescription sets the transaction description.
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.description = description
	return b
}

// WithPayee sets the payee name.
func (b *TransactionBuilder) WithPayee(name string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.payee = name
	return b
}

// WithPortion appends a portion from a name and a decimal weight string.
func (b *TransactionBuilder) WithPortion(name, weight string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	p, err := NewPortionFromStrings(name, weight)
	if err != nil {
		b.err = err
		return b
	}
	b.portions = append(b.portions, p)
	return b
}

// WithPortions replaces the portion set.
func (b *TransactionBuilder) WithPortions(portions []Portion) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.portions = portions
	return b
}

// WithTimestamp sets the transaction timestamp.
func (b *TransactionBuilder) WithTimestamp(timestamp time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.timestamp = timestamp
	return b
}

// WithTimestampFromString sets the timestamp from its canonical layout.
func (b *TransactionBuilder) WithTimestampFromString(timestamp string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	ts, err := time.ParseInLocation(TimestampLayout, timestamp, time.Local)
	if err != nil {
		b.err = fmt.Errorf("invalid timestamp: %w", err)
		return b
	}
	b.timestamp = ts
	return b
}

// Build validates and returns the final transaction. An unset timestamp
// defaults to the current time.
func (b *TransactionBuilder) Build() (*Transaction, error) {
	if b.err != nil {
		return nil, fmt.Errorf("builder error: %w", b.err)
	}
	return NewTransaction(b.amount, b.description, b.payee, b.portions, b.timestamp)
}
