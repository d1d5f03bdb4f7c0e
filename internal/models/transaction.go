// Package models holds the expense-splitting domain model: portions,
// transactions and the derivation of exact per-person shares. Everything in
// this package is a pure computation over exact rationals; rendering,
// persistence and command parsing live in the surrounding layers.
package models

import (
	"fmt"
	"strings"
	"time"

	"jeffrey-jian/spendsplit/internal/fraction"
	"jeffrey-jian/spendsplit/internal/ledgererror"
)

// TimestampLayout is the canonical wall-clock form for transaction
// timestamps, both on disk and at the CLI boundary.
const TimestampLayout = "2006-01-02T15:04:05"

// Transaction is an immutable record of a payment made by one person on
// behalf of a group. A positive amount means the payee fronted the money and
// every participant's derived share is what they owe the payee; a negative
// amount flows through the same arithmetic with the direction reversed.
// Edits never mutate a transaction; they build a new one via
// CreateEditedTransaction.
type Transaction struct {
	amount      fraction.Fraction
	description string
	payee       string
	portions    []Portion
	timestamp   time.Time
}

// NewTransaction creates a transaction. The description and payee must be
// non-blank, portions must name each participant at most once, and a zero
// timestamp defaults to the current time. The portion slice is copied.
func NewTransaction(amount fraction.Fraction, description, payee string, portions []Portion, timestamp time.Time) (*Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("transaction description cannot be blank")
	}
	payee = NormalizeName(payee)
	if payee == "" {
		return nil, ErrEmptyPersonName
	}
	copied := make([]Portion, len(portions))
	copy(copied, portions)
	for i, p := range copied {
		if !p.Weight.IsPositive() {
			return nil, ErrNonPositiveWeight
		}
		for _, q := range copied[i+1:] {
			if SameName(p.PersonName, q.PersonName) {
				return nil, fmt.Errorf("duplicate portion for %s", p.PersonName)
			}
		}
	}
	if timestamp.IsZero() {
		timestamp = time.Now()
	}
	return &Transaction{
		amount:      amount,
		description: description,
		payee:       payee,
		portions:    copied,
		timestamp:   timestamp,
	}, nil
}

// Amount returns the total monetary value of the transaction.
func (t *Transaction) Amount() fraction.Fraction {
	return t.amount
}

// Description returns the free-text description.
func (t *Transaction) Description() string {
	return t.description
}

// Payee returns the normalized name of the person who fronted the money.
func (t *Transaction) Payee() string {
	return t.payee
}

// Portions returns a copy of the portion set in insertion order.
func (t *Transaction) Portions() []Portion {
	copied := make([]Portion, len(t.portions))
	copy(copied, t.portions)
	return copied
}

// Timestamp returns the point in time the transaction occurred.
func (t *Transaction) Timestamp() time.Time {
	return t.timestamp
}

// totalWeight sums all portion weights. Positive for a nonempty portion set
// because every weight is invariantly positive.
func (t *Transaction) totalWeight() fraction.Fraction {
	weights := make([]fraction.Fraction, len(t.portions))
	for i, p := range t.portions {
		weights[i] = p.Weight
	}
	return fraction.Sum(weights)
}

// share computes amount * weight / totalWeight with exact rational
// arithmetic, multiply first.
func (t *Transaction) share(weight, total fraction.Fraction) fraction.Fraction {
	s, err := t.amount.Mul(weight).Div(total)
	if err != nil {
		// Unreachable while the positive-weight invariant holds.
		panic("transaction: total portion weight is zero")
	}
	return s
}

// AllShares derives each participant's exact monetary share, keyed by the
// participant's stored name. The returned values always sum to exactly the
// transaction amount for a nonempty portion set; an empty portion set yields
// an empty map.
func (t *Transaction) AllShares() map[string]fraction.Fraction {
	shares := make(map[string]fraction.Fraction, len(t.portions))
	if len(t.portions) == 0 {
		return shares
	}
	total := t.totalWeight()
	for _, p := range t.portions {
		shares[p.PersonName] = t.share(p.Weight, total)
	}
	return shares
}

// Share derives the exact share of a single participant, or
// ParticipantNotFoundError when the person has no portion here.
func (t *Transaction) Share(person string) (fraction.Fraction, error) {
	for _, p := range t.portions {
		if SameName(p.PersonName, person) {
			return t.share(p.Weight, t.totalWeight()), nil
		}
	}
	return fraction.Fraction{}, &ledgererror.ParticipantNotFoundError{Name: NormalizeName(person)}
}

// IsPersonInvolved reports whether the person has a portion in this
// transaction.
func (t *Transaction) IsPersonInvolved(person string) bool {
	for _, p := range t.portions {
		if SameName(p.PersonName, person) {
			return true
		}
	}
	return false
}

// IsRelevant reports whether the transaction actually transfers value.
// Zero-amount transactions change nobody's balance and are rejected by the
// add and duplicate commands.
func (t *Transaction) IsRelevant() bool {
	return !t.amount.IsZero()
}

// SameTransaction reports the domain equivalence used for duplicate
// detection: equal amount, description, payee, timestamp and portion set.
// Names compare case-insensitively and portion order does not matter.
func (t *Transaction) SameTransaction(other *Transaction) bool {
	if other == t {
		return true
	}
	if other == nil {
		return false
	}
	if !t.amount.Equal(other.amount) ||
		t.description != other.description ||
		!SameName(t.payee, other.payee) ||
		!t.timestamp.Equal(other.timestamp) ||
		len(t.portions) != len(other.portions) {
		return false
	}
	for _, p := range t.portions {
		found := false
		for _, q := range other.portions {
			if p.Same(q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Equal reports strict structural equality: every field identical, portion
// order and name casing included. Stricter than SameTransaction.
func (t *Transaction) Equal(other *Transaction) bool {
	if other == t {
		return true
	}
	if other == nil {
		return false
	}
	if !t.amount.Equal(other.amount) ||
		t.description != other.description ||
		t.payee != other.payee ||
		!t.timestamp.Equal(other.timestamp) ||
		len(t.portions) != len(other.portions) {
		return false
	}
	for i := range t.portions {
		if !t.portions[i].Equal(other.portions[i]) {
			return false
		}
	}
	return true
}

func (t *Transaction) String() string {
	parts := make([]string, len(t.portions))
	for i, p := range t.portions {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s paid %s for %q [%s] at %s",
		t.payee, t.amount, t.description, strings.Join(parts, ", "),
		t.timestamp.Format(TimestampLayout))
}
