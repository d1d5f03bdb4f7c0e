// Package ledger provides the ordered, duplicate-rejecting transaction
// collection consumed by the command layer. Uniqueness is judged by the
// same-transaction equivalence, not by reference.
//
// A TransactionList must have a single writer; it is owned by one command
// invocation at a time and does no locking of its own. Every failing
// operation leaves the list unchanged.
package ledger

import (
	"jeffrey-jian/spendsplit/internal/ledgererror"
	"jeffrey-jian/spendsplit/internal/models"
)

// TransactionList is an ordered sequence of transactions with no two
// elements equivalent under models.Transaction.SameTransaction.
type TransactionList struct {
	transactions []*models.Transaction
}

// NewTransactionList creates an empty list.
func NewTransactionList() *TransactionList {
	return &TransactionList{}
}

// indexOf returns the position of the first element equivalent to t, or -1.
func (l *TransactionList) indexOf(t *models.Transaction) int {
	for i, existing := range l.transactions {
		if existing.SameTransaction(t) {
			return i
		}
	}
	return -1
}

// Contains reports whether an equivalent transaction is present.
func (l *TransactionList) Contains(t *models.Transaction) bool {
	return t != nil && l.indexOf(t) >= 0
}

// Len returns the number of transactions.
func (l *TransactionList) Len() int {
	return len(l.transactions)
}

// Get returns the transaction at zero-based position i.
func (l *TransactionList) Get(i int) *models.Transaction {
	return l.transactions[i]
}

// Add appends t, preserving insertion order. Nil transactions and
// duplicates of an existing element are rejected.
func (l *TransactionList) Add(t *models.Transaction) error {
	if t == nil {
		return &ledgererror.NilTransactionError{Op: "add"}
	}
	if l.Contains(t) {
		return &ledgererror.DuplicateTransactionError{Description: t.Description()}
	}
	l.transactions = append(l.transactions, t)
	return nil
}

// SetTransaction replaces the slot holding target with edited, preserving
// position. The target is located by equivalence; an edited transaction that
// duplicates a different existing element is rejected.
func (l *TransactionList) SetTransaction(target, edited *models.Transaction) error {
	if target == nil || edited == nil {
		return &ledgererror.NilTransactionError{Op: "set"}
	}
	idx := l.indexOf(target)
	if idx < 0 {
		return &ledgererror.TransactionNotFoundError{Description: target.Description()}
	}
	if !target.SameTransaction(edited) && l.Contains(edited) {
		return &ledgererror.DuplicateTransactionError{Description: edited.Description()}
	}
	l.transactions[idx] = edited
	return nil
}

// Remove deletes the first element equivalent to t.
func (l *TransactionList) Remove(t *models.Transaction) error {
	if t == nil {
		return &ledgererror.NilTransactionError{Op: "remove"}
	}
	idx := l.indexOf(t)
	if idx < 0 {
		return &ledgererror.TransactionNotFoundError{Description: t.Description()}
	}
	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	return nil
}

// SetTransactions atomically replaces the entire contents with ts. The new
// list is validated first: nil elements and internal equivalence duplicates
// reject the whole replacement with the old contents intact.
func (l *TransactionList) SetTransactions(ts []*models.Transaction) error {
	if ts == nil {
		return &ledgererror.NilTransactionError{Op: "setAll"}
	}
	for i, t := range ts {
		if t == nil {
			return &ledgererror.NilTransactionError{Op: "setAll"}
		}
		for _, u := range ts[i+1:] {
			if t.SameTransaction(u) {
				return &ledgererror.DuplicateTransactionError{Description: t.Description()}
			}
		}
	}
	replacement := make([]*models.Transaction, len(ts))
	copy(replacement, ts)
	l.transactions = replacement
	return nil
}

// Equal reports whether both lists hold equivalent transactions in the same
// order.
func (l *TransactionList) Equal(other *TransactionList) bool {
	if other == nil || len(l.transactions) != len(other.transactions) {
		return false
	}
	for i := range l.transactions {
		if !l.transactions[i].SameTransaction(other.transactions[i]) {
			return false
		}
	}
	return true
}

// View returns a read-only, order-preserving snapshot for rendering and
// reporting. The view has no mutators, so collaborators cannot alter the
// list through it.
func (l *TransactionList) View() View {
	snapshot := make([]*models.Transaction, len(l.transactions))
	copy(snapshot, l.transactions)
	return View{transactions: snapshot}
}

// View is a read-only window over a transaction list.
type View struct {
	transactions []*models.Transaction
}

// Len returns the number of transactions in the view.
func (v View) Len() int {
	return len(v.transactions)
}

// At returns the transaction at zero-based position i.
func (v View) At(i int) *models.Transaction {
	return v.transactions[i]
}
