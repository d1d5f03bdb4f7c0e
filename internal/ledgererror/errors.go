// Package ledgererror defines the typed errors shared by the transaction
// model and the ledger collection. Every error is recoverable at the command
// layer and reported there; the core packages never log.
package ledgererror

import "fmt"

// DuplicateTransactionError reports an attempt to insert a transaction that
// is the same logical transaction as an existing element.
type DuplicateTransactionError struct {
	Description string
}

func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("duplicate transaction: %s", e.Description)
}

// TransactionNotFoundError reports an operation on a transaction that has no
// equivalent element in the ledger.
type TransactionNotFoundError struct {
	Description string
}

func (e *TransactionNotFoundError) Error() string {
	return fmt.Sprintf("transaction not found: %s", e.Description)
}

// NilTransactionError reports a nil transaction argument.
type NilTransactionError struct {
	Op string
}

func (e *NilTransactionError) Error() string {
	return fmt.Sprintf("%s: nil transaction", e.Op)
}

// ParticipantNotFoundError reports a share request for a person who has no
// portion in the transaction.
type ParticipantNotFoundError struct {
	Name string
}

func (e *ParticipantNotFoundError) Error() string {
	return fmt.Sprintf("no such participant in this transaction: %s", e.Name)
}
