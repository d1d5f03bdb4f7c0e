// Package store provides YAML persistence for the transaction ledger.
// Amounts and weights are written as exact decimal strings, never binary
// floating point, so a reload recomputes the identical shares bit-for-bit.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jeffrey-jian/spendsplit/internal/config"
	"jeffrey-jian/spendsplit/internal/fraction"
	"jeffrey-jian/spendsplit/internal/ledger"
	"jeffrey-jian/spendsplit/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Use the centralized logger from the config package.
var log = config.Logger

// SetLogger allows setting a custom logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LedgerStore loads and saves the ledger file.
type LedgerStore struct {
	FilePath      string
	BackupEnabled bool
}

// NewLedgerStore creates a store for the given ledger file.
func NewLedgerStore(filePath string, backupEnabled bool) *LedgerStore {
	return &LedgerStore{
		FilePath:      filePath,
		BackupEnabled: backupEnabled,
	}
}

type ledgerFile struct {
	Transactions []transactionRecord `yaml:"transactions"`
}

type transactionRecord struct {
	Amount      string          `yaml:"amount"`
	Description string          `yaml:"description"`
	Payee       string          `yaml:"payee"`
	Timestamp   string          `yaml:"timestamp"`
	Portions    []portionRecord `yaml:"portions"`
}

type portionRecord struct {
	Name   string `yaml:"name"`
	Weight string `yaml:"weight"`
}

// Load reads the ledger file into a transaction list. A missing file is not
// an error and yields an empty ledger.
func (s *LedgerStore) Load() (*ledger.TransactionList, error) {
	list := ledger.NewTransactionList()

	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Ledger file not found, starting empty: %s", s.FilePath)
			return list, nil
		}
		return nil, fmt.Errorf("error reading ledger file: %w", err)
	}

	var file ledgerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing ledger file: %w", err)
	}

	transactions := make([]*models.Transaction, 0, len(file.Transactions))
	for i, record := range file.Transactions {
		t, err := recordToTransaction(record)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction %d in %s: %w", i+1, s.FilePath, err)
		}
		transactions = append(transactions, t)
	}
	if err := list.SetTransactions(transactions); err != nil {
		return nil, fmt.Errorf("invalid ledger contents in %s: %w", s.FilePath, err)
	}

	log.Debugf("Loaded %d transactions from %s", list.Len(), s.FilePath)
	return list, nil
}

// Save writes the entire ledger to disk, backing up the previous file first
// when backups are enabled.
func (s *LedgerStore) Save(list *ledger.TransactionList) error {
	view := list.View()
	file := ledgerFile{Transactions: make([]transactionRecord, 0, view.Len())}
	for i := 0; i < view.Len(); i++ {
		record, err := transactionToRecord(view.At(i))
		if err != nil {
			return fmt.Errorf("error encoding transaction: %w", err)
		}
		file.Transactions = append(file.Transactions, record)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("error marshaling ledger: %w", err)
	}

	dir := filepath.Dir(s.FilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if s.BackupEnabled {
		if err := s.backup(); err != nil {
			log.Warnf("Failed to back up ledger file: %v", err)
		}
	}

	if err := os.WriteFile(s.FilePath, data, 0644); err != nil {
		return fmt.Errorf("error writing ledger file: %w", err)
	}

	log.Debugf("Saved %d transactions to %s", view.Len(), s.FilePath)
	return nil
}

// backup copies the current ledger file aside under a unique name.
func (s *LedgerStore) backup() error {
	existing, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	backupPath := fmt.Sprintf("%s.%s.bak", s.FilePath, uuid.New().String())
	if err := os.WriteFile(backupPath, existing, 0644); err != nil {
		return err
	}
	log.Debugf("Backed up ledger to %s", backupPath)
	return nil
}

func transactionToRecord(t *models.Transaction) (transactionRecord, error) {
	amount, err := t.Amount().MarshalText()
	if err != nil {
		return transactionRecord{}, err
	}
	portions := t.Portions()
	records := make([]portionRecord, 0, len(portions))
	for _, p := range portions {
		weight, err := p.Weight.MarshalText()
		if err != nil {
			return transactionRecord{}, err
		}
		records = append(records, portionRecord{Name: p.PersonName, Weight: string(weight)})
	}
	return transactionRecord{
		Amount:      string(amount),
		Description: t.Description(),
		Payee:       t.Payee(),
		// Truncate to seconds so a load/save cycle is idempotent.
		Timestamp: t.Timestamp().Truncate(time.Second).Format(models.TimestampLayout),
		Portions:  records,
	}, nil
}

func recordToTransaction(record transactionRecord) (*models.Transaction, error) {
	var amount fraction.Fraction
	if err := amount.UnmarshalText([]byte(record.Amount)); err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	timestamp, err := time.ParseInLocation(models.TimestampLayout, record.Timestamp, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}
	portions := make([]models.Portion, 0, len(record.Portions))
	for _, p := range record.Portions {
		var weight fraction.Fraction
		if err := weight.UnmarshalText([]byte(p.Weight)); err != nil {
			return nil, fmt.Errorf("invalid weight for %s: %w", p.Name, err)
		}
		portion, err := models.NewPortion(p.Name, weight)
		if err != nil {
			return nil, err
		}
		portions = append(portions, portion)
	}
	return models.NewTransaction(amount, record.Description, record.Payee, portions, timestamp)
}
