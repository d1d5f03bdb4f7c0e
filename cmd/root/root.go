// Package root contains the root command for the application.
package root

import (
	"fmt"

	"jeffrey-jian/spendsplit/internal/common"
	"jeffrey-jian/spendsplit/internal/config"
	"jeffrey-jian/spendsplit/internal/ledger"
	"jeffrey-jian/spendsplit/internal/models"
	"jeffrey-jian/spendsplit/internal/report"
	"jeffrey-jian/spendsplit/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands.
	Log = logrus.New()

	// Cfg is the loaded application configuration, set in PersistentPreRun.
	Cfg *config.Config

	// LedgerFile overrides the configured ledger file path when set.
	LedgerFile string

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "spendsplit",
		Short: "A CLI ledger that splits shared expenses with exact arithmetic.",
		Long: `spendsplit is a CLI expense-splitting ledger. It records who paid what on
behalf of whom and derives each participant's share with exact rational
arithmetic, so the shares always sum to the transaction total to the cent.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to spendsplit!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Cfg = config.GetGlobalConfig()
			Log = config.ConfigureLoggingFromConfig(Cfg)

			// Hand the configured logger to every package that logs.
			store.SetLogger(Log)
			common.SetLogger(Log)
			report.SetLogger(Log)

			if Cfg.CSV.Delimiter != "" {
				common.SetDelimiter([]rune(Cfg.CSV.Delimiter)[0])
			}
		},
	}
)

func init() {
	Cmd.PersistentFlags().StringVarP(&LedgerFile, "file", "f", "", "ledger file (overrides configuration)")
}

// LedgerPath resolves the ledger file path from the flag or configuration.
func LedgerPath() string {
	if LedgerFile != "" {
		return LedgerFile
	}
	return Cfg.Ledger.File
}

// NewStore creates the ledger store for the resolved path.
func NewStore() *store.LedgerStore {
	return store.NewLedgerStore(LedgerPath(), Cfg.Ledger.BackupEnabled)
}

// LoadLedger reads the ledger from disk.
func LoadLedger() (*ledger.TransactionList, error) {
	return NewStore().Load()
}

// SaveLedger writes the ledger back to disk.
func SaveLedger(list *ledger.TransactionList) error {
	return NewStore().Save(list)
}

// TransactionAt returns the transaction at the given 1-based display index.
func TransactionAt(list *ledger.TransactionList, index int) (*models.Transaction, error) {
	if index < 1 || index > list.Len() {
		return nil, fmt.Errorf("transaction index %d out of range (ledger has %d)", index, list.Len())
	}
	return list.Get(index - 1), nil
}

// DecimalPlaces returns the configured number of decimal places for
// rendering monetary values.
func DecimalPlaces() int {
	return Cfg.Display.DecimalPlaces
}
