package root_test

import (
	"testing"
	"time"

	"jeffrey-jian/spendsplit/cmd/root"
	"jeffrey-jian/spendsplit/internal/config"
	"jeffrey-jian/spendsplit/internal/ledger"
	"jeffrey-jian/spendsplit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Ledger.File = "ledger.yaml"
	c.Display.DecimalPlaces = 2
	c.CSV.Delimiter = ","
	return c
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "spendsplit", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "splits shared expenses")
	assert.Contains(t, root.Cmd.Long, "exact rational")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	fileFlag := root.Cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "f", fileFlag.Shorthand)
	assert.Equal(t, "", fileFlag.DefValue)
	assert.NotEmpty(t, fileFlag.Usage)
}

func TestLedgerPath(t *testing.T) {
	originalCfg := root.Cfg
	originalFile := root.LedgerFile
	defer func() {
		root.Cfg = originalCfg
		root.LedgerFile = originalFile
	}()

	root.Cfg = testConfig()

	root.LedgerFile = ""
	assert.Equal(t, "ledger.yaml", root.LedgerPath())

	root.LedgerFile = "trip.yaml"
	assert.Equal(t, "trip.yaml", root.LedgerPath())
}

func TestDecimalPlaces(t *testing.T) {
	originalCfg := root.Cfg
	defer func() { root.Cfg = originalCfg }()

	root.Cfg = testConfig()
	root.Cfg.Display.DecimalPlaces = 3
	assert.Equal(t, 3, root.DecimalPlaces())
}

func TestTransactionAt(t *testing.T) {
	tx, err := models.NewTransactionBuilder().
		WithAmountFromString("10").
		WithDescription("Lunch").
		WithPayee("Alice").
		WithPortion("Alice", "1").
		WithTimestamp(time.Date(2023, 10, 13, 12, 34, 56, 0, time.Local)).
		Build()
	require.NoError(t, err)
	list := ledger.NewTransactionList()
	require.NoError(t, list.Add(tx))

	got, err := root.TransactionAt(list, 1)
	require.NoError(t, err)
	assert.Same(t, tx, got)

	_, err = root.TransactionAt(list, 0)
	assert.Error(t, err)
	_, err = root.TransactionAt(list, 2)
	assert.Error(t, err)
}
