package balances_test

import (
	"testing"

	"jeffrey-jian/spendsplit/cmd/balances"

	"github.com/stretchr/testify/assert"
)

func TestBalancesCommand_Metadata(t *testing.T) {
	assert.Equal(t, "balances", balances.Cmd.Use)
	assert.Contains(t, balances.Cmd.Short, "net balance")
	assert.Contains(t, balances.Cmd.Long, "sum to zero")
	assert.NotNil(t, balances.Cmd.Run)
}
