package add_test

import (
	"testing"

	"jeffrey-jian/spendsplit/cmd/add"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand_Metadata(t *testing.T) {
	assert.Equal(t, "add", add.Cmd.Use)
	assert.Contains(t, add.Cmd.Short, "Add a transaction")
	assert.Contains(t, add.Cmd.Long, "weight")
	assert.NotNil(t, add.Cmd.Run)
}

func TestAddCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{name: "amount", shorthand: "a"},
		{name: "description", shorthand: "d"},
		{name: "payee", shorthand: "p"},
		{name: "timestamp", shorthand: "t"},
		{name: "portion", shorthand: "w"},
	}

	for _, tt := range tests {
		flag := add.Cmd.Flags().Lookup(tt.name)
		require.NotNil(t, flag, "flag %s should exist", tt.name)
		assert.Equal(t, tt.shorthand, flag.Shorthand)
		assert.NotEmpty(t, flag.Usage)
	}
}

func TestAddCommand_RequiredFlags(t *testing.T) {
	for _, name := range []string{"amount", "description", "payee", "portion"} {
		flag := add.Cmd.Flags().Lookup(name)
		require.NotNil(t, flag)
		assert.Contains(t, flag.Annotations[cobra.BashCompOneRequiredFlag], "true", "flag %s should be required", name)
	}
}
