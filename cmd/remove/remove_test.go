package remove_test

import (
	"testing"

	"jeffrey-jian/spendsplit/cmd/remove"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveCommand_Metadata(t *testing.T) {
	assert.Equal(t, "remove", remove.Cmd.Use)
	assert.Contains(t, remove.Cmd.Short, "Remove a transaction")
	assert.NotNil(t, remove.Cmd.Run)
}

func TestRemoveCommand_Flags(t *testing.T) {
	flag := remove.Cmd.Flags().Lookup("index")
	require.NotNil(t, flag)
	assert.Equal(t, "i", flag.Shorthand)
	assert.Equal(t, "0", flag.DefValue)
}
