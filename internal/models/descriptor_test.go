package models

import (
	"testing"
	"time"

	"jeffrey-jian/spendsplit/internal/fraction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAnyFieldEdited(t *testing.T) {
	assert.False(t, EditTransactionDescriptor{}.IsAnyFieldEdited())

	desc := "Brunch"
	assert.True(t, EditTransactionDescriptor{Description: &desc}.IsAnyFieldEdited())

	assert.True(t, EditTransactionDescriptor{Portions: []Portion{}}.IsAnyFieldEdited())
}

func TestCreateEditedTransaction(t *testing.T) {
	orig := dinner(t)

	t.Run("NoOverridesCopiesEverything", func(t *testing.T) {
		edited, err := CreateEditedTransaction(orig, EditTransactionDescriptor{})
		require.NoError(t, err)
		assert.True(t, orig.Equal(edited))
		assert.NotSame(t, orig, edited)
	})

	t.Run("AmountOverride", func(t *testing.T) {
		amount := frac(t, "900")
		edited, err := CreateEditedTransaction(orig, EditTransactionDescriptor{Amount: &amount})
		require.NoError(t, err)
		assert.True(t, edited.Amount().Equal(amount))
		assert.Equal(t, orig.Description(), edited.Description())
		assert.True(t, edited.Timestamp().Equal(orig.Timestamp()))

		// Copy-on-write: the original is untouched.
		assert.True(t, orig.Amount().Equal(frac(t, "600")))
	})

	t.Run("AmountZeroMakesItIrrelevant", func(t *testing.T) {
		zero := fraction.Zero()
		edited, err := CreateEditedTransaction(orig, EditTransactionDescriptor{Amount: &zero})
		require.NoError(t, err)
		assert.False(t, edited.IsRelevant())
	})

	t.Run("PortionsOverride", func(t *testing.T) {
		edited, err := CreateEditedTransaction(orig, EditTransactionDescriptor{
			Portions: []Portion{portion(t, "Dave", "1")},
		})
		require.NoError(t, err)
		require.Len(t, edited.Portions(), 1)
		assert.Equal(t, "Dave", edited.Portions()[0].PersonName)
		assert.Len(t, orig.Portions(), 3)
	})

	t.Run("TimestampOverride", func(t *testing.T) {
		later := testTime.Add(48 * time.Hour)
		edited, err := CreateEditedTransaction(orig, EditTransactionDescriptor{Timestamp: &later})
		require.NoError(t, err)
		assert.True(t, edited.Timestamp().Equal(later))
		assert.False(t, orig.SameTransaction(edited))
	})

	t.Run("InvalidOverrideRejected", func(t *testing.T) {
		blank := "  "
		_, err := CreateEditedTransaction(orig, EditTransactionDescriptor{Description: &blank})
		assert.Error(t, err)
	})
}

func TestTransactionBuilder(t *testing.T) {
	t.Run("Build", func(t *testing.T) {
		tx, err := NewTransactionBuilder().
			WithAmountFromString("600").
			WithDescription("Dinner").
			WithPayee("Alice").
			WithPortion("Alice", "1").
			WithPortion("Bob", "2").
			WithPortion("Carl", "3").
			WithTimestamp(testTime).
			Build()
		require.NoError(t, err)
		assert.True(t, tx.Equal(dinner(t)))
	})

	t.Run("TimestampFromString", func(t *testing.T) {
		tx, err := NewTransactionBuilder().
			WithAmountFromString("10").
			WithDescription("Lunch").
			WithPayee("Alice").
			WithPortion("Alice", "1").
			WithTimestampFromString("2023-10-13T12:34:56").
			Build()
		require.NoError(t, err)
		assert.True(t, tx.Timestamp().Equal(testTime))
	})

	t.Run("FirstErrorSticks", func(t *testing.T) {
		_, err := NewTransactionBuilder().
			WithAmountFromString("not-a-number").
			WithDescription("Dinner").
			WithPayee("Alice").
			WithPortion("Alice", "also-bad").
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid amount")
	})

	t.Run("BadTimestamp", func(t *testing.T) {
		_, err := NewTransactionBuilder().
			WithAmountFromString("10").
			WithDescription("Lunch").
			WithPayee("Alice").
			WithPortion("Alice", "1").
			WithTimestampFromString("13/10/2023").
			Build()
		assert.Error(t, err)
	})
}
