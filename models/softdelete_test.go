package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkDeletedIdempotent(t *testing.T) {
	var s SoftDelete
	assert.False(t, s.IsDeleted())

	s.MarkDeleted()
	require.True(t, s.IsDeleted())
	require.NotNil(t, s.DeletedAt)
	first := *s.DeletedAt

	// a second delete never raises and never moves the timestamp
	s.MarkDeleted()
	assert.True(t, s.IsDeleted())
	assert.Equal(t, first, *s.DeletedAt)
}

func TestRestoreClearsFlag(t *testing.T) {
	var s SoftDelete
	s.MarkDeleted()
	s.Restore()
	assert.False(t, s.IsDeleted())
	assert.Nil(t, s.DeletedAt)
}

func TestCartPriceRecomputedOnSave(t *testing.T) {
	c := Cart{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("2.50"),
	}
	require.NoError(t, c.BeforeSave(nil))
	assert.True(t, c.Price.Equal(decimal.RequireFromString("7.50")))

	c.Quantity = 5
	require.NoError(t, c.BeforeSave(nil))
	assert.True(t, c.Price.Equal(decimal.RequireFromString("12.50")))

	c.UnitPrice = decimal.RequireFromString("1.10")
	require.NoError(t, c.BeforeSave(nil))
	assert.True(t, c.Price.Equal(decimal.RequireFromString("5.50")))
}
