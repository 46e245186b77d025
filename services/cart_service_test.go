package services

import (
	"testing"

	"restaurant-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartSnapshotsPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, models.RoleCustomer)
	cat := seedCategory(t, db, "mains")
	item := seedMenuItem(t, db, cat, "Margherita", "5.00")

	row, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: item.ID, Quantity: 2})
	require.NoError(t, err)
	assert.True(t, row.UnitPrice.Equal(mustDecimal("5.00")))
	assert.True(t, row.Price.Equal(mustDecimal("10.00")), "price = unit_price x quantity")

	// Raising the live menu price must not touch the cart snapshot
	item.Price = mustDecimal("9.99")
	require.NoError(t, db.Save(item).Error)

	rows, subtotal, err := svc.Get(user.ID, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].UnitPrice.Equal(mustDecimal("5.00")))
	assert.True(t, subtotal.Equal(mustDecimal("10.00")))
}

func TestAddToCartMergesActiveRowPerItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, models.RoleCustomer)
	cat := seedCategory(t, db, "mains")
	item := seedMenuItem(t, db, cat, "Pasta", "3.50")

	_, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)
	row, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: item.ID, Quantity: 2})
	require.NoError(t, err)

	// one active row per (user, menu item), quantities merged
	rows, subtotal, err := svc.Get(user.ID, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, row.Quantity)
	assert.True(t, subtotal.Equal(mustDecimal("10.50")))
}

func TestUpdateQuantityRecomputesPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, models.RoleCustomer)
	cat := seedCategory(t, db, "sides")
	item := seedMenuItem(t, db, cat, "Fries", "2.25")

	row, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)

	row, err = svc.UpdateQuantity(user.ID, row.ID, 4)
	require.NoError(t, err)
	assert.True(t, row.Price.Equal(mustDecimal("9.00")), "price recomputed after quantity change")
}

func TestUpdateQuantityZeroRemovesRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, models.RoleCustomer)
	cat := seedCategory(t, db, "sides")
	item := seedMenuItem(t, db, cat, "Salad", "4.00")

	row, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)

	gone, err := svc.UpdateQuantity(user.ID, row.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, gone)

	rows, _, err := svc.Get(user.ID, false)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRemoveIsIdempotentSoftDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, models.RoleCustomer)
	cat := seedCategory(t, db, "mains")
	item := seedMenuItem(t, db, cat, "Burger", "6.00")

	row, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(user.ID, row.ID))
	// second delete never raises
	require.NoError(t, svc.Remove(user.ID, row.ID))

	// the row survives, flagged deleted, visible with include_deleted
	rows, _, err := svc.Get(user.ID, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsDeleted())
	assert.NotNil(t, rows[0].DeletedAt)

	// default listing hides it
	rows, _, err = svc.Get(user.ID, false)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestResetCartSwallowsPersistenceFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, models.RoleCustomer)
	cat := seedCategory(t, db, "mains")
	item := seedMenuItem(t, db, cat, "Soup", "3.00")

	row, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: item.ID, Quantity: 1})
	require.NoError(t, err)

	// break the table so the soft-delete write fails underneath
	require.NoError(t, db.Migrator().DropTable(&models.Cart{}))

	assert.NotPanics(t, func() { svc.ResetCart(row) })
}

func TestResetAllSoftDeletesEveryRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	user := seedUser(t, db, models.RoleCustomer)
	cat := seedCategory(t, db, "mains")
	a := seedMenuItem(t, db, cat, "A", "1.00")
	b := seedMenuItem(t, db, cat, "B", "2.00")

	_, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: a.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.Add(user.ID, &AddToCartInput{MenuItemID: b.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.ResetAll(user.ID))

	rows, _, err := svc.Get(user.ID, false)
	require.NoError(t, err)
	assert.Empty(t, rows)
	rows, _, err = svc.Get(user.ID, true)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAddDeletedMenuItemRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewCartService(db)
	catalog := NewCatalogService(db)
	user := seedUser(t, db, models.RoleCustomer)
	cat := seedCategory(t, db, "mains")
	item := seedMenuItem(t, db, cat, "Retired", "5.00")

	require.NoError(t, catalog.DeleteMenuItem(item.ID))

	_, err := svc.Add(user.ID, &AddToCartInput{MenuItemID: item.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}
