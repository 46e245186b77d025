package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"restaurant-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq int64

// newTestDB opens a fresh shared in-memory database per test so parallel
// tests never see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Cart{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role models.UserRole) *models.User {
	t.Helper()
	u := models.User{
		Name:         "Test " + string(role),
		Email:        fmt.Sprintf("%s_%d@example.com", role, atomic.AddInt64(&dbSeq, 1)),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedCategory(t *testing.T, db *gorm.DB, title string) *models.Category {
	t.Helper()
	cat := models.Category{Title: title, Slug: title}
	require.NoError(t, db.Create(&cat).Error)
	return &cat
}

func seedMenuItem(t *testing.T, db *gorm.DB, cat *models.Category, title, price string) *models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Title:      title,
		Price:      decimal.RequireFromString(price),
		CategoryID: cat.ID,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
