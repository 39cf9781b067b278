package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/freshstock/freshstock/internal/alert/domain"
	"github.com/freshstock/freshstock/internal/alert/repository"
	"github.com/freshstock/freshstock/internal/alertconfig"
	"github.com/freshstock/freshstock/internal/clock"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupAlerts(t *testing.T, thresholds alertconfig.Config) (domain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open db")

	sqlDB, err := db.DB()
	require.NoError(t, err, "db handle")
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	err = db.Exec(`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'Uncategorized',
		manufacturing_date TEXT NOT NULL,
		expiry_date TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price REAL NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`).Error
	require.NoError(t, err, "prepare schema")

	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 15, 45, 0, 0, time.UTC))
	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		Clock:      clk,
		Thresholds: alertconfig.NewStaticHolder(thresholds),
		Repo:       repository.Provide(),
	})

	return svc, db, clk
}

func insertProduct(t *testing.T, db *gorm.DB, name, expiryDate string, quantity int) {
	t.Helper()
	err := db.Exec(
		`INSERT INTO products (name, category, manufacturing_date, expiry_date, quantity, price) VALUES (?, ?, ?, ?, ?, ?)`,
		name, "Dairy", "2024-01-01", expiryDate, quantity, 50.0,
	).Error
	require.NoError(t, err, "insert product")
}

func TestCheckClassifiesBothLists(t *testing.T) {
	svc, db, _ := setupAlerts(t, alertconfig.DefaultConfig())

	// today is 2024-01-01; Milk expires in 2 days and is low on stock
	insertProduct(t, db, "Milk", "2024-01-03", 5)

	report, err := svc.Check(context.Background())
	require.NoError(t, err)

	require.Len(t, report.ExpiringSoon, 1)
	assert.Equal(t, "Milk", report.ExpiringSoon[0].Name)
	assert.Equal(t, 2, report.ExpiringSoon[0].DaysLeft)

	require.Len(t, report.LowStock, 1)
	assert.Equal(t, "Milk", report.LowStock[0].Name)
	assert.Equal(t, 5, report.LowStock[0].Quantity)
}

func TestCheckExpiryBoundary(t *testing.T) {
	svc, db, _ := setupAlerts(t, alertconfig.DefaultConfig())

	insertProduct(t, db, "Yogurt", "2024-01-08", 100)  // exactly 7 days out
	insertProduct(t, db, "Butter", "2024-01-09", 100)  // 8 days out
	insertProduct(t, db, "Old Milk", "2023-12-30", 100) // already expired

	report, err := svc.Check(context.Background())
	require.NoError(t, err)

	require.Len(t, report.ExpiringSoon, 2)
	assert.Equal(t, "Yogurt", report.ExpiringSoon[0].Name)
	assert.Equal(t, 7, report.ExpiringSoon[0].DaysLeft)
	assert.Equal(t, "Old Milk", report.ExpiringSoon[1].Name)
	assert.Equal(t, -2, report.ExpiringSoon[1].DaysLeft)

	assert.Empty(t, report.LowStock)
}

func TestCheckLowStockBoundary(t *testing.T) {
	svc, db, _ := setupAlerts(t, alertconfig.DefaultConfig())

	insertProduct(t, db, "Flour", "2025-01-01", 10)
	insertProduct(t, db, "Sugar", "2025-01-01", 11)

	report, err := svc.Check(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.ExpiringSoon)
	require.Len(t, report.LowStock, 1)
	assert.Equal(t, "Flour", report.LowStock[0].Name)
	assert.Equal(t, 10, report.LowStock[0].Quantity)
}

func TestCheckIgnoresTimeOfDay(t *testing.T) {
	svc, db, clk := setupAlerts(t, alertconfig.DefaultConfig())

	insertProduct(t, db, "Cream", "2024-01-02", 100)

	// late in the day, still a full calendar day left
	clk.Advance(8 * time.Hour)

	report, err := svc.Check(context.Background())
	require.NoError(t, err)

	require.Len(t, report.ExpiringSoon, 1)
	assert.Equal(t, 1, report.ExpiringSoon[0].DaysLeft)
}

func TestCheckCustomThresholds(t *testing.T) {
	svc, db, _ := setupAlerts(t, alertconfig.Config{ExpiryDays: 2, LowStockUnits: 3})

	insertProduct(t, db, "Milk", "2024-01-03", 5)   // 2 days left, stock above threshold
	insertProduct(t, db, "Eggs", "2024-01-05", 3)   // 4 days left, low stock
	insertProduct(t, db, "Bread", "2024-01-10", 50) // neither

	report, err := svc.Check(context.Background())
	require.NoError(t, err)

	require.Len(t, report.ExpiringSoon, 1)
	assert.Equal(t, "Milk", report.ExpiringSoon[0].Name)

	require.Len(t, report.LowStock, 1)
	assert.Equal(t, "Eggs", report.LowStock[0].Name)
}

func TestCheckEmptyInventory(t *testing.T) {
	svc, _, _ := setupAlerts(t, alertconfig.DefaultConfig())

	report, err := svc.Check(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, report.ExpiringSoon)
	assert.NotNil(t, report.LowStock)
	assert.Empty(t, report.ExpiringSoon)
	assert.Empty(t, report.LowStock)
}

func TestCheckMalformedExpiryDate(t *testing.T) {
	svc, db, _ := setupAlerts(t, alertconfig.DefaultConfig())

	insertProduct(t, db, "Mystery", "not-a-date", 5)

	_, err := svc.Check(context.Background())
	var iErr *domain.InternalError
	require.ErrorAs(t, err, &iErr)
	assert.Contains(t, err.Error(), "Error checking expiry")
}
