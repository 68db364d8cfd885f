package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dbpkg "github.com/storedeskapps/barcode-register/internal/db"
	"github.com/storedeskapps/barcode-register/internal/models"
)

func newTestRepo(t *testing.T) *ScanningGormRepository {
	t.Helper()

	db, err := gorm.Open(
		sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"),
		&gorm.Config{},
	)
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))

	return NewScanningGormRepository(db)
}

func TestFindOrCreateCustomer(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	t.Run("same tuple resolves to the same customer", func(t *testing.T) {
		first, created, err := repo.FindOrCreateCustomer(ctx, "S1", "Alice", "555")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotZero(t, first.ID)

		second, created, err := repo.FindOrCreateCustomer(ctx, "S1", "Alice", "555")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("differing tuple creates a distinct customer", func(t *testing.T) {
		a, _, err := repo.FindOrCreateCustomer(ctx, "S1", "Alice", "555")
		require.NoError(t, err)

		b, created, err := repo.FindOrCreateCustomer(ctx, "S2", "Alice", "555")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		a, _, err := repo.FindOrCreateCustomer(ctx, "S1", "Alice", "555")
		require.NoError(t, err)

		b, created, err := repo.FindOrCreateCustomer(ctx, "S1", "alice", "555")
		require.NoError(t, err)
		assert.True(t, created)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestListCustomersCountsAndOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	alice, _, err := repo.FindOrCreateCustomer(ctx, "S1", "Alice", "555")
	require.NoError(t, err)
	bob, _, err := repo.FindOrCreateCustomer(ctx, "S1", "Bob", "666")
	require.NoError(t, err)

	for _, barcode := range []string{"A1", "A2", "A3"} {
		require.NoError(t, repo.CreateScan(ctx, &models.Scan{
			CustomerID: alice.ID,
			Barcode:    barcode,
		}))
	}

	customers, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)

	// newest customer first
	assert.Equal(t, bob.ID, customers[0].ID)
	assert.Equal(t, int64(0), customers[0].ScanCount)

	assert.Equal(t, alice.ID, customers[1].ID)
	assert.Equal(t, int64(3), customers[1].ScanCount)
}

func TestListScansOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	alice, _, err := repo.FindOrCreateCustomer(ctx, "S1", "Alice", "555")
	require.NoError(t, err)

	for _, barcode := range []string{"ABC123", "XYZ999"} {
		require.NoError(t, repo.CreateScan(ctx, &models.Scan{
			CustomerID: alice.ID,
			Barcode:    barcode,
		}))
	}

	scans, err := repo.ListScans(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Equal(t, "XYZ999", scans[0].Barcode)
	assert.Equal(t, "ABC123", scans[1].Barcode)

	t.Run("unknown customer lists empty", func(t *testing.T) {
		scans, err := repo.ListScans(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, scans)
	})
}

func TestDeleteScan(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	alice, _, err := repo.FindOrCreateCustomer(ctx, "S1", "Alice", "555")
	require.NoError(t, err)

	scan := &models.Scan{CustomerID: alice.ID, Barcode: "ABC123"}
	require.NoError(t, repo.CreateScan(ctx, scan))

	require.NoError(t, repo.DeleteScan(ctx, scan.ID))

	got, err := repo.GetScan(ctx, scan.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// second delete of the same id is a no-op
	require.NoError(t, repo.DeleteScan(ctx, scan.ID))
}

func TestDeleteCustomerCascade(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	alice, _, err := repo.FindOrCreateCustomer(ctx, "S1", "Alice", "555")
	require.NoError(t, err)

	require.NoError(t, repo.CreateScan(ctx, &models.Scan{
		CustomerID: alice.ID,
		Barcode:    "ABC123",
		ImagePath:  "images/a.jpg",
	}))
	require.NoError(t, repo.CreateScan(ctx, &models.Scan{
		CustomerID: alice.ID,
		Barcode:    "XYZ999",
	}))

	paths, err := repo.DeleteCustomerCascade(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"images/a.jpg"}, paths)

	got, err := repo.GetCustomer(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	scans, err := repo.ListScans(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, scans)

	t.Run("missing customer", func(t *testing.T) {
		_, err := repo.DeleteCustomerCascade(ctx, 9999)
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	})
}

func TestRecords(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := &models.Record{Name: "Alice", Phone: "555", Barcode: "A1"}
	require.NoError(t, repo.CreateRecord(ctx, first))

	second := &models.Record{Name: "Alice", Phone: "555", Barcode: "A2"}
	require.NoError(t, repo.CreateRecord(ctx, second))

	// no identity reuse in the flat variant
	assert.NotEqual(t, first.ID, second.ID)

	records, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NoError(t, repo.DeleteRecord(ctx, first.ID))
	require.NoError(t, repo.DeleteRecord(ctx, first.ID))

	records, err = repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, second.ID, records[0].ID)
}
