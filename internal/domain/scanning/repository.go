package scanning

import (
	"context"

	"github.com/storedeskapps/barcode-register/internal/models"
)

type CustomerWithCount struct {
	models.Customer
	ScanCount int64 `json:"scan_count"`
}

type Repository interface {
	// -------- Customer --------
	// FindOrCreateCustomer resolves the (store_code, name, phone) tuple to a
	// single customer. The match is exact and case-sensitive. The insert is
	// atomic against the identity unique index, so concurrent identical
	// submissions converge on one row. `created` reports whether a new
	// customer was inserted by this call.
	FindOrCreateCustomer(
		ctx context.Context,
		storeCode string,
		name string,
		phone string,
	) (customer *models.Customer, created bool, err error)

	GetCustomer(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	ListCustomers(
		ctx context.Context,
	) ([]CustomerWithCount, error)

	// DeleteCustomerCascade removes the customer and all its scans in one
	// transaction and returns the image paths the caller must remove.
	DeleteCustomerCascade(
		ctx context.Context,
		id uint,
	) (imagePaths []string, err error)

	// -------- Scan --------
	CreateScan(
		ctx context.Context,
		scan *models.Scan,
	) error

	// GetScan returns (nil, nil) when the scan does not exist.
	GetScan(
		ctx context.Context,
		id uint,
	) (*models.Scan, error)

	ListScans(
		ctx context.Context,
		customerID uint,
	) ([]models.Scan, error)

	DeleteScan(
		ctx context.Context,
		id uint,
	) error

	// -------- Record (flat variant) --------
	CreateRecord(
		ctx context.Context,
		record *models.Record,
	) error

	GetRecord(
		ctx context.Context,
		id uint,
	) (*models.Record, error)

	ListRecords(
		ctx context.Context,
	) ([]models.Record, error)

	DeleteRecord(
		ctx context.Context,
		id uint,
	) error
}
