package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/storedeskapps/barcode-register/internal/domain/scanning"
	"github.com/storedeskapps/barcode-register/internal/models"
)

type ScanningGormRepository struct {
	db *gorm.DB
}

func NewScanningGormRepository(db *gorm.DB) *ScanningGormRepository {
	return &ScanningGormRepository{db: db}
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *ScanningGormRepository) FindOrCreateCustomer(
	ctx context.Context,
	storeCode string,
	name string,
	phone string,
) (*models.Customer, bool, error) {

	customer := models.Customer{
		StoreCode: storeCode,
		Name:      name,
		Phone:     phone,
	}

	// Insert races with identical submissions are settled by the identity
	// unique index: exactly one insert wins, everyone reads the same row back.
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "store_code"},
				{Name: "name"},
				{Name: "phone"},
			},
			DoNothing: true,
		}).
		Create(&customer)

	if res.Error != nil {
		return nil, false, res.Error
	}

	if res.RowsAffected > 0 {
		return &customer, true, nil
	}

	var existing models.Customer
	if err := r.db.WithContext(ctx).
		Where(
			"store_code = ? AND name = ? AND phone = ?",
			storeCode, name, phone,
		).
		First(&existing).Error; err != nil {
		return nil, false, err
	}

	return &existing, false, nil
}

func (r *ScanningGormRepository) GetCustomer(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *ScanningGormRepository) ListCustomers(
	ctx context.Context,
) ([]domain.CustomerWithCount, error) {

	var customers []domain.CustomerWithCount
	if err := r.db.WithContext(ctx).
		Model(&models.Customer{}).
		Select("customers.*, COUNT(scans.id) AS scan_count").
		Joins("LEFT JOIN scans ON scans.customer_id = customers.id").
		Group("customers.id").
		Order("customers.created_at DESC, customers.id DESC").
		Scan(&customers).Error; err != nil {
		return nil, err
	}

	return customers, nil
}

func (r *ScanningGormRepository) DeleteCustomerCascade(
	ctx context.Context,
	id uint,
) ([]string, error) {

	var paths []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, id).Error; err != nil {
			return err
		}

		var scans []models.Scan
		if err := tx.
			Select("image_path").
			Where("customer_id = ?", id).
			Find(&scans).Error; err != nil {
			return err
		}

		for _, s := range scans {
			if s.ImagePath != "" {
				paths = append(paths, s.ImagePath)
			}
		}

		if err := tx.
			Where("customer_id = ?", id).
			Delete(&models.Scan{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Customer{}, id).Error
	})

	if err != nil {
		return nil, err
	}

	return paths, nil
}

// --------------------------------------------------
// Scan
// --------------------------------------------------

func (r *ScanningGormRepository) CreateScan(
	ctx context.Context,
	scan *models.Scan,
) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *ScanningGormRepository) GetScan(
	ctx context.Context,
	id uint,
) (*models.Scan, error) {

	var scan models.Scan
	if err := r.db.WithContext(ctx).First(&scan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &scan, nil
}

func (r *ScanningGormRepository) ListScans(
	ctx context.Context,
	customerID uint,
) ([]models.Scan, error) {

	var scans []models.Scan
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("scanned_at DESC, id DESC").
		Find(&scans).Error; err != nil {
		return nil, err
	}

	return scans, nil
}

func (r *ScanningGormRepository) DeleteScan(
	ctx context.Context,
	id uint,
) error {
	// Deleting a missing id affects zero rows, which is the intended no-op.
	return r.db.WithContext(ctx).Delete(&models.Scan{}, id).Error
}

// --------------------------------------------------
// Record (flat variant)
// --------------------------------------------------

func (r *ScanningGormRepository) CreateRecord(
	ctx context.Context,
	record *models.Record,
) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *ScanningGormRepository) GetRecord(
	ctx context.Context,
	id uint,
) (*models.Record, error) {

	var record models.Record
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *ScanningGormRepository) ListRecords(
	ctx context.Context,
) ([]models.Record, error) {

	var records []models.Record
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *ScanningGormRepository) DeleteRecord(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Record{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*ScanningGormRepository)(nil)
