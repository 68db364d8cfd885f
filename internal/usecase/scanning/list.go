package scanning

import (
	"context"

	domain "github.com/storedeskapps/barcode-register/internal/domain/scanning"
	"github.com/storedeskapps/barcode-register/internal/models"
)

// ======================================================
// LIST CUSTOMERS (with scan counts, newest first)
// ======================================================

type ListCustomers struct {
	repo domain.Repository
}

func NewListCustomers(repo domain.Repository) *ListCustomers {
	return &ListCustomers{repo: repo}
}

func (uc *ListCustomers) Execute(
	ctx context.Context,
) ([]domain.CustomerWithCount, error) {
	return uc.repo.ListCustomers(ctx)
}

// ======================================================
// LIST SCANS (newest first; unknown customer → empty)
// ======================================================

type ListScans struct {
	repo domain.Repository
}

func NewListScans(repo domain.Repository) *ListScans {
	return &ListScans{repo: repo}
}

func (uc *ListScans) Execute(
	ctx context.Context,
	customerID uint,
) ([]models.Scan, error) {
	return uc.repo.ListScans(ctx, customerID)
}

// ======================================================
// LIST RECORDS (flat variant)
// ======================================================

type ListRecords struct {
	repo domain.Repository
}

func NewListRecords(repo domain.Repository) *ListRecords {
	return &ListRecords{repo: repo}
}

func (uc *ListRecords) Execute(
	ctx context.Context,
) ([]models.Record, error) {
	return uc.repo.ListRecords(ctx)
}
