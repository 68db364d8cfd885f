package scanning

import (
	"context"
	"time"

	"github.com/storedeskapps/barcode-register/internal/audit"
	domain "github.com/storedeskapps/barcode-register/internal/domain/scanning"
	"github.com/storedeskapps/barcode-register/internal/imagestore"
	"github.com/storedeskapps/barcode-register/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SubmitRecordInput struct {
	// Zero value means "now".
	Timestamp time.Time

	Store   string
	Name    string
	Phone   string
	Barcode string

	ImageDataURL string
}

// ======================================================
// USE CASE
// ======================================================

// SubmitRecord is the flat variant: no identity resolution, every
// submission inserts a new row.
type SubmitRecord struct {
	repo   domain.Repository
	images imagestore.Store
	audit  *audit.Dispatcher
}

func NewSubmitRecord(
	repo domain.Repository,
	images imagestore.Store,
	audit *audit.Dispatcher,
) *SubmitRecord {
	return &SubmitRecord{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *SubmitRecord) Execute(
	ctx context.Context,
	in SubmitRecordInput,
) (*models.Record, error) {

	// Store code is optional in the flat schema.
	if err := domain.ValidateIdentity("-", in.Name, in.Phone); err != nil {
		return nil, err
	}
	if err := domain.ValidateBarcode(in.Barcode); err != nil {
		return nil, err
	}

	var imagePath string
	if in.ImageDataURL != "" {
		data, ext, err := imagestore.ParseDataURL(in.ImageDataURL)
		if err != nil {
			return nil, err
		}

		imagePath, err = uc.images.Save(ctx, data, ext)
		if err != nil {
			return nil, err
		}
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	record := &models.Record{
		Timestamp: ts,
		StoreCode: in.Store,
		Name:      in.Name,
		Phone:     in.Phone,
		Barcode:   in.Barcode,
		ImagePath: imagePath,
	}

	if err := uc.repo.CreateRecord(ctx, record); err != nil {
		if imagePath != "" {
			_ = uc.images.Remove(ctx, imagePath)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionRecordCreated,
		Entity:   "record",
		EntityID: &record.ID,
	})

	return record, nil
}
