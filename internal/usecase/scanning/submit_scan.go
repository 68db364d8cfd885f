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

type SubmitScanInput struct {
	Store   string
	Name    string
	Phone   string
	Barcode string

	// Optional data:image/...;base64 payload from the camera capture.
	ImageDataURL string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitScan struct {
	repo   domain.Repository
	images imagestore.Store
	audit  *audit.Dispatcher
}

func NewSubmitScan(
	repo domain.Repository,
	images imagestore.Store,
	audit *audit.Dispatcher,
) *SubmitScan {
	return &SubmitScan{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *SubmitScan) Execute(
	ctx context.Context,
	in SubmitScanInput,
) (*models.Scan, error) {

	if err := domain.ValidateIdentity(in.Store, in.Name, in.Phone); err != nil {
		return nil, err
	}
	if err := domain.ValidateBarcode(in.Barcode); err != nil {
		return nil, err
	}

	// Image first: a failed write aborts the submission before any row
	// exists, so a scan is never half-recorded.
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

	customer, created, err := uc.repo.FindOrCreateCustomer(
		ctx,
		in.Store,
		in.Name,
		in.Phone,
	)
	if err != nil {
		uc.discardImage(ctx, imagePath)
		return nil, err
	}

	scan := &models.Scan{
		CustomerID: customer.ID,
		Barcode:    in.Barcode,
		ImagePath:  imagePath,
		ScannedAt:  time.Now(),
	}

	if err := uc.repo.CreateScan(ctx, scan); err != nil {
		uc.discardImage(ctx, imagePath)
		return nil, err
	}

	if created {
		uc.audit.Dispatch(audit.Event{
			Action:   audit.ActionCustomerCreated,
			Entity:   "customer",
			EntityID: &customer.ID,
		})
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionScanCreated,
		Entity:   "scan",
		EntityID: &scan.ID,
		Metadata: map[string]any{"customer_id": customer.ID},
	})

	return scan, nil
}

func (uc *SubmitScan) discardImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	_ = uc.images.Remove(ctx, path)
}
