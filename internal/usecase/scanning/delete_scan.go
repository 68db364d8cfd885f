package scanning

import (
	"context"
	"log"

	"github.com/storedeskapps/barcode-register/internal/audit"
	domain "github.com/storedeskapps/barcode-register/internal/domain/scanning"
	"github.com/storedeskapps/barcode-register/internal/imagestore"
)

// DeleteScan removes a scan and its image as one logical unit. The row is
// deleted first; a file-removal failure after that leaves a dangling file,
// never a dangling row reference. Deleting a missing id is a no-op.
type DeleteScan struct {
	repo   domain.Repository
	images imagestore.Store
	audit  *audit.Dispatcher
}

func NewDeleteScan(
	repo domain.Repository,
	images imagestore.Store,
	audit *audit.Dispatcher,
) *DeleteScan {
	return &DeleteScan{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *DeleteScan) Execute(ctx context.Context, scanID uint) error {

	scan, err := uc.repo.GetScan(ctx, scanID)
	if err != nil {
		return err
	}
	if scan == nil {
		return nil
	}

	if err := uc.repo.DeleteScan(ctx, scanID); err != nil {
		return err
	}

	if scan.ImagePath != "" {
		if err := uc.images.Remove(ctx, scan.ImagePath); err != nil {
			// Orphaned file, known limitation; the row is already gone.
			log.Println("image remove failed:", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionScanDeleted,
		Entity:   "scan",
		EntityID: &scanID,
	})

	return nil
}
