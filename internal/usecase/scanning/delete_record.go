package scanning

import (
	"context"
	"log"

	"github.com/storedeskapps/barcode-register/internal/audit"
	domain "github.com/storedeskapps/barcode-register/internal/domain/scanning"
	"github.com/storedeskapps/barcode-register/internal/imagestore"
)

type DeleteRecord struct {
	repo   domain.Repository
	images imagestore.Store
	audit  *audit.Dispatcher
}

func NewDeleteRecord(
	repo domain.Repository,
	images imagestore.Store,
	audit *audit.Dispatcher,
) *DeleteRecord {
	return &DeleteRecord{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *DeleteRecord) Execute(ctx context.Context, recordID uint) error {

	record, err := uc.repo.GetRecord(ctx, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}

	if err := uc.repo.DeleteRecord(ctx, recordID); err != nil {
		return err
	}

	if record.ImagePath != "" {
		if err := uc.images.Remove(ctx, record.ImagePath); err != nil {
			log.Println("image remove failed:", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionRecordDeleted,
		Entity:   "record",
		EntityID: &recordID,
	})

	return nil
}
