package scanning

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/storedeskapps/barcode-register/internal/audit"
	domain "github.com/storedeskapps/barcode-register/internal/domain/scanning"
	"github.com/storedeskapps/barcode-register/internal/httperr"
	"github.com/storedeskapps/barcode-register/internal/imagestore"
)

// DeleteCustomer cascades: the customer and all its scans go in one
// transaction, image files are removed after commit.
type DeleteCustomer struct {
	repo   domain.Repository
	images imagestore.Store
	audit  *audit.Dispatcher
}

func NewDeleteCustomer(
	repo domain.Repository,
	images imagestore.Store,
	audit *audit.Dispatcher,
) *DeleteCustomer {
	return &DeleteCustomer{
		repo:   repo,
		images: images,
		audit:  audit,
	}
}

func (uc *DeleteCustomer) Execute(ctx context.Context, customerID uint) error {

	paths, err := uc.repo.DeleteCustomerCascade(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("customer_not_found")
		}
		return err
	}

	for _, path := range paths {
		if err := uc.images.Remove(ctx, path); err != nil {
			log.Println("image remove failed:", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionCustomerDeleted,
		Entity:   "customer",
		EntityID: &customerID,
	})

	return nil
}
