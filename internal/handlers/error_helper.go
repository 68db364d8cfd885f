package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/storedeskapps/barcode-register/internal/httperr"
	"github.com/storedeskapps/barcode-register/internal/imagestore"
)

// writeError maps domain failures onto the HTTP surface.
func writeError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "customer_not_found":
			httperr.NotFound(c, be.Code, "customer does not exist")
		default:
			httperr.BadRequest(c, be.Code, "invalid submission")
		}
		return
	}

	if imagestore.IsIOError(err) {
		httperr.Internal(c, "storage_io_error", "image storage failed")
		return
	}

	httperr.Internal(c, "internal_error", "unexpected failure")
}
