package scanning

import (
	"strings"

	"github.com/storedeskapps/barcode-register/internal/httperr"
)

// ===============================
// Submission validation
// ===============================

// ValidateIdentity rejects empty identity fields instead of persisting them.
func ValidateIdentity(storeCode, name, phone string) error {
	if strings.TrimSpace(storeCode) == "" ||
		strings.TrimSpace(name) == "" ||
		strings.TrimSpace(phone) == "" {
		return httperr.ErrBusiness("missing_required_fields")
	}
	return nil
}

func ValidateBarcode(barcode string) error {
	if strings.TrimSpace(barcode) == "" {
		return httperr.ErrBusiness("missing_required_fields")
	}
	return nil
}
