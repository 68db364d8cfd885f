package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storedeskapps/barcode-register/internal/httperr"
	"github.com/storedeskapps/barcode-register/internal/httpresp"
	uc "github.com/storedeskapps/barcode-register/internal/usecase/scanning"
)

type CustomerHandler struct {
	listCustomers *uc.ListCustomers
	listScans     *uc.ListScans
	deleteCust    *uc.DeleteCustomer
}

func NewCustomerHandler(
	listCustomers *uc.ListCustomers,
	listScans *uc.ListScans,
	deleteCust *uc.DeleteCustomer,
) *CustomerHandler {
	return &CustomerHandler{
		listCustomers: listCustomers,
		listScans:     listScans,
		deleteCust:    deleteCust,
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.listCustomers.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, customers)
}

func (h *CustomerHandler) ListScans(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_customer_id", "customer id must be numeric")
		return
	}

	scans, err := h.listScans.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, scans)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_customer_id", "customer id must be numeric")
		return
	}

	if err := h.deleteCust.Execute(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}
