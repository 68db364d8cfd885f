package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	uc "github.com/storedeskapps/barcode-register/internal/usecase/scanning"
)

type ScanHandler struct {
	submit *uc.SubmitScan
	delete *uc.DeleteScan
}

func NewScanHandler(
	submit *uc.SubmitScan,
	delete *uc.DeleteScan,
) *ScanHandler {
	return &ScanHandler{
		submit: submit,
		delete: delete,
	}
}

// ======================================================
// SUBMIT SCAN
// ======================================================

type submitScanRequest struct {
	Store   string `json:"store"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Barcode string `json:"barcode"`
	Image   string `json:"image"`
}

func (h *ScanHandler) Submit(c *gin.Context) {
	var req submitScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}

	scan, err := h.submit.Execute(c.Request.Context(), uc.SubmitScanInput{
		Store:        req.Store,
		Name:         req.Name,
		Phone:        req.Phone,
		Barcode:      req.Barcode,
		ImageDataURL: req.Image,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scan_id":     scan.ID,
		"customer_id": scan.CustomerID,
	})
}

// ======================================================
// DELETE SCAN (page link → redirect home)
// ======================================================

func (h *ScanHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		// malformed id behaves like a missing scan
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}
