package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storedeskapps/barcode-register/internal/imagestore"
	"github.com/storedeskapps/barcode-register/internal/models"
	uc "github.com/storedeskapps/barcode-register/internal/usecase/scanning"
)

type WebHandler struct {
	listCustomers *uc.ListCustomers
	listScans     *uc.ListScans
	images        imagestore.Store
}

func NewWebHandler(
	listCustomers *uc.ListCustomers,
	listScans *uc.ListScans,
	images imagestore.Store,
) *WebHandler {
	return &WebHandler{
		listCustomers: listCustomers,
		listScans:     listScans,
		images:        images,
	}
}

// ======================================================
// HOME — scanner page + customer list
// ======================================================

func (h *WebHandler) Home(c *gin.Context) {
	customers, err := h.listCustomers.Execute(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load customers.")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Customers": customers,
	})
}

// ======================================================
// SCANS FRAGMENT — one customer's scans
// ======================================================

type scanView struct {
	models.Scan
	ImageURL string
}

func (h *WebHandler) ScansFragment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("customerId"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid customer id.")
		return
	}

	scans, err := h.listScans.Execute(c.Request.Context(), uint(id))
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load scans.")
		return
	}

	views := make([]scanView, 0, len(scans))
	for _, s := range scans {
		v := scanView{Scan: s}
		if s.ImagePath != "" {
			v.ImageURL = h.images.URL(s.ImagePath)
		}
		views = append(views, v)
	}

	c.HTML(http.StatusOK, "scans.html", gin.H{
		"CustomerID": id,
		"Scans":      views,
	})
}
