package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	uc "github.com/storedeskapps/barcode-register/internal/usecase/scanning"
)

type RecordHandler struct {
	submit *uc.SubmitRecord
	delete *uc.DeleteRecord
	list   *uc.ListRecords
}

func NewRecordHandler(
	submit *uc.SubmitRecord,
	delete *uc.DeleteRecord,
	list *uc.ListRecords,
) *RecordHandler {
	return &RecordHandler{
		submit: submit,
		delete: delete,
		list:   list,
	}
}

// ======================================================
// ADD RECORD (flat variant)
// ======================================================

type addRecordRequest struct {
	Timestamp string `json:"timestamp"`
	Store     string `json:"store"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Barcode   string `json:"barcode"`
	Image     string `json:"image"`
}

// Add accepts both the JSON body of the scanner page and the urlencoded
// form the legacy client posts.
func (h *RecordHandler) Add(c *gin.Context) {
	var req addRecordRequest

	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
			return
		}
	} else {
		req = addRecordRequest{
			Timestamp: c.PostForm("timestamp"),
			Store:     c.PostForm("store"),
			Name:      c.PostForm("name"),
			Phone:     c.PostForm("phone"),
			Barcode:   c.PostForm("barcode"),
			Image:     c.PostForm("image"),
		}
	}

	record, err := h.submit.Execute(c.Request.Context(), uc.SubmitRecordInput{
		Timestamp:    parseTimestamp(req.Timestamp),
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

	c.JSON(http.StatusOK, gin.H{"record_id": record.ID})
}

// parseTimestamp tries RFC 3339 and the legacy "2006-01-02 15:04:05"
// format; anything else falls back to the submission time.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return ts
	}
	return time.Time{}
}

// ======================================================
// DELETE RECORD (page link → redirect home)
// ======================================================

func (h *RecordHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// ======================================================
// LIST RECORDS (JSON)
// ======================================================

func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
