package models

import "time"

// Record is the flat single-table variant: identity fields inlined,
// no reuse between submissions.
type Record struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Timestamp time.Time `json:"timestamp"`

	StoreCode string `gorm:"size:50" json:"store_code"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Phone     string `gorm:"size:20" json:"phone"`

	Barcode   string `gorm:"size:255;not null" json:"barcode"`
	ImagePath string `gorm:"size:255" json:"image_path"`
}
