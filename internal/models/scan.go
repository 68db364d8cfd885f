package models

import "time"

type Scan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint     `gorm:"index;not null" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	Barcode string `gorm:"size:255;not null" json:"barcode"`

	// Relative content path of the captured photo; empty when no photo was taken.
	ImagePath string `gorm:"size:255" json:"image_path"`

	ScannedAt time.Time `json:"scanned_at"`
}
