package models

import "time"

// Customer is identified by the (store_code, name, phone) tuple;
// the composite unique index backs the atomic find-or-create.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StoreCode string `gorm:"size:50;uniqueIndex:ux_customers_identity" json:"store_code"`
	Name      string `gorm:"size:100;not null;uniqueIndex:ux_customers_identity" json:"name"`
	Phone     string `gorm:"size:20;uniqueIndex:ux_customers_identity" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
}
