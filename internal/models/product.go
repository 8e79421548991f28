package models

import "time"

// Product represents a single entry in the catalog.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	Category    string    `json:"category" gorm:"index" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductRequest is the body accepted by the create and update routes.
// Price is a pointer so a missing price, a zero price, and a price of the
// wrong JSON type can be told apart during validation.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
}

// CategoryStat is one group in the category statistics aggregation.
// The group key serializes as "_id" to match the established wire format.
type CategoryStat struct {
	Category string  `json:"_id"`
	Count    int64   `json:"count"`
	AvgPrice float64 `json:"avgPrice"`
}
