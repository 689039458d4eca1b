package models

import (
	"time"
)

type Holding struct {
	ID            uint    `gorm:"primaryKey"`
	UserID        uint    `gorm:"index;not null"`
	AssetID       uint    `gorm:"index;not null"`
	Amount        float64 `gorm:"type:decimal(20,8);not null"`
	PurchasePrice float64 `gorm:"type:decimal(20,8)"`
	PurchaseDate  time.Time
	Notes         string

	// Populated from the joined asset row on reads.
	Symbol    string  `gorm:"->;-:migration"`
	Name      string  `gorm:"->;-:migration"`
	MarketCap float64 `gorm:"->;-:migration"`
}

// TableName sets the table name for Holding model
func (Holding) TableName() string {
	return "holdings"
}
