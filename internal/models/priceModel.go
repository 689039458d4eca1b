package models

import (
	"time"
)

const (
	PriceSourceAPI    = "api"
	PriceSourceManual = "manual"
)

type Price struct {
	ID        uint      `gorm:"primaryKey"`
	AssetID   uint      `gorm:"index;not null"`
	PriceUSD  float64   `gorm:"type:decimal(20,8);not null"`
	Source    string    `gorm:"not null;default:api"`
	Timestamp time.Time `gorm:"index"`
}

// TableName sets the table name for Price model
func (Price) TableName() string {
	return "prices"
}
