package models

import (
	"time"
)

const (
	TransactionTypeBuy     = "BUY"
	TransactionTypeSell    = "SELL"
	TransactionTypeStaking = "STAKING"
)

type Transaction struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	AssetID   uint      `gorm:"index;not null"`
	Type      string    `gorm:"not null"`
	Amount    float64   `gorm:"type:decimal(20,8);not null"`
	PriceUSD  float64   `gorm:"type:decimal(20,8)"`
	Timestamp time.Time `gorm:"index"`
	Notes     string

	// Populated from the joined asset row on reads.
	Symbol string `gorm:"->;-:migration"`
	Name   string `gorm:"->;-:migration"`
}

// TableName sets the table name for Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// TotalValue returns the USD value of the transaction at its recorded price
func (t *Transaction) TotalValue() float64 {
	return t.Amount * t.PriceUSD
}
