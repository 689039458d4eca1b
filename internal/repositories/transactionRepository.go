package repositories

import (
	"CryptoFolio/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new instance of TransactionRepository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create adds a new Transaction record to the database
func (r *TransactionRepository) Create(tx *models.Transaction) error {
	if tx == nil {
		return errors.New("transaction cannot be nil")
	}
	if tx.UserID == 0 || tx.AssetID == 0 {
		return errors.New("invalid user or asset id")
	}
	if tx.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	switch tx.Type {
	case models.TransactionTypeBuy, models.TransactionTypeSell, models.TransactionTypeStaking:
	default:
		return errors.New("invalid transaction type")
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}
	return r.db.Create(tx).Error
}

// FindByUser retrieves a user's transactions in chronological order with
// asset details joined in. An empty typeFilter returns every type.
func (r *TransactionRepository) FindByUser(userID uint, typeFilter string) ([]models.Transaction, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	query := r.db.Model(&models.Transaction{}).
		Select("transactions.*, assets.symbol AS symbol, assets.name AS name").
		Joins("JOIN assets ON assets.id = transactions.asset_id").
		Where("transactions.user_id = ?", userID)
	if typeFilter != "" {
		query = query.Where("transactions.type = ?", typeFilter)
	}

	var txs []models.Transaction
	err := query.Order("transactions.timestamp ASC").Find(&txs).Error
	return txs, err
}

// Delete removes a transaction of a user and reports whether a row was deleted
func (r *TransactionRepository) Delete(userID, txID uint) (bool, error) {
	if userID == 0 || txID == 0 {
		return false, errors.New("invalid id")
	}
	result := r.db.Where("user_id = ? AND id = ?", userID, txID).
		Delete(&models.Transaction{})
	return result.RowsAffected > 0, result.Error
}
