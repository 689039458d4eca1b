package repositories

import (
	"CryptoFolio/internal/models"
	"errors"

	"gorm.io/gorm"
)

type HoldingRepository struct {
	db *gorm.DB
}

// NewHoldingRepository creates a new instance of HoldingRepository
func NewHoldingRepository(db *gorm.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// Create adds a new Holding record to the database
func (r *HoldingRepository) Create(holding *models.Holding) error {
	if holding == nil {
		return errors.New("holding cannot be nil")
	}
	if holding.UserID == 0 || holding.AssetID == 0 {
		return errors.New("invalid user or asset id")
	}
	if holding.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return r.db.Create(holding).Error
}

// FindByUser retrieves all holdings of a user with asset details joined in
func (r *HoldingRepository) FindByUser(userID uint) ([]models.Holding, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	var holdings []models.Holding
	err := r.db.Model(&models.Holding{}).
		Select("holdings.*, assets.symbol AS symbol, assets.name AS name, assets.market_cap AS market_cap").
		Joins("JOIN assets ON assets.id = holdings.asset_id").
		Where("holdings.user_id = ?", userID).
		Order("holdings.id ASC").
		Find(&holdings).Error
	return holdings, err
}

// FindByID retrieves a single holding of a user with asset details joined in
func (r *HoldingRepository) FindByID(userID, holdingID uint) (*models.Holding, error) {
	if userID == 0 || holdingID == 0 {
		return nil, errors.New("invalid id")
	}
	var holding models.Holding
	err := r.db.Model(&models.Holding{}).
		Select("holdings.*, assets.symbol AS symbol, assets.name AS name, assets.market_cap AS market_cap").
		Joins("JOIN assets ON assets.id = holdings.asset_id").
		Where("holdings.user_id = ? AND holdings.id = ?", userID, holdingID).
		First(&holding).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &holding, err
}

// FindByUserAndAsset retrieves the holding a user has in a given asset
func (r *HoldingRepository) FindByUserAndAsset(userID, assetID uint) (*models.Holding, error) {
	if userID == 0 || assetID == 0 {
		return nil, errors.New("invalid id")
	}
	var holding models.Holding
	err := r.db.Where("user_id = ? AND asset_id = ?", userID, assetID).
		First(&holding).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &holding, err
}

// Update rewrites the mutable fields of a holding. Nil pointers leave the
// corresponding column untouched.
func (r *HoldingRepository) Update(userID, holdingID uint, amount float64, purchasePrice *float64, notes *string) error {
	if userID == 0 || holdingID == 0 {
		return errors.New("invalid id")
	}
	if amount < 0 {
		return errors.New("amount cannot be negative")
	}

	updates := map[string]interface{}{"amount": amount}
	if purchasePrice != nil {
		updates["purchase_price"] = *purchasePrice
	}
	if notes != nil {
		updates["notes"] = *notes
	}

	result := r.db.Model(&models.Holding{}).
		Where("user_id = ? AND id = ?", userID, holdingID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("holding not found")
	}
	return nil
}

// Delete removes a holding of a user and reports whether a row was deleted
func (r *HoldingRepository) Delete(userID, holdingID uint) (bool, error) {
	if userID == 0 || holdingID == 0 {
		return false, errors.New("invalid id")
	}
	result := r.db.Where("user_id = ? AND id = ?", userID, holdingID).
		Delete(&models.Holding{})
	return result.RowsAffected > 0, result.Error
}
