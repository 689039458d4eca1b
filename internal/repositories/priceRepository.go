package repositories

import (
	"CryptoFolio/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PriceRepository struct {
	db *gorm.DB
}

// NewPriceRepository creates a new instance of PriceRepository
func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// Create adds a new Price record to the database
func (r *PriceRepository) Create(price *models.Price) error {
	if price == nil {
		return errors.New("price cannot be nil")
	}
	if price.AssetID == 0 {
		return errors.New("invalid asset id")
	}
	if price.PriceUSD < 0 {
		return errors.New("price cannot be negative")
	}
	if price.Timestamp.IsZero() {
		price.Timestamp = time.Now()
	}
	return r.db.Create(price).Error
}

// GetLatest retrieves the most recent price record for an asset
func (r *PriceRepository) GetLatest(assetID uint) (*models.Price, error) {
	if assetID == 0 {
		return nil, errors.New("invalid asset id")
	}
	var price models.Price
	err := r.db.Where("asset_id = ?", assetID).
		Order("timestamp DESC").
		First(&price).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &price, err
}

// GetLatestPrices retrieves the most recent price per asset, keyed by asset ID.
// Assets with no recorded price are absent from the map.
func (r *PriceRepository) GetLatestPrices(assetIDs []uint) (map[uint]float64, error) {
	result := make(map[uint]float64)
	for _, id := range assetIDs {
		price, err := r.GetLatest(id)
		if err != nil {
			return nil, err
		}
		if price != nil {
			result[id] = price.PriceUSD
		}
	}
	return result, nil
}

// GetHistory retrieves price records for an asset within a time range
func (r *PriceRepository) GetHistory(assetID uint, start, end time.Time) ([]models.Price, error) {
	if assetID == 0 {
		return nil, errors.New("invalid asset id")
	}
	var prices []models.Price
	err := r.db.Where("asset_id = ? AND timestamp BETWEEN ? AND ?",
		assetID, start, end).
		Order("timestamp ASC").
		Find(&prices).Error
	return prices, err
}
