package repositories

import (
	"CryptoFolio/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

type AssetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new instance of AssetRepository
func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create adds a new Asset record to the database
func (r *AssetRepository) Create(asset *models.Asset) error {
	if asset == nil {
		return errors.New("asset cannot be nil")
	}
	return r.db.Create(asset).Error
}

// FindByID retrieves an Asset record by its ID
func (r *AssetRepository) FindByID(id uint) (*models.Asset, error) {
	if id == 0 {
		return nil, errors.New("invalid id")
	}
	var asset models.Asset
	err := r.db.First(&asset, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &asset, err
}

// FindBySymbol retrieves an Asset record by its ticker symbol
func (r *AssetRepository) FindBySymbol(symbol string) (*models.Asset, error) {
	if symbol == "" {
		return nil, errors.New("invalid symbol")
	}
	var asset models.Asset
	err := r.db.Where("symbol = ?", symbol).First(&asset).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &asset, err
}

// FindAll retrieves all Asset records ordered by symbol
func (r *AssetRepository) FindAll() ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Order("symbol ASC").Find(&assets).Error
	return assets, err
}

// FindAllWithFeedID retrieves the assets that have a quote feed identifier set
func (r *AssetRepository) FindAllWithFeedID() ([]models.Asset, error) {
	var assets []models.Asset
	err := r.db.Where("coingecko_id <> ''").Order("symbol ASC").Find(&assets).Error
	return assets, err
}

// UpdateMarketCap stores a fresh market cap for an asset and stamps the update time
func (r *AssetRepository) UpdateMarketCap(assetID uint, marketCap float64) error {
	if assetID == 0 {
		return errors.New("invalid id")
	}
	return r.db.Model(&models.Asset{}).
		Where("id = ?", assetID).
		Updates(map[string]interface{}{
			"market_cap":   marketCap,
			"last_updated": time.Now(),
		}).Error
}

// UpdateCoingeckoID rewrites the quote feed identifier for an asset
func (r *AssetRepository) UpdateCoingeckoID(assetID uint, coingeckoID string) error {
	if assetID == 0 {
		return errors.New("invalid id")
	}
	return r.db.Model(&models.Asset{}).
		Where("id = ?", assetID).
		Update("coingecko_id", coingeckoID).Error
}

// SeedDefaults inserts any catalog assets that are not present yet and
// returns how many were created
func (r *AssetRepository) SeedDefaults(catalog []models.Asset) (int, error) {
	created := 0
	for i := range catalog {
		asset := catalog[i]
		result := r.db.Where("symbol = ?", asset.Symbol).FirstOrCreate(&asset)
		if result.Error != nil {
			return created, result.Error
		}
		if result.RowsAffected > 0 {
			created++
		}
	}
	return created, nil
}
