package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"CryptoFolio/internal/models"
	"CryptoFolio/internal/operations/quote"
	"CryptoFolio/internal/repositories"
)

// feedIDCorrections fixes catalog entries whose quote feed identifiers were
// wrong or have been remapped upstream.
var feedIDCorrections = map[string]string{
	"BERA":  "bera",
	"S":     "fantom",
	"POL":   "polygon",
	"SPACE": "space",
}

// AssetHandler manages the asset catalog.
type AssetHandler struct {
	assetRepo *repositories.AssetRepository
	client    *quote.Client
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetRepo *repositories.AssetRepository, client *quote.Client) *AssetHandler {
	return &AssetHandler{
		assetRepo: assetRepo,
		client:    client,
	}
}

// EnsureDefaults seeds the default asset catalog, skipping assets already
// present. Returns the number of assets created.
func (h *AssetHandler) EnsureDefaults() (int, error) {
	created, err := h.assetRepo.SeedDefaults(models.DefaultCatalog)
	if err != nil {
		return created, err
	}
	if created > 0 {
		log.Printf("Seeded %d catalog assets", created)
	}
	return created, nil
}

// AddCustomAsset adds a user-defined asset to the catalog. The symbol is
// stored uppercase and must be unique; the feed id may be empty for assets
// without a quote listing.
func (h *AssetHandler) AddCustomAsset(symbol, name, coingeckoID string) (*models.Asset, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, errors.New("symbol cannot be empty")
	}
	if name == "" {
		return nil, errors.New("name cannot be empty")
	}

	existing, err := h.assetRepo.FindBySymbol(symbol)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("asset %s already exists", symbol)
	}

	asset := &models.Asset{
		Symbol:      symbol,
		Name:        name,
		CoingeckoID: strings.TrimSpace(coingeckoID),
	}
	if err := h.assetRepo.Create(asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// RepairFeedIDs applies the known feed id corrections to the catalog and
// returns how many assets were rewritten
func (h *AssetHandler) RepairFeedIDs() (int, error) {
	fixed := 0
	for symbol, feedID := range feedIDCorrections {
		asset, err := h.assetRepo.FindBySymbol(symbol)
		if err != nil {
			return fixed, err
		}
		if asset == nil || asset.CoingeckoID == feedID {
			continue
		}
		if err := h.assetRepo.UpdateCoingeckoID(asset.ID, feedID); err != nil {
			return fixed, err
		}
		log.Printf("Corrected feed id for %s: %s -> %s", symbol, asset.CoingeckoID, feedID)
		fixed++
	}
	return fixed, nil
}

// Search queries the quote service for assets matching the query. Subject to
// the client cooldown.
func (h *AssetHandler) Search(ctx context.Context, query string) ([]quote.SearchResult, error) {
	return h.client.Search(ctx, query)
}
