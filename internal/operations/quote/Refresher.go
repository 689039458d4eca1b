package quote

import (
	"CryptoFolio/internal/models"
	"CryptoFolio/internal/repositories"
	"context"
	"log"
)

// BatchSize is the maximum number of feed ids per simple/price request.
const BatchSize = 50

// Refresher pulls fresh quotes for every catalog asset with a feed id and
// records them as price rows.
type Refresher struct {
	client    *Client
	assetRepo *repositories.AssetRepository
	priceRepo *repositories.PriceRepository
}

// NewRefresher creates a new Refresher
func NewRefresher(client *Client, assetRepo *repositories.AssetRepository, priceRepo *repositories.PriceRepository) *Refresher {
	return &Refresher{
		client:    client,
		assetRepo: assetRepo,
		priceRepo: priceRepo,
	}
}

// RefreshAll fetches quotes for all assets that carry a feed id and stores a
// price row per quote received. The cooldown is checked once per pass; the
// pass then issues as many batched requests as the catalog needs. Failed
// batches are logged and skipped so one bad batch does not lose the rest.
// Returns the number of assets updated.
func (r *Refresher) RefreshAll(ctx context.Context) (int, error) {
	if !r.client.CanRequest() {
		return 0, r.client.cooldownError()
	}

	assets, err := r.assetRepo.FindAllWithFeedID()
	if err != nil {
		return 0, err
	}
	if len(assets) == 0 {
		return 0, nil
	}

	byFeedID := make(map[string]models.Asset, len(assets))
	ids := make([]string, 0, len(assets))
	for _, asset := range assets {
		byFeedID[asset.CoingeckoID] = asset
		ids = append(ids, asset.CoingeckoID)
	}

	updated := 0
	for start := 0; start < len(ids); start += BatchSize {
		end := start + BatchSize
		if end > len(ids) {
			end = len(ids)
		}

		quotes, err := r.client.fetchPrices(ctx, ids[start:end])
		if err != nil {
			log.Printf("Price batch %d-%d failed: %v", start, end, err)
			continue
		}

		for feedID, quote := range quotes {
			asset, ok := byFeedID[feedID]
			if !ok {
				continue
			}
			price := &models.Price{
				AssetID:  asset.ID,
				PriceUSD: quote.PriceUSD,
				Source:   models.PriceSourceAPI,
			}
			if err := r.priceRepo.Create(price); err != nil {
				log.Printf("Failed to record price for %s: %v", asset.Symbol, err)
				continue
			}
			if quote.MarketCap > 0 {
				if err := r.assetRepo.UpdateMarketCap(asset.ID, quote.MarketCap); err != nil {
					log.Printf("Failed to update market cap for %s: %v", asset.Symbol, err)
				}
			}
			updated++
		}
	}

	log.Printf("Updated prices for %d assets", updated)
	return updated, nil
}
