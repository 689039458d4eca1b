package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"CryptoFolio/internal/models"
	"CryptoFolio/internal/operations/quote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDefaultsSeedsOnce(t *testing.T) {
	env := setupHandlers(t)
	handler := NewAssetHandler(env.assetRepo, nil)

	created, err := handler.EnsureDefaults()
	require.NoError(t, err)
	assert.Equal(t, len(models.DefaultCatalog), created)

	created, err = handler.EnsureDefaults()
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestAddCustomAsset(t *testing.T) {
	env := setupHandlers(t)
	handler := NewAssetHandler(env.assetRepo, nil)

	asset, err := handler.AddCustomAsset(" pepe ", "Pepe", "pepe")
	require.NoError(t, err)
	assert.Equal(t, "PEPE", asset.Symbol)

	_, err = handler.AddCustomAsset("PEPE", "Pepe Again", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = handler.AddCustomAsset("", "Nameless", "")
	assert.Error(t, err)
}

func TestRepairFeedIDs(t *testing.T) {
	env := setupHandlers(t)
	handler := NewAssetHandler(env.assetRepo, nil)

	require.NoError(t, env.assetRepo.Create(&models.Asset{
		Symbol: "S", Name: "Sonic", CoingeckoID: "sonic-3",
	}))
	require.NoError(t, env.assetRepo.Create(&models.Asset{
		Symbol: "POL", Name: "Polygon", CoingeckoID: "polygon",
	}))

	fixed, err := handler.RepairFeedIDs()
	require.NoError(t, err)
	// S is rewritten; POL is already correct, BERA and SPACE are absent.
	assert.Equal(t, 1, fixed)

	asset, err := env.assetRepo.FindBySymbol("S")
	require.NoError(t, err)
	assert.Equal(t, "fantom", asset.CoingeckoID)
}

func TestAssetSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"coins": [{"id": "bitcoin", "symbol": "btc", "name": "Bitcoin", "market_cap_rank": 1}]}`)
	}))
	defer server.Close()

	env := setupHandlers(t)
	client := quote.NewClient(server.URL, 0, 5)
	handler := NewAssetHandler(env.assetRepo, client)

	results, err := handler.Search(context.Background(), "bitcoin")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "bitcoin", results[0].ID)
}
