package handlers

import (
	"testing"

	"CryptoFolio/internal/models"
	"CryptoFolio/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db              *gorm.DB
	assetRepo       *repositories.AssetRepository
	priceRepo       *repositories.PriceRepository
	holdingRepo     *repositories.HoldingRepository
	transactionRepo *repositories.TransactionRepository
	portfolio       *PortfolioHandler
	staking         *StakingHandler
}

func setupHandlers(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Asset{},
		&models.Price{},
		&models.Holding{},
		&models.Transaction{},
	))

	env := &testEnv{
		db:              db,
		assetRepo:       repositories.NewAssetRepository(db),
		priceRepo:       repositories.NewPriceRepository(db),
		holdingRepo:     repositories.NewHoldingRepository(db),
		transactionRepo: repositories.NewTransactionRepository(db),
	}
	env.portfolio = NewPortfolioHandler(env.holdingRepo, env.transactionRepo, env.assetRepo, env.priceRepo, nil)
	env.staking = NewStakingHandler(env.holdingRepo, env.transactionRepo, env.priceRepo)
	return env
}

func (env *testEnv) seedAsset(t *testing.T, symbol, name string, price float64) *models.Asset {
	t.Helper()
	asset := &models.Asset{Symbol: symbol, Name: name, CoingeckoID: "x-" + symbol}
	require.NoError(t, env.assetRepo.Create(asset))
	if price > 0 {
		require.NoError(t, env.priceRepo.Create(&models.Price{
			AssetID: asset.ID, PriceUSD: price, Source: models.PriceSourceManual,
		}))
	}
	return asset
}

func TestAddHoldingCreatesPositionAndBuy(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "BTC", "Bitcoin", 50000)

	holding, err := env.portfolio.AddHolding(1, "BTC", 2, 30000, "first buy")
	require.NoError(t, err)
	assert.Equal(t, 2.0, holding.Amount)
	assert.Equal(t, 30000.0, holding.PurchasePrice)

	txs, err := env.transactionRepo.FindByUser(1, "")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TransactionTypeBuy, txs[0].Type)
	assert.Equal(t, 2.0, txs[0].Amount)
	assert.Equal(t, 30000.0, txs[0].PriceUSD)
}

func TestAddHoldingMergesWithBlendedBasis(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "ETH", "Ethereum", 3000)

	_, err := env.portfolio.AddHolding(1, "ETH", 1, 1000, "")
	require.NoError(t, err)
	merged, err := env.portfolio.AddHolding(1, "ETH", 1, 2000, "")
	require.NoError(t, err)

	assert.Equal(t, 2.0, merged.Amount)
	assert.Equal(t, 1500.0, merged.PurchasePrice)

	holdings, err := env.holdingRepo.FindByUser(1)
	require.NoError(t, err)
	require.Len(t, holdings, 1)

	txs, err := env.transactionRepo.FindByUser(1, models.TransactionTypeBuy)
	require.NoError(t, err)
	assert.Len(t, txs, 2)
}

func TestAddHoldingUnknownAsset(t *testing.T) {
	env := setupHandlers(t)

	_, err := env.portfolio.AddHolding(1, "NOPE", 1, 100, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown asset")
}

func TestAddPurchaseBlendsBasis(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "ETH", "Ethereum", 3000)

	holding, err := env.portfolio.AddHolding(1, "ETH", 2, 100, "")
	require.NoError(t, err)

	require.NoError(t, env.portfolio.AddPurchase(1, holding.ID, 2, 200, ""))

	reloaded, err := env.holdingRepo.FindByID(1, holding.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, reloaded.Amount)
	assert.Equal(t, 150.0, reloaded.PurchasePrice)
}

func TestUpdateTotalRecordsDeltaAtCostBasis(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "SOL", "Solana", 150)

	holding, err := env.portfolio.AddHolding(1, "SOL", 10, 100, "")
	require.NoError(t, err)

	require.NoError(t, env.portfolio.UpdateTotal(1, holding.ID, 6, "wallet recount"))

	reloaded, err := env.holdingRepo.FindByID(1, holding.ID)
	require.NoError(t, err)
	assert.Equal(t, 6.0, reloaded.Amount)
	// Cost basis is untouched by a total adjustment.
	assert.Equal(t, 100.0, reloaded.PurchasePrice)

	sells, err := env.transactionRepo.FindByUser(1, models.TransactionTypeSell)
	require.NoError(t, err)
	require.Len(t, sells, 1)
	assert.Equal(t, 4.0, sells[0].Amount)
	assert.Equal(t, 100.0, sells[0].PriceUSD)
	assert.Equal(t, "Manual update: wallet recount", sells[0].Notes)
}

func TestUpdateTotalNoChangeRecordsNothing(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "SOL", "Solana", 150)

	holding, err := env.portfolio.AddHolding(1, "SOL", 10, 100, "")
	require.NoError(t, err)

	require.NoError(t, env.portfolio.UpdateTotal(1, holding.ID, 10, ""))

	txs, err := env.transactionRepo.FindByUser(1, "")
	require.NoError(t, err)
	assert.Len(t, txs, 1) // only the original BUY
}

func TestAddStakingIncome(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "ETH", "Ethereum", 20)

	holding, err := env.portfolio.AddHolding(1, "ETH", 10, 15, "")
	require.NoError(t, err)

	require.NoError(t, env.portfolio.AddStakingIncome(1, holding.ID, 10.5, "validator rewards"))

	reloaded, err := env.holdingRepo.FindByID(1, holding.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.5, reloaded.Amount)
	assert.Equal(t, 15.0, reloaded.PurchasePrice)

	rewards, err := env.transactionRepo.FindByUser(1, models.TransactionTypeStaking)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.InDelta(t, 0.5, rewards[0].Amount, 1e-9)
	assert.Equal(t, 20.0, rewards[0].PriceUSD)
	assert.Equal(t, "Staking income: validator rewards", rewards[0].Notes)
}

func TestAddStakingIncomeMustIncrease(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "ETH", "Ethereum", 20)

	holding, err := env.portfolio.AddHolding(1, "ETH", 10, 15, "")
	require.NoError(t, err)

	err = env.portfolio.AddStakingIncome(1, holding.ID, 10, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must increase")
}

func TestAddStakingIncomeUnknownPriceRecordsZero(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "OBSCURE", "Obscure Coin", 0)

	holding, err := env.portfolio.AddHolding(1, "OBSCURE", 100, 1, "")
	require.NoError(t, err)

	require.NoError(t, env.portfolio.AddStakingIncome(1, holding.ID, 101, ""))

	rewards, err := env.transactionRepo.FindByUser(1, models.TransactionTypeStaking)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, 0.0, rewards[0].PriceUSD)
	assert.Equal(t, "Staking income", rewards[0].Notes)
}

func TestGetValuationAndAnalyze(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "BTC", "Bitcoin", 60000)
	env.seedAsset(t, "ETH", "Ethereum", 3000)

	_, err := env.portfolio.AddHolding(1, "BTC", 1, 50000, "")
	require.NoError(t, err)
	_, err = env.portfolio.AddHolding(1, "ETH", 10, 2000, "")
	require.NoError(t, err)

	summary, err := env.portfolio.GetValuation(1)
	require.NoError(t, err)
	assert.Equal(t, 90000.0, summary.TotalValue)
	assert.Equal(t, 70000.0, summary.TotalCost)
	assert.Equal(t, "BTC", summary.MostValuable().Symbol)

	result, err := env.portfolio.Analyze(1)
	require.NoError(t, err)
	assert.NotZero(t, result.Diversification.Score)
	assert.NotEmpty(t, result.Recommendations)
}

func TestStakingHandlerReport(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "ETH", "Ethereum", 20)

	holding, err := env.portfolio.AddHolding(1, "ETH", 10, 15, "")
	require.NoError(t, err)
	require.NoError(t, env.portfolio.AddStakingIncome(1, holding.ID, 10.5, ""))

	report, err := env.staking.Report(1)
	require.NoError(t, err)
	require.True(t, report.HasData)
	assert.InDelta(t, 10.0, report.TotalIncome, 1e-9)
	require.Len(t, report.ByAsset, 1)
	assert.Equal(t, "ETH", report.ByAsset[0].Symbol)
}

func TestDeleteHoldingAndTransaction(t *testing.T) {
	env := setupHandlers(t)
	env.seedAsset(t, "BTC", "Bitcoin", 60000)

	holding, err := env.portfolio.AddHolding(1, "BTC", 1, 50000, "")
	require.NoError(t, err)

	deleted, err := env.portfolio.DeleteHolding(1, holding.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The disposal leaves a SELL record next to the original BUY.
	txs, err := env.transactionRepo.FindByUser(1, "")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	sells, err := env.transactionRepo.FindByUser(1, models.TransactionTypeSell)
	require.NoError(t, err)
	require.Len(t, sells, 1)
	assert.Equal(t, 1.0, sells[0].Amount)
	assert.Equal(t, "Deleted holding", sells[0].Notes)

	deleted, err = env.portfolio.DeleteTransaction(1, sells[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
