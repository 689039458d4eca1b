package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"CryptoFolio/internal/models"
	"CryptoFolio/internal/operations/quote"
	"CryptoFolio/internal/repositories"
	"CryptoFolio/internal/services/analysis"
	"CryptoFolio/internal/services/valuation"
)

// AnalysisResult bundles a valuation pass with its diversification grade and
// recommendations.
type AnalysisResult struct {
	Summary         *valuation.Summary
	Diversification analysis.Result
	Recommendations []string
}

// PortfolioHandler coordinates portfolio reads and mutations over the
// repositories and the quote refresher.
type PortfolioHandler struct {
	holdingRepo     *repositories.HoldingRepository
	transactionRepo *repositories.TransactionRepository
	assetRepo       *repositories.AssetRepository
	priceRepo       *repositories.PriceRepository
	refresher       *quote.Refresher
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(
	holdingRepo *repositories.HoldingRepository,
	transactionRepo *repositories.TransactionRepository,
	assetRepo *repositories.AssetRepository,
	priceRepo *repositories.PriceRepository,
	refresher *quote.Refresher,
) *PortfolioHandler {
	return &PortfolioHandler{
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
		assetRepo:       assetRepo,
		priceRepo:       priceRepo,
		refresher:       refresher,
	}
}

// RefreshPrices pulls fresh quotes for the whole catalog. Returns the number
// of assets updated; a *quote.CooldownError when called too soon.
func (h *PortfolioHandler) RefreshPrices(ctx context.Context) (int, error) {
	return h.refresher.RefreshAll(ctx)
}

// GetValuation values the user's portfolio at the latest stored prices
func (h *PortfolioHandler) GetValuation(userID uint) (*valuation.Summary, error) {
	holdings, err := h.holdingRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	prices, err := h.latestPrices(holdings)
	if err != nil {
		return nil, err
	}
	return valuation.Calculate(holdings, prices), nil
}

// Analyze values the portfolio and grades its diversification
func (h *PortfolioHandler) Analyze(userID uint) (*AnalysisResult, error) {
	summary, err := h.GetValuation(userID)
	if err != nil {
		return nil, err
	}
	diversification := analysis.CalculateDiversification(summary)
	return &AnalysisResult{
		Summary:         summary,
		Diversification: diversification,
		Recommendations: analysis.GenerateRecommendations(summary, diversification),
	}, nil
}

// AddHolding adds a position in the given asset. An existing position is
// merged with a blended cost basis; a BUY transaction is recorded either way.
func (h *PortfolioHandler) AddHolding(userID uint, symbol string, amount, purchasePrice float64, notes string) (*models.Holding, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if purchasePrice < 0 {
		return nil, errors.New("purchase price cannot be negative")
	}

	asset, err := h.assetRepo.FindBySymbol(symbol)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("unknown asset: %s", symbol)
	}

	existing, err := h.holdingRepo.FindByUserAndAsset(userID, asset.ID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		blended := valuation.WeightedAveragePrice(existing.Amount, existing.PurchasePrice, amount, purchasePrice)
		newAmount := existing.Amount + amount
		if err := h.holdingRepo.Update(userID, existing.ID, newAmount, &blended, nil); err != nil {
			return nil, err
		}
		existing.Amount = newAmount
		existing.PurchasePrice = blended
	} else {
		existing = &models.Holding{
			UserID:        userID,
			AssetID:       asset.ID,
			Amount:        amount,
			PurchasePrice: purchasePrice,
			PurchaseDate:  time.Now(),
			Notes:         notes,
		}
		if err := h.holdingRepo.Create(existing); err != nil {
			return nil, err
		}
	}

	tx := &models.Transaction{
		UserID:   userID,
		AssetID:  asset.ID,
		Type:     models.TransactionTypeBuy,
		Amount:   amount,
		PriceUSD: purchasePrice,
		Notes:    notes,
	}
	if err := h.transactionRepo.Create(tx); err != nil {
		return nil, err
	}
	return existing, nil
}

// AddPurchase adds units to an existing holding at the given price, blending
// the cost basis and recording a BUY transaction.
func (h *PortfolioHandler) AddPurchase(userID, holdingID uint, amount, purchasePrice float64, notes string) error {
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	if purchasePrice < 0 {
		return errors.New("purchase price cannot be negative")
	}

	holding, err := h.holdingRepo.FindByID(userID, holdingID)
	if err != nil {
		return err
	}
	if holding == nil {
		return errors.New("holding not found")
	}

	blended := valuation.WeightedAveragePrice(holding.Amount, holding.PurchasePrice, amount, purchasePrice)
	if err := h.holdingRepo.Update(userID, holdingID, holding.Amount+amount, &blended, nil); err != nil {
		return err
	}

	return h.transactionRepo.Create(&models.Transaction{
		UserID:   userID,
		AssetID:  holding.AssetID,
		Type:     models.TransactionTypeBuy,
		Amount:   amount,
		PriceUSD: purchasePrice,
		Notes:    notes,
	})
}

// UpdateTotal sets a holding to a new total amount and records the delta as
// a BUY or SELL at the existing purchase price. The cost basis is left as
// is; a zero delta records nothing.
func (h *PortfolioHandler) UpdateTotal(userID, holdingID uint, newTotal float64, notes string) error {
	if newTotal < 0 {
		return errors.New("amount cannot be negative")
	}

	holding, err := h.holdingRepo.FindByID(userID, holdingID)
	if err != nil {
		return err
	}
	if holding == nil {
		return errors.New("holding not found")
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	if err := h.holdingRepo.Update(userID, holdingID, newTotal, nil, notesPtr); err != nil {
		return err
	}

	delta := newTotal - holding.Amount
	if delta == 0 {
		return nil
	}
	txType := models.TransactionTypeBuy
	if delta < 0 {
		txType = models.TransactionTypeSell
		delta = -delta
	}
	txNotes := "Manual update"
	if notes != "" {
		txNotes = "Manual update: " + notes
	}
	return h.transactionRepo.Create(&models.Transaction{
		UserID:   userID,
		AssetID:  holding.AssetID,
		Type:     txType,
		Amount:   delta,
		PriceUSD: holding.PurchasePrice,
		Notes:    txNotes,
	})
}

// AddStakingIncome raises a holding to a new total and records the increase
// as a STAKING transaction valued at the latest market price. The cost basis
// is left untouched; the new total must exceed the current amount.
func (h *PortfolioHandler) AddStakingIncome(userID, holdingID uint, newTotal float64, notes string) error {
	holding, err := h.holdingRepo.FindByID(userID, holdingID)
	if err != nil {
		return err
	}
	if holding == nil {
		return errors.New("holding not found")
	}
	if newTotal <= holding.Amount {
		return errors.New("staking income must increase the holding amount")
	}

	price, err := h.latestPrice(holding.AssetID)
	if err != nil {
		return err
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	if err := h.holdingRepo.Update(userID, holdingID, newTotal, nil, notesPtr); err != nil {
		return err
	}

	txNotes := "Staking income"
	if notes != "" {
		txNotes = "Staking income: " + notes
	}
	return h.transactionRepo.Create(&models.Transaction{
		UserID:   userID,
		AssetID:  holding.AssetID,
		Type:     models.TransactionTypeStaking,
		Amount:   newTotal - holding.Amount,
		PriceUSD: price,
		Notes:    txNotes,
	})
}

// DeleteHolding removes a holding of the user, recording the disposal as a
// SELL of the full amount at the cost basis.
func (h *PortfolioHandler) DeleteHolding(userID, holdingID uint) (bool, error) {
	holding, err := h.holdingRepo.FindByID(userID, holdingID)
	if err != nil {
		return false, err
	}
	if holding == nil {
		return false, nil
	}

	if holding.Amount > 0 {
		err = h.transactionRepo.Create(&models.Transaction{
			UserID:   userID,
			AssetID:  holding.AssetID,
			Type:     models.TransactionTypeSell,
			Amount:   holding.Amount,
			PriceUSD: holding.PurchasePrice,
			Notes:    "Deleted holding",
		})
		if err != nil {
			return false, err
		}
	}
	return h.holdingRepo.Delete(userID, holdingID)
}

// DeleteTransaction removes a transaction of the user
func (h *PortfolioHandler) DeleteTransaction(userID, txID uint) (bool, error) {
	return h.transactionRepo.Delete(userID, txID)
}

func (h *PortfolioHandler) latestPrice(assetID uint) (float64, error) {
	price, err := h.priceRepo.GetLatest(assetID)
	if err != nil {
		return 0, err
	}
	if price == nil {
		return 0, nil
	}
	return price.PriceUSD, nil
}

func (h *PortfolioHandler) latestPrices(holdings []models.Holding) (map[uint]float64, error) {
	ids := make([]uint, 0, len(holdings))
	for i := range holdings {
		ids = append(ids, holdings[i].AssetID)
	}
	return h.priceRepo.GetLatestPrices(ids)
}
