package handlers

import (
	"time"

	"CryptoFolio/internal/models"
	"CryptoFolio/internal/repositories"
	"CryptoFolio/internal/services/staking"
)

// StakingHandler runs staking analysis over a user's transaction history.
type StakingHandler struct {
	holdingRepo     *repositories.HoldingRepository
	transactionRepo *repositories.TransactionRepository
	priceRepo       *repositories.PriceRepository
}

// NewStakingHandler creates a new StakingHandler
func NewStakingHandler(
	holdingRepo *repositories.HoldingRepository,
	transactionRepo *repositories.TransactionRepository,
	priceRepo *repositories.PriceRepository,
) *StakingHandler {
	return &StakingHandler{
		holdingRepo:     holdingRepo,
		transactionRepo: transactionRepo,
		priceRepo:       priceRepo,
	}
}

// Report analyzes the user's staking history at the latest stored prices
func (h *StakingHandler) Report(userID uint) (*staking.Report, error) {
	transactions, err := h.transactionRepo.FindByUser(userID, models.TransactionTypeStaking)
	if err != nil {
		return nil, err
	}
	holdings, err := h.holdingRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(holdings)+len(transactions))
	for i := range holdings {
		if !seen[holdings[i].AssetID] {
			seen[holdings[i].AssetID] = true
			ids = append(ids, holdings[i].AssetID)
		}
	}
	for i := range transactions {
		if !seen[transactions[i].AssetID] {
			seen[transactions[i].AssetID] = true
			ids = append(ids, transactions[i].AssetID)
		}
	}

	prices, err := h.priceRepo.GetLatestPrices(ids)
	if err != nil {
		return nil, err
	}

	return staking.Analyze(transactions, holdings, prices, time.Now()), nil
}
