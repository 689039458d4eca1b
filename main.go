package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CryptoFolio/config"
	"CryptoFolio/internal/handlers"
	"CryptoFolio/internal/models"
	"CryptoFolio/internal/operations/quote"
	"CryptoFolio/internal/repositories"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Setup database
	db := setupDatabase(cfg.Database)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	assetRepo := repositories.NewAssetRepository(db)
	priceRepo := repositories.NewPriceRepository(db)
	holdingRepo := repositories.NewHoldingRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)

	// Initialize quote client
	client := quote.NewClient(cfg.API.BaseURL, cfg.API.CooldownSeconds, cfg.API.TimeoutSeconds)
	refresher := quote.NewRefresher(client, assetRepo, priceRepo)

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(assetRepo, client)
	portfolioHandler := handlers.NewPortfolioHandler(holdingRepo, transactionRepo, assetRepo, priceRepo, refresher)
	stakingHandler := handlers.NewStakingHandler(holdingRepo, transactionRepo, priceRepo)

	// Seed the asset catalog and fix stale feed ids
	if _, err := assetHandler.EnsureDefaults(); err != nil {
		log.Fatal("Failed to seed asset catalog:", err)
	}
	if _, err := assetHandler.RepairFeedIDs(); err != nil {
		log.Fatal("Failed to repair feed ids:", err)
	}

	// Resolve the portfolio user and apply stored settings
	user, err := userRepo.GetOrCreate(cfg.App.Username)
	if err != nil {
		log.Fatal("Failed to load user:", err)
	}
	if err := userRepo.TouchLastLogin(user.ID); err != nil {
		log.Fatal("Failed to update login time:", err)
	}
	settings := models.ParseSettings(user.Settings)
	client.SetCooldown(settings.APICooldown)

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial refresh; a cooldown here just means prices are fresh enough
	if _, err := portfolioHandler.RefreshPrices(ctx); err != nil {
		log.Printf("Initial price refresh skipped: %v", err)
	}

	printPortfolio(portfolioHandler, stakingHandler, user.ID)

	// Periodic refresh until interrupted
	ticker := time.NewTicker(time.Duration(cfg.App.RefreshMinutes) * time.Minute)
	defer ticker.Stop()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			if _, err := portfolioHandler.RefreshPrices(ctx); err != nil {
				log.Printf("Price refresh failed: %v", err)
				continue
			}
			printPortfolio(portfolioHandler, stakingHandler, user.ID)
		case <-c:
			log.Println("Shutting down...")
			cancel()
			return
		}
	}
}

func printPortfolio(portfolioHandler *handlers.PortfolioHandler, stakingHandler *handlers.StakingHandler, userID uint) {
	result, err := portfolioHandler.Analyze(userID)
	if err != nil {
		log.Printf("Portfolio analysis failed: %v", err)
		return
	}

	fmt.Println("\n=== Portfolio Summary ===")
	fmt.Printf("Total Value: $%.2f\n", result.Summary.TotalValue)
	fmt.Printf("Total Cost: $%.2f\n", result.Summary.TotalCost)
	fmt.Printf("Profit/Loss: $%.2f (%.2f%%)\n", result.Summary.ProfitLoss, result.Summary.ProfitLossPct)
	fmt.Printf("Assets: %d\n", result.Summary.AssetCount)
	for _, h := range result.Summary.Holdings {
		fmt.Printf("  %-8s %14.8f @ $%.2f = $%.2f (%.1f%%)\n",
			h.Symbol, h.Amount, h.CurrentPrice, h.Value, h.Allocation)
	}

	fmt.Println("\n=== Diversification ===")
	fmt.Printf("Score: %d/10\n", result.Diversification.Score)
	fmt.Println(result.Diversification.Description)
	for _, rec := range result.Recommendations {
		fmt.Println("-", rec)
	}

	report, err := stakingHandler.Report(userID)
	if err != nil {
		log.Printf("Staking analysis failed: %v", err)
		return
	}

	fmt.Println("\n=== Staking Report ===")
	if !report.HasData {
		fmt.Println(report.Message)
		return
	}
	fmt.Printf("Total Income: $%.2f\n", report.TotalIncome)
	fmt.Printf("Monthly Average: $%.2f\n", report.MonthlyAverage)
	fmt.Printf("Estimated Annual Yield: %.2f%%\n", report.AverageAPY)
	for _, asset := range report.ByAsset {
		fmt.Printf("  %-8s %14.8f total  APY %.2f%% (%s)\n",
			asset.Symbol, asset.TotalAmount, asset.APY, asset.Confidence)
	}
	for _, rec := range report.Recommendations {
		fmt.Println("-", rec)
	}
}

func setupDatabase(dbConfig config.DatabaseConfig) *gorm.DB {
	var dialector gorm.Dialector
	switch dbConfig.Driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			dbConfig.Host,
			dbConfig.Port,
			dbConfig.User,
			dbConfig.Password,
			dbConfig.DBName)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(dbConfig.Path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto migrate database schemas
	err = db.AutoMigrate(
		&models.User{},
		&models.Asset{},
		&models.Price{},
		&models.Holding{},
		&models.Transaction{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
