package models

import (
	"time"
)

type Asset struct {
	ID          uint    `gorm:"primaryKey"`
	Symbol      string  `gorm:"uniqueIndex;not null"`
	Name        string  `gorm:"not null"`
	CoingeckoID string  `gorm:"index"`
	MarketCap   float64 `gorm:"type:decimal(20,2)"`
	LastUpdated time.Time
}

// TableName sets the table name for Asset model
func (Asset) TableName() string {
	return "assets"
}

// DefaultCatalog is the asset catalog seeded on first run. Symbols without a
// listing on the quote service carry an empty CoingeckoID and are skipped by
// price refreshes.
var DefaultCatalog = []Asset{
	{Symbol: "BTC", Name: "Bitcoin", CoingeckoID: "bitcoin"},
	{Symbol: "ETH", Name: "Ethereum", CoingeckoID: "ethereum"},
	{Symbol: "WBETH", Name: "Wrapped Beacon ETH", CoingeckoID: "wrapped-beacon-eth"},
	{Symbol: "SOL", Name: "Solana", CoingeckoID: "solana"},
	{Symbol: "BNSOL", Name: "Binance Staked SOL", CoingeckoID: "binance-staked-sol"},
	{Symbol: "BNB", Name: "Binance Coin", CoingeckoID: "binancecoin"},
	{Symbol: "SXP", Name: "Swipe", CoingeckoID: "swipe"},
	{Symbol: "XRP", Name: "XRP", CoingeckoID: "ripple"},
	{Symbol: "SUI", Name: "Sui", CoingeckoID: "sui"},
	{Symbol: "LINK", Name: "Chainlink", CoingeckoID: "chainlink"},
	{Symbol: "BERA", Name: "Bera", CoingeckoID: "bera"},
	{Symbol: "DOGE", Name: "Dogecoin", CoingeckoID: "dogecoin"},
	{Symbol: "ADA", Name: "Cardano", CoingeckoID: "cardano"},
	{Symbol: "TRX", Name: "TRON", CoingeckoID: "tron"},
	{Symbol: "KAITO", Name: "Kaito", CoingeckoID: "kaito"},
	{Symbol: "NEAR", Name: "NEAR Protocol", CoingeckoID: "near"},
	{Symbol: "OSMO", Name: "Osmosis", CoingeckoID: "osmosis"},
	{Symbol: "BAND", Name: "Band Protocol", CoingeckoID: "band-protocol"},
	{Symbol: "DOT", Name: "Polkadot", CoingeckoID: "polkadot"},
	{Symbol: "POL", Name: "Polygon", CoingeckoID: "polygon"},
	{Symbol: "S", Name: "Sonic", CoingeckoID: "fantom"},
	{Symbol: "LAYER", Name: "Layer", CoingeckoID: "layer"},
	{Symbol: "SOLV", Name: "Solv Protocol", CoingeckoID: "solv-protocol"},
	{Symbol: "APT", Name: "Aptos", CoingeckoID: "aptos"},
	{Symbol: "1000CAT", Name: "1000CAT", CoingeckoID: "1000cat"},
	{Symbol: "ANIME", Name: "Anime", CoingeckoID: "anime"},
	{Symbol: "TIA", Name: "Celestia", CoingeckoID: "celestia"},
	{Symbol: "PNUT", Name: "Peanut", CoingeckoID: "peanut"},
	{Symbol: "INJ", Name: "Injective", CoingeckoID: "injective-protocol"},
	{Symbol: "ICP", Name: "Internet Computer", CoingeckoID: "internet-computer"},
	{Symbol: "FLOKI", Name: "Floki", CoingeckoID: "floki"},
	{Symbol: "MANTA", Name: "Manta Network", CoingeckoID: "manta-network"},
	{Symbol: "QTUM", Name: "Qtum", CoingeckoID: "qtum"},
	{Symbol: "BIO", Name: "Biometry", CoingeckoID: "biometry"},
	{Symbol: "TRUMP", Name: "Trump", CoingeckoID: "trump"},
	{Symbol: "ATOM", Name: "Cosmos", CoingeckoID: "cosmos"},
	{Symbol: "TAO", Name: "Bittensor", CoingeckoID: "bittensor"},
	{Symbol: "BCH", Name: "Bitcoin Cash", CoingeckoID: "bitcoin-cash"},
	{Symbol: "AVAX", Name: "Avalanche", CoingeckoID: "avalanche-2"},
	{Symbol: "ZIL", Name: "Zilliqa", CoingeckoID: "zilliqa"},
	{Symbol: "FET", Name: "Fetch.ai", CoingeckoID: "fetch-ai"},
	{Symbol: "LTC", Name: "Litecoin", CoingeckoID: "litecoin"},
	{Symbol: "OM", Name: "MANTRA", CoingeckoID: "mantra"},
	{Symbol: "EOS", Name: "EOS", CoingeckoID: "eos"},
	{Symbol: "REZ", Name: "Renzo", CoingeckoID: "renzo"},
	{Symbol: "PEPE", Name: "Pepe", CoingeckoID: "pepe"},
	{Symbol: "ACT", Name: "Act I", CoingeckoID: "act-i-the-ai-prophecy"},
	{Symbol: "BTTC", Name: "BitTorrent-Chain", CoingeckoID: "bittorrent-chain"},
	{Symbol: "CYBER", Name: "CyberConnect", CoingeckoID: "cyberconnect"},
	{Symbol: "NEXO", Name: "NEXO", CoingeckoID: "nexo"},
	{Symbol: "SPACE", Name: "Space ID", CoingeckoID: "space"},
	{Symbol: "IRIS", Name: "IRISnet", CoingeckoID: "iris-network"},
}
