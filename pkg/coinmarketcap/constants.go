package coinmarketcap

const (
	// QuotesLatestPath returns the latest market quote for one or more assets.
	QuotesLatestPath = "/v1/cryptocurrency/quotes/latest"

	// APIKeyHeader carries the CoinMarketCap Pro API key.
	APIKeyHeader = "X-CMC_PRO_API_KEY"

	// SymbolParam is the comma separated symbol list query parameter.
	SymbolParam = "symbol"
)
