package coinmarketcap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status is the envelope status block attached to every CoinMarketCap response.
type Status struct {
	Timestamp    string `json:"timestamp"`
	ErrorCode    int    `json:"error_code"` // 0 means success
	ErrorMessage string `json:"error_message"`
	Elapsed      int    `json:"elapsed"`
	CreditCount  int    `json:"credit_count"`
	Notice       string `json:"notice"`
}

// Quote is one asset's market data in a single convert currency.
// Every numeric field may be null or omitted by the API.
type Quote struct {
	Price            *float64 `json:"price"`
	Volume24h        *float64 `json:"volume_24h"`
	VolumeChange24h  *float64 `json:"volume_change_24h"`
	PercentChange1h  *float64 `json:"percent_change_1h"`
	PercentChange24h *float64 `json:"percent_change_24h"`
	PercentChange7d  *float64 `json:"percent_change_7d"`
	MarketCap        *float64 `json:"market_cap"`
	LastUpdated      string   `json:"last_updated"` // 2024-07-30T05:43:00.000Z
}

// Asset is a single cryptocurrency record from the quotes endpoint.
type Asset struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Symbol            string           `json:"symbol"`
	Slug              string           `json:"slug"`
	CirculatingSupply *float64         `json:"circulating_supply"`
	TotalSupply       *float64         `json:"total_supply"`
	MaxSupply         *float64         `json:"max_supply"`
	CMCRank           *int             `json:"cmc_rank"`
	LastUpdated       string           `json:"last_updated"`
	Quote             map[string]Quote `json:"quote"`
}

// QuoteIn returns the quote for the given convert currency, if present.
func (a Asset) QuoteIn(currency string) (Quote, bool) {
	q, ok := a.Quote[currency]
	return q, ok
}

// QuotesResponse is the decoded quotes/latest payload.
// Data keeps the key order of the "data" object as sent by the API.
type QuotesResponse struct {
	Status Status  `json:"status"`
	Data   []Asset `json:"-"`
}

func (r *QuotesResponse) UnmarshalJSON(b []byte) error {
	var raw struct {
		Status Status          `json:"status"`
		Data   json.RawMessage `json:"data"` // delay decoding to keep key order
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	assets, err := decodeAssets(raw.Data)
	if err != nil {
		return fmt.Errorf("decode data: %w", err)
	}

	r.Status = raw.Status
	r.Data = assets
	return nil
}

// decodeAssets walks the "data" object key by key. Values are either a single
// asset (v1) or an array of assets sharing the symbol (v2).
func decodeAssets(raw json.RawMessage) ([]Asset, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	var assets []Asset
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, err
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("key %v: %w", key, err)
		}
		value = bytes.TrimSpace(value)

		switch {
		case bytes.HasPrefix(value, []byte("[")):
			var list []Asset
			if err := json.Unmarshal(value, &list); err != nil {
				return nil, fmt.Errorf("key %v: %w", key, err)
			}
			assets = append(assets, list...)
		case bytes.Equal(value, []byte("null")):
			// skip
		default:
			var asset Asset
			if err := json.Unmarshal(value, &asset); err != nil {
				return nil, fmt.Errorf("key %v: %w", key, err)
			}
			assets = append(assets, asset)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return assets, nil
}

// APIError is returned for non-2xx responses and for envelopes carrying a
// non-zero status.error_code.
type APIError struct {
	StatusCode int
	ErrorCode  int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("coinmarketcap error: http %d, code %d: %s", e.StatusCode, e.ErrorCode, e.Message)
}
