package models

// Coin is a single coin record as returned by the upstream coin list and
// markets endpoints. CurrentPrice is only present in market data.
type Coin struct {
	ID           string `json:"id"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	CurrentPrice *Price `json:"current_price,omitempty"`
}

// Category is a coin category record.
type Category struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}
