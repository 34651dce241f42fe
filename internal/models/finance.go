package models

// Investment is one holding in the portfolio.
type Investment struct {
	ID             int      `json:"id"`
	InstrumentType string   `json:"instrument_type"`
	InstrumentName string   `json:"instrument_name"`
	Symbol         string   `json:"symbol"`
	Quantity       float64  `json:"quantity"`
	BuyPrice       float64  `json:"buy_price"`
	BuyDate        string   `json:"buy_date"`
	TotalInvested  float64  `json:"total_invested"`
	CurrentPrice   *float64 `json:"current_price"`
	CurrentValue   *float64 `json:"current_value"`
	Returns        float64  `json:"returns"`
	ReturnsPercent float64  `json:"returns_percent"`
	Notes          string   `json:"notes"`
}

// NewInvestment is the request body for recording a purchase.
type NewInvestment struct {
	InstrumentType string  `json:"instrument_type"`
	InstrumentName string  `json:"instrument_name"`
	Symbol         string  `json:"symbol,omitempty"`
	Quantity       float64 `json:"quantity"`
	BuyPrice       float64 `json:"buy_price"`
	BuyDate        string  `json:"buy_date"`
	Notes          string  `json:"notes,omitempty"`
}

// InvestmentUpdate carries price/value corrections for a holding.
type InvestmentUpdate struct {
	CurrentPrice *float64 `json:"current_price,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

// StockQuote is the backend's stock price lookup response.
type StockQuote struct {
	Success      bool    `json:"success"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	BuyPrice     float64 `json:"buy_price"`
	Currency     string  `json:"currency"`
	Error        string  `json:"error,omitempty"`
}
