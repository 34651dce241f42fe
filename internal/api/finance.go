package api

import (
	"context"
	"fmt"

	"github.com/julianstephens/lifetrack/internal/models"
)

// ListInvestments fetches every holding, most recent purchase first.
func (c *Client) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	var investments []models.Investment
	if err := c.get(ctx, "/api/finance/investments", &investments); err != nil {
		return nil, err
	}
	return investments, nil
}

// CreateInvestment records a purchase.
func (c *Client) CreateInvestment(ctx context.Context, inv models.NewInvestment) (models.Investment, error) {
	var created models.Investment
	err := c.post(ctx, "/api/finance/investments", inv, &created)
	return created, err
}

// UpdateInvestment applies price/value/notes corrections to a holding.
func (c *Client) UpdateInvestment(ctx context.Context, investmentID int, update models.InvestmentUpdate) (models.Investment, error) {
	var updated models.Investment
	err := c.put(ctx, fmt.Sprintf("/api/finance/investments/%d", investmentID), update, &updated)
	return updated, err
}

// DeleteInvestment removes a holding.
func (c *Client) DeleteInvestment(ctx context.Context, investmentID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/finance/investments/%d", investmentID))
}

// GetStockQuote asks the backend's market-data proxy for the current price
// of symbol, and the closing price on buyDate when given.
func (c *Client) GetStockQuote(ctx context.Context, symbol, buyDate string) (models.StockQuote, error) {
	body := map[string]string{"symbol": symbol}
	if buyDate != "" {
		body["buy_date"] = buyDate
	}
	var quote models.StockQuote
	err := c.post(ctx, "/api/finance/stock/price", body, &quote)
	return quote, err
}
