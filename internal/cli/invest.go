package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifetrack/internal/finance"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/validation"
)

type InvestAddCmd struct {
	Name     string  `arg:"" help:"Instrument name."`
	Type     string  `short:"t" help:"Instrument type (stock|mutual_fund|gold|fd|crypto|other)." required:""`
	Quantity float64 `short:"q" help:"Units purchased." required:""`
	Price    float64 `short:"p" help:"Buy price per unit." required:""`
	Date     string  `short:"d" help:"Buy date (YYYY-MM-DD, 'today')." default:"today"`
	Symbol   string  `short:"s" help:"Ticker symbol for price lookups."`
	Notes    string  `short:"n" help:"Notes."`
}

func (c *InvestAddCmd) Run(ctx *Context) error {
	date, err := parseDateFlag(c.Date)
	if err != nil {
		return err
	}

	inv := models.NewInvestment{
		InstrumentType: c.Type,
		InstrumentName: c.Name,
		Symbol:         c.Symbol,
		Quantity:       c.Quantity,
		BuyPrice:       c.Price,
		BuyDate:        date,
		Notes:          c.Notes,
	}
	if c.Symbol != "" {
		inv.Symbol = validation.NormalizeSymbol(c.Symbol)
	}
	if err := validation.Investment(inv).Err(); err != nil {
		return err
	}

	created, err := ctx.Client.CreateInvestment(context.Background(), inv)
	if err != nil {
		return err
	}

	invested := decimal.NewFromFloat(created.TotalInvested)
	fmt.Printf("Added %s: %s invested (ID: %d)\n",
		created.InstrumentName, finance.FormatAmount(invested, ""), created.ID)
	return nil
}

type InvestListCmd struct{}

func (c *InvestListCmd) Run(ctx *Context) error {
	investments, err := ctx.listInvestmentsCached(context.Background())
	if err != nil {
		return err
	}
	if len(investments) == 0 {
		fmt.Println("No investments recorded.")
		return nil
	}

	for _, inv := range investments {
		value := decimal.NewFromFloat(inv.TotalInvested)
		if inv.CurrentValue != nil {
			value = decimal.NewFromFloat(*inv.CurrentValue)
		}
		fmt.Printf("%3d  %-12s %-25s %10s  %+.2f%%\n",
			inv.ID, inv.InstrumentType, inv.InstrumentName,
			finance.FormatAmount(value, ""), inv.ReturnsPercent)
	}
	return nil
}

type InvestUpdateCmd struct {
	ID    int      `arg:"" help:"Investment ID."`
	Price *float64 `short:"p" help:"New current price per unit."`
	Value *float64 `short:"v" help:"New total current value."`
	Notes *string  `short:"n" help:"New notes."`
}

func (c *InvestUpdateCmd) Run(ctx *Context) error {
	if c.Price == nil && c.Value == nil && c.Notes == nil {
		return fmt.Errorf("nothing to update")
	}

	update := models.InvestmentUpdate{
		CurrentPrice: c.Price,
		CurrentValue: c.Value,
		Notes:        c.Notes,
	}
	updated, err := ctx.Client.UpdateInvestment(context.Background(), c.ID, update)
	if err != nil {
		return err
	}
	fmt.Printf("Updated %s (returns %+.2f%%).\n", updated.InstrumentName, updated.ReturnsPercent)
	return nil
}

type InvestDeleteCmd struct {
	ID int `arg:"" help:"Investment ID."`
}

func (c *InvestDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Client.DeleteInvestment(context.Background(), c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted investment %d.\n", c.ID)
	return nil
}

type InvestSummaryCmd struct{}

func (c *InvestSummaryCmd) Run(ctx *Context) error {
	investments, err := ctx.listInvestmentsCached(context.Background())
	if err != nil {
		return err
	}

	summary := finance.Summarize(investments)
	fmt.Printf("Portfolio (%d holdings)\n", summary.Count)
	fmt.Printf("  Invested:      %s\n", finance.FormatAmount(summary.TotalInvested, ""))
	fmt.Printf("  Current value: %s\n", finance.FormatAmount(summary.CurrentValue, ""))
	fmt.Printf("  Returns:       %s (%s%%)\n",
		finance.FormatAmount(summary.TotalReturns, ""), summary.ReturnsPercent.StringFixed(2))

	if len(summary.Allocation) > 0 {
		fmt.Println("\nAllocation:")
		for _, a := range summary.Allocation {
			fmt.Printf("  %-12s %6s%%  %s\n",
				a.InstrumentType, a.Percentage.StringFixed(2),
				finance.FormatAmount(a.CurrentValue, ""))
		}
	}
	return nil
}

type InvestPriceCmd struct {
	Symbol  string `arg:"" help:"Ticker symbol (NSE assumed unless suffixed)."`
	BuyDate string `short:"d" help:"Optional buy date (YYYY-MM-DD) to fetch the historical buy price."`
}

func (c *InvestPriceCmd) Run(ctx *Context) error {
	symbol := validation.NormalizeSymbol(c.Symbol)
	quote, err := ctx.Client.GetStockQuote(context.Background(), symbol, c.BuyDate)
	if err != nil {
		return err
	}
	if !quote.Success {
		return fmt.Errorf("quote lookup failed: %s", quote.Error)
	}

	price := decimal.NewFromFloat(quote.CurrentPrice)
	fmt.Printf("%s (%s): %s\n", quote.Name, quote.Symbol, finance.FormatAmount(price, quote.Currency))
	if c.BuyDate != "" && quote.BuyPrice > 0 {
		buy := decimal.NewFromFloat(quote.BuyPrice)
		fmt.Printf("Price on %s: %s\n", c.BuyDate, finance.FormatAmount(buy, quote.Currency))
	}
	return nil
}
