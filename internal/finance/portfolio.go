// Package finance derives portfolio rollups from the fetched holdings so
// the summary view works even when only the investments list is
// available. Amounts go through decimal arithmetic; floats come in from
// the wire and stay at the boundary.
package finance

import (
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/julianstephens/lifetrack/internal/models"
)

// DefaultCurrency matches the backend's market-data proxy.
const DefaultCurrency = money.INR

// Allocation is the rollup for one instrument type.
type Allocation struct {
	InstrumentType string
	Invested       decimal.Decimal
	CurrentValue   decimal.Decimal
	Percentage     decimal.Decimal
	Count          int
}

// Summary is the portfolio-wide rollup.
type Summary struct {
	TotalInvested  decimal.Decimal
	CurrentValue   decimal.Decimal
	TotalReturns   decimal.Decimal
	ReturnsPercent decimal.Decimal
	Count          int
	Allocation     []Allocation
}

// holdingValue is the current value of one holding, falling back to the
// invested amount when no price update has ever been recorded.
func holdingValue(inv models.Investment) decimal.Decimal {
	if inv.CurrentValue != nil {
		return decimal.NewFromFloat(*inv.CurrentValue)
	}
	return decimal.NewFromFloat(inv.TotalInvested)
}

// Summarize computes totals, returns, and the per-instrument-type
// allocation, largest current value first.
func Summarize(investments []models.Investment) Summary {
	s := Summary{
		TotalInvested:  decimal.Zero,
		CurrentValue:   decimal.Zero,
		TotalReturns:   decimal.Zero,
		ReturnsPercent: decimal.Zero,
		Count:          len(investments),
	}
	if len(investments) == 0 {
		return s
	}

	byType := make(map[string]*Allocation)
	var order []string
	for _, inv := range investments {
		invested := decimal.NewFromFloat(inv.TotalInvested)
		value := holdingValue(inv)

		s.TotalInvested = s.TotalInvested.Add(invested)
		s.CurrentValue = s.CurrentValue.Add(value)

		alloc, ok := byType[inv.InstrumentType]
		if !ok {
			alloc = &Allocation{InstrumentType: inv.InstrumentType}
			byType[inv.InstrumentType] = alloc
			order = append(order, inv.InstrumentType)
		}
		alloc.Invested = alloc.Invested.Add(invested)
		alloc.CurrentValue = alloc.CurrentValue.Add(value)
		alloc.Count++
	}

	s.TotalReturns = s.CurrentValue.Sub(s.TotalInvested)
	if s.TotalInvested.IsPositive() {
		s.ReturnsPercent = s.TotalReturns.Div(s.TotalInvested).Mul(decimal.NewFromInt(100)).Round(2)
	}

	hundred := decimal.NewFromInt(100)
	for _, key := range order {
		alloc := byType[key]
		if s.CurrentValue.IsPositive() {
			alloc.Percentage = alloc.CurrentValue.Div(s.CurrentValue).Mul(hundred).Round(2)
		}
		alloc.Invested = alloc.Invested.Round(2)
		alloc.CurrentValue = alloc.CurrentValue.Round(2)
		s.Allocation = append(s.Allocation, *alloc)
	}
	sort.SliceStable(s.Allocation, func(i, j int) bool {
		return s.Allocation[i].CurrentValue.GreaterThan(s.Allocation[j].CurrentValue)
	})

	s.TotalInvested = s.TotalInvested.Round(2)
	s.CurrentValue = s.CurrentValue.Round(2)
	s.TotalReturns = s.TotalReturns.Round(2)
	return s
}

// FormatAmount renders an amount in the given (or default) currency for
// display.
func FormatAmount(amount decimal.Decimal, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	currency := money.GetCurrency(code)
	if currency == nil {
		currency = money.GetCurrency(DefaultCurrency)
	}
	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}
