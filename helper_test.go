package fortune

import (
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// decimals compares decimal values by value, not by representation.
var decimals = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// opt is a helper for test to create an option from consts.
func opt(id string, initial, amount, rate float64, start, end int) Option {
	return Option{
		ID:            ID(id),
		Name:          id,
		InitialAmount: D(initial),
		Amount:        D(amount),
		Rate:          P(rate),
		StartYear:     start,
		EndYear:       end,
	}
}

// point is a helper for test to create a YearPoint from consts.
func point(year int, fortune, investment, profit, totalInvestment, totalProfit float64) YearPoint {
	return YearPoint{
		Year:            year,
		Fortune:         D(fortune),
		Investment:      D(investment),
		Profit:          D(profit),
		TotalInvestment: D(totalInvestment),
		TotalProfit:     D(totalProfit),
	}
}
