package fortune

import (
	"encoding/json"
	"maps"
	"slices"
	"sort"

	"github.com/shopspring/decimal"
)

// YearPoint is the state of an option, or of all of them, at the end of a year.
type YearPoint struct {
	Year            int             `json:"year"`
	Fortune         decimal.Decimal `json:"fortune"`         // balance at the end of the year
	Investment      decimal.Decimal `json:"investment"`      // contributed during the year
	Profit          decimal.Decimal `json:"profit"`          // growth earned during the year
	TotalInvestment decimal.Decimal `json:"totalInvestment"` // contributed since the start
	TotalProfit     decimal.Decimal `json:"totalProfit"`     // growth earned since the start
}

// OptionProjection is the year by year evolution of a single option.
type OptionProjection struct {
	ID              ID              `json:"id"`
	Name            string          `json:"name"`
	FortunePerYear  []YearPoint     `json:"fortunePerYear"`
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	TotalProfit     decimal.Decimal `json:"totalProfit"`
}

// DisplayName returns the option name, or a placeholder if it has none.
func (p OptionProjection) DisplayName() string {
	return Option{Name: p.Name}.DisplayName()
}

// At returns the point for exactly 'year'.
func (p OptionProjection) At(year int) (YearPoint, bool) {
	i, found := p.search(year)
	if !found {
		return YearPoint{}, false
	}
	return p.FortunePerYear[i], true
}

// FortuneAt returns the fortune in 'year', or in the nearest earlier year
// available, or zero if the option had not started yet.
func (p OptionProjection) FortuneAt(year int) decimal.Decimal {
	i, found := p.search(year)
	if found {
		return p.FortunePerYear[i].Fortune
	}
	if i == 0 {
		return decimal.Zero
	}
	return p.FortunePerYear[i-1].Fortune
}

// search the index of 'year' in the series, or where it would be inserted.
func (p OptionProjection) search(year int) (int, bool) {
	i := sort.Search(len(p.FortunePerYear), func(i int) bool { return p.FortunePerYear[i].Year >= year })
	return i, i < len(p.FortunePerYear) && p.FortunePerYear[i].Year == year
}

// Projection is the result of projecting a collection of options.
//
// TotalInvestment and TotalProfit are the running sums of the yearly
// investment and profit of SumPerYear. Initial amounts are not yearly
// investments, so they are not part of TotalInvestment.
type Projection struct {
	Options         []OptionProjection `json:"optionProjections"`
	SumPerYear      []YearPoint        `json:"sumPerYear"` // all options together, ascending years
	TotalInvestment decimal.Decimal    `json:"totalInvestment"`
	TotalProfit     decimal.Decimal    `json:"totalProfit"`
}

// Fortune returns the final fortune of all options together.
func (p Projection) Fortune() decimal.Decimal {
	if len(p.SumPerYear) == 0 {
		return decimal.Zero
	}
	return p.SumPerYear[len(p.SumPerYear)-1].Fortune
}

// Years returns the year axis of the projection.
func (p Projection) Years() []int {
	years := make([]int, len(p.SumPerYear))
	for i, y := range p.SumPerYear {
		years[i] = y.Year
	}
	return years
}

// Project computes the yearly compounding of every option and of all of them
// together.
//
// The result has one OptionProjection per option, in the same order. Options
// that ended keep contributing their final fortune to the sum of later years,
// options that did not start yet contribute nothing.
//
// Project is a pure function, option IDs are expected to be unique.
func Project(options []Option) Projection {
	p := Projection{
		Options:         make([]OptionProjection, 0, len(options)),
		SumPerYear:      []YearPoint{},
		TotalInvestment: decimal.Zero,
		TotalProfit:     decimal.Zero,
	}
	for _, o := range options {
		p.Options = append(p.Options, projectOption(o))
	}
	p.aggregate(options)
	return p
}

// projectOption computes the yearly series of a single option.
//
// Growth is applied to the balance before the yearly contribution is added,
// except in the first year where there is no growth at all.
func projectOption(o Option) OptionProjection {
	fortune := o.InitialAmount
	totalInvestment := o.InitialAmount
	totalProfit := decimal.Zero

	p := OptionProjection{
		ID:             o.ID,
		Name:           o.Name,
		FortunePerYear: make([]YearPoint, 0, o.Years()),
	}

	for year := o.StartYear; year <= o.EndYear; year++ {
		profit := decimal.Zero
		if year != o.StartYear {
			profit = o.Rate.Of(fortune)
			fortune = fortune.Add(profit)
			totalProfit = totalProfit.Add(profit)
		}

		fortune = fortune.Add(o.Amount)
		totalInvestment = totalInvestment.Add(o.Amount)

		p.FortunePerYear = append(p.FortunePerYear, YearPoint{
			Year:            year,
			Fortune:         fortune,
			Investment:      o.Amount,
			Profit:          profit,
			TotalInvestment: totalInvestment,
			TotalProfit:     totalProfit,
		})
	}

	p.TotalInvestment = totalInvestment
	p.TotalProfit = totalProfit
	return p
}

// aggregate folds all option series into SumPerYear and the grand totals.
// options[i] must be the source of p.Options[i].
func (p *Projection) aggregate(options []Option) {
	// index every option series by year, and collect the year axis.
	axis := make(map[int]bool)
	byYear := make([]map[int]YearPoint, len(p.Options))
	for i, op := range p.Options {
		byYear[i] = make(map[int]YearPoint, len(op.FortunePerYear))
		for _, point := range op.FortunePerYear {
			byYear[i][point.Year] = point
			axis[point.Year] = true
		}
	}

	// final points of concluded options, recorded when their end year is visited.
	final := make([]*YearPoint, len(p.Options))

	for _, year := range slices.Sorted(maps.Keys(axis)) {
		sum := YearPoint{
			Year:            year,
			Fortune:         decimal.Zero,
			Investment:      decimal.Zero,
			Profit:          decimal.Zero,
			TotalInvestment: decimal.Zero,
			TotalProfit:     decimal.Zero,
		}
		for i := range p.Options {
			if point, ok := byYear[i][year]; ok {
				sum.Fortune = sum.Fortune.Add(point.Fortune)
				sum.TotalInvestment = sum.TotalInvestment.Add(point.TotalInvestment)
				sum.TotalProfit = sum.TotalProfit.Add(point.TotalProfit)
				sum.Investment = sum.Investment.Add(point.Investment)
				sum.Profit = sum.Profit.Add(point.Profit)
				if year == options[i].EndYear {
					final[i] = &point
				}
				continue
			}
			// no activity this year: either not started yet or concluded.
			if last := final[i]; last != nil {
				sum.Fortune = sum.Fortune.Add(last.Fortune)
				sum.TotalInvestment = sum.TotalInvestment.Add(last.TotalInvestment)
				sum.TotalProfit = sum.TotalProfit.Add(last.TotalProfit)
			}
		}

		p.TotalInvestment = p.TotalInvestment.Add(sum.Investment)
		p.TotalProfit = p.TotalProfit.Add(sum.Profit)
		p.SumPerYear = append(p.SumPerYear, sum)
	}
}

// MarshalJSON writes the amounts rounded to the cent.
func (y YearPoint) MarshalJSON() ([]byte, error) {
	type point YearPoint
	r := point(y)
	r.Fortune = r.Fortune.Round(2)
	r.Investment = r.Investment.Round(2)
	r.Profit = r.Profit.Round(2)
	r.TotalInvestment = r.TotalInvestment.Round(2)
	r.TotalProfit = r.TotalProfit.Round(2)
	return json.Marshal(r)
}

// MarshalJSON writes the totals rounded to the cent.
func (p OptionProjection) MarshalJSON() ([]byte, error) {
	type projection OptionProjection
	r := projection(p)
	r.TotalInvestment = r.TotalInvestment.Round(2)
	r.TotalProfit = r.TotalProfit.Round(2)
	return json.Marshal(r)
}

// MarshalJSON writes the totals rounded to the cent.
func (p Projection) MarshalJSON() ([]byte, error) {
	type projection Projection
	r := projection(p)
	r.TotalInvestment = r.TotalInvestment.Round(2)
	r.TotalProfit = r.TotalProfit.Round(2)
	return json.Marshal(r)
}
