package renderer

import (
	"cmp"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/fortune"
	"github.com/shopspring/decimal"
)

const (
	defaultChartHeight = 12
	defaultColumnWidth = 3
	totalSymbol        = '*'
	optionSymbols      = "abcdefghijklmnopqrstuvwxyz"
)

// ChartOptions holds configuration for rendering a chart.
type ChartOptions struct {
	Height      int // rows of the plot area
	ColumnWidth int // characters per year
}

// ChartSeries is a named line of the chart, aligned on the projection years.
type ChartSeries struct {
	Name   string
	Symbol rune
	Values []decimal.Decimal
}

// Series returns the total series followed by one series per option, all
// aligned on the projection year axis.
//
// A year where an option has no point takes the value of the nearest earlier
// year of that option, or zero if it has not started yet.
func Series(p fortune.Projection) []ChartSeries {
	years := p.Years()

	total := ChartSeries{Name: "Total", Symbol: totalSymbol, Values: make([]decimal.Decimal, len(years))}
	for i, pt := range p.SumPerYear {
		total.Values[i] = pt.Fortune
	}

	series := []ChartSeries{total}
	for i, op := range p.Options {
		s := ChartSeries{Name: op.DisplayName(), Symbol: '#', Values: make([]decimal.Decimal, len(years))}
		if i < len(optionSymbols) {
			s.Symbol = rune(optionSymbols[i])
		}
		for j, year := range years {
			s.Values[j] = op.FortuneAt(year)
		}
		series = append(series, s)
	}
	return series
}

// Chart renders the fortune over the years as a text chart.
func Chart(p fortune.Projection, opts ChartOptions) string {
	if len(p.SumPerYear) == 0 {
		return "no data\n"
	}
	height := max(cmp.Or(opts.Height, defaultChartHeight), 2)
	colw := max(cmp.Or(opts.ColumnWidth, defaultColumnWidth), 1)
	years := p.Years()
	series := Series(p)

	lo, hi := 0.0, 0.0
	for _, s := range series {
		for _, v := range s.Values {
			f := v.InexactFloat64()
			lo, hi = math.Min(lo, f), math.Max(hi, f)
		}
	}
	if hi == lo {
		hi = lo + 1
	}

	width := len(years) * colw
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", width))
	}
	// options first, the total last so that it stays on top.
	for i := len(series) - 1; i >= 0; i-- {
		s := series[i]
		for x, v := range s.Values {
			row := int(math.Round((v.InexactFloat64() - lo) / (hi - lo) * float64(height-1)))
			grid[height-1-row][x*colw+colw/2] = s.Symbol
		}
	}

	labels := make([]string, height)
	labels[0] = fortune.M(decimal.NewFromFloat(hi), "").Abbrev()
	labels[height/2] = fortune.M(decimal.NewFromFloat(lo+(hi-lo)*float64(height-1-height/2)/float64(height-1)), "").Abbrev()
	labels[height-1] = fortune.M(decimal.NewFromFloat(lo), "").Abbrev()
	margin := 0
	for _, l := range labels {
		margin = max(margin, len([]rune(l)))
	}

	var b strings.Builder
	for r, line := range grid {
		b.WriteString(padLeft(labels[r], margin))
		b.WriteString(" |")
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", margin))
	b.WriteString(" +")
	b.WriteString(strings.Repeat("-", width))
	b.WriteString("\n")

	// year labels, as many as fit without overlapping.
	axis := []rune(strings.Repeat(" ", width+4))
	step := (5 + colw - 1) / colw
	for x, year := range years {
		if x%step != 0 {
			continue
		}
		copy(axis[x*colw:], []rune(strconv.Itoa(year)))
	}
	b.WriteString(strings.Repeat(" ", margin+2))
	b.WriteString(strings.TrimRight(string(axis), " "))
	b.WriteString("\n\n")

	legend := make([]string, 0, len(series))
	for _, s := range series {
		legend = append(legend, string(s.Symbol)+" "+s.Name)
	}
	b.WriteString(strings.Join(legend, "  "))
	b.WriteString("\n")
	return b.String()
}

func padLeft(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
