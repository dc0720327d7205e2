package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/fortune"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// ProjectionOptions holds configuration for rendering a projection report.
type ProjectionOptions struct {
	Currency    string
	Profile     *fortune.Profile // adds the user age to the total table
	Chart       bool             // embeds a terminal chart
	SkipOptions bool             // renders only the total
}

// ProjectionMarkdown renders a projection report: totals, the yearly table of
// all options together, and the yearly table of each option.
func ProjectionMarkdown(p fortune.Projection, opts ProjectionOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	money := func(d decimal.Decimal) string { return fortune.M(d, opts.Currency).String() }

	doc.H1("Future fortune")

	if len(p.SumPerYear) == 0 {
		doc.PlainText("No investment option to project, add one with `ffc add`.")
		return doc.String()
	}

	last := p.SumPerYear[len(p.SumPerYear)-1]
	doc.BulletList(
		fmt.Sprintf("Fortune in %d: %s", last.Year, money(p.Fortune())),
		fmt.Sprintf("Total investment: %s", money(p.TotalInvestment)),
		fmt.Sprintf("Total profit: %s", money(p.TotalProfit)),
	)

	doc.H2("Total")
	doc.Table(yearTable(p.SumPerYear, opts.Profile, money))

	if opts.Chart {
		doc.H2("Chart")
		doc.CodeBlocks(md.SyntaxHighlight("text"), Chart(p, ChartOptions{}))
	}

	if opts.SkipOptions {
		return doc.String()
	}

	for _, op := range p.Options {
		doc.H3(op.DisplayName())
		if len(op.FortunePerYear) == 0 {
			doc.PlainText("This option covers no year.")
			continue
		}
		doc.PlainText(fmt.Sprintf("Invested %s, earned %s.", money(op.TotalInvestment), money(op.TotalProfit)))
		doc.Table(yearTable(op.FortunePerYear, nil, money))
	}
	return doc.String()
}

// yearTable builds the table of a yearly series.
func yearTable(points []fortune.YearPoint, profile *fortune.Profile, money func(decimal.Decimal) string) md.TableSet {
	header := []string{"Year"}
	alignment := []md.TableAlignment{md.AlignLeft}
	if profile != nil {
		header = append(header, "Age")
		alignment = append(alignment, md.AlignRight)
	}
	header = append(header, "Fortune", "Investment", "Profit", "Total investment", "Total profit")
	alignment = append(alignment, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight)

	table := md.TableSet{
		Alignment: alignment,
		Header:    header,
		Rows:      [][]string{},
	}
	for _, pt := range points {
		row := []string{strconv.Itoa(pt.Year)}
		if profile != nil {
			row = append(row, strconv.Itoa(profile.Age(pt.Year)))
		}
		row = append(row,
			money(pt.Fortune),
			money(pt.Investment),
			money(pt.Profit),
			money(pt.TotalInvestment),
			money(pt.TotalProfit),
		)
		table.Rows = append(table.Rows, row)
	}
	return table
}
