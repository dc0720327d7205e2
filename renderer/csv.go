package renderer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/etnz/fortune"
)

// OptionsCSV writes the investment options settings as CSV.
func OptionsCSV(w io.Writer, opts fortune.Options) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"Name", "Initial amount", "Yearly amount", "Rate", "Start year", "End year"})
	for _, o := range opts {
		cw.Write([]string{
			o.DisplayName(),
			o.InitialAmount.String(),
			o.Amount.String(),
			o.Rate.Value().String(),
			strconv.Itoa(o.StartYear),
			strconv.Itoa(o.EndYear),
		})
	}
	cw.Flush()
	return cw.Error()
}

// ProjectionCSV writes the yearly fortune of all options together, followed by
// one block per option. Fortunes have two decimals.
func ProjectionCSV(w io.Writer, p fortune.Projection) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"Year", "Total fortune"})
	for _, pt := range p.SumPerYear {
		cw.Write([]string{strconv.Itoa(pt.Year), pt.Fortune.StringFixed(2)})
	}

	cw.Write(nil)
	cw.Write([]string{"Option details"})
	for _, op := range p.Options {
		cw.Write(nil)
		cw.Write([]string{op.DisplayName()})
		cw.Write([]string{"Year", "Fortune"})
		for _, pt := range op.FortunePerYear {
			cw.Write([]string{strconv.Itoa(pt.Year), pt.Fortune.StringFixed(2)})
		}
	}
	cw.Flush()
	return cw.Error()
}
