package fortune

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

func TestProject_Option(t *testing.T) {
	testCases := []struct {
		name   string
		option Option
		want   OptionProjection
	}{
		{
			name:   "compounding after the first year",
			option: opt("a", 1000, 100, 10, 2020, 2022),
			want: OptionProjection{
				ID:   "a",
				Name: "a",
				FortunePerYear: []YearPoint{
					point(2020, 1100, 100, 0, 1100, 0),
					point(2021, 1310, 100, 110, 1200, 110),
					point(2022, 1541, 100, 131, 1300, 241),
				},
				TotalInvestment: D(1300),
				TotalProfit:     D(241),
			},
		},
		{
			name:   "single year",
			option: opt("a", 500, 50, 7, 2030, 2030),
			want: OptionProjection{
				ID:              "a",
				Name:            "a",
				FortunePerYear:  []YearPoint{point(2030, 550, 50, 0, 550, 0)},
				TotalInvestment: D(550),
				TotalProfit:     D(0),
			},
		},
		{
			name:   "negative rate",
			option: opt("a", 1000, 0, -10, 2020, 2021),
			want: OptionProjection{
				ID:   "a",
				Name: "a",
				FortunePerYear: []YearPoint{
					point(2020, 1000, 0, 0, 1000, 0),
					point(2021, 900, 0, -100, 1000, -100),
				},
				TotalInvestment: D(1000),
				TotalProfit:     D(-100),
			},
		},
		{
			name:   "start after end",
			option: opt("a", 1000, 100, 10, 2025, 2020),
			want: OptionProjection{
				ID:              "a",
				Name:            "a",
				FortunePerYear:  []YearPoint{},
				TotalInvestment: D(1000),
				TotalProfit:     D(0),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Project([]Option{tc.option})
			if len(got.Options) != 1 {
				t.Fatalf("Project() returned %d option projections, want 1", len(got.Options))
			}
			if diff := cmp.Diff(tc.want, got.Options[0], decimals, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Project() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProject_SingleYear(t *testing.T) {
	for _, o := range []Option{
		opt("a", 0, 0, 0, 2020, 2020),
		opt("b", 1000, 100, 10, 2020, 2020),
		opt("c", 12.5, 7.25, -3, 1999, 1999),
	} {
		p := projectOption(o)
		if len(p.FortunePerYear) != 1 {
			t.Fatalf("%s: got %d points, want 1", o.ID, len(p.FortunePerYear))
		}
		pt := p.FortunePerYear[0]
		want := o.InitialAmount.Add(o.Amount)
		if !pt.Profit.IsZero() {
			t.Errorf("%s: profit = %v, want 0", o.ID, pt.Profit)
		}
		if !pt.Fortune.Equal(want) {
			t.Errorf("%s: fortune = %v, want %v", o.ID, pt.Fortune, want)
		}
		if !pt.TotalInvestment.Equal(want) {
			t.Errorf("%s: total investment = %v, want %v", o.ID, pt.TotalInvestment, want)
		}
	}
}

func TestProject_ZeroRate(t *testing.T) {
	o := opt("flat", 1234.56, 789.01, 0, 2000, 2049)
	p := projectOption(o)
	for n, pt := range p.FortunePerYear {
		want := o.InitialAmount.Add(o.Amount.Mul(D(n + 1)))
		if !pt.Fortune.Equal(want) {
			t.Errorf("year %d: fortune = %v, want %v", pt.Year, pt.Fortune, want)
		}
		if !pt.Profit.IsZero() {
			t.Errorf("year %d: profit = %v, want 0", pt.Year, pt.Profit)
		}
	}
}

func TestProject_TotalProfitIsSumOfProfits(t *testing.T) {
	for _, o := range []Option{
		opt("a", 1000, 100, 10, 2020, 2060),
		opt("b", 0, 1200, 7.35, 2024, 2054),
		opt("c", 50000, 0, -2.5, 2010, 2030),
		opt("d", 10, 10, 0.01, 2000, 2001),
	} {
		p := projectOption(o)
		sum := decimal.Zero
		for _, pt := range p.FortunePerYear {
			sum = sum.Add(pt.Profit)
		}
		if !sum.Equal(p.TotalProfit) {
			t.Errorf("%s: sum of profits = %v, total profit = %v", o.ID, sum, p.TotalProfit)
		}
		last := p.FortunePerYear[len(p.FortunePerYear)-1]
		if !last.TotalProfit.Equal(p.TotalProfit) || !last.TotalInvestment.Equal(p.TotalInvestment) {
			t.Errorf("%s: totals (%v, %v) differ from the last point (%v, %v)", o.ID, p.TotalInvestment, p.TotalProfit, last.TotalInvestment, last.TotalProfit)
		}
		// fortune is what was invested plus what was earned.
		if !last.Fortune.Equal(last.TotalInvestment.Add(last.TotalProfit)) {
			t.Errorf("%s: fortune %v != investment %v + profit %v", o.ID, last.Fortune, last.TotalInvestment, last.TotalProfit)
		}
	}
}

func TestProject_Empty(t *testing.T) {
	for name, options := range map[string][]Option{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			p := Project(options)
			if len(p.Options) != 0 {
				t.Errorf("Options = %v, want empty", p.Options)
			}
			if len(p.SumPerYear) != 0 {
				t.Errorf("SumPerYear = %v, want empty", p.SumPerYear)
			}
			if !p.TotalInvestment.IsZero() || !p.TotalProfit.IsZero() {
				t.Errorf("totals = (%v, %v), want zeros", p.TotalInvestment, p.TotalProfit)
			}
			if !p.Fortune().IsZero() {
				t.Errorf("Fortune() = %v, want 0", p.Fortune())
			}
		})
	}
}

func TestProject_CarryForward(t *testing.T) {
	a := opt("a", 1000, 100, 10, 2020, 2022)
	b := opt("b", 0, 100, 0, 2020, 2025)

	p := Project([]Option{a, b})

	if got, want := p.Years(), []int{2020, 2021, 2022, 2023, 2024, 2025}; !cmp.Equal(got, want) {
		t.Fatalf("Years() = %v, want %v", got, want)
	}

	want := []YearPoint{
		point(2020, 1100+100, 200, 0, 1100+100, 0),
		point(2021, 1310+200, 200, 110, 1200+200, 110),
		point(2022, 1541+300, 200, 131, 1300+300, 241),
		point(2023, 1541+400, 100, 0, 1300+400, 241),
		point(2024, 1541+500, 100, 0, 1300+500, 241),
		point(2025, 1541+600, 100, 0, 1300+600, 241),
	}
	if diff := cmp.Diff(want, p.SumPerYear, decimals); diff != "" {
		t.Errorf("SumPerYear mismatch (-want +got):\n%s", diff)
	}

	// yearly investments only: 3*200 + 3*100.
	if !p.TotalInvestment.Equal(D(900)) {
		t.Errorf("TotalInvestment = %v, want 900", p.TotalInvestment)
	}
	if !p.TotalProfit.Equal(D(241)) {
		t.Errorf("TotalProfit = %v, want 241", p.TotalProfit)
	}
}

func TestProject_LateStartContributesNothing(t *testing.T) {
	early := opt("early", 0, 100, 0, 2020, 2021)
	late := opt("late", 5000, 100, 0, 2023, 2024)

	p := Project([]Option{late, early})

	want := []YearPoint{
		point(2020, 100, 100, 0, 100, 0),
		point(2021, 200, 100, 0, 200, 0),
		point(2023, 5100+200, 100, 0, 5100+200, 0),
		point(2024, 5200+200, 100, 0, 5200+200, 0),
	}
	if diff := cmp.Diff(want, p.SumPerYear, decimals); diff != "" {
		t.Errorf("SumPerYear mismatch (-want +got):\n%s", diff)
	}
	// projections keep the input order.
	if p.Options[0].ID != "late" || p.Options[1].ID != "early" {
		t.Errorf("option order = [%s %s], want [late early]", p.Options[0].ID, p.Options[1].ID)
	}
}

func TestProject_IdenticalOptionsDouble(t *testing.T) {
	single := Project([]Option{opt("a", 1000, 100, 10, 2020, 2022)})
	double := Project([]Option{opt("a", 1000, 100, 10, 2020, 2022), opt("b", 1000, 100, 10, 2020, 2022)})

	if len(double.SumPerYear) != len(single.SumPerYear) {
		t.Fatalf("got %d years, want %d", len(double.SumPerYear), len(single.SumPerYear))
	}
	two := D(2)
	for i, s := range single.SumPerYear {
		d := double.SumPerYear[i]
		if !d.Fortune.Equal(s.Fortune.Mul(two)) {
			t.Errorf("year %d: fortune = %v, want %v", d.Year, d.Fortune, s.Fortune.Mul(two))
		}
	}
	if want := single.TotalInvestment.Mul(two); !double.TotalInvestment.Equal(want) {
		t.Errorf("TotalInvestment = %v, want %v", double.TotalInvestment, want)
	}
	if want := single.TotalProfit.Mul(two); !double.TotalProfit.Equal(want) {
		t.Errorf("TotalProfit = %v, want %v", double.TotalProfit, want)
	}
	if !double.Fortune().Equal(D(3082)) {
		t.Errorf("Fortune() = %v, want 3082", double.Fortune())
	}
}

func TestProject_IsPure(t *testing.T) {
	options := []Option{
		opt("a", 1000, 100, 10, 2020, 2022),
		opt("b", 10, 1000, 4.5, 2021, 2030),
	}
	before := append([]Option(nil), options...)

	first := Project(options)
	second := Project(options)

	if diff := cmp.Diff(first, second, decimals); diff != "" {
		t.Errorf("two projections differ (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, options, decimals, cmp.AllowUnexported(Percent{})); diff != "" {
		t.Errorf("Project() modified its input (-before +after):\n%s", diff)
	}
}

func TestOptionProjection_FortuneAt(t *testing.T) {
	p := projectOption(opt("a", 1000, 100, 10, 2020, 2022))

	testCases := []struct {
		year int
		want decimal.Decimal
	}{
		{year: 2019, want: D(0)},
		{year: 2020, want: D(1100)},
		{year: 2022, want: D(1541)},
		{year: 2030, want: D(1541)},
	}
	for _, tc := range testCases {
		if got := p.FortuneAt(tc.year); !got.Equal(tc.want) {
			t.Errorf("FortuneAt(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}

	if _, ok := p.At(2030); ok {
		t.Error("At(2030) found a point after the end year")
	}
	if pt, ok := p.At(2021); !ok || !pt.Profit.Equal(D(110)) {
		t.Errorf("At(2021) = %v, %v; want profit 110", pt, ok)
	}
}

func TestProject_GrandTotalsAreYearlySums(t *testing.T) {
	p := Project([]Option{
		opt("a", 1000, 100, 10, 2020, 2022),
		opt("b", 500, 50, 5, 2021, 2024),
	})

	investment, profit := D(0), D(0)
	for _, y := range p.SumPerYear {
		investment = investment.Add(y.Investment)
		profit = profit.Add(y.Profit)
	}
	if !p.TotalInvestment.Equal(investment) || !p.TotalProfit.Equal(profit) {
		t.Errorf("totals = (%v, %v), want yearly sums (%v, %v)", p.TotalInvestment, p.TotalProfit, investment, profit)
	}

	// initial amounts are not a yearly investment.
	single := Project([]Option{opt("a", 1000, 100, 10, 2020, 2022)})
	if !single.TotalInvestment.Equal(D(300)) {
		t.Errorf("TotalInvestment = %v, want 300", single.TotalInvestment)
	}
	if !single.Options[0].TotalInvestment.Equal(D(1300)) {
		t.Errorf("option TotalInvestment = %v, want 1300", single.Options[0].TotalInvestment)
	}
}
