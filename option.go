package fortune

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOptionNotFound = errors.New("investment option not found")
	ErrDuplicateID    = errors.New("duplicate investment option id")
	ErrAmbiguousID    = errors.New("ambiguous investment option id")
	ErrInvalidYears   = errors.New("start year is after end year")
)

// UnnamedOption is the display name of an option without a name.
const UnnamedOption = "Unnamed investment"

// defaultDuration is the number of years a new option spans after its start year.
const defaultDuration = 10

// ID identifies an Option. It is opaque and stable across edits.
type ID string

// NewID returns a new random ID.
func NewID() ID { return ID(uuid.NewString()) }

// Short returns the first 8 characters of the ID.
func (id ID) Short() string {
	if len(id) > 8 {
		return string(id[:8])
	}
	return string(id)
}

// Option is one independently configured recurring-investment scenario.
type Option struct {
	ID            ID
	Name          string
	InitialAmount decimal.Decimal // added once, before the first year
	Amount        decimal.Decimal // added every year from StartYear to EndYear
	Rate          Percent         // annual growth, not applied in the first year
	Volatility    Percent         // informative only, never used in projections
	StartYear     int
	EndYear       int
}

// NewOption returns an empty option with a fresh ID, starting on 'year' and
// lasting ten more years.
func NewOption(year int) Option {
	return Option{
		ID:            NewID(),
		InitialAmount: decimal.Zero,
		Amount:        decimal.Zero,
		StartYear:     year,
		EndYear:       year + defaultDuration,
	}
}

// DisplayName returns the option name, or a placeholder if it has none.
func (o Option) DisplayName() string {
	if strings.TrimSpace(o.Name) == "" {
		return UnnamedOption
	}
	return o.Name
}

// Years returns the number of active years.
func (o Option) Years() int {
	if o.StartYear > o.EndYear {
		return 0
	}
	return o.EndYear - o.StartYear + 1
}

// Validate checks the option consistency.
func (o Option) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("option %q: missing id", o.DisplayName())
	}
	if o.StartYear > o.EndYear {
		return fmt.Errorf("option %q: %w (%d > %d)", o.DisplayName(), ErrInvalidYears, o.StartYear, o.EndYear)
	}
	return nil
}

// MarshalJSON writes the option with the field names of the stored format.
func (o Option) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", o.ID)
	w.Append("name", o.Name)
	w.Append("amount", o.Amount)
	w.Append("initialAmount", o.InitialAmount)
	w.Append("rate", o.Rate)
	w.Optional("volatility", o.Volatility)
	w.Append("startYear", o.StartYear)
	w.Append("endYear", o.EndYear)
	return w.MarshalJSON()
}

// UnmarshalJSON reads an option, ignoring unknown fields.
func (o *Option) UnmarshalJSON(data []byte) error {
	var j struct {
		ID            ID              `json:"id"`
		Name          string          `json:"name"`
		Amount        decimal.Decimal `json:"amount"`
		InitialAmount decimal.Decimal `json:"initialAmount"`
		Rate          Percent         `json:"rate"`
		Volatility    Percent         `json:"volatility"`
		StartYear     int             `json:"startYear"`
		EndYear       int             `json:"endYear"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*o = Option{
		ID:            j.ID,
		Name:          j.Name,
		InitialAmount: j.InitialAmount,
		Amount:        j.Amount,
		Rate:          j.Rate,
		Volatility:    j.Volatility,
		StartYear:     j.StartYear,
		EndYear:       j.EndYear,
	}
	return nil
}
