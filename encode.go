package fortune

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// amounts are stored and exported as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeOptions reads a JSON array of options, as stored by the local storage.
func DecodeOptions(r io.Reader) (Options, error) {
	var opts Options
	if err := json.NewDecoder(r).Decode(&opts); err != nil {
		return nil, fmt.Errorf("cannot decode investment options: %w", err)
	}
	if opts == nil {
		opts = Options{}
	}
	return opts, nil
}

// EncodeOptions writes options as an indented JSON array.
func EncodeOptions(w io.Writer, opts Options) error {
	if opts == nil {
		opts = Options{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(opts); err != nil {
		return fmt.Errorf("cannot encode investment options: %w", err)
	}
	return nil
}

// EncodeProjection writes the projection as indented JSON.
func EncodeProjection(w io.Writer, p Projection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("cannot encode projection: %w", err)
	}
	return nil
}
