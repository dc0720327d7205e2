package fortune

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Options is an ordered collection of investment options.
//
// Its methods never modify the receiver: they return a new collection, so a
// caller can always keep the previous state around.
type Options []Option

// Add returns a new collection with 'o' appended.
func (opts Options) Add(o Option) Options {
	return append(slices.Clone(opts), o)
}

// index returns the position of the option 'id' or -1.
func (opts Options) index(id ID) int {
	return slices.IndexFunc(opts, func(o Option) bool { return o.ID == id })
}

// Find returns the option 'id'.
func (opts Options) Find(id ID) (Option, bool) {
	i := opts.index(id)
	if i < 0 {
		return Option{}, false
	}
	return opts[i], true
}

// Resolve returns the full ID of the only option whose ID starts with 'prefix'.
func (opts Options) Resolve(prefix string) (ID, error) {
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrOptionNotFound)
	}
	var found []ID
	for _, o := range opts {
		if o.ID == ID(prefix) {
			return o.ID, nil
		}
		if strings.HasPrefix(string(o.ID), prefix) {
			found = append(found, o.ID)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrOptionNotFound, prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d options", ErrAmbiguousID, prefix, len(found))
	}
}

// Update returns a new collection where the option with the same ID as 'o' is replaced by 'o'.
func (opts Options) Update(o Option) (Options, error) {
	i := opts.index(o.ID)
	if i < 0 {
		return opts, fmt.Errorf("%w: %q", ErrOptionNotFound, o.ID)
	}
	res := slices.Clone(opts)
	res[i] = o
	return res, nil
}

// Duplicate returns a new collection with a copy of option 'id' appended
// under a fresh ID, and that copy.
func (opts Options) Duplicate(id ID) (Options, Option, error) {
	o, ok := opts.Find(id)
	if !ok {
		return opts, Option{}, fmt.Errorf("%w: %q", ErrOptionNotFound, id)
	}
	o.ID = NewID()
	return opts.Add(o), o, nil
}

// Remove returns a new collection without option 'id'.
func (opts Options) Remove(id ID) (Options, error) {
	i := opts.index(id)
	if i < 0 {
		return opts, fmt.Errorf("%w: %q", ErrOptionNotFound, id)
	}
	return slices.Delete(slices.Clone(opts), i, i+1), nil
}

// Validate reports every inconsistency in the collection: invalid options and
// duplicate IDs.
func (opts Options) Validate() error {
	var errs []error
	seen := make(map[ID]bool, len(opts))
	for _, o := range opts {
		if err := o.Validate(); err != nil {
			errs = append(errs, err)
		}
		if seen[o.ID] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, o.ID))
		}
		seen[o.ID] = true
	}
	return errors.Join(errs...)
}

// Span returns the first and last year covered by any option. ok is false when
// no option covers any year.
func (opts Options) Span() (first, last int, ok bool) {
	for _, o := range opts {
		if o.Years() == 0 {
			continue
		}
		if !ok || o.StartYear < first {
			first = o.StartYear
		}
		if !ok || o.EndYear > last {
			last = o.EndYear
		}
		ok = true
	}
	return
}
