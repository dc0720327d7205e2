// Package fortune computes what recurring investments are worth over time.
// It is local-first and stateless: every computation starts from a plain list
// of investment options and returns fresh values.
//
// The core functionalities include:
//   - Investment Options: independently configured recurring-investment
//     scenarios (initial amount, yearly contribution, annual rate, start and
//     end year) and the value-semantics operations to edit a collection of them.
//   - Projection Engine: a pure function turning options into year-by-year
//     fortune, investment and profit series, per option and for the whole
//     portfolio, concluded options carrying their final balance forward.
//   - Exact Arithmetic: amounts and rates are decimals, so a projection is
//     reproducible to the last digit.
//   - Data Persistence: options encode to and from the JSON format used by the
//     local storage of the `ffc` command line tool.
//
// This package serves as the foundational logic for the `ffc` command-line
// tool.
package fortune
