package dto

import "github.com/shopspring/decimal"

// Prices and amounts go over the wire as JSON numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
