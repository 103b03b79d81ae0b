package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReserveOutput struct {
	ReserveDescription string          `json:"reserveDescription"`
	DateTime           time.Time       `json:"dateTime"`
	InvoiceNumber      int             `json:"invoiceNumber"`
	Amount             decimal.Decimal `json:"amount"`
}
