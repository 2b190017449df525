package entity

import "time"

// InvoiceItem represents one itemized charge on an invoice.
type InvoiceItem struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	LineTotal   float64   `json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
}
