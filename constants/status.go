package constants

// InvoiceStatus is the canonical payment status stored on an invoice row.
type InvoiceStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUnpaid    InvoiceStatus = "UNPAID"
	StatusPaid      InvoiceStatus = "PAID"
	StatusOverdue   InvoiceStatus = "OVERDUE"
	StatusCancelled InvoiceStatus = "CANCELLED"
)

// InvoiceStatuses lists every status accepted by the schema.
var InvoiceStatuses = []string{
	string(StatusUnpaid),
	string(StatusPaid),
	string(StatusOverdue),
	string(StatusCancelled),
}
