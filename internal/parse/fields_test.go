package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInvoice = `
ACME TRADING (PVT) LTD
No. 12, Galle Road, Colombo 03
Phone: +94 11 234 5678
E-mail: accounts@acmetrading.lk

INVOICE

Invoice No: ABC-123
Invoice Date: 25/09/2025
Customer: LANKA HOLDINGS PLC
Billing Address: 45 Union Place, Colombo 02

Description              Qty    Unit Price    Total
Industrial Widget Kit     2       500.00      1,000.00
Premium Consulting        1     134,000.00  134,000.00

Subtotal            135,000.00
Total Tax                 0.00
Balance Due   Rs. 135,000.00
Grand Total   Rs. 150,000.00

Payment Terms: Net 30
Bank: Commercial Bank PLC
Branch: Kollupitiya
Account No: 8001234567
`

func TestExtractFieldsLabeledInvoiceNumber(t *testing.T) {
	f := ExtractFields("Invoice No: ABC-123")
	assert.Equal(t, "ABC-123", f.InvoiceNumber)
}

func TestExtractFieldsInvoiceNumberVariants(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Invoice Number INV-2024-001", "INV-2024-001"},
		{"INVOICE # 44521", "44521"},
		{"Inv No. 7/2025", "7/2025"},
		{"Bill No: B-9001", "B-9001"},
	}
	for _, tc := range tests {
		f := ExtractFields(tc.text)
		assert.Equal(t, tc.want, f.InvoiceNumber, "text=%q", tc.text)
	}
}

func TestExtractFieldsStatusDefaultsToUnpaid(t *testing.T) {
	f := ExtractFields("Invoice No: X-1\nTotal: 10.00")
	assert.Equal(t, "UNPAID", f.InvoiceStatus)
}

func TestExtractFieldsStatusKeyword(t *testing.T) {
	assert.Equal(t, "PAID", ExtractFields("Status: PAID").InvoiceStatus)
	assert.Equal(t, "OVERDUE", ExtractFields("This invoice is overdue.").InvoiceStatus)
	// "unpaid" must not be misread as "paid".
	assert.Equal(t, "UNPAID", ExtractFields("Marked unpaid by accounts.").InvoiceStatus)
}

func TestExtractFieldsBalanceDueWinsOverGrandTotal(t *testing.T) {
	text := "Balance Due 135,000.00\nGrand Total 150,000.00"
	f := ExtractFields(text)
	assert.Equal(t, "135,000.00", f.TotalAmount)
	assert.Equal(t, "135,000.00", f.BalanceDue)
}

func TestExtractFieldsGenericTotalFallback(t *testing.T) {
	f := ExtractFields("Grand Total 150,000.00")
	assert.Equal(t, "150,000.00", f.TotalAmount)
	assert.Empty(t, f.BalanceDue)
}

func TestExtractFieldsCurrencyPreference(t *testing.T) {
	// ISO-like code beats a symbol when both are present.
	f := ExtractFields("Amount Due: LKR 5,000.00 (Rs. 5,000.00)")
	assert.Equal(t, "LKR", f.Currency)

	f = ExtractFields("Total: Rs. 5,000.00")
	assert.Equal(t, "Rs.", f.Currency)

	f = ExtractFields("Total: $120.00")
	assert.Equal(t, "$", f.Currency)
}

func TestExtractFieldsAccountNumber(t *testing.T) {
	f := ExtractFields("Account No: 8001234567")
	assert.Equal(t, "8001234567", f.AccountNumber)

	// Permissive fallback: any standalone 8+ digit run.
	f = ExtractFields("ref 12345678 end")
	assert.Equal(t, "12345678", f.AccountNumber)

	f = ExtractFields("ref 1234567 end")
	assert.Empty(t, f.AccountNumber)
}

func TestExtractFieldsCustomerNamePLCHeuristic(t *testing.T) {
	f := ExtractFields("sold goods to LANKA HOLDINGS PLC on credit")
	assert.Equal(t, "LANKA HOLDINGS PLC", f.CustomerName)

	// Only all-caps names qualify; lowercase prose must not.
	f = ExtractFields("services rendered to the plc last month")
	assert.Empty(t, f.CustomerName)
}

func TestExtractFieldsBankNameHeuristic(t *testing.T) {
	f := ExtractFields("Commercial Bank PLC, Kollupitiya")
	assert.Equal(t, "Commercial Bank PLC", f.BankName)

	// Capitalization is load-bearing: plain prose stays unmatched.
	f = ExtractFields("funds were moved to the river bank yesterday")
	assert.Empty(t, f.BankName)
}

func TestExtractFieldsSupplierAddressIgnoresQualifiedLabels(t *testing.T) {
	f := ExtractFields("Billing Address: 45 Union Place, Colombo 02\nShipping Address: 9 Dock Rd")
	assert.Empty(t, f.SupplierAddress)
	assert.Equal(t, "45 Union Place, Colombo 02", f.BillingAddress)

	f = ExtractFields("Address: No. 12, Galle Road, Colombo 03")
	assert.Equal(t, "No. 12, Galle Road, Colombo 03", f.SupplierAddress)
}

func TestExtractFieldsSampleInvoice(t *testing.T) {
	f := ExtractFields(sampleInvoice)

	assert.Equal(t, "ABC-123", f.InvoiceNumber)
	assert.Equal(t, "25/09/2025", f.InvoiceDate)
	assert.Equal(t, "UNPAID", f.InvoiceStatus)
	assert.Equal(t, "135,000.00", f.Subtotal)
	assert.Equal(t, "0.00", f.TotalTax)
	assert.Equal(t, "135,000.00", f.BalanceDue)
	assert.Equal(t, "135,000.00", f.TotalAmount)
	assert.Equal(t, "accounts@acmetrading.lk", f.SupplierEmail)
	assert.Equal(t, "+94 11 234 5678", f.SupplierPhone)
	assert.Equal(t, "LANKA HOLDINGS PLC", f.CustomerName)
	assert.Equal(t, "45 Union Place, Colombo 02", f.BillingAddress)
	assert.Empty(t, f.SupplierAddress)
	assert.Equal(t, "Net 30", f.PaymentTerms)
	assert.Equal(t, "Commercial Bank PLC", f.BankName)
	assert.Equal(t, "Kollupitiya", f.Branch)
	assert.Equal(t, "8001234567", f.AccountNumber)
}

func TestExtractFieldsIrregularWhitespace(t *testing.T) {
	// OCR noise: runs of spaces and tabs inside the label.
	f := ExtractFields("Invoice   No \t : ABC-9")
	assert.Equal(t, "ABC-9", f.InvoiceNumber)
}

func TestExtractFieldsEmptyInput(t *testing.T) {
	f := ExtractFields("")
	assert.True(t, f.Empty())
	// The unpaid sentinel is still applied.
	assert.Equal(t, "UNPAID", f.InvoiceStatus)
}

func TestExtractFieldsNeverReturnsBlankValue(t *testing.T) {
	f := ExtractFields(sampleInvoice)
	for name, v := range map[string]string{
		"invoice_number": f.InvoiceNumber,
		"subtotal":       f.Subtotal,
		"total_amount":   f.TotalAmount,
		"customer_name":  f.CustomerName,
		"bank_name":      f.BankName,
	} {
		require.NotEmpty(t, v, name)
		assert.Equal(t, strings.TrimSpace(v), v, name)
	}
}

func TestExtractFieldsIdempotent(t *testing.T) {
	first := ExtractFields(sampleInvoice)
	second := ExtractFields(sampleInvoice)
	assert.Equal(t, first, second)
}
