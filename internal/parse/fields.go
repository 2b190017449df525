// Package parse turns raw OCR text into structured invoice data. Both
// extractors are pure functions: they never fail, never touch I/O, and
// degrade to partial results when the text gives no evidence for a field.
package parse

import (
	"strings"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/constants"
)

// InvoiceFields holds the header-level attributes recognized in one
// document. Every attribute is either "" (no evidence found) or a trimmed,
// non-empty string; an extractor never produces a blank-but-present value.
type InvoiceFields struct {
	InvoiceNumber string `json:"invoice_number,omitempty"`
	InvoiceDate   string `json:"invoice_date,omitempty"`
	InvoiceStatus string `json:"invoice_status,omitempty"`

	Subtotal    string `json:"subtotal,omitempty"`
	Discount    string `json:"discount,omitempty"`
	TaxRate     string `json:"tax_rate,omitempty"`
	TotalTax    string `json:"total_tax,omitempty"`
	BalanceDue  string `json:"balance_due,omitempty"`
	TotalAmount string `json:"total_amount,omitempty"`
	Currency    string `json:"currency,omitempty"`

	SupplierName    string `json:"supplier_name,omitempty"`
	SupplierAddress string `json:"supplier_address,omitempty"`
	SupplierEmail   string `json:"supplier_email,omitempty"`
	SupplierPhone   string `json:"supplier_phone,omitempty"`

	CustomerName    string `json:"customer_name,omitempty"`
	BillingAddress  string `json:"billing_address,omitempty"`
	ShippingAddress string `json:"shipping_address,omitempty"`

	PaymentTerms        string `json:"payment_terms,omitempty"`
	BankName            string `json:"bank_name,omitempty"`
	Branch              string `json:"branch,omitempty"`
	AccountNumber       string `json:"account_number,omitempty"`
	PaymentInstructions string `json:"payment_instructions,omitempty"`
}

// Empty reports whether no field carries any evidence. The status default
// alone does not count: an all-absent document stays empty even though
// InvoiceStatus is populated with the unpaid sentinel.
func (f InvoiceFields) Empty() bool {
	clone := f
	clone.InvoiceStatus = ""
	return clone == InvoiceFields{}
}

// ExtractFields identifies invoice header attributes in raw OCR text.
// For each field an ordered list of patterns is evaluated against the
// whitespace-normalized text; the first match wins. Absence of evidence
// yields an absent attribute, never an error.
func ExtractFields(text string) InvoiceFields {
	t := normalizeText(text)

	f := InvoiceFields{
		InvoiceNumber:       firstMatch(invoiceNumberPatterns, t),
		InvoiceDate:         firstMatch(invoiceDatePatterns, t),
		Subtotal:            firstMatch(subtotalPatterns, t),
		Discount:            firstMatch(discountPatterns, t),
		TaxRate:             firstMatch(taxRatePatterns, t),
		TotalTax:            firstMatch(totalTaxPatterns, t),
		BalanceDue:          firstMatch(balanceDuePatterns, t),
		Currency:            firstMatch(currencyPatterns, t),
		SupplierName:        firstMatch(supplierNamePatterns, t),
		SupplierAddress:     firstMatch(supplierAddressPatterns, t),
		SupplierEmail:       firstMatch(supplierEmailPatterns, t),
		SupplierPhone:       firstMatch(supplierPhonePatterns, t),
		CustomerName:        firstMatch(customerNamePatterns, t),
		BillingAddress:      firstMatch(billingAddressPatterns, t),
		ShippingAddress:     firstMatch(shippingAddressPatterns, t),
		PaymentTerms:        firstMatch(paymentTermsPatterns, t),
		BankName:            firstMatch(bankNamePatterns, t),
		Branch:              firstMatch(branchPatterns, t),
		AccountNumber:       firstMatch(accountNumberPatterns, t),
		PaymentInstructions: firstMatch(paymentInstructionsPatterns, t),
	}

	// On invoices that print several totals, an explicitly labeled balance
	// due is the authoritative final figure; generic total labels are the
	// fallback.
	f.TotalAmount = f.BalanceDue
	if f.TotalAmount == "" {
		f.TotalAmount = firstMatch(totalAmountPatterns, t)
	}

	// Absence of contrary evidence is treated as unpaid.
	f.InvoiceStatus = strings.ToUpper(firstMatch(invoiceStatusPatterns, t))
	if f.InvoiceStatus == "" {
		f.InvoiceStatus = string(constants.StatusUnpaid)
	}

	return f
}
