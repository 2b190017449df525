// Code generated by ent, DO NOT EDIT.

package invoice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldID, id))
}

// InvoiceNumber applies equality check predicate on the "invoice_number" field. It's identical to InvoiceNumberEQ.
func InvoiceNumber(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceDate applies equality check predicate on the "invoice_date" field. It's identical to InvoiceDateEQ.
func InvoiceDate(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldStatus, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSubtotal, v))
}

// Discount applies equality check predicate on the "discount" field. It's identical to DiscountEQ.
func Discount(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldDiscount, v))
}

// TaxRate applies equality check predicate on the "tax_rate" field. It's identical to TaxRateEQ.
func TaxRate(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTaxRate, v))
}

// TotalTax applies equality check predicate on the "total_tax" field. It's identical to TotalTaxEQ.
func TotalTax(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalTax, v))
}

// BalanceDue applies equality check predicate on the "balance_due" field. It's identical to BalanceDueEQ.
func BalanceDue(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBalanceDue, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCurrency, v))
}

// PaymentTerms applies equality check predicate on the "payment_terms" field. It's identical to PaymentTermsEQ.
func PaymentTerms(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentTerms, v))
}

// BankName applies equality check predicate on the "bank_name" field. It's identical to BankNameEQ.
func BankName(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBankName, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBranch, v))
}

// AccountNumber applies equality check predicate on the "account_number" field. It's identical to AccountNumberEQ.
func AccountNumber(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldAccountNumber, v))
}

// PaymentInstructions applies equality check predicate on the "payment_instructions" field. It's identical to PaymentInstructionsEQ.
func PaymentInstructions(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentInstructions, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSourceFile, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// InvoiceNumberEQ applies the EQ predicate on the "invoice_number" field.
func InvoiceNumberEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberNEQ applies the NEQ predicate on the "invoice_number" field.
func InvoiceNumberNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldInvoiceNumber, v))
}

// InvoiceNumberIn applies the In predicate on the "invoice_number" field.
func InvoiceNumberIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberNotIn applies the NotIn predicate on the "invoice_number" field.
func InvoiceNumberNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldInvoiceNumber, vs...))
}

// InvoiceNumberGT applies the GT predicate on the "invoice_number" field.
func InvoiceNumberGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldInvoiceNumber, v))
}

// InvoiceNumberGTE applies the GTE predicate on the "invoice_number" field.
func InvoiceNumberGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldInvoiceNumber, v))
}

// InvoiceNumberLT applies the LT predicate on the "invoice_number" field.
func InvoiceNumberLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldInvoiceNumber, v))
}

// InvoiceNumberLTE applies the LTE predicate on the "invoice_number" field.
func InvoiceNumberLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldInvoiceNumber, v))
}

// InvoiceNumberContains applies the Contains predicate on the "invoice_number" field.
func InvoiceNumberContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldInvoiceNumber, v))
}

// InvoiceNumberHasPrefix applies the HasPrefix predicate on the "invoice_number" field.
func InvoiceNumberHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldInvoiceNumber, v))
}

// InvoiceNumberHasSuffix applies the HasSuffix predicate on the "invoice_number" field.
func InvoiceNumberHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldInvoiceNumber, v))
}

// InvoiceNumberEqualFold applies the EqualFold predicate on the "invoice_number" field.
func InvoiceNumberEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldInvoiceNumber, v))
}

// InvoiceNumberContainsFold applies the ContainsFold predicate on the "invoice_number" field.
func InvoiceNumberContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldInvoiceNumber, v))
}

// InvoiceDateEQ applies the EQ predicate on the "invoice_date" field.
func InvoiceDateEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldInvoiceDate, v))
}

// InvoiceDateNEQ applies the NEQ predicate on the "invoice_date" field.
func InvoiceDateNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldInvoiceDate, v))
}

// InvoiceDateIn applies the In predicate on the "invoice_date" field.
func InvoiceDateIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldInvoiceDate, vs...))
}

// InvoiceDateNotIn applies the NotIn predicate on the "invoice_date" field.
func InvoiceDateNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldInvoiceDate, vs...))
}

// InvoiceDateGT applies the GT predicate on the "invoice_date" field.
func InvoiceDateGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldInvoiceDate, v))
}

// InvoiceDateGTE applies the GTE predicate on the "invoice_date" field.
func InvoiceDateGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldInvoiceDate, v))
}

// InvoiceDateLT applies the LT predicate on the "invoice_date" field.
func InvoiceDateLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldInvoiceDate, v))
}

// InvoiceDateLTE applies the LTE predicate on the "invoice_date" field.
func InvoiceDateLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldInvoiceDate, v))
}

// InvoiceDateContains applies the Contains predicate on the "invoice_date" field.
func InvoiceDateContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldInvoiceDate, v))
}

// InvoiceDateHasPrefix applies the HasPrefix predicate on the "invoice_date" field.
func InvoiceDateHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldInvoiceDate, v))
}

// InvoiceDateHasSuffix applies the HasSuffix predicate on the "invoice_date" field.
func InvoiceDateHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldInvoiceDate, v))
}

// InvoiceDateIsNil applies the IsNil predicate on the "invoice_date" field.
func InvoiceDateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldInvoiceDate))
}

// InvoiceDateNotNil applies the NotNil predicate on the "invoice_date" field.
func InvoiceDateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldInvoiceDate))
}

// InvoiceDateEqualFold applies the EqualFold predicate on the "invoice_date" field.
func InvoiceDateEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldInvoiceDate, v))
}

// InvoiceDateContainsFold applies the ContainsFold predicate on the "invoice_date" field.
func InvoiceDateContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldInvoiceDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldStatus, v))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSubtotal, v))
}

// SubtotalIsNil applies the IsNil predicate on the "subtotal" field.
func SubtotalIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSubtotal))
}

// SubtotalNotNil applies the NotNil predicate on the "subtotal" field.
func SubtotalNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSubtotal))
}

// DiscountEQ applies the EQ predicate on the "discount" field.
func DiscountEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldDiscount, v))
}

// DiscountNEQ applies the NEQ predicate on the "discount" field.
func DiscountNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldDiscount, v))
}

// DiscountIn applies the In predicate on the "discount" field.
func DiscountIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldDiscount, vs...))
}

// DiscountNotIn applies the NotIn predicate on the "discount" field.
func DiscountNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldDiscount, vs...))
}

// DiscountGT applies the GT predicate on the "discount" field.
func DiscountGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldDiscount, v))
}

// DiscountGTE applies the GTE predicate on the "discount" field.
func DiscountGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldDiscount, v))
}

// DiscountLT applies the LT predicate on the "discount" field.
func DiscountLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldDiscount, v))
}

// DiscountLTE applies the LTE predicate on the "discount" field.
func DiscountLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldDiscount, v))
}

// DiscountIsNil applies the IsNil predicate on the "discount" field.
func DiscountIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldDiscount))
}

// DiscountNotNil applies the NotNil predicate on the "discount" field.
func DiscountNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldDiscount))
}

// TaxRateEQ applies the EQ predicate on the "tax_rate" field.
func TaxRateEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTaxRate, v))
}

// TaxRateNEQ applies the NEQ predicate on the "tax_rate" field.
func TaxRateNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTaxRate, v))
}

// TaxRateIn applies the In predicate on the "tax_rate" field.
func TaxRateIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTaxRate, vs...))
}

// TaxRateNotIn applies the NotIn predicate on the "tax_rate" field.
func TaxRateNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTaxRate, vs...))
}

// TaxRateGT applies the GT predicate on the "tax_rate" field.
func TaxRateGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTaxRate, v))
}

// TaxRateGTE applies the GTE predicate on the "tax_rate" field.
func TaxRateGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTaxRate, v))
}

// TaxRateLT applies the LT predicate on the "tax_rate" field.
func TaxRateLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTaxRate, v))
}

// TaxRateLTE applies the LTE predicate on the "tax_rate" field.
func TaxRateLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTaxRate, v))
}

// TaxRateIsNil applies the IsNil predicate on the "tax_rate" field.
func TaxRateIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTaxRate))
}

// TaxRateNotNil applies the NotNil predicate on the "tax_rate" field.
func TaxRateNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTaxRate))
}

// TotalTaxEQ applies the EQ predicate on the "total_tax" field.
func TotalTaxEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalTax, v))
}

// TotalTaxNEQ applies the NEQ predicate on the "total_tax" field.
func TotalTaxNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTotalTax, v))
}

// TotalTaxIn applies the In predicate on the "total_tax" field.
func TotalTaxIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTotalTax, vs...))
}

// TotalTaxNotIn applies the NotIn predicate on the "total_tax" field.
func TotalTaxNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTotalTax, vs...))
}

// TotalTaxGT applies the GT predicate on the "total_tax" field.
func TotalTaxGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTotalTax, v))
}

// TotalTaxGTE applies the GTE predicate on the "total_tax" field.
func TotalTaxGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTotalTax, v))
}

// TotalTaxLT applies the LT predicate on the "total_tax" field.
func TotalTaxLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTotalTax, v))
}

// TotalTaxLTE applies the LTE predicate on the "total_tax" field.
func TotalTaxLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTotalTax, v))
}

// TotalTaxIsNil applies the IsNil predicate on the "total_tax" field.
func TotalTaxIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTotalTax))
}

// TotalTaxNotNil applies the NotNil predicate on the "total_tax" field.
func TotalTaxNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTotalTax))
}

// BalanceDueEQ applies the EQ predicate on the "balance_due" field.
func BalanceDueEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBalanceDue, v))
}

// BalanceDueNEQ applies the NEQ predicate on the "balance_due" field.
func BalanceDueNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBalanceDue, v))
}

// BalanceDueIn applies the In predicate on the "balance_due" field.
func BalanceDueIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBalanceDue, vs...))
}

// BalanceDueNotIn applies the NotIn predicate on the "balance_due" field.
func BalanceDueNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBalanceDue, vs...))
}

// BalanceDueGT applies the GT predicate on the "balance_due" field.
func BalanceDueGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBalanceDue, v))
}

// BalanceDueGTE applies the GTE predicate on the "balance_due" field.
func BalanceDueGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBalanceDue, v))
}

// BalanceDueLT applies the LT predicate on the "balance_due" field.
func BalanceDueLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBalanceDue, v))
}

// BalanceDueLTE applies the LTE predicate on the "balance_due" field.
func BalanceDueLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBalanceDue, v))
}

// BalanceDueIsNil applies the IsNil predicate on the "balance_due" field.
func BalanceDueIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBalanceDue))
}

// BalanceDueNotNil applies the NotNil predicate on the "balance_due" field.
func BalanceDueNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBalanceDue))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldTotalAmount, v))
}

// TotalAmountIsNil applies the IsNil predicate on the "total_amount" field.
func TotalAmountIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldTotalAmount))
}

// TotalAmountNotNil applies the NotNil predicate on the "total_amount" field.
func TotalAmountNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldTotalAmount))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyIsNil applies the IsNil predicate on the "currency" field.
func CurrencyIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldCurrency))
}

// CurrencyNotNil applies the NotNil predicate on the "currency" field.
func CurrencyNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldCurrency))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldCurrency, v))
}

// PaymentTermsEQ applies the EQ predicate on the "payment_terms" field.
func PaymentTermsEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentTerms, v))
}

// PaymentTermsNEQ applies the NEQ predicate on the "payment_terms" field.
func PaymentTermsNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldPaymentTerms, v))
}

// PaymentTermsIn applies the In predicate on the "payment_terms" field.
func PaymentTermsIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldPaymentTerms, vs...))
}

// PaymentTermsNotIn applies the NotIn predicate on the "payment_terms" field.
func PaymentTermsNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldPaymentTerms, vs...))
}

// PaymentTermsGT applies the GT predicate on the "payment_terms" field.
func PaymentTermsGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldPaymentTerms, v))
}

// PaymentTermsGTE applies the GTE predicate on the "payment_terms" field.
func PaymentTermsGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldPaymentTerms, v))
}

// PaymentTermsLT applies the LT predicate on the "payment_terms" field.
func PaymentTermsLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldPaymentTerms, v))
}

// PaymentTermsLTE applies the LTE predicate on the "payment_terms" field.
func PaymentTermsLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldPaymentTerms, v))
}

// PaymentTermsContains applies the Contains predicate on the "payment_terms" field.
func PaymentTermsContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldPaymentTerms, v))
}

// PaymentTermsHasPrefix applies the HasPrefix predicate on the "payment_terms" field.
func PaymentTermsHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldPaymentTerms, v))
}

// PaymentTermsHasSuffix applies the HasSuffix predicate on the "payment_terms" field.
func PaymentTermsHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldPaymentTerms, v))
}

// PaymentTermsIsNil applies the IsNil predicate on the "payment_terms" field.
func PaymentTermsIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldPaymentTerms))
}

// PaymentTermsNotNil applies the NotNil predicate on the "payment_terms" field.
func PaymentTermsNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldPaymentTerms))
}

// PaymentTermsEqualFold applies the EqualFold predicate on the "payment_terms" field.
func PaymentTermsEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldPaymentTerms, v))
}

// PaymentTermsContainsFold applies the ContainsFold predicate on the "payment_terms" field.
func PaymentTermsContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldPaymentTerms, v))
}

// BankNameEQ applies the EQ predicate on the "bank_name" field.
func BankNameEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBankName, v))
}

// BankNameNEQ applies the NEQ predicate on the "bank_name" field.
func BankNameNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBankName, v))
}

// BankNameIn applies the In predicate on the "bank_name" field.
func BankNameIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBankName, vs...))
}

// BankNameNotIn applies the NotIn predicate on the "bank_name" field.
func BankNameNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBankName, vs...))
}

// BankNameGT applies the GT predicate on the "bank_name" field.
func BankNameGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBankName, v))
}

// BankNameGTE applies the GTE predicate on the "bank_name" field.
func BankNameGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBankName, v))
}

// BankNameLT applies the LT predicate on the "bank_name" field.
func BankNameLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBankName, v))
}

// BankNameLTE applies the LTE predicate on the "bank_name" field.
func BankNameLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBankName, v))
}

// BankNameContains applies the Contains predicate on the "bank_name" field.
func BankNameContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBankName, v))
}

// BankNameHasPrefix applies the HasPrefix predicate on the "bank_name" field.
func BankNameHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBankName, v))
}

// BankNameHasSuffix applies the HasSuffix predicate on the "bank_name" field.
func BankNameHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBankName, v))
}

// BankNameIsNil applies the IsNil predicate on the "bank_name" field.
func BankNameIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBankName))
}

// BankNameNotNil applies the NotNil predicate on the "bank_name" field.
func BankNameNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBankName))
}

// BankNameEqualFold applies the EqualFold predicate on the "bank_name" field.
func BankNameEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBankName, v))
}

// BankNameContainsFold applies the ContainsFold predicate on the "bank_name" field.
func BankNameContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBankName, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchIsNil applies the IsNil predicate on the "branch" field.
func BranchIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldBranch))
}

// BranchNotNil applies the NotNil predicate on the "branch" field.
func BranchNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldBranch))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldBranch, v))
}

// AccountNumberEQ applies the EQ predicate on the "account_number" field.
func AccountNumberEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldAccountNumber, v))
}

// AccountNumberNEQ applies the NEQ predicate on the "account_number" field.
func AccountNumberNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldAccountNumber, v))
}

// AccountNumberIn applies the In predicate on the "account_number" field.
func AccountNumberIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldAccountNumber, vs...))
}

// AccountNumberNotIn applies the NotIn predicate on the "account_number" field.
func AccountNumberNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldAccountNumber, vs...))
}

// AccountNumberGT applies the GT predicate on the "account_number" field.
func AccountNumberGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldAccountNumber, v))
}

// AccountNumberGTE applies the GTE predicate on the "account_number" field.
func AccountNumberGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldAccountNumber, v))
}

// AccountNumberLT applies the LT predicate on the "account_number" field.
func AccountNumberLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldAccountNumber, v))
}

// AccountNumberLTE applies the LTE predicate on the "account_number" field.
func AccountNumberLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldAccountNumber, v))
}

// AccountNumberContains applies the Contains predicate on the "account_number" field.
func AccountNumberContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldAccountNumber, v))
}

// AccountNumberHasPrefix applies the HasPrefix predicate on the "account_number" field.
func AccountNumberHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldAccountNumber, v))
}

// AccountNumberHasSuffix applies the HasSuffix predicate on the "account_number" field.
func AccountNumberHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldAccountNumber, v))
}

// AccountNumberIsNil applies the IsNil predicate on the "account_number" field.
func AccountNumberIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldAccountNumber))
}

// AccountNumberNotNil applies the NotNil predicate on the "account_number" field.
func AccountNumberNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldAccountNumber))
}

// AccountNumberEqualFold applies the EqualFold predicate on the "account_number" field.
func AccountNumberEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldAccountNumber, v))
}

// AccountNumberContainsFold applies the ContainsFold predicate on the "account_number" field.
func AccountNumberContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldAccountNumber, v))
}

// PaymentInstructionsEQ applies the EQ predicate on the "payment_instructions" field.
func PaymentInstructionsEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldPaymentInstructions, v))
}

// PaymentInstructionsNEQ applies the NEQ predicate on the "payment_instructions" field.
func PaymentInstructionsNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldPaymentInstructions, v))
}

// PaymentInstructionsIn applies the In predicate on the "payment_instructions" field.
func PaymentInstructionsIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldPaymentInstructions, vs...))
}

// PaymentInstructionsNotIn applies the NotIn predicate on the "payment_instructions" field.
func PaymentInstructionsNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldPaymentInstructions, vs...))
}

// PaymentInstructionsGT applies the GT predicate on the "payment_instructions" field.
func PaymentInstructionsGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldPaymentInstructions, v))
}

// PaymentInstructionsGTE applies the GTE predicate on the "payment_instructions" field.
func PaymentInstructionsGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldPaymentInstructions, v))
}

// PaymentInstructionsLT applies the LT predicate on the "payment_instructions" field.
func PaymentInstructionsLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldPaymentInstructions, v))
}

// PaymentInstructionsLTE applies the LTE predicate on the "payment_instructions" field.
func PaymentInstructionsLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldPaymentInstructions, v))
}

// PaymentInstructionsContains applies the Contains predicate on the "payment_instructions" field.
func PaymentInstructionsContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldPaymentInstructions, v))
}

// PaymentInstructionsHasPrefix applies the HasPrefix predicate on the "payment_instructions" field.
func PaymentInstructionsHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldPaymentInstructions, v))
}

// PaymentInstructionsHasSuffix applies the HasSuffix predicate on the "payment_instructions" field.
func PaymentInstructionsHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldPaymentInstructions, v))
}

// PaymentInstructionsIsNil applies the IsNil predicate on the "payment_instructions" field.
func PaymentInstructionsIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldPaymentInstructions))
}

// PaymentInstructionsNotNil applies the NotNil predicate on the "payment_instructions" field.
func PaymentInstructionsNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldPaymentInstructions))
}

// PaymentInstructionsEqualFold applies the EqualFold predicate on the "payment_instructions" field.
func PaymentInstructionsEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldPaymentInstructions, v))
}

// PaymentInstructionsContainsFold applies the ContainsFold predicate on the "payment_instructions" field.
func PaymentInstructionsContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldPaymentInstructions, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileIsNil applies the IsNil predicate on the "source_file" field.
func SourceFileIsNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldIsNull(FieldSourceFile))
}

// SourceFileNotNil applies the NotNil predicate on the "source_file" field.
func SourceFileNotNil() predicate.Invoice {
	return predicate.Invoice(sql.FieldNotNull(FieldSourceFile))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.Invoice {
	return predicate.Invoice(sql.FieldContainsFold(FieldSourceFile, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Invoice {
	return predicate.Invoice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSupplier applies the HasEdge predicate on the "supplier" edge.
func HasSupplier() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SupplierTable, SupplierColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSupplierWith applies the HasEdge predicate on the "supplier" edge with a given conditions (other predicates).
func HasSupplierWith(preds ...predicate.Supplier) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newSupplierStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCustomer applies the HasEdge predicate on the "customer" edge.
func HasCustomer() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CustomerTable, CustomerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCustomerWith applies the HasEdge predicate on the "customer" edge with a given conditions (other predicates).
func HasCustomerWith(preds ...predicate.Customer) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newCustomerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.InvoiceItem) predicate.Invoice {
	return predicate.Invoice(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Invoice) predicate.Invoice {
	return predicate.Invoice(sql.NotPredicates(p))
}
