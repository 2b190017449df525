package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the extracted-fields sidecar document.
func BuildInvoiceJSONSchema() map[string]any {
	strProp := map[string]any{"type": "string"}
	props := map[string]any{
		"invoice_number":       map[string]any{"type": "string", "minLength": 1},
		"invoice_date":         strProp,
		"invoice_status":       strProp,
		"subtotal":             amountProp(),
		"discount":             amountProp(),
		"tax_rate":             amountProp(),
		"total_tax":            amountProp(),
		"balance_due":          amountProp(),
		"total_amount":         amountProp(),
		"currency":             strProp,
		"supplier_name":        strProp,
		"supplier_address":     strProp,
		"supplier_email":       strProp,
		"supplier_phone":       strProp,
		"customer_name":        strProp,
		"billing_address":      strProp,
		"shipping_address":     strProp,
		"payment_terms":        strProp,
		"bank_name":            strProp,
		"branch":               strProp,
		"account_number":       strProp,
		"payment_instructions": strProp,
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"invoice_number", "invoice_status"},
	}
}

// amountProp matches extracted money strings, which keep thousands
// separators ("135,000.00") and may carry a percent sign for rates.
func amountProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^\d[\d,]*(\.\d{1,2})?%?$`,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
