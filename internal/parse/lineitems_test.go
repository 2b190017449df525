package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLineItemsNoHeader(t *testing.T) {
	text := "Invoice No: ABC-1\nWidget A  2  500.00  1000.00\nSubtotal 1000.00"
	items := ExtractLineItems(text)
	assert.Empty(t, items)
}

func TestExtractLineItemsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractLineItems(""))
}

func TestExtractLineItemsSingleRowWithQuantity(t *testing.T) {
	text := `Description  Qty  Unit Price  Total
Widget A  2  500.00  1000.00
Subtotal 1000.00`
	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget A", items[0].Description)
	assert.Equal(t, "2", items[0].Quantity)
	assert.Equal(t, "500.00", items[0].UnitPrice)
	assert.Equal(t, "1000.00", items[0].LineTotal)
}

func TestExtractLineItemsQuantityDefaultsToOne(t *testing.T) {
	text := `Description  Qty  Unit Price  Total
Annual Maintenance  1,200.00  1,200.00
Grand Total 1,200.00`
	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Annual Maintenance", items[0].Description)
	assert.Equal(t, "1", items[0].Quantity)
	assert.Equal(t, "1,200.00", items[0].UnitPrice)
	assert.Equal(t, "1,200.00", items[0].LineTotal)
}

func TestExtractLineItemsSingleAmountNotEmitted(t *testing.T) {
	text := `Description  Qty  Unit Price  Total
Shipping Fee 500.00
Subtotal 500.00`
	items := ExtractLineItems(text)
	assert.Empty(t, items)
}

func TestExtractLineItemsContinuationJoin(t *testing.T) {
	text := `Description  Qty  Unit Price  Total
Premium Consult-
ing Services  200.00  200.00
Subtotal 200.00`
	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Premium Consult- ing Services", items[0].Description)
	assert.Equal(t, "1", items[0].Quantity)
}

func TestExtractLineItemsStopsAtFooter(t *testing.T) {
	text := `Description  Qty  Unit Price  Total
Widget A  2  500.00  1000.00
Balance Due 1000.00
Widget B  3  100.00  300.00`
	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget A", items[0].Description)
}

func TestExtractLineItemsFooterVariants(t *testing.T) {
	for _, footer := range []string{"Subtotal", "Grand Total", "Total Tax", "Balance Due"} {
		text := "Description Qty Unit Price Total\n" +
			"Widget A  2  500.00  1000.00\n" +
			footer + " 1000.00\n" +
			"Phantom Row  9  9.00  81.00"
		items := ExtractLineItems(text)
		require.Len(t, items, 1, "footer=%q", footer)
	}
}

func TestExtractLineItemsDocumentOrder(t *testing.T) {
	text := `Description  Qty  Unit Price  Total
First Widget  1  10.00  10.00
Second Widget  2  20.00  40.00
Third Widget  3  30.00  90.00
Subtotal 140.00`
	items := ExtractLineItems(text)
	require.Len(t, items, 3)
	assert.Equal(t, "First Widget", items[0].Description)
	assert.Equal(t, "Second Widget", items[1].Description)
	assert.Equal(t, "Third Widget", items[2].Description)
}

func TestExtractLineItemsNoiseRowDiscarded(t *testing.T) {
	// Stray border artifacts with amounts but no real description.
	text := `Description  Qty  Unit Price  Total
-- 1.00 2.00
Real Widget  2  5.00  10.00
Subtotal 12.00`
	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Real Widget", items[0].Description)
}

func TestExtractLineItemsLeadingPunctuationStripped(t *testing.T) {
	text := `Description  Qty  Unit Price  Total
- Cleaning Service: 2 40.00 80.00
Subtotal 80.00`
	items := ExtractLineItems(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Cleaning Service", items[0].Description)
	assert.Equal(t, "2", items[0].Quantity)
}

func TestExtractLineItemsQuantityHeaderSpellings(t *testing.T) {
	for _, header := range []string{
		"Description Qty Unit Price Total",
		"DESCRIPTION QUANTITY UNIT PRICE LINE TOTAL",
		"Item Description | Qty | Price | Amount",
	} {
		text := header + "\nWidget A  2  500.00  1000.00\nSubtotal 1000.00"
		items := ExtractLineItems(text)
		require.Len(t, items, 1, "header=%q", header)
	}
}

func TestExtractLineItemsIdempotent(t *testing.T) {
	text := `Description  Qty  Unit Price  Total
Widget A  2  500.00  1000.00
Subtotal 1000.00`
	assert.Equal(t, ExtractLineItems(text), ExtractLineItems(text))
}
