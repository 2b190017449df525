package parse

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// LineItem is one itemized charge parsed from the invoice table. UnitPrice
// and LineTotal always survive numeric conversion; Quantity defaults to
// "1" when the row carries no quantity column.
type LineItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// tableState drives the single-pass table scan.
type tableState int

const (
	seekingHeader tableState = iota
	inTable
	finished
)

var (
	// A header line announces the table: it names both a description
	// column and a quantity column, in any layout.
	reTableHeader = regexp.MustCompile(`(?i)\bdescription\b.*\b(?:qty|quantity)\b`)
	// Totals and footer lines terminate the table.
	reTableFooter = regexp.MustCompile(`(?i)subtotal|grand total|total tax|balance due`)
	// A standalone integer immediately before the first monetary token is
	// the row's quantity column.
	reQtyTail = regexp.MustCompile(`\s(\d{1,4})$`)
)

// MinDescriptionLen is the minimum rune length a reassembled description
// must reach before a row is accepted; shorter rows are table noise such
// as stray borders or page artifacts. A variable so vendor layouts that
// need a stricter cutoff can raise it.
var MinDescriptionLen = 3

// ExtractLineItems locates the line-item table in raw OCR text and parses
// each row into a LineItem, in document order. It returns an empty slice
// when no recognizable table exists and never fails on malformed input.
func ExtractLineItems(text string) []LineItem {
	items := make([]LineItem, 0, 8)
	state := seekingHeader

	// One line of lookback: a non-matching table line is retained as a
	// candidate prefix for the next row's description, reassembling
	// descriptions that OCR split across two physical lines.
	pending := ""

scan:
	for _, line := range splitLines(text) {
		if line == "" {
			continue
		}
		switch state {
		case seekingHeader:
			if reTableHeader.MatchString(line) {
				state = inTable
			}
		case inTable:
			if reTableFooter.MatchString(line) {
				state = finished
				break scan
			}
			if item, ok := parseRow(line, pending); ok {
				items = append(items, item)
				pending = ""
			} else if len(reMoney.FindAllString(line, -1)) < 2 {
				pending = line
			}
		}
	}
	return items
}

// parseRow parses one table line. The last two monetary tokens are unit
// price and line total; everything before the first monetary token is the
// description candidate, prefixed by the pending continuation line when
// one exists. Rows whose description stays under MinDescriptionLen or
// whose amounts fail numeric conversion are discarded.
func parseRow(line, pending string) (LineItem, bool) {
	amounts := reMoney.FindAllString(line, -1)
	if len(amounts) < 2 {
		return LineItem{}, false
	}
	unitPrice := amounts[len(amounts)-2]
	lineTotal := amounts[len(amounts)-1]
	if !validAmount(unitPrice) || !validAmount(lineTotal) {
		return LineItem{}, false
	}

	first := reMoney.FindStringIndex(line)
	desc := strings.Trim(line[:first[0]], " -:|*")

	quantity := "1"
	if m := reQtyTail.FindStringSubmatch(desc); m != nil {
		quantity = m[1]
		desc = strings.Trim(desc[:len(desc)-len(m[0])], " -:|*")
	}

	if pending != "" {
		if desc != "" {
			desc = pending + " " + desc
		} else {
			desc = pending
		}
	}
	desc = strings.TrimSpace(desc)

	// OCR renders trailing table borders as a stray "as" token.
	if strings.HasSuffix(strings.ToLower(desc), " as") {
		desc = strings.TrimSpace(desc[:len(desc)-2])
	}

	if utf8.RuneCountInString(desc) < MinDescriptionLen {
		return LineItem{}, false
	}

	return LineItem{
		Description: desc,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		LineTotal:   lineTotal,
	}, true
}
