package parse

import (
	"regexp"
	"strings"
)

// fieldPattern pairs a compiled expression with a uniform value-extraction
// rule: the named group "v" when the pattern defines one, otherwise the
// first capture group. Later patterns can therefore use whatever internal
// grouping they need without changing the extraction procedure.
type fieldPattern struct {
	re *regexp.Regexp
}

// pat compiles a case-insensitive field pattern.
func pat(expr string) fieldPattern {
	return fieldPattern{re: regexp.MustCompile(`(?i)` + expr)}
}

// patCS compiles a case-sensitive field pattern. Heuristics that key on
// letter case (all-caps company names, capitalized bank names) must not
// go through pat, since (?i) folds character classes like [A-Z] too.
func patCS(expr string) fieldPattern {
	return fieldPattern{re: regexp.MustCompile(expr)}
}

func (p fieldPattern) find(text string) string {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if i := p.re.SubexpIndex("v"); i > 0 && i < len(m) {
		return strings.TrimSpace(m[i])
	}
	if len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// firstMatch evaluates an ordered pattern list and returns the value
// captured by the first pattern that matches, or "" when none does.
func firstMatch(patterns []fieldPattern, text string) string {
	for _, p := range patterns {
		if v := p.find(text); v != "" {
			return v
		}
	}
	return ""
}

// money is the capture fragment for label-anchored amounts. An optional
// currency prefix is consumed so "Subtotal: Rs. 1,350.00" captures the
// bare number.
const money = `(?:Rs\.?\s*|[$€£]\s*|[A-Z]{3}\s+)?(?P<v>\d[\d,]*(?:\.\d{1,2})?)`

// Pattern lists are ordered most-specific-first: a pattern anchored to the
// exact field label precedes weaker generic fallbacks. They are variables,
// not constants, so vendor-specific patterns can be appended by callers
// without restructuring the extractor.
var (
	invoiceNumberPatterns = []fieldPattern{
		pat(`invoice\s*(?:number|num|no)\.?\s*[:#-]?\s*(?P<v>[A-Za-z0-9][A-Za-z0-9/_-]*)`),
		pat(`invoice\s*#\s*(?P<v>[A-Za-z0-9][A-Za-z0-9/_-]*)`),
		pat(`inv\s*(?:no|#)\.?\s*[:#]?\s*(?P<v>[A-Za-z0-9][A-Za-z0-9/_-]*)`),
		pat(`\bbill\s*(?:number|no)\.?\s*[:#-]?\s*(?P<v>[A-Za-z0-9][A-Za-z0-9/_-]*)`),
	}

	invoiceDatePatterns = []fieldPattern{
		pat(`invoice\s*date\s*[:\-]?\s*(?P<v>\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4})`),
		pat(`invoice\s*date\s*[:\-]?\s*(?P<v>\d{1,2}\s+[A-Za-z]{3,9},?\s+\d{4})`),
		pat(`date\s*(?:of\s*issue)?\s*[:\-]\s*(?P<v>\d{1,2}[/.-]\d{1,2}[/.-]\d{2,4})`),
		pat(`date\s*(?:of\s*issue)?\s*[:\-]\s*(?P<v>\d{1,2}\s+[A-Za-z]{3,9},?\s+\d{4})`),
	}

	invoiceStatusPatterns = []fieldPattern{
		pat(`status\s*[:\-]\s*(?P<v>paid|unpaid|overdue|cancelled)\b`),
		pat(`\b(?P<v>unpaid|overdue|cancelled)\b`),
		pat(`\b(?P<v>paid)\b`),
	}

	subtotalPatterns = []fieldPattern{
		pat(`sub\s*-?\s*total\s*[:\-]?\s*` + money),
	}

	discountPatterns = []fieldPattern{
		pat(`discount\s*(?:\(\s*\d+(?:\.\d+)?\s*%\s*\))?\s*[:\-]?\s*` + money),
	}

	taxRatePatterns = []fieldPattern{
		pat(`(?:tax|vat|gst)\s*rate\s*[:\-]?\s*(?P<v>\d{1,2}(?:\.\d+)?)\s*%`),
		pat(`(?:vat|gst|tax)\s*\(\s*(?P<v>\d{1,2}(?:\.\d+)?)\s*%\s*\)`),
		pat(`(?:vat|gst|tax)\s*(?P<v>\d{1,2}(?:\.\d+)?)\s*%`),
	}

	totalTaxPatterns = []fieldPattern{
		pat(`total\s*tax\s*[:\-]?\s*` + money),
		pat(`(?:vat|gst)\s*(?:amount)?\s*[:\-]\s*` + money),
		pat(`tax\s*(?:amount)?\s*[:\-]\s*` + money),
	}

	balanceDuePatterns = []fieldPattern{
		pat(`balance\s*due\s*[:\-]?\s*` + money),
	}

	totalAmountPatterns = []fieldPattern{
		pat(`grand\s*total\s*[:\-]?\s*` + money),
		pat(`total\s*amount\s*[:\-]?\s*` + money),
		pat(`amount\s*due\s*[:\-]?\s*` + money),
		pat(`\btotal\s*[:\-]\s*` + money),
	}

	currencyPatterns = []fieldPattern{
		pat(`\b(?P<v>USD|EUR|GBP|LKR|INR|AUD|CAD|JPY|CHF|SGD|AED|NZD)\b`),
		pat(`(?P<v>Rs\.?)\s*\d`),
		pat(`(?P<v>[$€£])\s*\d`),
	}

	supplierNamePatterns = []fieldPattern{
		pat(`supplier\s*(?:name)?\s*[:\-]\s*(?P<v>[^\n]+)`),
		pat(`(?:vendor|sold\s*by|issued\s*by|from)\s*[:\-]\s*(?P<v>[^\n]+)`),
	}

	supplierAddressPatterns = []fieldPattern{
		pat(`supplier\s*address\s*[:\-]\s*(?P<v>[^\n]+)`),
		// Line-anchored so qualified labels ("Billing Address:",
		// "Shipping Address:") stay with their own fields.
		pat(`(?m)^[ \t]*address\s*[:\-]\s*(?P<v>[^\n]+)`),
	}

	supplierEmailPatterns = []fieldPattern{
		pat(`e\s*-?\s*mail\s*[:\-]\s*(?P<v>[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`),
		pat(`(?P<v>[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`),
	}

	supplierPhonePatterns = []fieldPattern{
		pat(`(?:phone|tel|telephone|mobile|hotline)\s*(?:no\.?)?\s*[:\-]?\s*(?P<v>\+?\d[\d\s()/-]{6,}\d)`),
	}

	customerNamePatterns = []fieldPattern{
		pat(`customer\s*(?:name)?\s*[:\-]\s*(?P<v>[^\n]+)`),
		pat(`(?:bill(?:ed)?\s*to|invoice\s*to|client)\s*[:\-]\s*(?P<v>[^\n]+)`),
		// Vendor-tuned heuristic: an all-caps company name ending in "PLC".
		// Known to false-positive on other documents.
		patCS(`(?P<v>[A-Z][A-Z&.\s]+\bPLC)\b`),
	}

	billingAddressPatterns = []fieldPattern{
		pat(`billing\s*address\s*[:\-]\s*(?P<v>[^\n]+)`),
		pat(`bill\s*to\s*[:\-]\s*[^\n]*\n(?P<v>[^\n]+)`),
	}

	shippingAddressPatterns = []fieldPattern{
		pat(`(?:shipping|delivery)\s*address\s*[:\-]\s*(?P<v>[^\n]+)`),
		pat(`ship\s*to\s*[:\-]\s*(?P<v>[^\n]+)`),
	}

	paymentTermsPatterns = []fieldPattern{
		pat(`payment\s*terms\s*[:\-]\s*(?P<v>[^\n]+)`),
		pat(`\bterms\s*[:\-]\s*(?P<v>[^\n]+)`),
		pat(`\b(?P<v>net\s*\d{1,3})\b`),
		pat(`\b(?P<v>due\s*on\s*receipt)\b`),
	}

	bankNamePatterns = []fieldPattern{
		pat(`bank\s*(?:name)?\s*[:\-]\s*(?P<v>[^\n]+)`),
		patCS(`(?P<v>[A-Z][A-Za-z ]+?\s+Bank(?:\s+PLC|\s+Ltd)?)\b`),
	}

	branchPatterns = []fieldPattern{
		pat(`branch\s*(?:name)?\s*[:\-]\s*(?P<v>[^\n]+)`),
	}

	// Permissive: any standalone run of 8+ digits. Known heuristic
	// limitation, may pick up other long numbers.
	accountNumberPatterns = []fieldPattern{
		pat(`(?:a/?c|acc(?:oun)?t)\s*(?:no\.?|number)?\s*[:\-]?\s*(?P<v>\d[\d -]{6,}\d)`),
		pat(`\b(?P<v>\d{8,})\b`),
	}

	paymentInstructionsPatterns = []fieldPattern{
		pat(`payment\s*instructions?\s*[:\-]\s*(?P<v>[^\n]+)`),
		pat(`(?:please\s+)?remit\s*(?:payment\s*)?to\s*[:\-]?\s*(?P<v>[^\n]+)`),
	}
)
