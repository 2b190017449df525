package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish = regexp.MustCompile(`\b(20\d{2})\b|\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	reCurrish = regexp.MustCompile(`\b(usd|eur|gbp|lkr|inr|aud|cad|rs)\b|[$£€]`)
	reAmount  = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d{2})\b|\b\d+\.\d{2}\b`)
	reInvWord = regexp.MustCompile(`\binvoice\b`)
)

// heuristicConfidence scores decoded text by how much it looks like an
// invoice: a date, a currency marker, money amounts, the word "invoice",
// and enough content overall.
func heuristicConfidence(txt string) float32 {
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if reDateish.MatchString(txtL) {
		score += 0.15
	}
	if reCurrish.MatchString(txtL) {
		score += 0.15
	}
	if reAmount.MatchString(txtL) {
		score += 0.15
	}
	if reInvWord.MatchString(txtL) {
		score += 0.15
	}
	if len(txt) > 120 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
