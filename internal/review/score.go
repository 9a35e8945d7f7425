// Package review grades candidate messages and sanity-checks wizard
// answers before generation.
package review

import (
	"strings"

	"github.com/avoronin/message-constructor/internal/domain"
)

// Score computes a heuristic 0-100 quality score for a message. All
// contributions are integers: 50 base, +15 when the salon name appears
// verbatim, +15 when the text contains a digit, +10 for non-empty
// guarantees, +10 when the non-blank line count lands in [7,10].
func Score(text string, rec *domain.SalonRecord, guarantees []string) int {
	score := 50

	if rec.IsValid() && strings.Contains(text, rec.Name) {
		score += 15
	}
	if strings.ContainsAny(text, "0123456789") {
		score += 15
	}
	if len(guarantees) > 0 {
		score += 10
	}
	if n := CountLines(text); n >= 7 && n <= 10 {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// CountLines returns the number of non-blank lines in text.
func CountLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
