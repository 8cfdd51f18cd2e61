// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"regexp"
	"strings"
)

var (
	// toggleSuffixPattern matches the trailing "Less"/"More" expand-toggle
	// text the search UI appends to abstracts.
	toggleSuffixPattern = regexp.MustCompile(`\s*(Less|More)\s*$`)

	// abstractLabelPattern matches the leading "Abstract:" field label.
	abstractLabelPattern = regexp.MustCompile(`^Abstract:\s*`)
)

// Normalize collapses newlines and runs of whitespace into single spaces
// and trims the ends. Idempotent: normalizing normalized text is a no-op.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanAbstract normalizes abstract text and strips the leading
// "Abstract:" label and any trailing Less/More toggle text.
func CleanAbstract(s string) string {
	s = Normalize(s)
	s = toggleSuffixPattern.ReplaceAllString(s, "")
	return abstractLabelPattern.ReplaceAllString(s, "")
}

// stripLabel removes the first occurrence of a field label such as
// "Title:" and normalizes the remainder.
func stripLabel(s, label string) string {
	return Normalize(strings.Replace(s, label, "", 1))
}

// appendUnique appends code unless already present, preserving
// first-seen order.
func appendUnique(codes []string, code string) []string {
	for _, c := range codes {
		if c == code {
			return codes
		}
	}
	return append(codes, code)
}
