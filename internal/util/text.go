package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	fenceOpen  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	fenceClose = regexp.MustCompile("\\s*```$")
	printer    = message.NewPrinter(language.English)
)

// StripCodeFences removes a surrounding markdown code block, as models often
// wrap JSON in ```json ... ``` despite being told not to.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = fenceOpen.ReplaceAllString(s, "")
	s = fenceClose.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// FormatNumber renders n with thousands separators, dropping the fraction
// when n is whole: 9000 -> "9,000", 1250.5 -> "1,250.50".
func FormatNumber(n float64) string {
	if n == float64(int64(n)) {
		return printer.Sprintf("%d", int64(n))
	}
	return printer.Sprintf("%.2f", n)
}

// Truncate shortens s to max runes and appends "..." when it was cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// Humanize turns a snake_case identifier into words.
func Humanize(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}
