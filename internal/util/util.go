package util

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes truncates a string to a maximum number of runes,
// appending an ellipsis if truncated.
func TruncateRunes(text string, maxRunes int) string {
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxRunes]) + "…"
}

// PadRight pads a string with spaces to the given rune width, truncating
// when it is too long. Table cells rely on this for stable columns.
func PadRight(text string, width int) string {
	if utf8.RuneCountInString(text) > width {
		text = TruncateRunes(text, width-1)
	}
	return text + strings.Repeat(" ", width-utf8.RuneCountInString(text))
}

// DigitsOnly strips every non-digit rune from a string.
func DigitsOnly(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
