package sanitizer

import (
	"strings"
	"unicode"
)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeWhitespace collapses runs of whitespace into one space and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters except tab and line breaks.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// MaxLength truncates s to maxLen runes. A negative maxLen keeps s.
func MaxLength(s string, maxLen int) string {
	if maxLen < 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// KeepDigits keeps ASCII digits only.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// PersonName cleans a full name typed into a form.
var PersonName = Compose(RemoveControlChars, NormalizeWhitespace)
