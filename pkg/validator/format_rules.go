package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

const (
	emailMinLength = 4
	emailMaxLength = 100

	passwordMinLength = 7
	passwordMaxLength = 50
)

var (
	// Permissive address shape: word/dot/hyphen local part, dotted labels, 2-4 char TLD.
	emailRegex = regexp.MustCompile(`^([a-zA-Z0-9_.\-])+@(([a-zA-Z0-9\-])+\.)+([a-zA-Z0-9]{2,4})+$`)

	digitRegex  = regexp.MustCompile(`\d`)
	letterRegex = regexp.MustCompile(`[a-zA-Z]`)
)

// IsEmail reports whether email looks like a deliverable address.
func IsEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsStrongPassword reports whether p is 7-50 characters long and mixes
// at least one digit with at least one letter.
func IsStrongPassword(p string) bool {
	n := utf8.RuneCountInString(p)
	if n < passwordMinLength || n > passwordMaxLength {
		return false
	}
	return digitRegex.MatchString(p) && letterRegex.MatchString(p)
}

// IsHourMinute checks an "HHMM" prefix: hour 0-24, minute 0-59.
// Input whose hour or minute cannot be read as a number passes; only a
// readable value outside the bounds fails.
func IsHourMinute(s string) bool {
	hour, hok := leadingInt(sliceRunes(s, 0, 2))
	minute, mok := leadingInt(sliceRunes(s, 2, 4))
	if hok && (hour < 0 || hour > 24) {
		return false
	}
	if mok && (minute < 0 || minute > 59) {
		return false
	}
	return true
}

// ValidEmail validates an email address of 4-100 characters.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(value)
			return n >= emailMinLength && n <= emailMaxLength && IsEmail(value)
		},
		Error: newError(field, "must be a valid email address", "validation.email", nil),
	}
}

// ValidPassword validates password strength, see IsStrongPassword.
func ValidPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsStrongPassword(value)
		},
		Error: newError(field,
			fmt.Sprintf("password must be %d-%d characters and contain letters and digits", passwordMinLength, passwordMaxLength),
			"validation.password",
			map[string]any{
				"min": passwordMinLength,
				"max": passwordMaxLength,
			}),
	}
}

// ValidHourMinute validates an "HHMM" time of day, see IsHourMinute.
func ValidHourMinute(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsHourMinute(value)
		},
		Error: newError(field, "must be a valid time (HHMM)", "validation.hour_minute", nil),
	}
}

// sliceRunes returns runes [from, to) of s, clamped to its length.
func sliceRunes(s string, from, to int) string {
	r := []rune(s)
	if from > len(r) {
		return ""
	}
	if to > len(r) {
		to = len(r)
	}
	return string(r[from:to])
}

// leadingInt parses an optionally signed run of leading digits, after
// skipping leading whitespace. "7a" yields 7; "ab" yields false.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
