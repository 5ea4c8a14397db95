package sanitizer

import "strings"

// NormalizeEmail trims and lower-cases an address and collapses repeated
// dots in its local part. Input without exactly one "@" is only trimmed and
// lower-cased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// MaskEmail keeps the first character of the local part and the domain.
// A one-character local part is fully masked.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	runes := []rune(local)
	if len(runes) == 1 {
		return "*@" + domain
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}

// MaskString keeps visibleChars runes at each end and stars the middle.
// Strings too short to keep both ends are fully masked.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 1
	}

	runes := []rune(s)
	n := len(runes)
	if n <= visibleChars*2 {
		return strings.Repeat("*", n)
	}
	return string(runes[:visibleChars]) + strings.Repeat("*", n-visibleChars*2) + string(runes[n-visibleChars:])
}

// FormatCPF renders 11 digits as 000.000.000-00. Other input is returned
// with only its digits.
func FormatCPF(s string) string {
	d := KeepDigits(s)
	if len(d) != 11 {
		return d
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatCNPJ renders 14 digits as 00.000.000/0000-00. Other input is
// returned with only its digits.
func FormatCNPJ(s string) string {
	d := KeepDigits(s)
	if len(d) != 14 {
		return d
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

// FormatDocument picks FormatCPF or FormatCNPJ by digit count.
func FormatDocument(s string) string {
	if len(KeepDigits(s)) == 14 {
		return FormatCNPJ(s)
	}
	return FormatCPF(s)
}

// MaskDocument shows only the middle digits of a CPF (***.456.789-**) or the
// branch digits of a CNPJ (**.***.***/0001-**). Anything else is fully masked.
func MaskDocument(s string) string {
	d := KeepDigits(s)
	switch len(d) {
	case 11:
		return "***." + d[3:6] + "." + d[6:9] + "-**"
	case 14:
		return "**.***.***/" + d[8:12] + "-**"
	default:
		return strings.Repeat("*", len(d))
	}
}
