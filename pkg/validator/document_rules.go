package validator

import "strings"

const (
	cpfLength  = 11
	cnpjLength = 14
)

// OnlyDigits returns a copy of s with every non-digit character removed.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// IsCPF reports whether raw is a well-formed CPF (11-digit individual tax ID).
// Formatting characters are ignored: "111.444.777-35" and "11144477735" are equivalent.
func IsCPF(raw string) bool {
	if raw == "" {
		return false
	}
	digits := OnlyDigits(raw)
	if len(digits) != cpfLength || isUniform(digits) {
		return false
	}

	if cpfDigit(digits[:9]) != digitAt(digits, 9) {
		return false
	}
	return cpfDigit(digits[:10]) == digitAt(digits, 10)
}

// IsCNPJ reports whether raw is a well-formed CNPJ (14-digit company tax ID).
func IsCNPJ(raw string) bool {
	if raw == "" {
		return false
	}
	digits := OnlyDigits(raw)
	if len(digits) != cnpjLength || isUniform(digits) {
		return false
	}

	if cnpjDigit(digits[:12]) != digitAt(digits, 12) {
		return false
	}
	return cnpjDigit(digits[:13]) == digitAt(digits, 13)
}

// CPFCheckDigits computes the two check digits for a 9-digit CPF base.
// Returns false if base is not exactly nine digits.
func CPFCheckDigits(base string) (string, bool) {
	if len(base) != 9 || OnlyDigits(base) != base {
		return "", false
	}
	first := cpfDigit(base)
	second := cpfDigit(base + string(rune('0'+first)))
	return string([]byte{byte('0' + first), byte('0' + second)}), true
}

// CNPJCheckDigits computes the two check digits for a 12-digit CNPJ base.
func CNPJCheckDigits(base string) (string, bool) {
	if len(base) != 12 || OnlyDigits(base) != base {
		return "", false
	}
	first := cnpjDigit(base)
	second := cnpjDigit(base + string(rune('0'+first)))
	return string([]byte{byte('0' + first), byte('0' + second)}), true
}

// cpfDigit weighs base with descending weights starting at len(base)+1 and
// folds the sum into a single mod-11 check digit.
func cpfDigit(base string) int {
	sum := 0
	weight := len(base) + 1
	for i := 0; i < len(base); i++ {
		sum += digitAt(base, i) * (weight - i)
	}
	rev := 11 - sum%11
	if rev == 10 || rev == 11 {
		return 0
	}
	return rev
}

// cnpjDigit weighs base with weights starting at len(base)-7, decrementing
// and wrapping back to 9 whenever the weight drops below 2.
func cnpjDigit(base string) int {
	sum := 0
	pos := len(base) - 7
	for i := 0; i < len(base); i++ {
		sum += digitAt(base, i) * pos
		pos--
		if pos < 2 {
			pos = 9
		}
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func digitAt(s string, i int) int {
	return int(s[i] - '0')
}

// isUniform reports whether every digit in s is the same, e.g. "00000000000".
func isUniform(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// ValidCPF validates an individual tax identifier.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCPF(value)
		},
		Error: newError(field, "must be a valid CPF", "validation.cpf", nil),
	}
}

// ValidCNPJ validates a company tax identifier.
func ValidCNPJ(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsCNPJ(value)
		},
		Error: newError(field, "must be a valid CNPJ", "validation.cnpj", nil),
	}
}

// ValidDocument accepts either a CPF or a CNPJ, decided by the digit count.
func ValidDocument(field, value string) Rule {
	return Rule{
		Check: func() bool {
			switch len(OnlyDigits(value)) {
			case cpfLength:
				return IsCPF(value)
			case cnpjLength:
				return IsCNPJ(value)
			default:
				return false
			}
		},
		Error: newError(field, "must be a valid CPF or CNPJ", "validation.document", nil),
	}
}
