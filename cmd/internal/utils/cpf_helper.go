package utils

import "strings"

const CPFLength = 11

var cpfReplacer = strings.NewReplacer(".", "", "-", "", " ", "")

// NormalizeCPF strips the usual "000.000.000-00" punctuation.
func NormalizeCPF(cpf string) string {
	return cpfReplacer.Replace(strings.TrimSpace(cpf))
}

func IsCPFValid(cpf string) bool {
	cpf = NormalizeCPF(cpf)
	if len(cpf) != CPFLength {
		return false
	}

	if !IsOnlyNumbers(cpf) {
		return false
	}

	// Reject known invalid patterns that trick the math algorithm
	if hasAllSameDigits(cpf) {
		return false
	}
	return validateCPFDigits(cpf)
}

func IsOnlyNumbers(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func hasAllSameDigits(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

func validateCPFDigits(cpf string) bool {
	digit1 := calculateCPFDigit(cpf[:9], 10)
	digit2 := calculateCPFDigit(cpf[:10], 11)

	actualDigit1 := int(cpf[9] - '0')
	actualDigit2 := int(cpf[10] - '0')

	return digit1 == actualDigit1 && digit2 == actualDigit2
}

// calculateCPFDigit weights the base digits from firstWeight down to 2.
func calculateCPFDigit(base string, firstWeight int) int {
	sum := 0
	for i := 0; i < len(base); i++ {
		// Convert ASCII character to integer ('5' -> 5)
		digit := int(base[i] - '0')
		sum += digit * (firstWeight - i)
	}

	remainder := (sum * 10) % 11
	if remainder == 10 {
		return 0
	}
	return remainder
}
