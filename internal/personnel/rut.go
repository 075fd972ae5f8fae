package personnel

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeRut reduces a RUT to its bare form: digits plus verifier,
// uppercase K, no dots or dash ("11.111.111-1" -> "111111111").
func NormalizeRut(rut string) string {
	rut = strings.ToUpper(strings.TrimSpace(rut))
	rut = strings.ReplaceAll(rut, ".", "")
	rut = strings.ReplaceAll(rut, "-", "")
	return rut
}

// FormatRut renders a normalized RUT in the conventional dotted form
// ("111111111" -> "11.111.111-1").
func FormatRut(rut string) string {
	rut = NormalizeRut(rut)
	if len(rut) < 2 {
		return rut
	}

	body := rut[:len(rut)-1]
	dv := rut[len(rut)-1:]

	var parts []string
	for len(body) > 3 {
		parts = append([]string{body[len(body)-3:]}, parts...)
		body = body[:len(body)-3]
	}
	parts = append([]string{body}, parts...)

	return strings.Join(parts, ".") + "-" + dv
}

// ValidateRut checks the modulo-11 verifier digit.
func ValidateRut(rut string) error {
	rut = NormalizeRut(rut)
	if len(rut) < 2 {
		return fmt.Errorf("rut too short")
	}

	body := rut[:len(rut)-1]
	dv := rut[len(rut)-1:]

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		d, err := strconv.Atoi(string(body[i]))
		if err != nil {
			return fmt.Errorf("rut contains non-digit characters")
		}
		sum += d * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	expected := ""
	switch m := 11 - (sum % 11); m {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = strconv.Itoa(m)
	}

	if dv != expected {
		return fmt.Errorf("rut verifier digit mismatch")
	}
	return nil
}
