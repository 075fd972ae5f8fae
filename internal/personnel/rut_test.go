package personnel_test

import (
	"testing"

	"go-fieldops/internal/personnel"

	"github.com/stretchr/testify/assert"
)

func TestValidateRut(t *testing.T) {
	valid := []string{
		"11.111.111-1",
		"11111111-1",
		"111111111",
		"12.345.678-5",
		"11.111.112-K",
		"11111112-k",
	}
	for _, rut := range valid {
		assert.NoError(t, personnel.ValidateRut(rut), rut)
	}

	invalid := []string{
		"",
		"1",
		"11.111.111-2",
		"12.345.678-9",
		"7.775.132-K",
		"ABCDEFGH-1",
	}
	for _, rut := range invalid {
		assert.Error(t, personnel.ValidateRut(rut), rut)
	}
}

func TestFormatRut(t *testing.T) {
	cases := map[string]string{
		"111111111":    "11.111.111-1",
		"11111111-1":   "11.111.111-1",
		"11.111.111-1": "11.111.111-1",
		"7775132k":     "7.775.132-K",
	}
	for in, want := range cases {
		assert.Equal(t, want, personnel.FormatRut(in))
	}
}

func TestNormalizeRut(t *testing.T) {
	assert.Equal(t, "111111111", personnel.NormalizeRut("11.111.111-1"))
	assert.Equal(t, "7775132K", personnel.NormalizeRut(" 7.775.132-k "))
}
