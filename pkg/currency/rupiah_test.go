package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/auraskin-api/pkg/currency"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"999", "Rp 999"},
		{"100000", "Rp 100.000"},
		{"375000", "Rp 375.000"},
		{"1234567", "Rp 1.234.567"},
		{"277500.5", "Rp 277.500,5"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, currency.FormatRupiah(decimal.RequireFromString(tc.in)))
		})
	}
}
