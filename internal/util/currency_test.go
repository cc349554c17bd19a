// internal/util/currency_test.go
package util

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUSD(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.5", "$1,234.50"},
		{"0", "$0.00"},
		{"9000", "$9,000.00"},
		{"0.1", "$0.10"},
		{"1000000", "$1,000,000.00"},
		{"189.84", "$189.84"},
	}

	for _, c := range cases {
		got := USD(decimal.RequireFromString(c.in))
		assert.Equal(t, c.want, got, "USD(%s)", c.in)
	}
}
