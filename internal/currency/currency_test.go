package currency

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBoliviano(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Bs. 0,00"},
		{35, "Bs. 35,00"},
		{1500.5, "Bs. 1.500,50"},
		{999999.99, "Bs. 999.999,99"},
		{1234567.8, "Bs. 1.234.567,80"},
		{-1500.5, "Bs. -1.500,50"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatBoliviano(tc.in), "amount %v", tc.in)
	}
}

func TestParseBoliviano(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1.500,50", 1500.5},
		{"Bs. 1.500,50", 1500.5},
		{"35", 35},
		{"0,99", 0.99},
		{"", 0},
		{"garbage", 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ParseBoliviano(tc.in), "input %q", tc.in)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, amount := range []float64{0, 12.34, 999.99, 12345.67} {
		require.Equal(t, amount, ParseBoliviano(FormatBoliviano(amount)))
	}
}
