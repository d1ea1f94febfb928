// Package currency formats monetary amounts for display in bolivianos:
// thousands separated by '.', decimals by ',', always two decimal places.
package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBoliviano renders an amount like "Bs. 1.500,50".
func FormatBoliviano(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	whole, frac := parts[0], parts[1]

	var grouped strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("Bs. %s%s,%s", sign, grouped.String(), frac)
}

// ParseBoliviano converts a boliviano-formatted string back into a number.
// Garbage input yields 0.
func ParseBoliviano(value string) float64 {
	var cleaned strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' || r == ',' {
			cleaned.WriteRune(r)
		}
	}
	normalized := strings.Replace(cleaned.String(), ",", ".", 1)
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return f
}
