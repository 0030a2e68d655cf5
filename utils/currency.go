package utils

import (
	"strconv"
	"strings"
)

// FormatRupees memformat harga integer ke format Rupee, contoh: 1250 -> "₹1,250"
func FormatRupees(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	integerPart := strconv.Itoa(amount)

	// Tambahkan pemisah ribuan
	var result []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		result = append([]string{integerPart[start:i]}, result...)
	}

	return sign + "₹" + strings.Join(result, ",")
}
