package utils

import "strconv"

// FormatRupiah renders an amount with Indonesian digit grouping,
// e.g. 1500000000 -> "Rp 1.500.000.000".
func FormatRupiah(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := false
	if digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, '.')
		}
		grouped = append(grouped, d)
	}

	out := "Rp " + string(grouped)
	if negative {
		out = "Rp -" + string(grouped)
	}
	return out
}
