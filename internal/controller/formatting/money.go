package formatting

import "fmt"

// FormatAmount renders an integer amount with thousand separators,
// e.g. 2800000 → "2.800.000 ₫".
func FormatAmount(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%d", amount)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out) + " ₫"
	}
	return string(out) + " ₫"
}

// FormatRate renders a discount fraction as a percentage,
// e.g. 0.05 → "5%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%g%%", rate*100)
}
