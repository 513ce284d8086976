package utils

import "strconv"

// ConsolePrecision is the number of significant digits printed for real values.
const ConsolePrecision = 6

// FormatSignificant prints v with at most digits significant digits and no
// trailing zeros, switching to exponent notation for very large or small values.
func FormatSignificant(v float64, digits int) string {
	return strconv.FormatFloat(v, 'g', digits, 64)
}

// FormatConsole prints v the way console responses do.
func FormatConsole(v float64) string {
	return FormatSignificant(v, ConsolePrecision)
}
