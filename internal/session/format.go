package session

import (
	"math"
	"strconv"
	"strings"
)

// formatInput renders a form value the way log lines have always shown them:
// plain decimal with at least one fractional digit, scientific notation
// outside [1e-4, 1e16).
func formatInput(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatIndex renders a stored particle index: integral values without a
// fractional part.
func formatIndex(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
