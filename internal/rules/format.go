package rules

import "strconv"

// FormatSigned renders n with an explicit sign: "+3", "+0", "-1".
func FormatSigned(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
