package calc

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxExactInt bounds the magnitudes rendered through the locale printer.
const maxExactInt = 1 << 53

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders a numeral for display: the integer part gets US thousands
// separators and the decimal tail, if any, is kept verbatim. Empty input shows
// as "0"; NotANumber and anything that does not parse pass through unchanged.
func Format(value string) string {
	if value == "" {
		return "0"
	}
	if value == NotANumber {
		return value
	}
	integer, decimal, hasDecimal := strings.Cut(value, ".")
	n, ok := parseInteger(integer)
	if !ok {
		return value
	}
	grouped := groupInteger(n)
	if hasDecimal {
		return grouped + "." + decimal
	}
	return grouped
}

func parseInteger(integer string) (float64, bool) {
	if integer == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(integer, 64)
	if err != nil || !isFinite(n) {
		return 0, false
	}
	return n, true
}

func groupInteger(n float64) string {
	if n == 0 {
		// Keeps the sign while "-0." is being typed.
		if math.Signbit(n) {
			return "-0"
		}
		return "0"
	}
	if math.Abs(n) < maxExactInt {
		return printer.Sprintf("%d", int64(math.Round(n)))
	}
	// Beyond 2^53 the printer expands the exact binary value, so group the
	// shortest decimal digits instead.
	return groupDigits(strconv.FormatFloat(n, 'f', -1, 64))
}

// groupDigits inserts US thousands separators into a plain integer numeral.
func groupDigits(digits string) string {
	var b strings.Builder
	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		b.WriteByte('-')
		digits = rest
	}
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
