package flights

import "strings"

// Parts is a raw identifier split into its airline code and flight number
// candidates.
type Parts struct {
	Code   string
	Number string
}

// Split extracts the code and number candidates from a raw identifier.
// With a space, the code is everything before the first space; without one,
// it is the leading run of letters. The number is taken from the identifier
// with all spaces removed, starting at the first digit.
func Split(s string) Parts {
	code := leadingLetters(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		code = s[:i]
	}
	return Parts{
		Code:   code,
		Number: numberSuffix(stripSpaces(s)),
	}
}

// leadingLetters returns the prefix of s up to the first non-letter.
func leadingLetters(s string) string {
	for i := 0; i < len(s); i++ {
		if !isASCIILetter(s[i]) {
			return s[:i]
		}
	}
	return s
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// numberSuffix returns s from its first digit to the end, trailing
// non-digits included, or "" if s has no digit.
func numberSuffix(s string) string {
	for i := 0; i < len(s); i++ {
		if isASCIIDigit(s[i]) {
			return s[i:]
		}
	}
	return ""
}

// trimLeadingZeros drops leading '0's. All-zero and empty input become "0".
func trimLeadingZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
