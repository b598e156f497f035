package flights

import "regexp"

// codePredicate is one branch of the airline code check.
type codePredicate struct {
	name  string
	match func(code string) bool
}

var (
	upperPairRegex       = regexp.MustCompile(`[A-Z]{2}`)
	upperTripleRegex     = regexp.MustCompile(`[A-Z]{3}`)
	upperSingleRegex     = regexp.MustCompile(`[A-Z]`)
	upperPairSpaceRegex  = regexp.MustCompile(`[A-Z][A-Z] `)
	alnumPairRegex       = regexp.MustCompile(`[A-Z0-9]{2}`)
	alnumPairSpaceRegex  = regexp.MustCompile(`[A-Z0-9][A-Z0-9] `)
	shortDigitRunRegex   = regexp.MustCompile(`[0-9]{1,5}`)
	tooLongDigitRunRegex = regexp.MustCompile(`[0-9]{6,}`)
)

// codePredicates are evaluated in order; the first match accepts the code.
// Several branches overlap (any uppercase letter already satisfies the
// single-letter branch). Keep them separate: each is its own substring search.
var codePredicates = []codePredicate{
	{"upper-pair", upperPairRegex.MatchString},
	{"upper-triple", upperTripleRegex.MatchString},
	{"upper-single", upperSingleRegex.MatchString},
	{"upper-pair-space", upperPairSpaceRegex.MatchString},
	{"alnum-pair-with-letter", func(code string) bool {
		return alnumPairRegex.MatchString(code) && containsLetter(code)
	}},
	{"alnum-pair-space-with-letter", func(code string) bool {
		return alnumPairSpaceRegex.MatchString(code) && containsLetter(code)
	}},
}

// IsValidFlightCode reports whether code looks like an airline code.
// An empty code is accepted. Lowercase-only codes are rejected: the
// alphanumeric branches only consider uppercase letters and digits.
func IsValidFlightCode(code string) bool {
	if code == "" {
		return true
	}
	return matchingCodePredicate(code) != ""
}

// matchingCodePredicate returns the name of the first predicate accepting
// code, or "" when none does.
func matchingCodePredicate(code string) string {
	for _, p := range codePredicates {
		if p.match(code) {
			return p.name
		}
	}
	return ""
}

// HasValidFlightNumber reports whether s holds a run of 1-5 digits and no
// run of 6 or more digits anywhere.
func HasValidFlightNumber(s string) bool {
	hasShortRun := shortDigitRunRegex.MatchString(s)
	hasLongRun := tooLongDigitRunRegex.MatchString(s)
	return hasShortRun && !hasLongRun
}

func containsLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if isASCIILetter(s[i]) {
			return true
		}
	}
	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
