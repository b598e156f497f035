// Package flights decides whether two loosely formatted flight identifiers,
// such as "AFL1" and "AFL 0001", name the same flight.
//
// Identifiers are split into an airline code and a flight number, both parts
// are validated, and the canonical keys (code followed by the flight number
// without leading zeros) are compared. Invalid input never produces an error;
// it simply does not compare equal.
package flights

// MaxLength is the longest identifier, in bytes, that can compare equal.
const MaxLength = 7

// Reason records which step of a comparison decided its outcome.
type Reason string

const (
	ReasonEqual         Reason = "equal"
	ReasonTooLong       Reason = "too-long"
	ReasonInvalidCode   Reason = "invalid-code"
	ReasonInvalidNumber Reason = "invalid-number"
	ReasonMismatch      Reason = "mismatch"
)

// Result is an explained comparison of two identifiers.
// KeyA and KeyB are empty when a check failed before canonicalization.
type Result struct {
	A      string
	B      string
	KeyA   string
	KeyB   string
	Equal  bool
	Reason Reason
}

// Compare reports whether a and b identify the same flight.
func Compare(a, b string) bool {
	return Explain(a, b).Equal
}

// Explain compares a and b and reports why they are or are not equal.
// Checks run in order: length, airline codes, flight numbers, keys.
func Explain(a, b string) Result {
	r := Result{A: a, B: b}

	if len(a) > MaxLength || len(b) > MaxLength {
		r.Reason = ReasonTooLong
		return r
	}

	partsA, partsB := Split(a), Split(b)
	if !IsValidFlightCode(partsA.Code) || !IsValidFlightCode(partsB.Code) {
		r.Reason = ReasonInvalidCode
		return r
	}

	// Validated on the raw identifiers, spaces included.
	if !HasValidFlightNumber(a) || !HasValidFlightNumber(b) {
		r.Reason = ReasonInvalidNumber
		return r
	}

	r.KeyA, r.KeyB = canonicalKeys(partsA, partsB)
	r.Equal = r.KeyA == r.KeyB
	r.Reason = ReasonMismatch
	if r.Equal {
		r.Reason = ReasonEqual
	}
	return r
}

// CanonicalKeys returns the equality keys for a and b without validating
// either identifier.
func CanonicalKeys(a, b string) (string, string) {
	return canonicalKeys(Split(a), Split(b))
}

func canonicalKeys(a, b Parts) (string, string) {
	codeA, codeB := rederiveCodes(a.Code, b.Code)
	return codeA + trimLeadingZeros(a.Number), codeB + trimLeadingZeros(b.Number)
}

// rederiveCodes reduces both airline codes to their leading letters.
//
// Known defect, kept for compatibility: both sides take the leading letters
// of the second code, so the first identifier's own code never reaches its
// key. The intended behavior is
//
//	return leadingLetters(codeA), leadingLetters(codeB)
//
// The earlier implementation differed: it overwrote only the first code and
// left the second one as split, so "D2 25" did not even equal itself. Here
// both sides are reduced, which keeps such identifiers reflexive.
func rederiveCodes(codeA, codeB string) (string, string) {
	code := leadingLetters(codeB)
	return code, code
}
