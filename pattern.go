package locres

import (
	"regexp"
	"strings"
)

// iataCodeRe matches exactly three uppercase letters, the IATA airport code
// format.
var iataCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// IsValidCode reports whether s is a well-formed IATA code.
func IsValidCode(s string) bool {
	return iataCodeRe.MatchString(s)
}

// directCodeRe recognizes queries that already spell out both codes, such as
// "FRA to LIR", "fra-lir", "FRA -> LIR" or "FRA → LIR". The "to" form
// requires surrounding whitespace so that letter runs inside a word are not
// misread as codes.
var directCodeRe = regexp.MustCompile(`(?i)^([a-z]{3})(?:\s+to\s+|\s*(?:->|→|[-–])\s*)([a-z]{3})$`)

// TryDirect attempts to read query as an explicit code pair. On success both
// codes are returned uppercased; such a query needs no further resolution.
func TryDirect(query string) (origin, destination string, ok bool) {
	m := directCodeRe.FindStringSubmatch(strings.TrimSpace(query))
	if m == nil {
		return "", "", false
	}
	origin = strings.ToUpper(m[1])
	destination = strings.ToUpper(m[2])
	if !IsValidCode(origin) || !IsValidCode(destination) {
		return "", "", false
	}
	return origin, destination, true
}
