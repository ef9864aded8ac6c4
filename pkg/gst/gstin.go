package gst

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// GSTIN structure (15 characters):
//
//	positions  1-2   state code (01-37)
//	positions  3-7   PAN letters
//	positions  8-11  PAN digits
//	position   12    PAN entity letter
//	position   13    registration count within the state (1-9, A-Z)
//	position   14    literal 'Z' (reserved)
//	position   15    check character (digit or letter)
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// Normalize strips all whitespace from a GSTIN and uppercases it. The GSTN
// portal is case-insensitive and tolerant of copy-paste spacing, so the
// validator works on the normalized form.
func Normalize(gstin string) string {
	var b strings.Builder
	b.Grow(len(gstin))
	for _, r := range gstin {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// ValidateGSTIN reports whether gstin is structurally valid. It is total:
// empty strings, malformed input and out-of-range state codes all yield
// false, never an error or panic.
func ValidateGSTIN(gstin string) bool {
	n := Normalize(gstin)
	if len(n) != 15 {
		return false
	}
	if !gstinPattern.MatchString(n) {
		return false
	}
	code, err := strconv.Atoi(n[:2])
	if err != nil {
		return false
	}
	return ValidStateCode(code)
}

// StateCode extracts the numeric state code from a GSTIN. The second return
// value is false when the GSTIN is structurally invalid.
func StateCode(gstin string) (int, bool) {
	if !ValidateGSTIN(gstin) {
		return 0, false
	}
	code, _ := strconv.Atoi(Normalize(gstin)[:2])
	return code, true
}
