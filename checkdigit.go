package gtin

import (
	"strconv"

	"github.com/pkg/errors"
)

// checkSum returns the weighted sum of body's digits, weighting the
// rightmost digit by 3 and alternating 3, 1 moving leftward. The check digit
// of a body is the mod 10 additive inverse of this sum.
//
// It walks the string rather than an integer so that leading '0's, which are
// significant in GS1 codes, cost nothing to preserve. body must already be
// validated as all digits.
func checkSum(body string) (sum int) {
	w := 3
	for i := len(body) - 1; i >= 0; i-- {
		sum += digitVal(body[i]) * w
		w ^= 2 // alternate 3 and 1
	}
	return
}

// checkDigit returns the GS1 check digit for body.
func checkDigit(body string) int {
	// mod 10 additive inverse
	return (10 - (checkSum(body) % 10)) % 10
}

// ComputeCheckDigit returns the GS1 check digit (0-9) for a code body, that
// is, for all the digits of a code except its final check digit. The same
// weighted mod-10 algorithm serves UPC-A, EAN-13, and EAN-8; UPC-E has no
// checksum of its own (see ExpandUPCE).
//
// The body is normalized first; an empty or non-digit body is an error.
func ComputeCheckDigit(body string) (int, error) {
	s := Normalize(body)
	if !digits.MatchString(s) {
		return 0, errors.Errorf("check digits are only defined for "+
			"non-empty digit strings, but this is %q", body)
	}
	return checkDigit(s), nil
}

// Validate reports whether the code's check digit is consistent with its
// body. Unknown and sub-2-digit strings fail.
//
// A code classified as UPC-E is validated by expanding it to UPC-A (number
// system assumed 0 when the code doesn't carry one) and validating that:
// UPC-E validity is entirely delegated to its expansion. Everything else is
// split into body and final digit and checked directly, so incomplete bodies
// (7 or 11 digits) have their last digit judged as if it were a check digit;
// use HasCheckDigit to detect those first.
func Validate(input string) bool {
	s := Normalize(input)
	t := Classify(s)
	if t == Unknown || len(s) < 2 {
		return false
	}
	if t == UPCE {
		expanded, err := ExpandUPCE(s, 0)
		if err != nil {
			return false
		}
		return Validate(expanded)
	}
	return checkDigit(s[:len(s)-1]) == digitVal(s[len(s)-1])
}

// AddCheckDigit appends the appropriate check digit to an incomplete code,
// dispatching purely on length:
//
// 6 digits are a UPC-E core: the check digit is computed by expanding the
// core to UPC-A with number system 0. This is the one path that returns an
// error, since a core that cannot be expanded signals broken caller data
// that silently returning would mask.
//
// 7 digits (EAN-8 body) and 11 digits (UPC-A body) get the check digit of
// the string as-is.
//
// 12 digits are returned unchanged if they already pass as a UPC-A;
// otherwise they are treated as an EAN-13 body and completed to 13 digits,
// resolving the UPC-A/EAN-13 ambiguity by validity.
//
// Any other length, and non-digit input, is returned unchanged (after
// normalization), assumed complete or not applicable.
func AddCheckDigit(input string) (string, error) {
	s := Normalize(input)
	if !digits.MatchString(s) {
		return s, nil
	}
	switch len(s) {
	case 6:
		expanded, err := ExpandUPCE(s, 0)
		if err != nil {
			return "", errors.Wrapf(err,
				"cannot compute a check digit for core %s", s)
		}
		return s + expanded[len(expanded)-1:], nil
	case 7, 11:
		return s + strconv.Itoa(checkDigit(s)), nil
	case 12:
		if checkDigit(s[:11]) == digitVal(s[11]) {
			return s, nil // already a complete, valid UPC-A
		}
		return s + strconv.Itoa(checkDigit(s)), nil
	}
	return s, nil
}
