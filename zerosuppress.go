/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"strconv"

	"github.com/pkg/errors"
)

// Zero suppression compresses an 11-digit UPC-A body (number system digit,
// 5 manufacturer digits, 5 product digits) into a 6-digit UPC-E core by
// exploiting runs of embedded zeros. The core's final digit is the pattern
// selector, recording which structural pattern produced it:
//
//	selector | manufacturer  | product
//	5-9      | d1 d2 d3 d4 d5| 0 0 0 0 sel
//	4        | d1 d2 d3 0 d4 | 0 0 0 0 d5
//	3        | d1 d2 d3 0 0  | 0 0 0 d4 d5
//	0, 1, 2  | d1 d2 d3 sel 0| 0 0 0 d4 d5
//
// Only number systems 0 and 1 support zero suppression.

// ExpandUPCE expands a UPC-E code to its 12-digit UPC-A form.
//
// The input may be 6 digits (a bare core; the number system is taken from
// numberSystem, with values other than 0 and 1 falling back to 0), 7 digits
// (number system digit + core; numberSystem is ignored), or 8 digits (number
// system + core + check digit). Any other length fails. An 8-digit input's
// check digit must match the one computed from the expansion exactly; a
// mismatch fails rather than being silently corrected.
func ExpandUPCE(input string, numberSystem int) (string, error) {
	s := Normalize(input)
	if !digits.MatchString(s) {
		return "", errors.Errorf("UPC-E codes contain only digits, "+
			"but this is %q", input)
	}

	var core string
	check := -1
	switch len(s) {
	case 6:
		if numberSystem != 1 {
			numberSystem = 0
		}
		core = s
	case 8:
		check = digitVal(s[7])
		fallthrough
	case 7:
		numberSystem = digitVal(s[0])
		if numberSystem > 1 {
			return "", errors.Errorf("number system %d does not "+
				"support zero suppression; must be 0 or 1", numberSystem)
		}
		core = s[1:7]
	default:
		return "", errors.Errorf("UPC-E codes have 6, 7, or 8 digits, "+
			"but this has %d", len(s))
	}

	body := strconv.Itoa(numberSystem) + expandCore(core)
	cd := checkDigit(body)
	if check >= 0 && check != cd {
		return "", errors.Errorf("%s carries check digit %d, "+
			"but its expansion computes to %d", s, check, cd)
	}
	return body + strconv.Itoa(cd), nil
}

// expandCore decodes a 6-digit core into its 10-digit manufacturer+product
// run, keyed on the pattern selector (the core's final digit).
func expandCore(core string) string {
	d4, d5 := core[3:4], core[4:5]
	switch sel := core[5:]; {
	case core[5] >= '5':
		return core[:5] + "0000" + sel
	case core[5] == '4':
		return core[:3] + "0" + d4 + "0000" + d5
	case core[5] == '3':
		return core[:3] + "00" + "000" + d4 + d5
	default: // selector 0, 1, or 2
		return core[:3] + sel + "0" + "000" + d4 + d5
	}
}

// CompressUPCAToUPCE compresses a complete, valid UPC-A code to its 8-digit
// UPC-E form (number system + 6-digit core + check digit).
//
// The input must classify as UPC-A, pass checksum validation, and carry
// number system 0 or 1; zero suppression is undefined otherwise. The
// suppression patterns are tried in a fixed priority order and the first
// match wins; a code matching none of them is not zero-compressible and
// fails. Note the order is significant when a code satisfies several
// patterns at once: the emitted core is the canonical one for this priority,
// which may differ from a core the code was originally expanded from.
func CompressUPCAToUPCE(input string) (string, error) {
	s := Normalize(input)
	if t := Classify(s); t != UPCA {
		return "", errors.Errorf("only UPC-A codes can be "+
			"zero-compressed, but %q is %s", input, t)
	}
	if !Validate(s) {
		return "", errors.Errorf("%s fails checksum validation", s)
	}
	if s[0] > '1' {
		return "", errors.Errorf("number system %c does not support "+
			"zero suppression; must be 0 or 1", s[0])
	}

	m, p := s[1:6], s[6:11]
	var core string
	switch {
	case p[:4] == "0000" && p[4] >= '5':
		core = m + p[4:]
	case m[3] == '0' && p[:3] == "000":
		core = m[:3] + m[4:] + p[4:] + "4"
	case m[3] == '0' && m[4] == '0' && p[:3] == "000":
		core = m[:3] + p[3:] + "3"
	case m[4] == '0' && p[:3] == "000" && m[3] <= '2':
		core = m[:3] + p[3:] + m[3:4]
	default:
		return "", errors.Errorf("%s is not zero-compressible", s)
	}

	// round-trip the candidate core to pick up the correct check digit
	expanded, err := ExpandUPCE(s[:1]+core, 0)
	if err != nil {
		return "", err
	}
	return s[:1] + core + expanded[11:], nil
}

// Convert converts between the two inter-convertible symbologies: a UPC-A
// input is compressed to UPC-E, and a UPC-E input is expanded to UPC-A
// (number system assumed 0 for bare cores). Any other classification fails,
// as does a failed compression or expansion.
func Convert(input string) (string, error) {
	s := Normalize(input)
	switch t := Classify(s); t {
	case UPCA:
		return CompressUPCAToUPCE(s)
	case UPCE:
		return ExpandUPCE(s, 0)
	default:
		return "", errors.Errorf("conversion is only defined between "+
			"UPC-A and UPC-E, but %q is %s", input, t)
	}
}
