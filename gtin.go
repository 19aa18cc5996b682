/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"regexp"
	"strconv"
	"strings"
)

// digits is used to validate that codes are non-empty, all-digit strings.
var digits = regexp.MustCompile(`^\d+$`)

// Normalize trims leading and trailing whitespace and removes all embedded
// space characters, producing the canonical form every other function in
// this package operates on. It performs no other transformation; dashes and
// other separators are left in place (and will fail digit validation later).
func Normalize(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}

// BarcodeType identifies one of the GS1 retail symbologies this package
// handles. It is determined entirely by a code's digits, never by metadata.
type BarcodeType int

const (
	Unknown = BarcodeType(iota)
	UPCA
	UPCE
	EAN13
	EAN8
)

func (t BarcodeType) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case UPCA:
		return "UPC-A"
	case UPCE:
		return "UPC-E"
	case EAN13:
		return "EAN-13"
	case EAN8:
		return "EAN-8"
	}
	return "Unknown barcode type: " + strconv.Itoa(int(t))
}

// CompleteLength returns the number of digits in a complete code of this
// type, including its check digit: 12 for UPC-A, 8 for UPC-E and EAN-8, 13
// for EAN-13, and 0 for Unknown.
func (t BarcodeType) CompleteLength() int {
	switch t {
	case UPCA:
		return 12
	case UPCE, EAN8:
		return 8
	case EAN13:
		return 13
	}
	return 0
}

// EightDigitPolicy selects how to break the tie for 8-digit strings, which
// may be either a complete EAN-8 or a complete UPC-E. It affects only the
// length-8 case. The zero value, PreferUPCE, is the default.
type EightDigitPolicy int

const (
	// PreferUPCE tries the UPC-E interpretation first: if the leading digit
	// is a valid number system (0 or 1) and the string expands to a UPC-A
	// whose check digit matches, the string is a UPC-E; otherwise EAN-8.
	PreferUPCE = EightDigitPolicy(iota)
	// PreferEAN8 checks the EAN-8 checksum first and only tries the UPC-E
	// interpretation if that fails.
	PreferEAN8
)

func (p EightDigitPolicy) String() string {
	switch p {
	case PreferUPCE:
		return "PreferUPCE"
	case PreferEAN8:
		return "PreferEAN8"
	}
	return "Unknown policy: " + strconv.Itoa(int(p))
}

// Classify determines the symbology of a digit string using the default
// PreferUPCE policy for 8-digit strings. See ClassifyWithPolicy.
func Classify(input string) BarcodeType {
	return ClassifyWithPolicy(input, PreferUPCE)
}

// ClassifyWithPolicy determines the symbology of a digit string from its
// length, using the given policy to break the 8-digit EAN-8/UPC-E tie.
//
// Strings that are empty or contain non-digit characters after normalization
// are Unknown, as are all-digit strings of a length no symbology has.
// 6-digit strings are bare UPC-E cores; 7-digit strings are EAN-8 bodies
// awaiting a check digit; 11- and 12-digit strings are UPC-A (a 12-digit
// string may equally be an EAN-13 body, which AddCheckDigit resolves by
// checksum validity rather than by type).
//
// Length 8 never yields Unknown: when neither interpretation fits, the
// string is still reported as EAN-8, even if its EAN-8 checksum is invalid.
func ClassifyWithPolicy(input string, policy EightDigitPolicy) BarcodeType {
	s := Normalize(input)
	if !digits.MatchString(s) {
		return Unknown
	}
	switch len(s) {
	case 6:
		return UPCE
	case 7:
		return EAN8
	case 8:
		return classifyEight(s, policy)
	case 11, 12:
		return UPCA
	case 13:
		return EAN13
	}
	return Unknown
}

func classifyEight(s string, policy EightDigitPolicy) BarcodeType {
	if policy == PreferEAN8 && checkDigit(s[:7]) == digitVal(s[7]) {
		return EAN8
	}
	if s[0] <= '1' {
		if _, err := ExpandUPCE(s, 0); err == nil {
			return UPCE
		}
	}
	return EAN8
}

// HasCheckDigit reports whether the code already carries its check digit,
// i.e. whether its classified type's complete length matches its actual
// length. A 6-digit core or an 11-digit UPC-A body classifies fine but
// reports false here.
func HasCheckDigit(input string) bool {
	s := Normalize(input)
	t := Classify(s)
	return t != Unknown && len(s) == t.CompleteLength()
}

func digitVal(c byte) int {
	return int(c - '0')
}
