/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gtin classifies, validates, repairs, and inter-converts the GS1
// retail numeric barcode symbologies: UPC-A (12 digits), UPC-E (6, 7, or 8
// digit compressed forms), EAN-13 (13 digits), and EAN-8 (8 digits). All
// four are carried as plain digit strings; this package never touches the
// printed bar patterns, only the numbers they encode.
//
// The relevant rules come from the GS1 General Specifications, particularly
// the check digit calculation (section 7.9) and the UPC-E zero suppression
// tables (section 5.2.2.4):
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
//
// Every operation is a pure function of its input string (plus, where noted,
// a number system or policy parameter): there is no shared mutable state, so
// the package is safe for concurrent use without synchronization.
//
// Two ambiguities are inherent to the digit strings themselves and cannot be
// resolved from the data alone:
//
// An 8-digit string may be a complete EAN-8 or a complete UPC-E (number
// system + compressed core + check digit). Classify resolves the tie with an
// EightDigitPolicy; the default, PreferUPCE, tries the UPC-E interpretation
// first and otherwise reports EAN-8. Note that length 8 never classifies as
// Unknown: a string that fits neither interpretation is still reported as
// EAN-8, and Validate is the way to find out whether its check digit holds.
//
// A 12-digit string may be a complete UPC-A or an EAN-13 body awaiting its
// check digit. Classify reports UPCA; AddCheckDigit resolves the ambiguity
// by validity, returning a passing UPC-A unchanged and otherwise completing
// the string as an EAN-13.
//
// UPC-E deserves a warning: a compressed core has no checksum of its own.
// Its validity is entirely delegated to the 12-digit UPC-A it expands to,
// and only UPC-A codes with number system 0 or 1 can be compressed at all.
// Several distinct cores can also expand to the same UPC-A; compression
// applies the suppression patterns in a fixed priority order, so the core it
// emits is canonical but not necessarily the core you started from.
package gtin
