/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Command gtin classifies, validates, completes, and converts GS1 retail
// barcode numbers (UPC-A, UPC-E, EAN-13, EAN-8) given as arguments or read
// line by line from standard input.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"syscall"

	gtin "github.com/intel/rsp-sw-toolkit-im-suite-gtin"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var (
	addCheck = getopt.BoolLong("add-check", 'a',
		"append the check digit to incomplete codes")
	convert = getopt.BoolLong("convert", 'c',
		"convert between UPC-A and UPC-E")
	ean8First = getopt.BoolLong("prefer-ean8", 'e',
		"resolve ambiguous 8-digit codes as EAN-8 before UPC-E")
	help = getopt.BoolLong("help", 'h', "show this help")
)

func main() {
	log.SetFlags(0)
	getopt.SetParameters("[code ...]")
	getopt.Parse()
	if *help {
		getopt.PrintUsage(os.Stdout)
		os.Exit(0)
	}

	policy := gtin.PreferUPCE
	if *ean8First {
		policy = gtin.PreferEAN8
	}

	codes := getopt.Args()
	if len(codes) == 0 {
		if isatty.IsTerminal(uintptr(syscall.Stdin)) {
			getopt.PrintUsage(os.Stderr)
			os.Exit(2)
		}
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			codes = append(codes, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatalln(err)
		}
	}

	status := 0
	for _, code := range codes {
		var out string
		var err error
		switch {
		case *convert:
			out, err = gtin.Convert(code)
		case *addCheck:
			out, err = gtin.AddCheckDigit(code)
		default:
			out = describe(code, policy)
		}
		if err != nil {
			log.Println(err)
			status = 1
			continue
		}
		fmt.Println(out)
	}
	os.Exit(status)
}

func describe(code string, policy gtin.EightDigitPolicy) string {
	t := gtin.ClassifyWithPolicy(code, policy)
	state := "invalid"
	switch {
	case t != gtin.Unknown && !gtin.HasCheckDigit(code):
		state = "incomplete"
	case gtin.Validate(code):
		state = "valid"
	}
	return fmt.Sprintf("%s\t%s\t%s", gtin.Normalize(code), t, state)
}
