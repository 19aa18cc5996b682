package gtin

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestComputeCheckDigit(t *testing.T) {
	type test struct {
		name, body string
		digit      int
		bad        bool
	}

	pass := func(n, b string, d int) test {
		return test{name: n, body: b, digit: d}
	}
	fail := func(n, b string) test {
		return test{name: n, body: b, bad: true}
	}

	for i, tt := range []test{
		pass("UPC-A body", "03600029145", 2),
		pass("EAN-13 body", "400638133393", 1),
		pass("EAN-8 body", "0123456", 5),
		pass("EAN-8 body, sum multiple of 10", "1234567", 0),
		pass("single zero", "0", 0),
		pass("single digit", "7", 9),
		pass("all zeros", "000000000000", 0),
		pass("spaces normalized away", " 036 0002 9145 ", 2),

		fail("empty", ""),
		fail("whitespace only", "  "),
		fail("letters", "12ab5"),
		fail("dashes", "12-34"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			d, err := ComputeCheckDigit(tt.body)
			if tt.bad {
				w.As(tt.body).ShouldFail(err)
				return
			}
			w.As(tt.body).ShouldSucceed(err)
			w.As(tt.body).ShouldBeEqual(d, tt.digit)
		})
	}
}

func TestComputeCheckDigit_0to9(t *testing.T) {
	// the check digit is always 0-9 and deterministic, regardless of input
	w := expect.WrapT(t)
	for i := 0; i < 1000; i++ {
		body := make([]byte, 1+rand.Intn(13))
		for j := range body {
			body[j] = byte('0' + rand.Intn(10))
		}
		d, err := ComputeCheckDigit(string(body))
		w.StopOnMismatch().As(string(body)).ShouldSucceed(err)
		if d < 0 || d > 9 {
			t.Errorf("bad check digit for %s: %d", body, d)
		}
		again, _ := ComputeCheckDigit(string(body))
		w.As(string(body)).ShouldBeEqual(d, again)
	}
}

func TestValidate(t *testing.T) {
	type test struct {
		name, code string
		valid      bool
	}

	pass := func(n, c string) test { return test{name: n, code: c, valid: true} }
	fail := func(n, c string) test { return test{name: n, code: c} }

	for i, tt := range []test{
		pass("UPC-A", "036000291452"),
		fail("UPC-A check off by one", "036000291453"),
		pass("EAN-13", "4006381333931"),
		fail("EAN-13 check off by one", "4006381333930"),
		pass("EAN-8", "40267708"),
		fail("EAN-8 bad check", "40267700"),
		pass("UPC-E with check digit", "01234565"),
		pass("UPC-E, number system 1", "12345670"),
		pass("spaces normalized away", "0 36000 29145 2"),

		// a bare core has no checksum of its own; validity is delegated to
		// its expansion, which always computes a matching check digit
		pass("bare core always validates", "123456"),

		// incomplete bodies are judged as if their last digit were the
		// check digit
		pass("EAN-8 body with coincidental check", "0123457"),
		fail("EAN-8 body without", "0123456"),

		fail("empty", ""),
		fail("single digit", "1"),
		fail("unclassifiable length", "12345"),
		fail("non-digit", "03600029145X"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			if tt.valid {
				w.As(tt.code).ShouldBeTrue(Validate(tt.code))
			} else {
				w.As(tt.code).ShouldBeFalse(Validate(tt.code))
			}
		})
	}
}

func TestAddCheckDigit(t *testing.T) {
	type test struct {
		name, code, want string
	}

	for i, tt := range []test{
		{"UPC-A body", "03600029145", "036000291452"},
		{"valid UPC-A unchanged", "036000291452", "036000291452"},
		// 12 digits failing the UPC-A checksum are an EAN-13 body
		{"EAN-13 body", "400638133393", "4006381333931"},
		{"EAN-8 body", "0123456", "01234565"},
		// a core's check digit comes from its UPC-A expansion
		{"bare core", "123450", "1234501"},
		{"bare core 2", "123456", "1234565"},
		{"spaces normalized away", " 0 36000 29145", "036000291452"},

		{"complete EAN-8 unchanged", "12345678", "12345678"},
		{"complete EAN-13 unchanged", "4006381333931", "4006381333931"},
		{"unclassifiable length unchanged", "1234567890", "1234567890"},
		{"non-digit unchanged", "12-34", "12-34"},
		{"empty unchanged", "", ""},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			got, err := AddCheckDigit(tt.code)
			w.As(tt.code).ShouldSucceed(err)
			w.As(tt.code).ShouldBeEqual(got, tt.want)
		})
	}
}
