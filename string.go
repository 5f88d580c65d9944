package bigint

import (
	"fmt"
	"strconv"
	"strings"
)

// IntFromString creates an Int from a decimal string: an optional leading
// '-' followed by at least one ASCII digit. Anything else is an error.
// There is no limit on the number of digits.
func IntFromString(s string) (out Int, err error) {
	index := 0
	neg := false
	if index < len(s) && s[index] == '-' {
		neg = true
		index++
	}
	if index == len(s) {
		return out, fmt.Errorf("bigint: string %q invalid", s)
	}

	// Fold the input in chunks of up to nine digits; 10^9 fits a limb.
	var abs []uint32
	for index < len(s) {
		end := index + limbDigits10
		if end > len(s) {
			end = len(s)
		}
		var chunk uint32
		start := index
		for ; index < end; index++ {
			c := s[index]
			if c < '0' || c > '9' {
				return out, fmt.Errorf("bigint: string %q invalid", s)
			}
			chunk = chunk*10 + uint32(c-'0')
		}
		abs = absMulLimb(abs, pow10[end-start])
		abs = absAddLimb(abs, chunk)
	}

	return Int{neg: neg, abs: abs}, nil
}

// MustIntFromString creates an Int from a decimal string, panicking if the
// string does not parse. Intended for literals.
func MustIntFromString(s string) Int {
	v, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String formats the Int as canonical decimal: no leading zeros, no "-0".
func (i Int) String() string {
	if len(i.abs) == 0 {
		return "0"
	}

	// Peel nine digits at a time off a working copy of the magnitude.
	var chunks []uint32
	scratch := cloneLimbs(i.abs)
	for len(scratch) > 0 {
		var rem uint32
		scratch, rem = absDivLimb(scratch, limbPow10)
		chunks = append(chunks, rem)
	}

	const zeroPad = "00000000"

	var b strings.Builder
	if i.neg {
		b.WriteByte('-')
	}
	last := len(chunks) - 1
	b.WriteString(strconv.FormatUint(uint64(chunks[last]), 10))
	for j := last - 1; j >= 0; j-- {
		digits := strconv.FormatUint(uint64(chunks[j]), 10)
		b.WriteString(zeroPad[:limbDigits10-len(digits)])
		b.WriteString(digits)
	}
	return b.String()
}
