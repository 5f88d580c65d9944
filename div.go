package bigint

import "math/bits"

// Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) over base 2^32, with the
// estimate-and-correct digit loop driven by signed arithmetic on the
// working dividend.

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = i/by      with the result truncated to zero
//	r = i - by*q
//
// so |r| < |by| and r takes the sign of the dividend. Int does not support
// big.Int.DivMod()-style Euclidean division.
func (i Int) QuoRem(by Int) (q, r Int) {
	if len(by.abs) == 0 {
		panic("bigint: division by zero")
	}
	if absCmp(i.abs, by.abs) < 0 {
		return Int{}, i
	}

	qNeg := i.IsNeg() != by.IsNeg()
	rNeg := i.IsNeg()

	// Normalise: shift both operands until the divisor's top limb is at
	// least half the base, bounding the quotient-digit estimate error.
	k := uint(bits.LeadingZeros32(by.abs[len(by.abs)-1]))
	u := Int{abs: absShl(cloneLimbs(i.abs), k)}
	v := absShl(cloneLimbs(by.abs), k)

	// Divisor aligned with the dividend's top limbs; each round of the
	// digit loop below shifts it down one limb.
	m := len(u.abs) - len(v)
	vAligned := make([]uint32, m+len(v))
	copy(vAligned[m:], v)

	qAbs := make([]uint32, m+1)
	qi := m

	if absCmp(u.abs, vAligned) >= 0 {
		qAbs[qi] = 1
		u.abs = absSub(u.abs, vAligned)
	}
	qi--

	vTop := uint64(v[len(v)-1])
	for ; qi >= 0 && len(u.abs) > 0; qi-- {
		vAligned = vAligned[1:]

		// The numerator limbs are read at the divisor's alignment, not at
		// the dividend's own top; the dividend can shrink below the
		// divisor between digits, and those positions then read as zero.
		var hi, mid uint64
		if n := len(vAligned); n < len(u.abs) {
			hi = uint64(u.abs[n])
		}
		if n := len(vAligned) - 1; n < len(u.abs) {
			mid = uint64(u.abs[n])
		}
		t := (hi<<limbBits | mid) / vTop
		if t > limbMax {
			t = limbMax
		}
		if t == 0 {
			continue
		}
		qAbs[qi] = uint32(t)

		u = u.Sub(Int{abs: absMulLimb(cloneLimbs(vAligned), uint32(t))})
		for u.IsNeg() {
			// Estimate overshot; this runs at most twice thanks to the
			// normalisation above.
			qAbs[qi]--
			u = u.Add(Int{abs: vAligned})
		}
	}

	rAbs, _ := absShr(u.abs, k)
	return Int{neg: qNeg, abs: trim(qAbs)}, Int{neg: rNeg, abs: rAbs}
}

// Quo returns the quotient i/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (i Int) Quo(by Int) (q Int) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of i%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (i Int) Rem(by Int) (r Int) {
	_, r = i.QuoRem(by)
	return r
}
