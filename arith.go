package bigint

// Magnitude arithmetic over little-endian base-2^32 limb vectors.
//
// The vector functions (absAdd, absSub, absMul, absCmp) never modify their
// inputs and return freshly allocated results. The limb-scalar and shift
// forms mutate the slice they are given and hand it back, so callers pass a
// scratch they own (see cloneLimbs). Results are always canonical: no
// trailing zero limbs.

func trim(a []uint32) []uint32 {
	for len(a) > 0 && a[len(a)-1] == 0 {
		a = a[:len(a)-1]
	}
	return a
}

func cloneLimbs(a []uint32) []uint32 {
	out := make([]uint32, len(a), len(a)+1)
	copy(out, a)
	return out
}

func low64(a []uint32) uint64 {
	var lo uint64
	if len(a) > 0 {
		lo = uint64(a[0])
	}
	if len(a) > 1 {
		lo |= uint64(a[1]) << limbBits
	}
	return lo
}

func absCmp(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return 1
		}
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func absAdd(a, b []uint32) []uint32 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint32, len(a), len(a)+1)
	var carry uint64
	for i := 0; i < len(b); i++ {
		carry += uint64(a[i]) + uint64(b[i])
		out[i] = uint32(carry)
		carry >>= limbBits
	}
	for i := len(b); i < len(a); i++ {
		carry += uint64(a[i])
		out[i] = uint32(carry)
		carry >>= limbBits
	}
	if carry != 0 {
		out = append(out, uint32(carry))
	}
	return out
}

// absSub subtracts b from a. a must not be smaller than b.
func absSub(a, b []uint32) []uint32 {
	return absSubMax(a, b, len(a))
}

// absSubMax is absSub limited to the low max limbs of both operands. The
// caller uses the cap when it already knows the higher limbs cancel.
func absSubMax(a, b []uint32, max int) []uint32 {
	if max > len(a) {
		max = len(a)
	}
	out := make([]uint32, max)
	n := len(b)
	if n > max {
		n = max
	}
	var borrow uint64
	for i := 0; i < n; i++ {
		diff := uint64(a[i]) - uint64(b[i]) - borrow
		if diff > limbMax {
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(diff)
	}
	for i := n; i < max; i++ {
		diff := uint64(a[i]) - borrow
		if diff > limbMax {
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = uint32(diff)
	}
	return trim(out)
}

// absMul is schoolbook multiplication, O(len(a) * len(b)).
func absMul(a, b []uint32) []uint32 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]uint32, len(a)+len(b))
	for i := 0; i < len(a); i++ {
		ai := uint64(a[i])
		var carry uint64
		for j := 0; j < len(b); j++ {
			cur := ai*uint64(b[j]) + uint64(out[i+j]) + carry
			out[i+j] = uint32(cur)
			carry = cur >> limbBits
		}
		out[i+len(b)] = uint32(carry)
	}
	return trim(out)
}

func absAddLimb(a []uint32, v uint32) []uint32 {
	carry := uint64(v)
	for i := 0; i < len(a) && carry != 0; i++ {
		carry += uint64(a[i])
		a[i] = uint32(carry)
		carry >>= limbBits
	}
	if carry != 0 {
		a = append(a, uint32(carry))
	}
	return a
}

// absSubLimb subtracts v from a, which must represent a value >= v.
func absSubLimb(a []uint32, v uint32) []uint32 {
	borrow := uint64(v)
	for i := 0; i < len(a) && borrow != 0; i++ {
		diff := uint64(a[i]) - borrow
		if diff > limbMax {
			borrow = 1
		} else {
			borrow = 0
		}
		a[i] = uint32(diff)
	}
	return trim(a)
}

func absMulLimb(a []uint32, v uint32) []uint32 {
	var carry uint64
	for i := 0; i < len(a); i++ {
		carry += uint64(a[i]) * uint64(v)
		a[i] = uint32(carry)
		carry >>= limbBits
	}
	if carry != 0 {
		a = append(a, uint32(carry))
	}
	return trim(a)
}

// absDivLimb divides a by v in place, walking limbs high to low with a
// 64-bit running remainder, and returns the final remainder.
func absDivLimb(a []uint32, v uint32) ([]uint32, uint32) {
	var rem uint64
	for i := len(a) - 1; i >= 0; i-- {
		rem = rem<<limbBits | uint64(a[i])
		a[i] = uint32(rem / uint64(v))
		rem %= uint64(v)
	}
	return trim(a), uint32(rem)
}

// absShl shifts a up by s bits: a zero-limb prefix for the whole limbs,
// then a limb multiply for the rest.
func absShl(a []uint32, s uint) []uint32 {
	if len(a) == 0 {
		return a
	}
	if q := int(s / limbBits); q > 0 {
		a = append(make([]uint32, q, q+len(a)+1), a...)
	}
	return absMulLimb(a, 1<<(s%limbBits))
}

// absShr shifts a down by s bits, reporting whether any non-zero bit was
// shifted out. The report feeds the arithmetic right shift of negatives.
func absShr(a []uint32, s uint) ([]uint32, bool) {
	dropped := false
	q := int(s / limbBits)
	if q >= len(a) {
		for _, d := range a {
			if d != 0 {
				dropped = true
				break
			}
		}
		return a[:0], dropped
	}
	for _, d := range a[:q] {
		if d != 0 {
			dropped = true
			break
		}
	}
	n := copy(a, a[q:])
	a = a[:n]
	var rem uint32
	a, rem = absDivLimb(a, 1<<(s%limbBits))
	return a, dropped || rem != 0
}
