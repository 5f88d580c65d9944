package bigint

// The bitwise operations treat an Int as an infinite-width two's-complement
// bit pattern: a negative value stands for the pattern obtained by
// complementing its magnitude and adding one, extended left by an endless
// run of set bits. The pattern is never materialised. Each negative operand
// is converted limb by limb with a running carry seeded at one, the op is
// applied, and the same conversion (it is an involution) maps the result
// limbs back to a magnitude whenever the result's sign bit comes out set.
//
// The result sign is the op applied to the operand sign bits.

// twosComplement converts one limb of a negative magnitude to (or from) its
// two's-complement form, threading the carry through the whole walk.
func twosComplement(neg bool, limb uint32, carry uint32) (uint32, uint32) {
	if !neg {
		return limb, carry
	}
	res := uint64(carry) + uint64(^limb)
	return uint32(res), uint32(res >> limbBits)
}

func (i Int) bitwise(n Int, op func(x, y uint32) uint32) Int {
	iNeg, nNeg := i.IsNeg(), n.IsNeg()
	resNeg := op(signLimb(iNeg), signLimb(nNeg))&1 != 0

	size := len(i.abs)
	if len(n.abs) > size {
		size = len(n.abs)
	}
	out := make([]uint32, size, size+1)

	aCarry, bCarry, resCarry := uint32(1), uint32(1), uint32(1)
	for idx := 0; idx < size; idx++ {
		var aLimb, bLimb uint32
		if idx < len(i.abs) {
			aLimb = i.abs[idx]
		}
		if idx < len(n.abs) {
			bLimb = n.abs[idx]
		}
		aLimb, aCarry = twosComplement(iNeg, aLimb, aCarry)
		bLimb, bCarry = twosComplement(nNeg, bLimb, bCarry)
		out[idx], resCarry = twosComplement(resNeg, op(aLimb, bLimb), resCarry)
	}
	if resNeg && resCarry != 0 {
		// All result limbs decoded to zero: the magnitude is one limb
		// wider than either operand.
		out = append(out, resCarry)
	}

	return Int{neg: resNeg, abs: trim(out)}
}

func signLimb(neg bool) uint32 {
	if neg {
		return 1
	}
	return 0
}

func (i Int) And(n Int) Int { return i.bitwise(n, func(x, y uint32) uint32 { return x & y }) }
func (i Int) Or(n Int) Int  { return i.bitwise(n, func(x, y uint32) uint32 { return x | y }) }
func (i Int) Xor(n Int) Int { return i.bitwise(n, func(x, y uint32) uint32 { return x ^ y }) }

// AndNot returns i &^ n, through the same two's-complement view as And.
func (i Int) AndNot(n Int) Int {
	return i.bitwise(n, func(x, y uint32) uint32 { return x &^ y })
}

// Not returns ^i. Over the infinite-width two's-complement view,
// ^i == -(i + 1), so it need not stream limbs at all.
func (i Int) Not() Int {
	return i.Inc().Neg()
}

// Lsh shifts i left by n bits; i.Lsh(n) is i * 2^n for any sign.
func (i Int) Lsh(n uint) Int {
	if len(i.abs) == 0 {
		return Int{}
	}
	return Int{neg: i.neg, abs: absShl(cloneLimbs(i.abs), n)}
}

// Rsh shifts i right by n bits, flooring like an arithmetic shift: the
// magnitude shift of a negative value truncates toward zero, so one is
// added back whenever a non-zero bit fell off the end.
func (i Int) Rsh(n uint) Int {
	abs, dropped := absShr(cloneLimbs(i.abs), n)
	if i.IsNeg() {
		if dropped {
			abs = absAddLimb(abs, 1)
		}
		return Int{neg: true, abs: abs}
	}
	return Int{abs: abs}
}
