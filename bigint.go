package bigint

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Int is an arbitrary-precision signed integer.
//
// An Int is an immutable value: every operation returns a new Int and the
// zero value is a usable zero. The magnitude is stored sign-and-magnitude
// as little-endian base-2^32 limbs with no trailing zeros; zero is the
// empty magnitude, and a stale sign flag on zero is masked by every
// observer.
type Int struct {
	neg bool
	abs []uint32
}

// IntFromMag64 creates an Int from an unsigned 64-bit magnitude and an
// explicit sign. It is the funnel for all of the fixed-width constructors.
func IntFromMag64(mag uint64, neg bool) Int {
	var abs []uint32
	if mag != 0 {
		if hi := uint32(mag >> limbBits); hi != 0 {
			abs = []uint32{uint32(mag), hi}
		} else {
			abs = []uint32{uint32(mag)}
		}
	}
	return Int{neg: neg, abs: abs}
}

func IntFrom64(v int64) Int {
	if v == minInt64 {
		// |minInt64| does not fit an int64; it does fit a uint64.
		return IntFromMag64(1<<63, true)
	}
	if v < 0 {
		return IntFromMag64(uint64(-v), true)
	}
	return IntFromMag64(uint64(v), false)
}

func IntFrom32(v int32) Int   { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int    { return IntFrom64(int64(v)) }
func IntFromU64(v uint64) Int { return IntFromMag64(v, false) }
func IntFromU32(v uint32) Int { return IntFromU64(uint64(v)) }
func IntFromU16(v uint16) Int { return IntFromU64(uint64(v)) }
func IntFromUint(v uint) Int  { return IntFromU64(uint64(v)) }

// IntFromBigInt creates an Int from a big.Int. The conversion is always
// exact.
func IntFromBigInt(v *big.Int) Int {
	words := v.Bits()
	var abs []uint32

	switch intSize {
	case 64:
		abs = make([]uint32, 0, len(words)*2)
		for _, w := range words {
			abs = append(abs, uint32(w), uint32(uint64(w)>>limbBits))
		}
	case 32:
		abs = make([]uint32, len(words))
		for i, w := range words {
			abs[i] = uint32(w)
		}
	default:
		panic("bigint: unsupported bit size")
	}

	return Int{neg: v.Sign() < 0, abs: trim(abs)}
}

func (i Int) IsZero() bool { return len(i.abs) == 0 }

// IsNeg reports whether i is strictly negative. Zero is never negative,
// whatever the internal sign flag says.
func (i Int) IsNeg() bool { return i.neg && len(i.abs) > 0 }

func (i Int) Sign() int {
	if len(i.abs) == 0 {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

func (i Int) Neg() Int {
	if len(i.abs) == 0 {
		return Int{}
	}
	return Int{neg: !i.neg, abs: i.abs}
}

func (i Int) Abs() Int { return Int{abs: i.abs} }

func (i Int) Add(n Int) Int {
	if i.IsNeg() == n.IsNeg() {
		return Int{neg: i.IsNeg(), abs: absAdd(i.abs, n.abs)}
	}

	if len(i.abs) == len(n.abs) {
		// Opposite signs, same size: equal high limbs cancel, so strip
		// them before comparing and cap the subtraction below them.
		sz := len(i.abs)
		for sz > 0 && i.abs[sz-1] == n.abs[sz-1] {
			sz--
		}
		if sz == 0 {
			return Int{}
		} else if i.abs[sz-1] > n.abs[sz-1] {
			return Int{neg: i.IsNeg(), abs: absSubMax(i.abs, n.abs, sz)}
		}
		return Int{neg: n.IsNeg(), abs: absSubMax(n.abs, i.abs, sz)}
	}

	if len(i.abs) > len(n.abs) {
		return Int{neg: i.IsNeg(), abs: absSub(i.abs, n.abs)}
	}
	return Int{neg: n.IsNeg(), abs: absSub(n.abs, i.abs)}
}

func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

// Mul returns the product of i and n: the sign is the XOR of the operand
// signs, the magnitude is a schoolbook product.
func (i Int) Mul(n Int) Int {
	return Int{neg: i.IsNeg() != n.IsNeg(), abs: absMul(i.abs, n.abs)}
}

func (i Int) Inc() Int {
	if i.IsNeg() {
		return Int{neg: true, abs: absSubLimb(cloneLimbs(i.abs), 1)}
	}
	return Int{abs: absAddLimb(cloneLimbs(i.abs), 1)}
}

func (i Int) Dec() Int {
	if len(i.abs) == 0 {
		return Int{neg: true, abs: []uint32{1}}
	}
	if i.neg {
		return Int{neg: true, abs: absAddLimb(cloneLimbs(i.abs), 1)}
	}
	return Int{abs: absSubLimb(cloneLimbs(i.abs), 1)}
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i Int) Cmp(n Int) int {
	in, nn := i.IsNeg(), n.IsNeg()
	if in != nn {
		if in {
			return -1
		}
		return 1
	}
	if in {
		return -absCmp(i.abs, n.abs)
	}
	return absCmp(i.abs, n.abs)
}

func (i Int) Equal(n Int) bool            { return i.Cmp(n) == 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }
func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }

// BitLen returns the length of the magnitude in bits; the bit length of
// zero is 0.
func (i Int) BitLen() int {
	if len(i.abs) == 0 {
		return 0
	}
	return (len(i.abs)-1)*limbBits + bits.Len32(i.abs[len(i.abs)-1])
}

// AsInt64 truncates the Int to fit in an int64. Values outside the range
// wrap as two's complement. See IsInt64 if you want to check before you
// convert.
func (i Int) AsInt64() int64 {
	lo := low64(i.abs)
	if i.neg {
		return -int64(lo)
	}
	return int64(lo)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	if len(i.abs) > 2 {
		return false
	}
	lo := low64(i.abs)
	if i.IsNeg() {
		return lo <= 1<<63
	}
	return lo <= maxInt64
}

// AsUint64 truncates the Int to fit in a uint64. Negative values wrap as
// two's complement. See IsUint64 if you want to check before you convert.
func (i Int) AsUint64() uint64 {
	lo := low64(i.abs)
	if i.neg {
		return -lo
	}
	return lo
}

// IsUint64 reports whether i can be represented as a uint64.
func (i Int) IsUint64() bool {
	return !i.IsNeg() && len(i.abs) <= 2
}

// AsFloat64 converts the Int to a float64, accumulating limb by limb; the
// result can be a few ULPs away from the correctly rounded conversion.
// Values beyond the float64 range become infinities.
func (i Int) AsFloat64() float64 {
	var f float64
	for j := len(i.abs) - 1; j >= 0; j-- {
		f = f*wrapUint32Float + float64(i.abs[j])
	}
	if i.neg {
		f = -f
	}
	return f
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	words := b.Bits()[:0]

	switch intSize {
	case 64:
		for j := 0; j < len(i.abs); j += 2 {
			w := uint64(i.abs[j])
			if j+1 < len(i.abs) {
				w |= uint64(i.abs[j+1]) << limbBits
			}
			words = append(words, big.Word(w))
		}
	case 32:
		for _, d := range i.abs {
			words = append(words, big.Word(d))
		}
	default:
		panic("bigint: unsupported bit size")
	}

	b.SetBits(words)
	if i.neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it.
func (i Int) AsBigInt() *big.Int {
	b := new(big.Int)
	i.IntoBigInt(b)
	return b
}

func (i Int) AsBigFloat() *big.Float {
	return new(big.Float).SetInt(i.AsBigInt())
}

func (i Int) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("bigint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
