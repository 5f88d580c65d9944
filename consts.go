package bigint

const (
	limbBits = 32
	limbBase = 1 << limbBits
	limbMax  = limbBase - 1

	// limbDigits10 is the largest number of decimal digits guaranteed to fit
	// a single limb; limbPow10 is 10^limbDigits10.
	limbDigits10 = 9
	limbPow10    = 1000000000

	maxInt64 = 1<<63 - 1
	minInt64 = -1 << 63

	wrapUint32Float = float64(limbBase) // 1 << 32

	intSize = 32 << (^uint(0) >> 63)
)

var pow10 = [limbDigits10 + 1]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}
