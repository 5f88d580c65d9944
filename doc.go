/*
Package bigint provides an arbitrary-precision signed integer type (Int),
implementing most of the big.Int API as an immutable value type.

Int is a value type; all operations return new values and no operation
modifies its receiver or arguments. The zero value is a ready-to-use zero.

Simple example:

	a := MustIntFromString("100000000000000000000")
	fmt.Println(a.Mul(a))
	// Output: 10000000000000000000000000000000000000000

Int can be created from a variety of sources:

	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFrom16(v int16) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromU32(v uint32) Int
	IntFromU16(v uint16) Int
	IntFromUint(v uint) Int
	IntFromMag64(mag uint64, neg bool) Int
	IntFromString(s string) (out Int, err error)
	MustIntFromString(s string) Int
	IntFromBigInt(v *big.Int) Int

Division truncates toward zero and the remainder takes the dividend's sign,
like Go's native integers and big.Int's Quo/Rem. Dividing by zero panics.

The bitwise operations And, Or, Xor, AndNot, Not and the shifts Lsh and Rsh
act on the value's infinite-width two's-complement representation, so they
agree bit for bit with big.Int: Not(x) == -(x+1), and Rsh of a negative
value is an arithmetic (flooring) shift.

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
*/
package bigint
