package bigint

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerInt(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func SmallerInt(a, b Int) Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
