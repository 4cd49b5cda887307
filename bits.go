package cprintf

import "math"

const (
	shift64    = 52
	mask64     = 0x7ff
	bias64     = 1023
	signMask64 = 1 << 63
	fracMask64 = 1<<shift64 - 1
)

// default number of significant digits kept for each input width.
const (
	doublePrecision = 15
	singlePrecision = 7
)

type floatClass uint8

const (
	classZero floatClass = iota
	classSubnormal
	classNormal
	classInf
	classNaN
)

func (c floatClass) String() string {
	switch c {
	case classZero:
		return "zero"
	case classSubnormal:
		return "subnormal"
	case classNormal:
		return "normal"
	case classInf:
		return "inf"
	case classNaN:
		return "nan"
	}
	return "unknown"
}

// decomposed is the IEEE 754 binary64 representation of a value split into its fields.
type decomposed struct {
	neg   bool
	class floatClass
	exp   int    // biased exponent
	mant  uint64 // fraction without the implicit leading bit
}

// decompose splits the IEEE 754 binary representation b.
// Every bit pattern maps to exactly one class.
func decompose(b uint64) decomposed {
	d := decomposed{neg: b&signMask64 != 0}
	b &^= signMask64

	d.exp = int(b>>shift64) & mask64
	d.mant = b & fracMask64
	switch {
	case d.exp == mask64:
		if d.mant != 0 {
			d.class = classNaN
		} else {
			d.class = classInf
		}
	case b == 0:
		d.class = classZero
	case d.exp == 0:
		d.class = classSubnormal
	default:
		d.class = classNormal
	}
	return d
}

func decomposeFloat64(f float64) decomposed {
	return decompose(math.Float64bits(f))
}

// decomposeFloat32 widens f to binary64 first; the conversion is exact.
func decomposeFloat32(f float32) decomposed {
	return decompose(math.Float64bits(float64(f)))
}
