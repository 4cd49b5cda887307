package cprintf

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

//go:generate go run ./internal/gentables -o tables.go

// windowDigits is the number of decimal digits produced by the scaling multiply.
const windowDigits = doublePrecision + 2

var pow10tab = [...]uint64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// countDigits returns the number of decimal digits of v; zero has one digit.
func countDigits(v uint64) int {
	n := 1
	for n < len(pow10tab) && v >= pow10tab[n] {
		n++
	}
	return n
}

// initialPrecision returns the number of significant digits to keep
// before the renderer rounds to the requested precision.
func initialPrecision(kind Kind, prec, defPrec int) int {
	if prec < defPrec {
		return defPrec
	}
	switch kind {
	case Exponential:
		return min(defPrec+2, prec+1)
	default:
		return min(defPrec+2, prec)
	}
}

// scale converts a finite nonzero value into decimal digits.
// The caller filters zero, infinities and NaN.
func (d *digitBuffer) scale(dec decomposed, defPrec int, kind Kind, prec int) {
	e := dec.exp
	m := dec.mant
	expAdjust := 0
	if dec.class == classSubnormal {
		e = 1
		if n := countDigits(m); n < doublePrecision {
			expAdjust = n - doublePrecision
			m *= pow10tab[-expAdjust]
		}
	} else {
		// one extra digit of headroom for rounding.
		m = (m + 1<<shift64) * 10
		expAdjust = -1
	}

	// the high word of the product holds the integer digits,
	// bits 32-63 of the low word the first fraction bits.
	hi, lo := bits.Mul64(m, mantissaScale[e])
	res := hi
	frac := lo >> 32
	for res < pow10tab[windowDigits-1] {
		frac *= 10
		res = res*10 + frac>>32
		frac &= 0xffffffff
		expAdjust--
	}

	order := windowDigits
	point := int(decimalExponent[e]) + expAdjust + order

	var drop int
	if initial := initialPrecision(kind, prec, defPrec); order > initial {
		drop = order - initial
		order = initial
	}
	window := int128.Uint128{L: res}.Lsh(32).Or(int128.Uint128{L: frac})
	res = roundWindow(window, drop)
	if res >= pow10tab[order] {
		order++
		point++
	}

	d.setUint64(res, order)
	d.point = point
	d.neg = dec.neg
}

// roundWindow removes the 32 fraction bits and the n least significant digits
// of the fixed-point window w, rounding half up.
func roundWindow(w int128.Uint128, n int) uint64 {
	y := int128.Uint128{L: pow10tab[n]}.Lsh(32)
	y2 := y.Rsh(1)

	div, mod := w.DivMod(y)
	if mod.Cmp(y2) >= 0 {
		// round up
		div = div.Add(int128.Uint128{L: 1})
	}
	return div.L
}
