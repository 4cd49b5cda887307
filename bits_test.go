package cprintf

import (
	"math"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		x     float64
		neg   bool
		class floatClass
		exp   int
		mant  uint64
	}{
		{0, false, classZero, 0, 0},
		{math.Copysign(0, -1), true, classZero, 0, 0},
		{1, false, classNormal, 1023, 0},
		{-1.5, true, classNormal, 1023, 1 << 51},
		{math.MaxFloat64, false, classNormal, 2046, 1<<52 - 1},
		{math.SmallestNonzeroFloat64, false, classSubnormal, 0, 1},
		{-math.SmallestNonzeroFloat64, true, classSubnormal, 0, 1},
		{0x1p-1022, false, classNormal, 1, 0},
		{0x1p-1023, false, classSubnormal, 0, 1 << 51},
		{math.Inf(1), false, classInf, 2047, 0},
		{math.Inf(-1), true, classInf, 2047, 0},
	}

	for _, tt := range tests {
		got := decomposeFloat64(tt.x)
		want := decomposed{neg: tt.neg, class: tt.class, exp: tt.exp, mant: tt.mant}
		if got != want {
			t.Errorf("%g: expected %+v, got %+v", tt.x, want, got)
		}
	}
}

func TestDecomposeNaN(t *testing.T) {
	for _, b := range []uint64{0x7ff8000000000000, 0x7ff0000000000001, 0xfff8000000000000, 0x7fffffffffffffff} {
		if got := decompose(b); got.class != classNaN {
			t.Errorf("%#x: expected nan, got %v", b, got.class)
		}
	}
}

func TestDecomposeFloat32(t *testing.T) {
	// the smallest float32 subnormal is a normal float64.
	got := decomposeFloat32(math.SmallestNonzeroFloat32)
	if got.class != classNormal || got.exp != 1023-149 || got.mant != 0 {
		t.Errorf("expected normal 2^-149, got %+v", got)
	}

	got = decomposeFloat32(float32(math.Inf(-1)))
	if got.class != classInf || !got.neg {
		t.Errorf("expected -inf, got %+v", got)
	}

	got = decomposeFloat32(float32(math.NaN()))
	if got.class != classNaN {
		t.Errorf("expected nan, got %+v", got)
	}
}

func TestFloatClassString(t *testing.T) {
	tests := []struct {
		c    floatClass
		want string
	}{
		{classZero, "zero"},
		{classSubnormal, "subnormal"},
		{classNormal, "normal"},
		{classInf, "inf"},
		{classNaN, "nan"},
		{floatClass(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}
