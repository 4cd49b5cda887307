// Command gentables generates the exponent scaling tables of package cprintf.
//
// For every biased binary exponent e, mantissaScale[e] and decimalExponent[e]
// are chosen so that the high 64 bits of (mantissa * 10) * mantissaScale[e]
// hold a 17 digit decimal window of the value, whose power of ten is given by
// decimalExponent[e].
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math"
	"math/bits"
	"os"
)

const (
	tableSize = 2047
	bias      = 1023

	// largest scaled mantissa, (2^53 - 1) * 10, split into 32-bit halves.
	maxHi = 0x013fffff
	maxLo = 0xfffffff6

	seventeenDigits = 1e16
)

func main() {
	out := flag.String("o", "tables.go", "output file")
	flag.Parse()

	scale, exp := generate()
	src, err := render(scale, exp)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func generate() (scale [tableSize]uint64, exp [tableSize]int) {
	scale[bias] = 4096000000000000000
	exp[bias] = -15

	// positive exponents: double, and divide by five when the window would overflow.
	var rem float64
	for i := bias + 1; i < tableSize; i++ {
		exp[i] = exp[i-1]
		hi, lo := bits.Mul64(scale[i-1], 2)
		if hi == 0 && !overflows(lo) {
			scale[i] = lo
			rem *= 2
			if rem >= 10 {
				scale[i]++
				rem -= 10
			}
			continue
		}
		exp[i] = exp[i-1] + 1
		scale[i] = scale[i-1] / 5
		rem = rem/5 + float64(scale[i-1]%5*2)
	}

	// negative exponents: halve, and multiply by ten while the window has room.
	rem = 0
	for i := bias - 1; i > 0; i-- {
		exp[i] = exp[i+1]
		scale[i] = scale[i+1] / 2
		rem = (rem + float64(scale[i+1]%2)) / 2
		hi, lo := bits.Mul64(scale[i], 10)
		if hi == 0 && !overflows(lo) {
			scale[i] = lo
			rem *= 10
			if rem >= 1 {
				round := uint32(rem)
				rem -= float64(round)
				scale[i] += uint64(round)
			}
			exp[i]--
		}
	}
	return scale, exp
}

// overflows reports whether scaling the largest mantissa by s overflows the
// 64-bit intermediate values of the 17 digit window computation.
func overflows(s uint64) bool {
	hi2, lo2 := s>>32, s&math.MaxUint32

	mm, ok := mulAdd(maxHi, lo2, 0)
	if !ok {
		return true
	}
	mm, ok = mulAdd(maxLo, hi2, mm)
	if !ok {
		return true
	}
	lolo, ok := mulAdd(maxLo, lo2, 0)
	if !ok {
		return true
	}
	mm, ok = add(mm, lolo>>32)
	if !ok {
		return true
	}
	r, ok := mulAdd(maxHi, hi2, mm>>32)
	if !ok || r > math.MaxInt64 {
		return true
	}

	res := int64(r)
	for res < seventeenDigits {
		mm = (mm & math.MaxUint32) * 10
		hi, lo := bits.Mul64(uint64(res), 10)
		if hi != 0 || lo > math.MaxInt64 {
			return true
		}
		sum, ok := add(lo, mm>>32)
		if !ok || sum > math.MaxInt64 {
			return true
		}
		res = int64(sum)
	}
	return false
}

// mulAdd returns a*b+c and whether it fits in 64 bits.
func mulAdd(a, b, c uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, false
	}
	return add(lo, c)
}

func add(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

func render(scale [tableSize]uint64, exp [tableSize]int) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by gentables; DO NOT EDIT.\n\n")
	buf.WriteString("package cprintf\n\n")

	buf.WriteString("// mantissaScale[e] scales a mantissa with biased binary exponent e into a\n")
	buf.WriteString("// 17 digit decimal window: the high 64 bits of the 128-bit product carry the digits.\n")
	fmt.Fprintf(&buf, "var mantissaScale = [%d]uint64{\n", tableSize)
	for i := 0; i < tableSize; i += 3 {
		buf.WriteByte('\t')
		for j := i; j < min(i+3, tableSize); j++ {
			fmt.Fprintf(&buf, "%d, ", scale[j])
		}
		fmt.Fprintf(&buf, "// %d\n", i)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// decimalExponent[e] is the power of ten paired with mantissaScale[e].\n")
	fmt.Fprintf(&buf, "var decimalExponent = [%d]int16{\n", tableSize)
	for i := 0; i < tableSize; i += 12 {
		buf.WriteByte('\t')
		for j := i; j < min(i+12, tableSize); j++ {
			fmt.Fprintf(&buf, "%d, ", exp[j])
		}
		fmt.Fprintf(&buf, "// %d\n", i)
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
