package cprintf

import "math/bits"

const (
	digitsPerWord = 8
	bufferWords   = 4
	bufferDigits  = digitsPerWord * bufferWords
)

// digitBuffer holds up to 32 decimal digits, one per nibble.
// The least significant digit lives in the low nibble of words[0],
// so 0x00000314 in words[0] stores the digits "314".
type digitBuffer struct {
	words [bufferWords]uint32

	offset int  // zero nibbles below the least significant stored digit
	length int  // number of significant digits
	point  int  // digits before the decimal point, counted from the most significant digit
	neg    bool // the value is negative
}

// reset puts d into the zero state.
func (d *digitBuffer) reset() {
	*d = digitBuffer{point: 1}
}

func (d *digitBuffer) isZero() bool {
	return d.length == 0
}

// setUint64 stores the decimal digits of v, physically occupying order nibbles,
// and moves the trailing zeros into the offset.
func (d *digitBuffer) setUint64(v uint64, order int) {
	d.words = [bufferWords]uint32{}
	for i := 0; v != 0 && i < bufferWords; i++ {
		d.words[i] = packWord(uint32(v % 1e8))
		v /= 1e8
	}
	d.length = order
	d.offset = 0
	d.trimZeros()
}

// packWord converts v < 10^8 into eight decimal nibbles.
func packWord(v uint32) uint32 {
	var w uint32
	for shift := 0; v != 0; shift += 4 {
		w |= (v % 10) << shift
		v /= 10
	}
	return w
}

// nibbleLen returns the position of the most significant nonzero nibble plus one.
func (d *digitBuffer) nibbleLen() int {
	for i := bufferWords - 1; i >= 0; i-- {
		if w := d.words[i]; w != 0 {
			return i*digitsPerWord + (bits.Len32(w)+3)/4
		}
	}
	return 0
}

// trailingZeros counts the zero nibbles below the first nonzero one.
// It returns -1 if the buffer holds no nonzero digit.
func (d *digitBuffer) trailingZeros() int {
	for i, w := range d.words {
		if w != 0 {
			return i*digitsPerWord + bits.TrailingZeros32(w)/4
		}
	}
	return -1
}

// trimZeros folds trailing zero digits of the physical digit run into offset.
// d.length must hold the physical length (offset included) on entry.
func (d *digitBuffer) trimZeros() {
	n := d.trailingZeros()
	if n < 0 || n >= d.length {
		d.reset()
		return
	}
	d.offset = n
	d.length -= n
}

// digit returns the i-th significant digit, counted from the least significant one.
// Positions outside the stored digits read as zero.
func (d *digitBuffer) digit(i int) byte {
	if i < 0 || i >= d.length {
		return 0
	}
	p := i + d.offset
	return byte(d.words[p/digitsPerWord]>>(uint(p%digitsPerWord)*4)) & 0xf
}

// appendDigits appends the ASCII digits at positions end-1 down to start.
func (d *digitBuffer) appendDigits(buf []byte, start, end int) []byte {
	for i := end - 1; i >= start; i-- {
		buf = append(buf, '0'+d.digit(i))
	}
	return buf
}

// String returns the significant digits, most significant first.
func (d *digitBuffer) String() string {
	if d.isZero() {
		return "0"
	}
	return string(d.appendDigits(make([]byte, 0, d.length), 0, d.length))
}
