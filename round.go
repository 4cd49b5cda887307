package cprintf

// roundDigits keeps the n most significant digits of d.
func (d *digitBuffer) roundDigits(n int) bool {
	return d.roundShift(d.length - n)
}

// roundDecimals keeps n digits after the decimal point.
func (d *digitBuffer) roundDecimals(n int) bool {
	return d.roundShift(d.length - d.point - n)
}

// roundShift discards the shift least significant digits, rounding half up.
// It reports whether a carry out of the most significant digit added a new digit.
func (d *digitBuffer) roundShift(shift int) bool {
	if shift <= 0 {
		return false
	}
	if shift > d.length {
		d.reset()
		return false
	}

	// work on physical nibble positions from here on.
	shift += d.offset
	n := d.length + d.offset
	for shift > digitsPerWord {
		copy(d.words[:], d.words[1:])
		d.words[bufferWords-1] = 0
		n -= digitsPerWord
		shift -= digitsPerWord
	}

	// pos addresses the rounding digit; it and everything below it are cleared.
	pos := uint(shift-1) * 4
	v := d.words[0] >> pos
	r := v & 0xf
	d.words[0] = (v ^ r) << pos

	grew := false
	if r >= 5 {
		// fill the cleared nibbles with nines and add one at the bottom:
		// the carry lands exactly on the last kept digit.
		d.words[0] |= 0x99999999 >> (28 - pos)
		d.addOne()
		m := d.nibbleLen()
		grew = m != n
		d.point += m - n
		n = m
	}
	d.length = n
	d.trimZeros()
	return grew
}

// addOne adds one to the packed decimal value, carrying through nines.
func (d *digitBuffer) addOne() {
	for i := range d.words {
		if d.words[i] != 0x99999999 {
			d.words[i] = addOneWord(d.words[i])
			return
		}
		d.words[i] = 0
	}
}

// addOneWord adds one to a packed word that is not all nines.
func addOneWord(w uint32) uint32 {
	for shift := 0; shift < 32; shift += 4 {
		if (w>>shift)&0xf != 9 {
			return w + 1<<shift
		}
		w &^= 0xf << shift
	}
	return w
}
