package cprintf

import (
	"strconv"
	"unicode/utf8"
)

// truncSigned narrows v to the width selected by a length modifier.
func truncSigned(v int64, length string) int64 {
	switch length {
	case "hh":
		return int64(int8(v))
	case "h":
		return int64(int16(v))
	case "ll", "j", "z", "t":
		return v
	}
	return int64(int32(v))
}

// truncUnsigned narrows v to the width selected by a length modifier.
func truncUnsigned(v uint64, length string) uint64 {
	switch length {
	case "hh":
		return uint64(uint8(v))
	case "h":
		return uint64(uint16(v))
	case "ll", "j", "z", "t":
		return v
	}
	return uint64(uint32(v))
}

// appendDigitsPrec appends u in base with at least prec digits.
// Zero with precision zero has no digits at all.
func appendDigitsPrec(buf []byte, u uint64, base int, upper bool, prec int) []byte {
	if u == 0 && prec == 0 {
		return buf
	}
	var tmp [64]byte
	digits := strconv.AppendUint(tmp[:0], u, base)
	if upper {
		for i, c := range digits {
			if 'a' <= c && c <= 'z' {
				digits[i] = c - ('a' - 'A')
			}
		}
	}
	buf = appendRepeat(buf, '0', prec-len(digits))
	return append(buf, digits...)
}

// appendInt formats %d and %i.
func (p *printer) appendInt(buf []byte, v int64, d *directive) []byte {
	v = truncSigned(v, d.length)

	var sign string
	u := uint64(v)
	switch {
	case v < 0:
		sign = p.loc.NegativeSign
		u = -u
	case d.flags.Has(FlagSign):
		sign = p.loc.PositiveSign
	case d.flags.Has(FlagBlank):
		sign = " "
	}

	body := appendDigitsPrec(make([]byte, 0, 24), u, 10, false, d.prec)
	return appendPadded(buf, d.width, d.flags, sign, body, d.prec < 0)
}

// appendUint formats %u, %o, %x and %X. The '+' and ' ' flags do not apply.
func (p *printer) appendUint(buf []byte, v uint64, d *directive) []byte {
	v = truncUnsigned(v, d.length)

	var prefix string
	base := 10
	switch d.verb {
	case 'o':
		base = 8
	case 'x':
		base = 16
		if d.flags.Has(FlagAlt) && v != 0 {
			prefix = "0x"
		}
	case 'X':
		base = 16
		if d.flags.Has(FlagAlt) && v != 0 {
			prefix = "0X"
		}
	}

	body := appendDigitsPrec(make([]byte, 0, 24), v, base, d.verb == 'X', d.prec)
	if base == 8 && d.flags.Has(FlagAlt) && (len(body) == 0 || body[0] != '0') {
		body = append([]byte{'0'}, body...)
	}
	return appendPadded(buf, d.width, d.flags, prefix, body, d.prec < 0)
}

// appendChar formats %c. The '0' flag pads with zeros as glibc does.
func (p *printer) appendChar(buf []byte, r rune, d *directive) []byte {
	body := utf8.AppendRune(make([]byte, 0, utf8.UTFMax), r)
	return appendPadded(buf, d.width, d.flags, "", body, true)
}

// appendString formats %s. A precision limits the number of characters.
func (p *printer) appendString(buf []byte, s string, d *directive) []byte {
	if d.prec >= 0 {
		n := 0
		for i := range s {
			if n == d.prec {
				s = s[:i]
				break
			}
			n++
		}
	}
	return appendPadded(buf, d.width, d.flags, "", []byte(s), true)
}
