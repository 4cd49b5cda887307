package cprintf

// directive is one parsed %[flags][width][.precision][length]verb sequence.
type directive struct {
	flags    Flags
	width    int // -1 if absent
	prec     int // -1 if absent
	widthArg bool
	precArg  bool
	length   string
	verb     byte
	n        int // length of the directive in bytes
}

const verbs = "diouxXfFeEgGaAcspn%"

// parseDirective parses the directive at format[i], which must be '%'.
// If the directive is malformed, ok is false and end is the position where
// parsing stopped; format[i:end] is then copied to the output as is.
func parseDirective(format string, i int) (d directive, end int, ok bool) {
	d.width = -1
	d.prec = -1
	p := i + 1

	// flags
flags:
	for ; p < len(format); p++ {
		switch format[p] {
		case '-':
			d.flags |= FlagLeft
		case '+':
			d.flags |= FlagSign
		case ' ':
			d.flags |= FlagBlank
		case '#':
			d.flags |= FlagAlt
		case '0':
			d.flags |= FlagZero
		default:
			break flags
		}
	}
	if p >= len(format) {
		return d, p, false
	}

	// width
	if format[p] == '*' {
		d.widthArg = true
		p++
	} else {
		d.width, p, ok = parseNum(format, p)
		if !ok {
			return d, p, false
		}
	}

	// precision
	if p >= len(format) {
		return d, p, false
	}
	if format[p] == '.' {
		p++
		if p >= len(format) {
			return d, p, false
		}
		if format[p] == '*' {
			d.precArg = true
			p++
		} else {
			d.prec, p, ok = parseNum(format, p)
			if !ok {
				return d, p, false
			}
			if d.prec < 0 {
				// "%.f" has precision zero.
				d.prec = 0
			}
		}
	}

	// length
	start := p
	for p < len(format) && isLengthByte(format[p]) {
		p++
	}
	if p >= len(format) {
		return d, p, false
	}
	if p > start {
		d.length = format[start:p]
		switch d.length {
		case "hh", "h", "l", "ll", "j", "z", "t", "L":
		default:
			return d, p, false
		}
	}

	// verb
	c := format[p]
	if !isVerb(c) {
		return d, p, false
	}
	p++
	d.verb = c
	d.n = p - i
	if c == '%' && d.n != 2 {
		// a literal percent takes no modifiers
		return d, p, false
	}
	return d, p, true
}

// parseNum parses a run of decimal digits starting at format[i].
// It returns -1 if there are none. The number saturates just above
// MaxWidth so that oversized values are still rejected later.
// ok is false if the digits run to the end of format.
func parseNum(format string, i int) (num, end int, ok bool) {
	end = i
	for end < len(format) && '0' <= format[end] && format[end] <= '9' {
		if num <= MaxWidth {
			num = num*10 + int(format[end]-'0')
		}
		end++
	}
	if end >= len(format) {
		return 0, end, false
	}
	if end == i {
		return -1, end, true
	}
	return num, end, true
}

func isLengthByte(c byte) bool {
	switch c {
	case 'h', 'l', 'j', 'z', 't', 'L':
		return true
	}
	return false
}

func isVerb(c byte) bool {
	for i := 0; i < len(verbs); i++ {
		if verbs[i] == c {
			return true
		}
	}
	return false
}
