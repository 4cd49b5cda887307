package cprintf

import (
	"fmt"
	"strconv"
)

// Double is a float64 that formats itself with C printf rules.
type Double float64

// Single is a float32 that formats itself with C printf rules.
type Single float32

var (
	_ fmt.Formatter = Double(0)
	_ fmt.Formatter = Single(0)
)

func (x Double) String() string {
	return x.Text('g', -1)
}

// Text returns x formatted by the verb fmt ('f', 'F', 'e', 'E', 'g' or 'G') and precision prec.
// A negative prec selects the default precision of six.
func (x Double) Text(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 24), fmt, prec))
}

// Append appends the result of x.Text(fmt, prec) to buf.
func (x Double) Append(buf []byte, fmt byte, prec int) []byte {
	req := Request(rune(fmt), 0, 0, prec)
	b, err := AppendFloat(buf, float64(x), req)
	if err != nil {
		return appendBadVerb(buf, rune(fmt), "Double", float64(x), 64)
	}
	return b
}

// Format implements [fmt.Formatter].
func (x Double) Format(s fmt.State, verb rune) {
	req, ok := stateRequest(s, verb)
	if !ok {
		s.Write(appendBadVerb(nil, verb, "Double", float64(x), 64))
		return
	}
	buf, err := AppendFloat(nil, float64(x), req)
	if err != nil {
		s.Write(appendBadVerb(nil, verb, "Double", float64(x), 64))
		return
	}
	s.Write(buf)
}

func (x Single) String() string {
	return x.Text('g', -1)
}

// Text returns x formatted by the verb fmt and precision prec, see [Double.Text].
func (x Single) Text(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 24), fmt, prec))
}

// Append appends the result of x.Text(fmt, prec) to buf.
func (x Single) Append(buf []byte, fmt byte, prec int) []byte {
	req := Request(rune(fmt), 0, 0, prec)
	b, err := AppendFloat32(buf, float32(x), req)
	if err != nil {
		return appendBadVerb(buf, rune(fmt), "Single", float64(x), 32)
	}
	return b
}

// Format implements [fmt.Formatter].
func (x Single) Format(s fmt.State, verb rune) {
	req, ok := stateRequest(s, verb)
	if !ok {
		s.Write(appendBadVerb(nil, verb, "Single", float64(x), 32))
		return
	}
	buf, err := AppendFloat32(nil, float32(x), req)
	if err != nil {
		s.Write(appendBadVerb(nil, verb, "Single", float64(x), 32))
		return
	}
	s.Write(buf)
}

// stateRequest converts the flags, width and precision of a fmt.State into a request.
// %v formats like %g.
func stateRequest(s fmt.State, verb rune) (RenderRequest, bool) {
	if verb == 'v' {
		verb = 'g'
	}
	if _, _, ok := KindOf(verb); !ok {
		return RenderRequest{}, false
	}

	var flags Flags
	if s.Flag('-') {
		flags |= FlagLeft
	}
	if s.Flag('+') {
		flags |= FlagSign
	}
	if s.Flag(' ') {
		flags |= FlagBlank
	}
	if s.Flag('#') {
		flags |= FlagAlt
	}
	if s.Flag('0') {
		flags |= FlagZero
	}

	width, ok := s.Width()
	if !ok {
		width = 0
	}
	prec, ok := s.Precision()
	if !ok {
		prec = -1
	}
	return Request(verb, flags, width, prec), true
}

// appendBadVerb reports an unusable verb the way package fmt does.
func appendBadVerb(buf []byte, verb rune, typ string, x float64, bitSize int) []byte {
	buf = append(buf, "%!"...)
	buf = append(buf, string(verb)...)
	buf = append(buf, "(cprintf."...)
	buf = append(buf, typ...)
	buf = append(buf, '=')
	buf = strconv.AppendFloat(buf, x, 'g', -1, bitSize)
	return append(buf, ')')
}
