package cprintf

import (
	"io"
	"strings"
)

// A Printer formats printf style format strings.
// The zero value uses the C locale.
type Printer struct {
	// Locale supplies the decimal separator, signs and special value symbols
	// of numeric conversions. nil selects the C locale.
	Locale *Locale
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (pr *Printer) Sprintf(format string, args ...any) (string, error) {
	buf, err := pr.Appendf(make([]byte, 0, len(format)+16), format, args...)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Fprintf formats according to a format specifier and writes to w.
// Nothing is written if formatting fails.
func (pr *Printer) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	buf, err := pr.Appendf(nil, format, args...)
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

// Appendf formats according to a format specifier, appends the result to dst
// and returns the extended buffer. On error dst is returned unchanged.
//
// Directives have the form %[flags][width][.precision][length]verb.
// Directives that cannot be parsed are copied to the output as is.
// Arguments left over after the last directive are ignored.
func (pr *Printer) Appendf(dst []byte, format string, args ...any) ([]byte, error) {
	p := printer{
		loc:  pr.Locale.orC(),
		lc:   pr.Locale,
		args: args,
	}
	buf := dst
	for i := 0; i < len(format); {
		j := strings.IndexByte(format[i:], '%')
		if j < 0 {
			buf = append(buf, format[i:]...)
			break
		}
		buf = append(buf, format[i:i+j]...)
		i += j

		d, end, ok := parseDirective(format, i)
		if !ok {
			buf = append(buf, format[i:end]...)
			i = end
			continue
		}
		i = end

		var err error
		buf, err = p.convert(buf, &d)
		if err != nil {
			return dst, err
		}
	}
	return buf, nil
}

var std Printer

// Sprintf formats using the C locale, see [Printer.Sprintf].
func Sprintf(format string, args ...any) (string, error) {
	return std.Sprintf(format, args...)
}

// Fprintf formats using the C locale, see [Printer.Fprintf].
func Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return std.Fprintf(w, format, args...)
}

// Appendf formats using the C locale, see [Printer.Appendf].
func Appendf(dst []byte, format string, args ...any) ([]byte, error) {
	return std.Appendf(dst, format, args...)
}

// printer holds the state of a single Appendf call.
type printer struct {
	loc    *Locale
	lc     *Locale // as configured, nil for the C locale
	args   []any
	argNum int
}

func (p *printer) next(verb byte) (any, error) {
	if p.argNum >= len(p.args) {
		return nil, &FormatError{Verb: rune(verb), Arg: p.argNum + 1, Err: ErrArgCount}
	}
	arg := p.args[p.argNum]
	p.argNum++
	return arg, nil
}

func (p *printer) argError(verb byte) error {
	return &FormatError{Verb: rune(verb), Arg: p.argNum, Err: ErrArgType}
}

func (p *printer) convert(buf []byte, d *directive) ([]byte, error) {
	if d.widthArg {
		arg, err := p.next(d.verb)
		if err != nil {
			return buf, err
		}
		w, ok := starArg(arg)
		if !ok {
			return buf, p.argError(d.verb)
		}
		if w < 0 {
			d.flags |= FlagLeft
			w = -w
		}
		d.width = w
	}
	if d.precArg {
		arg, err := p.next(d.verb)
		if err != nil {
			return buf, err
		}
		prec, ok := starArg(arg)
		if !ok {
			return buf, p.argError(d.verb)
		}
		if prec < 0 {
			prec = -1
		}
		d.prec = prec
	}
	if d.width > MaxWidth {
		return buf, &FormatError{Verb: rune(d.verb), Err: ErrWidth}
	}
	if d.prec > MaxPrecision {
		return buf, &FormatError{Verb: rune(d.verb), Err: ErrPrecision}
	}

	switch d.verb {
	case '%':
		return append(buf, '%'), nil
	case 'a', 'A', 'p', 'n':
		return buf, &FormatError{Verb: rune(d.verb), Err: ErrInvalidVerb}
	}

	arg, err := p.next(d.verb)
	if err != nil {
		return buf, err
	}

	switch d.verb {
	case 'd', 'i':
		v, ok := intArg(arg)
		if !ok {
			return buf, p.argError(d.verb)
		}
		return p.appendInt(buf, v, d), nil

	case 'o', 'u', 'x', 'X':
		v, ok := intArg(arg)
		if !ok {
			return buf, p.argError(d.verb)
		}
		return p.appendUint(buf, uint64(v), d), nil

	case 'c':
		r, ok := charArg(arg)
		if !ok {
			return buf, p.argError(d.verb)
		}
		return p.appendChar(buf, r, d), nil

	case 's':
		s, ok := stringArg(arg)
		if !ok {
			return buf, p.argError(d.verb)
		}
		return p.appendString(buf, s, d), nil
	}

	f, single, ok := floatArg(arg)
	if !ok {
		return buf, p.argError(d.verb)
	}
	req := Request(rune(d.verb), d.flags, d.width, d.prec)
	req.Locale = p.lc
	if single {
		return AppendFloat32(buf, float32(f), req)
	}
	return AppendFloat(buf, f, req)
}
