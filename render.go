package cprintf

import "unicode/utf8"

// default precision of %f, %e and %g.
const defaultPrecision = 6

// minimum number of exponent digits; GCC prints two, MSVCRT three.
const expDigits = 2

type renderer struct {
	req *RenderRequest
	loc *Locale
	d   digitBuffer
}

// appendFloat renders dec into buf. req must be valid.
func appendFloat(buf []byte, dec decomposed, defPrec int, req *RenderRequest) []byte {
	r := renderer{
		req: req,
		loc: req.Locale.orC(),
	}
	switch dec.class {
	case classNaN:
		return r.appendNaN(buf)
	case classInf:
		return r.appendInf(buf, dec.neg)
	}

	r.d.reset()
	if dec.class != classZero {
		r.d.scale(dec, defPrec, req.Kind, req.Precision)
	}

	switch req.Kind {
	case Fixed:
		return r.appendFixed(buf)
	case Exponential:
		return r.appendExponential(buf)
	default:
		return r.appendGeneral(buf)
	}
}

func (r *renderer) flag(f Flags) bool {
	return r.req.Flags.Has(f)
}

// sign returns the sign prefix of a value.
// The '+' flag wins over the ' ' flag as in C.
func (r *renderer) sign(neg bool) string {
	switch {
	case neg:
		return r.loc.NegativeSign
	case r.flag(FlagSign):
		return r.loc.PositiveSign
	case r.flag(FlagBlank):
		return " "
	}
	return ""
}

// layout writes sign and body padded to the requested width.
func (r *renderer) layout(buf []byte, sign string, body []byte, zeroPad bool) []byte {
	return appendPadded(buf, r.req.Width, r.req.Flags, sign, body, zeroPad)
}

// appendPadded writes prefix and body padded to width.
// Zero padding, when allowed and requested, goes between the prefix and the body;
// space padding goes before the prefix, or after the body when left justified.
func appendPadded(buf []byte, width int, flags Flags, prefix string, body []byte, zeroPad bool) []byte {
	n := utf8.RuneCountInString(prefix) + utf8.RuneCount(body)
	pad := width - n
	switch {
	case pad <= 0:
		buf = append(buf, prefix...)
		buf = append(buf, body...)
	case flags.Has(FlagLeft):
		buf = append(buf, prefix...)
		buf = append(buf, body...)
		buf = appendRepeat(buf, ' ', pad)
	case zeroPad && flags.Has(FlagZero):
		buf = append(buf, prefix...)
		buf = appendRepeat(buf, '0', pad)
		buf = append(buf, body...)
	default:
		buf = appendRepeat(buf, ' ', pad)
		buf = append(buf, prefix...)
		buf = append(buf, body...)
	}
	return buf
}

func appendRepeat(buf []byte, c byte, n int) []byte {
	for i := 0; i < n; i++ {
		buf = append(buf, c)
	}
	return buf
}

func (r *renderer) appendFixed(buf []byte) []byte {
	prec := r.req.Precision
	if prec < 0 {
		prec = defaultPrecision
	}
	r.d.roundDecimals(prec)

	body := make([]byte, 0, 24+prec)
	body = r.appendFixedBody(body, prec)
	return r.layout(buf, r.sign(r.d.neg), body, true)
}

func (r *renderer) appendFixedBody(buf []byte, prec int) []byte {
	d := &r.d
	if d.point <= 0 {
		buf = append(buf, '0')
	} else {
		buf = d.appendDigits(buf, d.length-d.point, d.length)
	}
	if prec > 0 || r.flag(FlagAlt) {
		buf = append(buf, r.loc.DecimalSeparator...)
	}
	return d.appendDigits(buf, d.length-d.point-prec, d.length-d.point)
}

func (r *renderer) appendExponential(buf []byte) []byte {
	prec := r.req.Precision
	if prec < 0 {
		prec = defaultPrecision
	}
	r.d.roundDigits(prec + 1)
	return r.appendExponentialLayout(buf, prec)
}

func (r *renderer) appendExponentialLayout(buf []byte, prec int) []byte {
	d := &r.d
	exp := d.point - 1
	d.point = 1

	body := make([]byte, 0, 8+prec)
	body = append(body, '0'+d.digit(d.length-1))
	if prec > 0 || r.flag(FlagAlt) {
		body = append(body, r.loc.DecimalSeparator...)
	}
	body = d.appendDigits(body, d.length-1-prec, d.length-1)

	if r.req.Upper {
		body = append(body, 'E')
	} else {
		body = append(body, 'e')
	}
	if exp < 0 {
		body = append(body, r.loc.NegativeSign...)
		exp = -exp
	} else {
		body = append(body, r.loc.PositiveSign...)
	}
	body = appendExponent(body, exp)
	return r.layout(buf, r.sign(d.neg), body, true)
}

// appendExponent appends a non-negative exponent with at least expDigits digits.
func appendExponent(buf []byte, exp int) []byte {
	var tmp [8]byte
	i := len(tmp)
	for exp > 0 || len(tmp)-i < expDigits {
		i--
		tmp[i] = byte(exp%10) + '0'
		exp /= 10
	}
	return append(buf, tmp[i:]...)
}

func (r *renderer) appendGeneral(buf []byte) []byte {
	d := &r.d
	prec := r.req.Precision
	switch {
	case prec < 0:
		prec = defaultPrecision
	case prec == 0:
		prec = 1
	}
	d.roundDigits(prec)

	intDigits := d.point
	if intDigits > prec || intDigits <= -4 {
		var p int
		switch {
		case !r.flag(FlagAlt):
			p = max(d.length-1, 0)
		case r.req.Precision < 0:
			p = prec - 1
		default:
			// '#' with an explicit precision keeps the caller's precision.
			p = r.req.Precision
		}
		return r.appendExponentialLayout(buf, p)
	}

	var frac int
	if r.flag(FlagAlt) {
		frac = prec - intDigits
	} else {
		frac = max(d.length-intDigits, 0)
	}

	body := make([]byte, 0, 24+frac)
	if intDigits <= 0 {
		body = append(body, '0')
	} else {
		body = d.appendDigits(body, d.length-intDigits, d.length)
	}
	if frac > 0 || r.flag(FlagAlt) {
		body = append(body, r.loc.DecimalSeparator...)
	}
	body = d.appendDigits(body, d.length-intDigits-frac, d.length-intDigits)
	return r.layout(buf, r.sign(d.neg), body, true)
}

func (r *renderer) appendNaN(buf []byte) []byte {
	var token string
	switch {
	case r.req.Locale != nil:
		token = r.loc.NaN
	case r.req.Upper:
		token = "NAN"
	default:
		token = "nan"
	}
	// NaN has no sign of its own; only the flags add one.
	return r.layout(buf, r.sign(false), []byte(token), false)
}

func (r *renderer) appendInf(buf []byte, neg bool) []byte {
	if r.req.Locale != nil {
		if neg {
			return r.layout(buf, "", []byte(r.loc.NegativeInfinity), false)
		}
		return r.layout(buf, r.sign(false), []byte(r.loc.PositiveInfinity), false)
	}
	token := "inf"
	if r.req.Upper {
		token = "INF"
	}
	return r.layout(buf, r.sign(neg), []byte(token), false)
}
