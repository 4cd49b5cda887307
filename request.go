package cprintf

import (
	"errors"
	"fmt"
)

// Kind selects the notation of a rendered value.
type Kind uint8

const (
	Fixed       Kind = iota + 1 // %f, %F
	Exponential                 // %e, %E
	General                     // %g, %G
)

// KindOf maps a printf verb to its kind and case.
// ok is false for verbs that do not format floating-point values.
func KindOf(verb rune) (kind Kind, upper bool, ok bool) {
	switch verb {
	case 'f':
		return Fixed, false, true
	case 'F':
		return Fixed, true, true
	case 'e':
		return Exponential, false, true
	case 'E':
		return Exponential, true, true
	case 'g':
		return General, false, true
	case 'G':
		return General, true, true
	}
	return 0, false, false
}

// Verb returns the printf verb of k.
func (k Kind) Verb(upper bool) rune {
	var v rune
	switch k {
	case Fixed:
		v = 'f'
	case Exponential:
		v = 'e'
	case General:
		v = 'g'
	default:
		return '?'
	}
	if upper {
		v -= 'a' - 'A'
	}
	return v
}

func (k Kind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Exponential:
		return "exponential"
	case General:
		return "general"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Flags is the set of printf flag characters.
type Flags uint8

const (
	FlagLeft  Flags = 1 << iota // '-': left justify within the width
	FlagSign                    // '+': always print a sign
	FlagBlank                   // ' ': print a space in place of a plus sign
	FlagAlt                     // '#': always print the decimal separator
	FlagZero                    // '0': pad with leading zeros
)

// Has reports whether all flags in g are set in f.
func (f Flags) Has(g Flags) bool {
	return f&g == g
}

func (f Flags) String() string {
	var buf []byte
	for _, x := range []struct {
		flag Flags
		c    byte
	}{{FlagLeft, '-'}, {FlagSign, '+'}, {FlagBlank, ' '}, {FlagAlt, '#'}, {FlagZero, '0'}} {
		if f.Has(x.flag) {
			buf = append(buf, x.c)
		}
	}
	return string(buf)
}

// MaxPrecision and MaxWidth bound the precision and width of a request.
const (
	MaxPrecision = 1 << 16
	MaxWidth     = 1 << 16
)

// RenderRequest describes how a single value is rendered.
type RenderRequest struct {
	Kind  Kind
	Upper bool

	// Precision is the number of digits after the decimal point for Fixed and
	// Exponential, and the number of significant digits for General.
	// A negative value selects the default precision.
	Precision int

	Flags Flags

	// Width is the minimum field width; values less than one mean no padding.
	Width int

	// Locale supplies the decimal separator, signs and special value symbols.
	// nil selects the C locale.
	Locale *Locale

	verb rune // the verb the request was built from, if any
}

// Request builds a RenderRequest from a printf verb.
func Request(verb rune, flags Flags, width, prec int) RenderRequest {
	kind, upper, _ := KindOf(verb)
	return RenderRequest{
		Kind:      kind,
		Upper:     upper,
		Precision: prec,
		Flags:     flags,
		Width:     width,
		verb:      verb,
	}
}

// Verb returns the printf verb that selects r.
func (r *RenderRequest) Verb() rune {
	if r.verb != 0 {
		return r.verb
	}
	return r.Kind.Verb(r.Upper)
}

func (r *RenderRequest) validate() error {
	switch r.Kind {
	case Fixed, Exponential, General:
	default:
		return &FormatError{Verb: r.Verb(), Err: ErrInvalidVerb}
	}
	if r.Precision > MaxPrecision {
		return &FormatError{Verb: r.Verb(), Err: ErrPrecision}
	}
	if r.Width > MaxWidth {
		return &FormatError{Verb: r.Verb(), Err: ErrWidth}
	}
	return nil
}

var (
	// ErrInvalidVerb is returned for a specifier that does not format a value.
	ErrInvalidVerb = errors.New("invalid format specifier")

	// ErrPrecision is returned for a precision larger than MaxPrecision.
	ErrPrecision = errors.New("precision out of range")

	// ErrWidth is returned for a width larger than MaxWidth.
	ErrWidth = errors.New("width out of range")

	// ErrArgCount is returned when a format string references more arguments than given.
	ErrArgCount = errors.New("insufficient number of arguments")

	// ErrArgType is returned when an argument cannot be converted for its specifier.
	ErrArgType = errors.New("argument type mismatch")
)

// A FormatError records a failed formatting operation.
type FormatError struct {
	Verb rune  // the offending specifier character
	Arg  int   // 1-based position of the argument, zero if not related to one
	Err  error // the reason the formatting failed
}

func (e *FormatError) Error() string {
	if e.Arg > 0 {
		return fmt.Sprintf("cprintf: %%%c: argument %d: %v", e.Verb, e.Arg, e.Err)
	}
	return fmt.Sprintf("cprintf: %%%c: %v", e.Verb, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
