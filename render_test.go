package cprintf

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		x     float64
		verb  rune
		flags Flags
		width int
		prec  int
		want  string
	}{
		// significant digits and carries
		{31.4159, 'g', 0, 0, 3, "31.4"},
		{9.9995, 'f', 0, 0, 3, "10.000"},
		{0.1, 'f', 0, 0, 20, "0.10000000000000001000"},
		{100, 'g', 0, 0, -1, "100"},
		{123456789, 'g', 0, 0, -1, "1.23457e+08"},
		{31.41, 'g', 0, 0, 0, "3e+01"},
		{5.78642138447526e+239, 'g', 0, 0, 16, "5.78642138447526e+239"},
		{5.78642138447526e+239, 'e', 0, 0, 15, "5.786421384475260e+239"},
		{5.78642138447526e+239, 'g', 0, 0, 17, "5.7864213844752605e+239"},

		// the switch points of %g
		{999999, 'g', 0, 0, -1, "999999"},
		{999999.5, 'g', 0, 0, -1, "1e+06"},
		{1e6, 'g', 0, 0, -1, "1e+06"},
		{0.0001, 'g', 0, 0, -1, "0.0001"},
		{0.000099999996, 'g', 0, 0, -1, "0.0001"},
		{1e-5, 'g', 0, 0, -1, "1e-05"},
		{1e-5, 'G', 0, 0, -1, "1E-05"},

		// '#' keeps the decimal point and trailing zeros
		{1e10, 'g', FlagAlt, 0, 3, "1.000e+10"},
		{0.0001, 'g', FlagAlt, 0, 3, "0.000100"},
		{123, 'g', FlagAlt, 0, -1, "123.000"},
		{1, 'e', FlagAlt, 0, 0, "1.e+00"},
		{1, 'f', FlagAlt, 0, 0, "1."},

		// zero and values that round to zero
		{0, 'e', 0, 0, -1, "0.000000e+00"},
		{0, 'g', 0, 0, -1, "0"},
		{0, 'g', FlagAlt, 0, -1, "0.00000"},
		{math.Copysign(0, -1), 'f', 0, 0, -1, "0.000000"},
		{-0.0001, 'f', 0, 0, 2, "0.00"},
		{0.6, 'f', 0, 0, 0, "1"},

		// ties round away from zero
		{0.5, 'f', 0, 0, 0, "1"},
		{1.5, 'f', 0, 0, 0, "2"},
		{2.5, 'f', 0, 0, 0, "3"},
		{0.25, 'f', 0, 0, 1, "0.3"},

		// extremes
		{1e300, 'e', 0, 0, -1, "1.000000e+300"},
		{5e-324, 'e', 0, 0, -1, "4.940656e-324"},
		{math.MaxFloat64, 'e', 0, 0, 16, "1.7976931348623157e+308"},

		// sign and padding
		{123.456, 'E', FlagSign, 12, 2, "   +1.23E+02"},
		{123.456, 'e', FlagLeft, 12, 2, "1.23e+02    "},
		{-123.456, 'e', FlagZero, 12, 2, "-0001.23e+02"},
		{1.5, 'g', FlagSign | FlagBlank, 0, -1, "+1.5"},
		{1.5, 'g', FlagBlank, 0, -1, " 1.5"},

		// special values are never zero padded
		{math.NaN(), 'f', FlagSign, 6, -1, "  +nan"},
		{math.Inf(-1), 'F', 0, 6, -1, "  -INF"},
		{math.Inf(1), 'g', FlagZero, 6, -1, "   inf"},
		{math.Inf(1), 'e', FlagLeft | FlagBlank, 6, -1, " inf  "},
	}

	for _, tt := range tests {
		req := Request(tt.verb, tt.flags, tt.width, tt.prec)
		got, err := FormatFloat(tt.x, req)
		if err != nil {
			t.Errorf("%v %%%c: unexpected error: %v", tt.x, tt.verb, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v %%%s%d.%d%c: expected %q, got %q", tt.x, tt.flags, tt.width, tt.prec, tt.verb, tt.want, got)
		}
	}
}

func TestFormatFloat32(t *testing.T) {
	tests := []struct {
		x    float32
		verb rune
		prec int
		want string
	}{
		{0.1, 'f', 10, "0.1000000010"},
		{3.14159265, 'e', -1, "3.141593e+00"},
		{16777216, 'g', -1, "1.67772e+07"},
		{0.001, 'g', -1, "0.001"},
		{0.3, 'g', 9, "0.300000012"},
		{float32(math.Inf(1)), 'f', -1, "inf"},
	}

	for _, tt := range tests {
		got, err := FormatFloat32(tt.x, Request(tt.verb, 0, 0, tt.prec))
		if err != nil {
			t.Errorf("%v %%%c: unexpected error: %v", tt.x, tt.verb, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v %%.%d%c: expected %q, got %q", tt.x, tt.prec, tt.verb, tt.want, got)
		}
	}
}

// Values with at most 15 significant digits survive %.14e unchanged.
func TestFormatFloatDigits(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	req := Request('e', 0, 0, 14)
	for i := 0; i < 10000; i++ {
		m := r.Int64N(9e14) + 1e14
		e := r.IntN(590) - 300
		x, err := strconv.ParseFloat(fmt.Sprintf("%de%d", m, e-14), 64)
		if err != nil {
			t.Fatal(err)
		}

		got, err := FormatFloat(x, req)
		if err != nil {
			t.Fatal(err)
		}
		want := fmt.Sprintf("%.14e", x)
		if got != want {
			t.Errorf("%de%d: expected %s, got %s", m, e-14, want, got)
		}
	}
}

// randomDecimal returns a random normal value with at most 15 significant digits.
func randomDecimal(r *rand.Rand) (float64, string) {
	m := r.Int64N(1e15) + 1
	e := r.IntN(575) - 300
	s := fmt.Sprintf("%de%d", m, e)
	if r.IntN(2) == 0 {
		s = "-" + s
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return x, s
}

func TestFormatFloatRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	reqs := []RenderRequest{
		Request('g', 0, 0, 15),
		Request('g', 0, 0, 16),
		Request('g', 0, 0, 17),
		Request('e', 0, 0, 15),
		Request('E', 0, 0, 16),
	}
	for i := 0; i < 10000; i++ {
		x, s := randomDecimal(r)
		for _, req := range reqs {
			got, err := FormatFloat(x, req)
			if err != nil {
				t.Fatal(err)
			}
			y, err := strconv.ParseFloat(got, 64)
			if err != nil {
				t.Fatal(err)
			}
			if y != x {
				t.Errorf("%s %%.%d%c: expected %v, got %s", s, req.Precision, req.Verb(), x, got)
			}
		}
	}

	// any double survives 17 significant digits
	req := Request('g', 0, 0, 17)
	for i := 0; i < 10000; i++ {
		x := math.Float64frombits(r.Uint64())
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		got, err := FormatFloat(x, req)
		if err != nil {
			t.Fatal(err)
		}
		y, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatal(err)
		}
		if y != x {
			t.Errorf("%b: expected %v, got %s", x, x, got)
		}
	}
}

// Padded output parsed back and formatted again with the same request is unchanged,
// and padding it again to its own width or less changes nothing.
func TestFormatFloatIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	reqs := []RenderRequest{
		Request('g', 0, 30, 15),
		Request('e', FlagLeft, 30, 15),
		Request('G', FlagZero, 30, 16),
		Request('g', FlagSign, 30, 17),
		Request('f', FlagBlank, 12, 2),
	}
	for i := 0; i < 2000; i++ {
		x, s := randomDecimal(r)
		for _, req := range reqs {
			got, err := FormatFloat(x, req)
			if err != nil {
				t.Fatal(err)
			}

			y, err := strconv.ParseFloat(strings.TrimSpace(got), 64)
			if err != nil {
				t.Fatal(err)
			}
			again, err := FormatFloat(y, req)
			if err != nil {
				t.Fatal(err)
			}
			if again != got {
				t.Errorf("%s %%%s%d.%d%c: expected %q, got %q", s, req.Flags, req.Width, req.Precision, req.Verb(), got, again)
			}

			for _, width := range []int{0, len(got)} {
				padded := string(appendPadded(nil, width, req.Flags, "", []byte(got), true))
				if padded != got {
					t.Errorf("%q padded to %d: got %q", got, width, padded)
				}
			}
		}
	}
}

func TestFormatFloatLocale(t *testing.T) {
	tests := []struct {
		x     float64
		verb  rune
		flags Flags
		width int
		want  string
	}{
		{1.5, 'f', 0, 0, "1,500000"},
		{-1234.5, 'e', 0, 0, "-1,234500e+03"},
		{1.5, 'g', FlagAlt, 0, "1,50000"},
		{math.NaN(), 'F', 0, 0, "NaN"},
		{math.Inf(1), 'f', FlagSign, 0, "+∞"},
		{math.Inf(-1), 'f', 0, 5, "   -∞"},
		{math.Inf(-1), 'f', FlagLeft, 5, "-∞   "},
	}

	for _, tt := range tests {
		req := Request(tt.verb, tt.flags, tt.width, -1)
		req.Locale = &commaLocale
		got, err := FormatFloat(tt.x, req)
		if err != nil {
			t.Errorf("%v %%%c: unexpected error: %v", tt.x, tt.verb, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v %%%c: expected %q, got %q", tt.x, tt.verb, tt.want, got)
		}
	}
}

func TestFormatFloatError(t *testing.T) {
	tests := []struct {
		req  RenderRequest
		verb rune
		err  error
	}{
		{Request('q', 0, 0, -1), 'q', ErrInvalidVerb},
		{RenderRequest{Kind: Kind(7)}, '?', ErrInvalidVerb},
		{Request('f', 0, 0, MaxPrecision+1), 'f', ErrPrecision},
		{Request('E', 0, MaxWidth+1, -1), 'E', ErrWidth},
		{RenderRequest{Kind: General, Upper: true, Precision: MaxPrecision + 1}, 'G', ErrPrecision},
	}

	for _, tt := range tests {
		dst := []byte("prefix")
		got, err := AppendFloat(dst, 1, tt.req)
		if !errors.Is(err, tt.err) {
			t.Errorf("%%%c: expected %v, got %v", tt.verb, tt.err, err)
			continue
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("%%%c: expected *FormatError, got %T", tt.verb, err)
			continue
		}
		if fe.Verb != tt.verb {
			t.Errorf("expected verb %c, got %c", tt.verb, fe.Verb)
		}
		if string(got) != "prefix" {
			t.Errorf("expected dst to be unchanged, got %q", got)
		}
	}
}

func TestAppendFloat(t *testing.T) {
	buf := []byte("x = ")
	buf, err := AppendFloat(buf, 2.5, Request('e', 0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}
	buf, err = AppendFloat32(append(buf, ", y = "...), 0.5, Request('G', 0, 0, -1))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), "x = 2.5e+00, y = 0.5"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAppendExponent(t *testing.T) {
	tests := []struct {
		exp  int
		want string
	}{
		{0, "00"},
		{7, "07"},
		{42, "42"},
		{308, "308"},
	}
	for _, tt := range tests {
		got := string(appendExponent(nil, tt.exp))
		if got != tt.want {
			t.Errorf("%d: expected %q, got %q", tt.exp, tt.want, got)
		}
	}
}
