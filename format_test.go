package cprintf

import (
	"fmt"
	"math"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		x Double
		s string
	}{
		// special cases
		{0, "0"},
		{Double(math.Copysign(0, -1)), "0"},
		{Double(math.Inf(1)), "inf"},
		{Double(math.Inf(-1)), "-inf"},
		{Double(math.NaN()), "nan"},

		{0.5, "0.5"},
		{1e20, "1e+20"},
		{1.0 / 3, "0.333333"},
		{999999, "999999"},
		{1e-5, "1e-05"},
	}

	for _, tt := range tests {
		got := tt.x.String()
		if got != tt.s {
			t.Errorf("expected %s, got %s", tt.s, got)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		x    Double
		fmt  byte
		prec int
		s    string
	}{
		{0.5, 'f', -1, "0.500000"},
		{0.5, 'e', -1, "5.000000e-01"},
		{0.5, 'E', 2, "5.00E-01"},
		{2.5, 'f', 0, "3"},
		{0.1, 'g', 17, "0.10000000000000001"},
		{Double(math.Inf(-1)), 'F', -1, "-INF"},

		// verbs that do not format a float
		{0.5, 'x', -1, "%!x(cprintf.Double=0.5)"},
		{0.5, 'b', 3, "%!b(cprintf.Double=0.5)"},
	}

	for _, tt := range tests {
		got := tt.x.Text(tt.fmt, tt.prec)
		if got != tt.s {
			t.Errorf("%#v: expected %s, got %s", tt, tt.s, got)
		}
	}
}

func TestText_Single(t *testing.T) {
	tests := []struct {
		x    Single
		fmt  byte
		prec int
		s    string
	}{
		{0.1, 'g', -1, "0.1"},
		{0.1, 'f', 9, "0.100000001"},
		{0.1, 'f', 10, "0.1000000010"},
		{0.5, 'q', -1, "%!q(cprintf.Single=0.5)"},
	}

	for _, tt := range tests {
		got := tt.x.Text(tt.fmt, tt.prec)
		if got != tt.s {
			t.Errorf("%#v: expected %s, got %s", tt, tt.s, got)
		}
		if got := tt.x.String(); tt.fmt == 'g' && tt.prec < 0 && got != tt.s {
			t.Errorf("String: expected %s, got %s", tt.s, got)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format string
		x      any
		want   string
	}{
		{"%f", Double(0.5), "0.500000"},
		{"%f", Double(-0.5), "-0.500000"},
		{"%+f", Double(0.5), "+0.500000"},
		{"%+f", Double(-0.5), "-0.500000"},
		{"% f", Double(0.5), " 0.500000"},
		{"% f", Double(-0.5), "-0.500000"},
		{"%10f", Double(0.5), "  0.500000"},
		{"%-10f", Double(0.5), "0.500000  "},
		{"%8.1f", Double(2.5), "     2.5"},
		{"%08.1f", Double(2.5), "000002.5"},
		{"%*.*f", []any{8, 1, Double(2.5)}, "     2.5"},

		{"%e", Double(0.5), "5.000000e-01"},
		{"%#.0E", Double(1234.5), "1.E+03"},

		{"%g", Double(0.5), "0.5"},
		{"%v", Double(1e20), "1e+20"},
		{"%.3v", Double(31.4159), "31.4"},
		{"%G", Double(math.Inf(1)), "INF"},

		{"%f", Single(0.1), "0.100000"},
		{"%.9f", Single(0.1), "0.100000001"},
		{"%v", Single(16777216), "1.67772e+07"},

		{"%x", Double(0.5), "%!x(cprintf.Double=0.5)"},
		{"%d", Single(0.5), "%!d(cprintf.Single=0.5)"},
		{"%.70000f", Double(1), "%!f(cprintf.Double=1)"},
	}

	for _, tt := range tests {
		var got string
		if args, ok := tt.x.([]any); ok {
			got = fmt.Sprintf(tt.format, args...)
		} else {
			got = fmt.Sprintf(tt.format, tt.x)
		}
		if got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.format, tt.want, got)
		}
	}
}
