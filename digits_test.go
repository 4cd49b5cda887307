package cprintf

import (
	"strconv"
	"testing"
)

// newDigits returns a buffer holding the decimal digits s with point digits
// before the decimal point.
func newDigits(t *testing.T, s string, point int) digitBuffer {
	t.Helper()
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		t.Fatal(err)
	}
	var d digitBuffer
	d.setUint64(v, len(s))
	if !d.isZero() {
		d.point = point
	}
	return d
}

func TestPackWord(t *testing.T) {
	tests := []struct {
		v    uint32
		want uint32
	}{
		{0, 0},
		{7, 0x7},
		{314, 0x314},
		{12345678, 0x12345678},
		{99999999, 0x99999999},
		{10000000, 0x10000000},
	}
	for _, tt := range tests {
		if got := packWord(tt.v); got != tt.want {
			t.Errorf("packWord(%d): expected %#x, got %#x", tt.v, tt.want, got)
		}
	}
}

func TestSetUint64(t *testing.T) {
	tests := []struct {
		v      uint64
		order  int
		digits string
		offset int
		length int
	}{
		{314, 3, "314", 0, 3},
		{31400, 5, "314", 2, 3},
		{100000000, 9, "1", 8, 1},
		{12345678901234567, 17, "12345678901234567", 0, 17},
		{10000000000000000, 17, "1", 16, 1},
		{18446744073709551615, 20, "18446744073709551615", 0, 20},
	}
	for _, tt := range tests {
		var d digitBuffer
		d.setUint64(tt.v, tt.order)
		if got := d.String(); got != tt.digits {
			t.Errorf("%d: expected digits %s, got %s", tt.v, tt.digits, got)
		}
		if d.offset != tt.offset || d.length != tt.length {
			t.Errorf("%d: expected offset %d length %d, got offset %d length %d", tt.v, tt.offset, tt.length, d.offset, d.length)
		}
	}
}

func TestSetUint64Zero(t *testing.T) {
	d := digitBuffer{point: 5, neg: true}
	d.setUint64(0, 3)
	if !d.isZero() || d.point != 1 || d.neg {
		t.Errorf("expected the zero state, got %+v", d)
	}
	if got := d.String(); got != "0" {
		t.Errorf("expected 0, got %s", got)
	}
}

func TestDigit(t *testing.T) {
	d := newDigits(t, "1234500", 3)
	want := []byte{5, 4, 3, 2, 1}
	for i, w := range want {
		if got := d.digit(i); got != w {
			t.Errorf("digit(%d): expected %d, got %d", i, w, got)
		}
	}
	for _, i := range []int{-3, -1, 5, 100} {
		if got := d.digit(i); got != 0 {
			t.Errorf("digit(%d): expected 0, got %d", i, got)
		}
	}
}

func TestAppendDigits(t *testing.T) {
	d := newDigits(t, "12345", 1)
	tests := []struct {
		start, end int
		want       string
	}{
		{0, 5, "12345"},
		{4, 5, "1"},
		{0, 4, "2345"},
		{-3, 5, "12345000"},
		{0, 7, "0012345"},
		{2, 2, ""},
	}
	for _, tt := range tests {
		if got := string(d.appendDigits(nil, tt.start, tt.end)); got != tt.want {
			t.Errorf("appendDigits(%d, %d): expected %s, got %s", tt.start, tt.end, tt.want, got)
		}
	}
}

func TestNibbleLen(t *testing.T) {
	var d digitBuffer
	if got := d.nibbleLen(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	d.words[0] = 0x1
	if got := d.nibbleLen(); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	d.words[0] = 0x10000000
	if got := d.nibbleLen(); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
	d.words[2] = 0x123
	if got := d.nibbleLen(); got != 19 {
		t.Errorf("expected 19, got %d", got)
	}
}
