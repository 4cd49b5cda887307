package cprintf

import "testing"

func TestRoundDigits(t *testing.T) {
	tests := []struct {
		digits string
		point  int
		n      int
		want   string
		point2 int
		grew   bool
	}{
		{"12345", 1, 3, "123", 1, false},
		{"12355", 1, 3, "124", 1, false},
		{"12350", 1, 3, "124", 1, false},
		{"12349", 1, 3, "123", 1, false},
		{"123", 1, 5, "123", 1, false},
		{"123", 1, 3, "123", 1, false},
		{"99999", 1, 3, "1", 2, true},
		{"995", -2, 2, "1", -1, true},
		{"994", -2, 2, "99", -2, false},
		{"5", 3, 0, "1", 4, true},
		{"4", 3, 0, "0", 1, false},
		{"150", 2, 1, "2", 2, false},

		// carries across packed words
		{"199999999999999999", 18, 9, "2", 18, false},
		{"999999999999999999", 18, 9, "1", 19, true},
		{"123456789123456789", 18, 10, "1234567891", 18, false},
		{"123456789523456789", 18, 9, "12345679", 18, false},
		{"99999999999999999", 17, 1, "1", 18, true},
		{"12345678999999999", 1, 16, "12345679", 1, false},
	}
	for _, tt := range tests {
		d := newDigits(t, tt.digits, tt.point)
		grew := d.roundDigits(tt.n)
		if got := d.String(); got != tt.want {
			t.Errorf("%s rounded to %d: expected %s, got %s", tt.digits, tt.n, tt.want, got)
		}
		if d.point != tt.point2 {
			t.Errorf("%s rounded to %d: expected point %d, got %d", tt.digits, tt.n, tt.point2, d.point)
		}
		if grew != tt.grew {
			t.Errorf("%s rounded to %d: expected grew %t, got %t", tt.digits, tt.n, tt.grew, grew)
		}
	}
}

func TestRoundDecimals(t *testing.T) {
	tests := []struct {
		digits string
		point  int
		n      int
		want   string
		point2 int
	}{
		{"314159", 1, 2, "314", 1},
		{"314159", 1, 4, "31416", 1},
		{"25", 1, 0, "3", 1},
		{"6", 0, 0, "1", 1},
		{"4", 0, 0, "0", 1},
		{"6", -3, 3, "1", -2},
		{"6", -4, 3, "0", 1},
		{"99995", 1, 3, "1", 2},
		{"1", 12, 6, "1", 12},
	}
	for _, tt := range tests {
		d := newDigits(t, tt.digits, tt.point)
		d.roundDecimals(tt.n)
		if got := d.String(); got != tt.want || d.point != tt.point2 {
			t.Errorf("%s (point %d) rounded to %d decimals: expected %s (point %d), got %s (point %d)",
				tt.digits, tt.point, tt.n, tt.want, tt.point2, got, d.point)
		}
	}
}

func TestRoundKeepsSign(t *testing.T) {
	d := newDigits(t, "9996", 1)
	d.neg = true
	d.roundDigits(3)
	if !d.neg || d.String() != "1" || d.point != 2 {
		t.Errorf("expected -1 with point 2, got %+v", d)
	}

	// a value rounded away entirely becomes the unsigned zero.
	d = newDigits(t, "4", 0)
	d.neg = true
	d.roundDecimals(0)
	if d.neg || !d.isZero() {
		t.Errorf("expected zero, got %+v", d)
	}
}

func TestAddOneWord(t *testing.T) {
	tests := []struct {
		w, want uint32
	}{
		{0x0, 0x1},
		{0x9, 0x10},
		{0x199, 0x200},
		{0x09999999, 0x10000000},
		{0x12345678, 0x12345679},
	}
	for _, tt := range tests {
		if got := addOneWord(tt.w); got != tt.want {
			t.Errorf("addOneWord(%#x): expected %#x, got %#x", tt.w, tt.want, got)
		}
	}
}
