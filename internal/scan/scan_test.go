package scan

import "testing"

func TestDecimal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		n    int
		rest string
		ok   bool
	}{
		{"1234", 1234, "", true},
		{"12ab", 12, "ab", true},
		{"1_000_000", 1, "_000_000", true},
		{"0", 0, "", true},
		{"abc", 0, "abc", false},
		{"", 0, "", false},
		{"-5", 0, "-5", false},
	}
	for _, tt := range tests {
		n, rest, ok := Decimal(tt.in)
		if n != tt.n || rest != tt.rest || ok != tt.ok {
			t.Errorf("Decimal(%q) = %d, %q, %t, want %d, %q, %t",
				tt.in, n, rest, ok, tt.n, tt.rest, tt.ok)
		}
	}
}

func TestInt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		n    int
		rest string
		ok   bool
	}{
		{"42,", 42, ",", true},
		{"-3 v", -3, " v", true},
		{"-", 0, "", false},
	}
	for _, tt := range tests {
		n, rest, ok := Int(tt.in)
		if n != tt.n || rest != tt.rest || ok != tt.ok {
			t.Errorf("Int(%q) = %d, %q, %t, want %d, %q, %t",
				tt.in, n, rest, ok, tt.n, tt.rest, tt.ok)
		}
	}
}

func TestLiteral(t *testing.T) {
	t.Parallel()
	if rest, ok := Literal("X+94, Y+34", "X+"); !ok || rest != "94, Y+34" {
		t.Errorf("Literal = %q, %t", rest, ok)
	}
	if _, ok := Literal("X+94", "Y+"); ok {
		t.Error("Literal matched wrong prefix")
	}
}

func TestCountDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{999, 3},
		{1000, 4},
		{123456789, 9},
	}
	for _, tt := range tests {
		if got := CountDigits(tt.n); got != tt.want {
			t.Errorf("CountDigits(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
