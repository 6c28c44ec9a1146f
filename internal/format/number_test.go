package format

import "testing"

func TestPoints(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1_000_000, "1,000,000"},
		{-2500, "-2,500"},
	}
	for _, tc := range tests {
		if got := Points(tc.in); got != tc.want {
			t.Errorf("Points(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSigned(t *testing.T) {
	if got := Signed(10); got != "+10" {
		t.Errorf("Signed(10) = %q", got)
	}
	if got := Signed(-200); got != "-200" {
		t.Errorf("Signed(-200) = %q", got)
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{9_999, "9,999"},
		{12_345, "12.3K"},
		{4_500_000, "4.5M"},
		{2_000_000_000, "2.0B"},
	}
	for _, tc := range tests {
		if got := Compact(tc.in); got != tc.want {
			t.Errorf("Compact(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
