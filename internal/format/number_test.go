package format

import "testing"

func TestNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{12.34, "12.3"},
		{10, "10"},
		{150.9, "150"},
		{999, "999"},
		{1000, "1.0K"},
		{12345, "12.3K"},
		{450_000_000, "450M"},
		{2_500_000_000, "2.5B"},
		{-1500, "-1.5K"},
		{3e21, "3.0Sx"},
	}
	for _, tc := range cases {
		if got := Number(tc.in); got != tc.want {
			t.Fatalf("Number(%v): expected %q got %q", tc.in, tc.want, got)
		}
	}
}

func TestCommas(t *testing.T) {
	if got := Commas(1234567.89); got != "1,234,567" {
		t.Fatalf("expected 1,234,567 got %q", got)
	}
	if got := Commas(-1000); got != "-1,000" {
		t.Fatalf("expected -1,000 got %q", got)
	}
}
