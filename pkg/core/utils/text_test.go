package utils

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"**Bold plan** with steps", "Bold plan with steps"},
		{"Stay hydrated 💧 every day ✅", "Stay hydrated  every day "},
		{"plain text untouched", "plain text untouched"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CleanText(c.in); got != c.want {
			t.Errorf("CleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
