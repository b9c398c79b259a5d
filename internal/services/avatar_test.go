package services

import (
	"testing"
)

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"two names", "Arjun Mehta", "AM"},
		{"single name", "Priya", "P"},
		{"three names takes first and last", "Anna Maria Koul", "AK"},
		{"lowercase is uppercased", "dev raina", "DR"},
		{"empty", "", "?"},
		{"whitespace only", "   ", "?"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := initials(tc.in); got != tc.want {
				t.Fatalf("initials(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorIndexStable(t *testing.T) {
	a := colorIndex("6a7b9c3e-0000-0000-0000-000000000001", 5)
	b := colorIndex("6a7b9c3e-0000-0000-0000-000000000001", 5)
	if a != b {
		t.Fatalf("same seed gave different indexes: %d vs %d", a, b)
	}
	if a < 0 || a >= 5 {
		t.Fatalf("index %d out of palette range", a)
	}
}
