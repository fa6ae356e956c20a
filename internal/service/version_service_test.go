package service

import "testing"

func TestNextVersion(t *testing.T) {
	cases := []struct {
		latest string
		want   string
	}{
		{"", "1.0.0"},
		{"   ", "1.0.0"},
		{"1.0.0", "1.0.1"},
		{"1.4.2", "1.4.3"},
		{"2.9", "2.10"},
		{"7", "8"},
		{"1.0.9", "1.0.10"},
		{"v1.0", "v1.1"},
		{"1.0.0-beta", "1.0.0"},
		{"abc", "1.0.0"},
	}

	for _, tt := range cases {
		if got := NextVersion(tt.latest); got != tt.want {
			t.Errorf("NextVersion(%q) = %q, want %q", tt.latest, got, tt.want)
		}
	}
}
