package oui

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		mac  string
		want string
	}{
		{"known lowercase", "00:1b:1b:01:02:03", "Siemens AG"},
		{"known uppercase", "00:1B:1B:01:02:03", "Siemens AG"},
		{"dash separators", "00-1B-1B-01-02-03", "Siemens AG"},
		{"unknown oui", "de:ad:be:ef:00:01", ""},
		{"too short", "00:1b", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.mac); got != tt.want {
				t.Errorf("Lookup(%q) = %q, expected %q", tt.mac, got, tt.want)
			}
		})
	}
}
