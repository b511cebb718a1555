package netif

import (
	"testing"

	dcperrors "pndcp/pkg/errors"
)

func TestResolveUnknownIP(t *testing.T) {
	// 192.0.2.0/24 is TEST-NET-1, never assigned to a local interface
	_, _, err := Resolve("192.0.2.123")
	if err == nil {
		t.Fatal("expected error for unassigned ip")
	}
	if !dcperrors.IsNotFound(err) {
		t.Errorf("expected interface-not-found error, got %v", err)
	}
}

func TestCanonicalMAC(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"AA-BB-CC-DD-EE-FF", "aa:bb:cc:dd:ee:ff"},
		{"aa:bb:cc:dd:ee:ff", "aa:bb:cc:dd:ee:ff"},
		{"0A-0b-0C-0d-0E-0f", "0a:0b:0c:0d:0e:0f"},
	}
	for _, tt := range tests {
		if got := CanonicalMAC(tt.in); got != tt.want {
			t.Errorf("CanonicalMAC(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}
