package task

import (
	"strings"
	"testing"
)

func TestNewID_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewID()
		if !IsValidID(id) {
			t.Fatalf("NewID() = %q, not a valid id", id)
		}
		if len(id) != 25 {
			t.Fatalf("NewID() = %q, expected length 25, got %d", id, len(id))
		}
		if !strings.HasPrefix(id, "c") {
			t.Fatalf("NewID() = %q, expected leading 'c'", id)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("NewID() produced duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"generated id", NewID(), true},
		{"known good shape", "clfxyz0123456789abcdefghi", true},
		{"empty", "", false},
		{"wrong prefix", "dlfxyz0123456789abcdefghi", false},
		{"too short", "clfxyz0123456789abcdefgh", false},
		{"too long", "clfxyz0123456789abcdefghij", false},
		{"uppercase", "cLFXYZ0123456789ABCDEFGHI", false},
		{"uuid", "5a3d8f2e-1c4b-4a6d-9e7f-0b1c2d3e4f5a", false},
		{"numeric only", "1234567890123456789012345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidID(tt.id); got != tt.want {
				t.Errorf("IsValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
