package repository

import (
	"testing"
)

func TestNormalizeFileRef(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"empty", "", ""},
		{"already resolved", "https://files.example.com/uploads/a.txt", "https://files.example.com/uploads/a.txt"},
		{"missing scheme", "files.example.com/uploads/a.txt", "https://files.example.com/uploads/a.txt"},
		{"leading slashes without scheme", "//files.example.com/a.txt", "https://files.example.com/a.txt"},
		{"duplicated segment", "https://files.example.com/uploads/uploads/a.txt", "https://files.example.com/uploads/a.txt"},
		{"doubled slashes in path", "https://files.example.com//uploads//a.txt", "https://files.example.com/uploads/a.txt"},
		{"whitespace trimmed", "  https://files.example.com/a.txt  ", "https://files.example.com/a.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeFileRef(tt.ref); got != tt.want {
				t.Errorf("NormalizeFileRef(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}
