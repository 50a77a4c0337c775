package commit

import "testing"

func TestShortHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
		want string
	}{
		{"full sha", "0a1b2c3d4e5f67890a1b2c3d4e5f67890a1b2c3d", "0a1b2c3d"},
		{"already short", "abc123", "abc123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Commit{Hash: tt.hash}
			if got := c.ShortHash(); got != tt.want {
				t.Errorf("ShortHash: got %q, want %q", got, tt.want)
			}
		})
	}
}
