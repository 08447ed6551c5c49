package validate

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"johndoe@example.com", true},
		{"a@b.co", true},
		{"first.last+tag@sub.example.org", true},
		{"", false},
		{"plainaddress", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"user@.com", false},
		{"user@domain.", false},
		{"user @example.com", false},
		{"user@exa mple.com", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.email); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		password string
		want     bool
	}{
		{"passw0rd", true},
		{"abcdefg1", true},
		{"1234567a", true},
		{"A1B2C3D4", true},
		{"", false},
		{"short1a", false},    // 7 chars
		{"abcdefgh", false},   // no digit
		{"12345678", false},   // no letter
		{"passw0rd!", false},  // symbol not allowed
		{"pass w0rd", false},  // space not allowed
		{"pässw0rd", false},   // non-ascii letter not allowed
		{"longenoughpassword1", true},
	}

	for _, tt := range tests {
		if got := IsValidPassword(tt.password); got != tt.want {
			t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}
