package config

import (
	"errors"
	"testing"
)

func TestParseBigInt(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"31", "31", true},
		{"0x1f", "31", true},
		{"0X1F", "31", true},
		{"0", "0", true},
		{"-5", "-5", true},
		{"1000000000000000000000000000000", "1000000000000000000000000000000", true},
		{"0x", "", false},
		{"", "", false},
		{"zz", "", false},
		{"12x3", "", false},
		{"0xgg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, err := ParseBigInt(tt.in)
			if !tt.ok {
				if err == nil {
					t.Fatalf("ParseBigInt(%q) = %s, want error", tt.in, n)
				}
				if !errors.Is(err, ErrMalformedNumber) {
					t.Fatalf("ParseBigInt(%q) error = %v, want ErrMalformedNumber", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBigInt(%q) error = %v", tt.in, err)
			}
			if n.String() != tt.want {
				t.Fatalf("ParseBigInt(%q) = %s, want %s", tt.in, n, tt.want)
			}
		})
	}
}
