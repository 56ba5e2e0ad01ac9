package validation

import "testing"

func TestIsEmail(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"asha@example.com", true},
		{"asha.rao+orders@shop.co.in", true},
		{"  asha@example.com  ", true},
		{"asha@example", false},
		{"not-an-email", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsEmail(tc.input); got != tc.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsPhone(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"9876543210", true},
		{" 9876543210 ", true},
		{"987654321", false},
		{"98765432100", false},
		{"98765abc10", false},
		{"+919876543210", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsPhone(tc.input); got != tc.want {
			t.Errorf("IsPhone(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsPinCode(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"560001", true},
		{"56001", false},
		{"5600011", false},
		{"56000a", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsPinCode(tc.input); got != tc.want {
			t.Errorf("IsPinCode(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank("") || !IsBlank("   ") || !IsBlank("\t\n") {
		t.Error("whitespace-only strings must be blank")
	}
	if IsBlank("x") || IsBlank("  x  ") {
		t.Error("non-empty strings must not be blank")
	}
}
