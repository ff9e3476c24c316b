package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"(11) 98765-4321", "11987654321"},
		{"+55 11 98765-4321", "+5511987654321"},
		{"11 9 8765 4321", "11987654321"},
		{"abc", ""},
		{"55+11", "5511"}, // + só vale no início
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	valid := []string{"11987654321", "+55 11 98765-4321", "3456-7890"}
	for _, p := range valid {
		if !IsPhoneValid(p) {
			t.Errorf("IsPhoneValid(%q) = false, want true", p)
		}
	}

	invalid := []string{"", "+55", "123", "telefone"}
	for _, p := range invalid {
		if IsPhoneValid(p) {
			t.Errorf("IsPhoneValid(%q) = true, want false", p)
		}
	}
}
