package validators

import "strings"

// NormalizePhone reduz o telefone a dígitos (mantendo + internacional)
// para que "(11) 98765-4321" e "11987654321" caiam no mesmo cliente.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid exige ao menos 8 dígitos após normalização.
func IsPhoneValid(phone string) bool {
	normalized := strings.TrimPrefix(NormalizePhone(phone), "+")
	return len(normalized) >= 8
}
