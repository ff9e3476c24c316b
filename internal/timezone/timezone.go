package timezone

import "time"

// O fuso é sempre o da barbearia, nunca o do cliente: os horários de
// atendimento ("09:00") só fazem sentido no relógio da loja.
const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve o fuso da loja; valor inválido ou vazio cai no padrão.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return NowIn(DefaultTimezone)
}

// NowIn devolve o agora no relógio da loja; é a referência para a
// antecedência mínima de reserva.
func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
