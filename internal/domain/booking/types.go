package booking

import "time"

// AvailabilityInput identifica (loja, serviço, barbeiro, data) para o
// cálculo de horários. A loja sempre chega explícita — nunca constante
// de módulo.
type AvailabilityInput struct {
	BarbershopID uint
	ServiceID    uint
	BarberID     uint
	Date         time.Time
}
