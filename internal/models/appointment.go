package models

import "time"

// Agendamento. ServiceID e BarberID são referências fracas (lookup apenas);
// remover um serviço não apaga agendamentos passados. A duração é capturada
// em EndTime no momento da criação e nunca re-derivada do serviço.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint       `gorm:"index" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Denormalizado para o widget de agendamento (cliente sem cadastro prévio).
	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	// Código público entregue ao cliente após a reserva.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
