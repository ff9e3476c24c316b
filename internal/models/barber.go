package models

import (
	"time"

	"github.com/corteja-app/booking-api/internal/domain/schedule"
)

// Barbeiro da barbearia. A disponibilidade semanal é um documento embutido
// (JSONB) sem ciclo de vida próprio: trocar é sempre substituição integral.
type Barber struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	Active    bool   `gorm:"default:true" json:"active"`

	Availability *schedule.Availability `gorm:"serializer:json;type:jsonb" json:"availability"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
