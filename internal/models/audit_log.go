package models

import "time"

// Trilha de auditoria das operações do dashboard (criação, cancelamento,
// conclusão, troca de agenda). UserID é o barbeiro quando a ação parte
// dele; nulo para ações do widget público.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarbershopID uint  `gorm:"index" json:"barbershop_id"`
	UserID       *uint `json:"user_id"`

	Action   string `gorm:"size:50;not null;index" json:"action"`
	Entity   string `gorm:"size:50" json:"entity"`
	EntityID *uint  `json:"entity_id"`

	// JSON serializado; formato livre por ação.
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
