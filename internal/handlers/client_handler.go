package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/httpresp"
	"github.com/corteja-app/booking-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// List devolve a base de clientes da loja. Com ?inactive_since_days=N,
// filtra quem não agenda há N dias (lista de reativação do dashboard).
func (h *ClientHandler) List(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	q := h.db.Where("barbershop_id = ?", shopID)

	if daysStr := c.Query("inactive_since_days"); daysStr != "" {
		days, err := parsePositiveInt(daysStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_days", "Parâmetro inválido.")
			return
		}

		cutoff := time.Now().AddDate(0, 0, -days)
		q = q.Where("last_appointment IS NULL OR last_appointment < ?", cutoff)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.List(c, clients)
}
