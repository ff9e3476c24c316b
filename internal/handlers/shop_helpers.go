package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/corteja-app/booking-api/internal/httperr"
)

// shopIDFromPath lê o identificador do tenant da rota; toda operação do
// dashboard recebe a loja explícita. Retorna 0 com a resposta de erro já
// escrita quando o parâmetro é inválido.
func shopIDFromPath(c *gin.Context) uint {
	idStr := c.Param("shop_id")

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_shop_id", "Barbearia inválida.")
		return 0
	}

	return uint(id)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// idParam lê o parâmetro :id da rota.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
