package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/httpresp"
	ucBooking "github.com/corteja-app/booking-api/internal/usecase/booking"
)

type DashboardHandler struct {
	statsUC *ucBooking.GetDashboardStats
}

func NewDashboardHandler(statsUC *ucBooking.GetDashboardStats) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), shopID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Erro ao carregar o painel.")
		return
	}

	httpresp.OK(c, stats)
}
