package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/httpresp"
	"github.com/corteja-app/booking-api/internal/models"
	ucBooking "github.com/corteja-app/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	createUC      *ucBooking.CreateAppointment
	cancelUC      *ucBooking.CancelAppointment
	completeUC    *ucBooking.CompleteAppointment
	listByDateUC  *ucBooking.ListAppointmentsByDate
	listByMonthUC *ucBooking.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	db *gorm.DB,
	createUC *ucBooking.CreateAppointment,
	cancelUC *ucBooking.CancelAppointment,
	completeUC *ucBooking.CompleteAppointment,
	listByDateUC *ucBooking.ListAppointmentsByDate,
	listByMonthUC *ucBooking.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:            db,
		createUC:      createUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	BarberID    uint   `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateAppointmentInput{
			BarbershopID: shopID,
			BarberID:     req.BarberID,
			ServiceID:    req.ServiceID,
			ClientName:   req.ClientName,
			ClientPhone:  req.ClientPhone,
			ClientEmail:  req.ClientEmail,
			Date:         req.Date,
			Time:         req.Time,
			Notes:        req.Notes,

			// agendamento de balcão: dono encaixa cliente em cima da hora
			SkipMinAdvance: true,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	appointments, err := h.listByDateUC.Execute(c.Request.Context(), shopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	appointments, err := h.listByMonthUC.Execute(c.Request.Context(), shopID, year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), shopID, id)
	if err != nil {
		mapStateChangeErrors(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), shopID, id)
	if err != nil {
		mapStateChangeErrors(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func mapStateChangeErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
	default:
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar agendamento.")
	}
}
