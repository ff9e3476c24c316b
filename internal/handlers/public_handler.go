package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/corteja-app/booking-api/internal/domain/booking"
	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/models"
	ucBooking "github.com/corteja-app/booking-api/internal/usecase/booking"
	"github.com/corteja-app/booking-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende o widget de agendamento e o bot de conversa:
// catálogo, barbeiros, horários livres e a reserva em si.
type PublicHandler struct {
	db              *gorm.DB
	availabilityUC  *ucBooking.GetAvailability
	createBookingUC *ucBooking.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucBooking.GetAvailability,
	createBookingUC *ucBooking.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:              db,
		availabilityUC:  availabilityUC,
		createBookingUC: createBookingUC,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	BarberID    uint   `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"services":   services,
	})
}

////////////////////////////////////////////////////////
// BARBERS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ? AND active = true", shop.ID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"barbers":    barbers,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	barberIDStr := c.Query("barber_id")

	if dateStr == "" || serviceIDStr == "" || barberIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, serviço e barbeiro obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarbershopID: shop.ID,
			ServiceID:    uint(serviceID),
			BarberID:     uint(barberID),
			Date:         date,
		},
	)

	if err != nil {
		switch httperr.BusinessCode(err) {
		case "service_not_found":
			httperr.BadRequest(c, "service_not_found", "Serviço inválido.")
		case "barber_not_found":
			httperr.BadRequest(c, "barber_not_found", "Barbeiro inválido.")
		default:
			httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    dateStr,
		"weekday": weekdayName(date.Weekday()),
		"slots":   slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhoneValid(req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	ap, err := h.createBookingUC.Execute(
		c.Request.Context(),
		ucBooking.CreateAppointmentInput{
			BarbershopID: shop.ID,
			BarberID:     req.BarberID,
			ServiceID:    req.ServiceID,
			ClientName:   req.ClientName,
			ClientPhone:  validators.NormalizePhone(req.ClientPhone),
			ClientEmail:  req.ClientEmail,
			Date:         req.Date,
			Time:         req.Time,
			Notes:        req.Notes,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference":  ap.Reference,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}

////////////////////////////////////////////////////////
// ERROR MAPPING
////////////////////////////////////////////////////////

func mapCreateErrors(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "missing_client_name", "missing_client_phone", "missing_service",
		"missing_barber", "missing_date_or_time", "invalid_date_or_time":
		httperr.BadRequest(c, code, "Dados inválidos.")
	case "too_soon":
		httperr.BadRequest(c, "too_soon", "Horário muito próximo ou no passado.")
	case "service_not_found":
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case "barber_not_found":
		httperr.BadRequest(c, "barber_not_found", "Barbeiro não encontrado.")
	case "barbershop_not_found":
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
	case "outside_working_hours":
		httperr.BadRequest(c, "outside_working_hours", "Fora do horário de atendimento.")
	case "time_conflict":
		httperr.Conflict(c, "time_conflict", "Horário já reservado.")
	case "slot_busy":
		httperr.Conflict(c, "slot_busy", "Horário em disputa, tente novamente.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}
