package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/corteja-app/booking-api/internal/avatar"
	"github.com/corteja-app/booking-api/internal/domain/schedule"
	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/httpresp"
	"github.com/corteja-app/booking-api/internal/models"
	ucBooking "github.com/corteja-app/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	db                 *gorm.DB
	saveAvailabilityUC *ucBooking.SaveAvailability
	avatars            *avatar.Uploader // nil quando S3 desabilitado
}

func NewBarberHandler(
	db *gorm.DB,
	saveAvailabilityUC *ucBooking.SaveAvailability,
	avatars *avatar.Uploader,
) *BarberHandler {
	return &BarberHandler{
		db:                 db,
		saveAvailabilityUC: saveAvailabilityUC,
		avatars:            avatars,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBarberRequest struct {
	Name   *string `json:"name,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

type AvailabilityRequest struct {
	WorkDays  []int                 `json:"work_days" binding:"required"`
	WorkHours schedule.HoursRange   `json:"work_hours" binding:"required"`
	Breaks    []schedule.HoursRange `json:"breaks"`
}

// ======================================================
// CRUD
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	var barbers []models.Barber
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber := models.Barber{
		BarbershopID: shopID,
		Name:         req.Name,
		Active:       true,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Active != nil {
		barber.Active = *req.Active
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	httpresp.OK(c, barber)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BarberHandler) GetAvailability(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	if barber.Availability == nil {
		c.JSON(http.StatusOK, gin.H{"availability": nil})
		return
	}

	av := barber.Availability
	c.JSON(http.StatusOK, gin.H{
		"availability": gin.H{
			"work_days":      av.WorkDays,
			"work_day_names": weekdayNamesFor(av.WorkDays),
			"work_hours":     av.WorkHours,
			"breaks":         av.Breaks,
		},
	})
}

func (h *BarberHandler) PutAvailability(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	barberID, ok := idParam(c)
	if !ok {
		return
	}

	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days := make([]time.Weekday, 0, len(req.WorkDays))
	for _, d := range req.WorkDays {
		days = append(days, time.Weekday(d))
	}

	av := &schedule.Availability{
		WorkDays:  days,
		WorkHours: req.WorkHours,
		Breaks:    req.Breaks,
	}

	err := h.saveAvailabilityUC.Execute(c.Request.Context(), shopID, barberID, av)
	if err != nil {
		switch code := httperr.BusinessCode(err); code {
		case "barber_not_found":
			httperr.NotFound(c, code, "Barbeiro não encontrado.")
		case "":
			httperr.Internal(c, "failed_to_save_availability", "Erro ao salvar disponibilidade.")
		default:
			httperr.BadRequest(c, code, "Disponibilidade inválida.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// AVATAR
// ======================================================

func (h *BarberHandler) UploadAvatar(c *gin.Context) {
	shopID := shopIDFromPath(c)
	if shopID == 0 {
		return
	}

	if h.avatars == nil {
		httperr.BadRequest(c, "avatars_disabled", "Upload de avatar desabilitado.")
		return
	}

	barberID, ok := idParam(c)
	if !ok {
		return
	}

	var barber models.Barber
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", barberID, shopID).
		First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler arquivo.")
		return
	}
	defer src.Close()

	url, err := h.avatars.Upload(c.Request.Context(), shopID, barber.ID, src)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Erro ao enviar avatar.")
		return
	}

	barber.AvatarURL = url
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	httpresp.OK(c, barber)
}
