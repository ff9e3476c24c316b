package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/corteja-app/booking-api/internal/audit"
	"github.com/corteja-app/booking-api/internal/bookinglock"
	domain "github.com/corteja-app/booking-api/internal/domain/booking"
	"github.com/corteja-app/booking-api/internal/domain/schedule"
	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/models"
	"github.com/corteja-app/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string

	// Criações pelo dashboard pulam a antecedência mínima da loja.
	SkipMinAdvance bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	locker bookinglock.Locker
	audit  *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	locker bookinglock.Locker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Validação estrutural (uma única borda, nunca re-checa conflito)
	// --------------------------------------------------
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}

	// --------------------------------------------------
	// Data / hora no fuso da barbearia
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !in.SkipMinAdvance {
		minAdvance := shop.MinAdvanceMinutes
		if minAdvance <= 0 {
			minAdvance = 120
		}

		now := timezone.NowIn(shop.Timezone)
		if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
			return nil, httperr.ErrBusiness("too_soon")
		}
	}

	// --------------------------------------------------
	// Serviço — duração vira EndTime aqui, nunca depois
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// Barbeiro ativo e dentro do padrão semanal
	// --------------------------------------------------
	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if !withinAvailability(barber, start, end) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// --------------------------------------------------
	// Cliente (get or create) + read-model
	// --------------------------------------------------
	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ServiceID:    service.ID,
		ClientID:     client.ID,
		ClientName:   in.ClientName,
		ClientPhone:  in.ClientPhone,
		Reference:    uuid.NewString(),
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	// --------------------------------------------------
	// Reserva: lock por barbeiro+dia e escrita condicional.
	// A transação re-verifica o conflito com lock de linha, então
	// no máximo uma de duas reservas concorrentes sobrevive.
	// --------------------------------------------------
	err = uc.locker.WithBarberDayLock(ctx, in.BarberID, start, func(lockCtx context.Context) error {
		return uc.repo.CreateAppointmentExclusive(lockCtx, ap)
	})
	if err != nil {
		if errors.Is(err, bookinglock.ErrNotAcquired) {
			return nil, httperr.ErrBusiness("slot_busy")
		}
		return nil, err
	}

	// read-model; falha aqui não desfaz a reserva
	_ = uc.repo.TouchClientLastAppointment(ctx, client.ID, start)

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}

// ======================================================
// HELPERS
// ======================================================

func validateCreateInput(in CreateAppointmentInput) error {
	if strings.TrimSpace(in.ClientName) == "" {
		return httperr.ErrBusiness("missing_client_name")
	}
	if strings.TrimSpace(in.ClientPhone) == "" {
		return httperr.ErrBusiness("missing_client_phone")
	}
	if in.ServiceID == 0 {
		return httperr.ErrBusiness("missing_service")
	}
	if in.BarberID == 0 {
		return httperr.ErrBusiness("missing_barber")
	}
	if in.Date == "" || in.Time == "" {
		return httperr.ErrBusiness("missing_date_or_time")
	}
	return nil
}

func withinAvailability(barber *models.Barber, start, end time.Time) bool {
	av := barber.Availability
	if av == nil || !barber.Active {
		return false
	}

	if !av.WorksOn(start.Weekday()) {
		return false
	}

	workStart, err := schedule.TimeToMinutes(av.WorkHours.Start)
	if err != nil {
		return false
	}
	workEnd, err := schedule.TimeToMinutes(av.WorkHours.End)
	if err != nil {
		return false
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := startMin + int(end.Sub(start).Minutes())

	if startMin < workStart || endMin > workEnd {
		return false
	}

	for _, b := range av.Breaks {
		if b.Start == "" || b.End == "" {
			continue
		}
		bs, err := schedule.TimeToMinutes(b.Start)
		if err != nil {
			continue
		}
		be, err := schedule.TimeToMinutes(b.End)
		if err != nil {
			continue
		}
		if startMin < be && endMin > bs {
			return false
		}
	}

	return true
}
