package booking

import (
	"context"
	"time"

	domain "github.com/corteja-app/booking-api/internal/domain/booking"
	"github.com/corteja-app/booking-api/internal/domain/schedule"
	"github.com/corteja-app/booking-api/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve os horários "HH:MM" livres para o serviço com o barbeiro
// na data. Lista vazia é resultado legítimo (dia fechado, agenda lotada),
// nunca erro. Só agendamentos confirmados bloqueiam slot.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	service, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	barber, err := uc.repo.GetBarber(ctx, in.BarbershopID, in.BarberID)
	if err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	if barber.Availability == nil || !barber.Active {
		return []string{}, nil
	}

	loc := in.Date.Location()
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsOnDate(
		ctx,
		in.BarberID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	busy := make([]schedule.Interval, 0, len(appointments))
	for _, ap := range appointments {
		busy = append(busy, schedule.Interval{
			Start: schedule.DateToMinutes(ap.StartTime.In(loc)),
			End:   schedule.DateToMinutes(ap.EndTime.In(loc)),
		})
	}

	slots := schedule.AvailableSlots(
		barber.Availability,
		barber.Active,
		service.DurationMin,
		busy,
		in.Date,
	)

	return slots, nil
}
