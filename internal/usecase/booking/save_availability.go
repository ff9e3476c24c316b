package booking

import (
	"context"

	"github.com/corteja-app/booking-api/internal/audit"
	domain "github.com/corteja-app/booking-api/internal/domain/booking"
	"github.com/corteja-app/booking-api/internal/domain/schedule"
	"github.com/corteja-app/booking-api/internal/httperr"
)

type SaveAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveAvailability(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SaveAvailability {
	return &SaveAvailability{
		repo:  repo,
		audit: audit,
	}
}

// Execute valida a forma do padrão semanal e substitui o documento inteiro
// do barbeiro (nunca merge campo a campo).
func (uc *SaveAvailability) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	availability *schedule.Availability,
) error {

	if availability == nil {
		return httperr.ErrBusiness("missing_availability")
	}

	if err := availability.Validate(); err != nil {
		return err
	}

	if _, err := uc.repo.GetBarber(ctx, barbershopID, barberID); err != nil {
		return httperr.ErrBusiness("barber_not_found")
	}

	if err := uc.repo.UpdateBarberAvailability(
		ctx,
		barbershopID,
		barberID,
		availability,
	); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "availability_updated",
		Entity:       "barber",
		EntityID:     &barberID,
	})

	return nil
}
