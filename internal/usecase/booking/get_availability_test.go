package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corteja-app/booking-api/internal/bookinglock"
	domain "github.com/corteja-app/booking-api/internal/domain/booking"
	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/models"
)

// 2026-03-10 é terça-feira.
var availDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func availInput() domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    1,
		BarberID:     1,
		Date:         availDate,
	}
}

func setupAvailability() (*fakeRepo, *GetAvailability) {
	repo := newFakeRepo()
	repo.addShop(1)
	repo.addService(1, 1, 30)
	repo.addBarber(1, 1, tueToSat())

	return repo, NewGetAvailability(repo)
}

func TestGetAvailability_NotFound(t *testing.T) {
	_, uc := setupAvailability()

	t.Run("serviço", func(t *testing.T) {
		in := availInput()
		in.ServiceID = 99

		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})

	t.Run("barbeiro", func(t *testing.T) {
		in := availInput()
		in.BarberID = 99

		_, err := uc.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
	})
}

func TestGetAvailability_FreeDay(t *testing.T) {
	_, uc := setupAvailability()

	slots, err := uc.Execute(context.Background(), availInput())
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0])
	assert.Contains(t, slots, "11:30")
	assert.NotContains(t, slots, "12:00", "intervalo de almoço bloqueia")
	assert.Contains(t, slots, "13:00")
	assert.Equal(t, "17:30", slots[len(slots)-1])
}

func TestGetAvailability_InactiveOrUnconfiguredBarber(t *testing.T) {
	repo, uc := setupAvailability()

	repo.barbers[1].Active = false
	slots, err := uc.Execute(context.Background(), availInput())
	require.NoError(t, err)
	assert.Empty(t, slots)

	repo.barbers[1].Active = true
	repo.barbers[1].Availability = nil
	slots, err = uc.Execute(context.Background(), availInput())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_ConfirmedBookingBlocksSlot(t *testing.T) {
	repo, uc := setupAvailability()

	booked := &models.Appointment{
		BarbershopID: 1,
		BarberID:     1,
		StartTime:    availDate.Add(10 * time.Hour),
		EndTime:      availDate.Add(10*time.Hour + 30*time.Minute),
		Status:       string(domain.StatusConfirmed),
	}
	require.NoError(t, repo.CreateAppointmentExclusive(context.Background(), booked))

	slots, err := uc.Execute(context.Background(), availInput())
	require.NoError(t, err)

	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "09:45", "serviço de 30min invadiria a reserva")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30", "slot encostado no fim da reserva é livre")
}

func TestGetAvailability_CancelledBookingFreesSlot(t *testing.T) {
	repo, uc := setupAvailability()

	cancelled := &models.Appointment{
		BarbershopID: 1,
		BarberID:     1,
		StartTime:    availDate.Add(10 * time.Hour),
		EndTime:      availDate.Add(10*time.Hour + 30*time.Minute),
		Status:       string(domain.StatusConfirmed),
	}
	require.NoError(t, repo.CreateAppointmentExclusive(context.Background(), cancelled))
	cancelled.Status = string(domain.StatusCancelled)
	require.NoError(t, repo.UpdateAppointment(context.Background(), cancelled))

	slots, err := uc.Execute(context.Background(), availInput())
	require.NoError(t, err)
	assert.Contains(t, slots, "10:00")
}

func TestGetAvailability_ReflectsNewBooking(t *testing.T) {
	repo, uc := setupAvailability()

	create := NewCreateAppointment(repo, bookinglock.NoopLocker{}, nil)
	in := validInput()
	in.Date = "2030-06-11" // terça-feira
	in.Time = "10:00"

	_, err := create.Execute(context.Background(), in)
	require.NoError(t, err)

	// a consulta seguinte, no fuso da loja, não oferece mais o horário
	dayInShop := time.Date(2030, 6, 11, 0, 0, 0, 0, repo.appointments[0].StartTime.Location())
	q := availInput()
	q.Date = dayInShop

	slots, errList := uc.Execute(context.Background(), q)
	require.NoError(t, errList)
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "10:30")
}
