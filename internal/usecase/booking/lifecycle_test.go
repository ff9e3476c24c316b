package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/corteja-app/booking-api/internal/domain/booking"
	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/models"
)

func seedAppointment(t *testing.T, repo *fakeRepo, status domain.Status) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		BarbershopID: 1,
		BarberID:     1,
		StartTime:    time.Date(2030, 6, 11, 10, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2030, 6, 11, 10, 30, 0, 0, time.UTC),
		Status:       string(domain.StatusConfirmed),
	}
	require.NoError(t, repo.CreateAppointmentExclusive(context.Background(), ap))

	if status != domain.StatusConfirmed {
		ap.Status = string(status)
		require.NoError(t, repo.UpdateAppointment(context.Background(), ap))
	}
	return ap
}

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addShop(1)
	uc := NewCancelAppointment(repo, nil)

	t.Run("confirmado cancela", func(t *testing.T) {
		ap := seedAppointment(t, repo, domain.StatusConfirmed)

		got, err := uc.Execute(context.Background(), 1, ap.ID)
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), got.Status)
		require.NotNil(t, got.CancelledAt)

		stored, err := repo.GetAppointmentForShop(context.Background(), ap.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), stored.Status)
	})

	t.Run("cancelar duas vezes falha", func(t *testing.T) {
		ap := seedAppointment(t, repo, domain.StatusCancelled)

		_, err := uc.Execute(context.Background(), 1, ap.ID)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("concluído não cancela", func(t *testing.T) {
		ap := seedAppointment(t, repo, domain.StatusCompleted)

		_, err := uc.Execute(context.Background(), 1, ap.ID)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("inexistente", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), 1, 999)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})

	t.Run("agendamento de outra loja é invisível", func(t *testing.T) {
		repo.addShop(2)
		ap := seedAppointment(t, repo, domain.StatusConfirmed)

		_, err := uc.Execute(context.Background(), 2, ap.ID)
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

func TestCompleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.addShop(1)
	uc := NewCompleteAppointment(repo, nil)

	t.Run("confirmado conclui", func(t *testing.T) {
		ap := seedAppointment(t, repo, domain.StatusConfirmed)

		got, err := uc.Execute(context.Background(), 1, ap.ID)
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCompleted), got.Status)
		require.NotNil(t, got.CompletedAt)
	})

	t.Run("cancelado não conclui", func(t *testing.T) {
		ap := seedAppointment(t, repo, domain.StatusCancelled)

		_, err := uc.Execute(context.Background(), 1, ap.ID)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("concluir duas vezes falha", func(t *testing.T) {
		ap := seedAppointment(t, repo, domain.StatusCompleted)

		_, err := uc.Execute(context.Background(), 1, ap.ID)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}
