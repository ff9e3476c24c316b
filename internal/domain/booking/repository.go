package booking

import (
	"context"
	"time"

	"github.com/corteja-app/booking-api/internal/domain/schedule"
	"github.com/corteja-app/booking-api/internal/models"
)

// Repository é o gateway de persistência do motor de agendamento.
// Toda E/S do core passa por aqui; a implementação (gorm/postgres)
// fica em internal/infra/repository.
type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service --------
	ListServices(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Service, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Barber --------
	ListBarbers(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Barber, error)

	GetBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.Barber, error)

	UpdateBarberAvailability(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
		availability *schedule.Availability,
	) error

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	ListClients(
		ctx context.Context,
		barbershopID uint,
	) ([]models.Client, error)

	TouchClientLastAppointment(
		ctx context.Context,
		clientID uint,
		at time.Time,
	) error

	// -------- Appointment (create / conflict) --------

	// CreateAppointmentExclusive persiste o agendamento dentro de uma
	// transação que re-verifica conflito de intervalo com lock de linha.
	// Retorna time_conflict se outro agendamento confirmado cruzar
	// [StartTime, EndTime).
	CreateAppointmentExclusive(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (reads) --------

	// ListAppointmentsOnDate retorna apenas agendamentos confirmados do
	// barbeiro cujo StartTime cai dentro de [start, end). Cancelados e
	// concluídos nunca participam de checagem de conflito. A chave é o
	// barbeiro, não a loja: o id do barbeiro é global e já determina a
	// loja, e a janela [start, end) substitui a data no fuso do chamador.
	ListAppointmentsOnDate(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointmentForShop(
		ctx context.Context,
		appointmentID uint,
		barbershopID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
