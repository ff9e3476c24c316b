package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/corteja-app/booking-api/internal/domain/booking"
	"github.com/corteja-app/booking-api/internal/domain/schedule"
	"github.com/corteja-app/booking-api/internal/httperr"
	"github.com/corteja-app/booking-api/internal/models"
)

// fakeRepo implementa o gateway em memória para os testes de use case.
// A escrita condicional reproduz a semântica do repositório real: conflito
// de intervalo com agendamento confirmado rejeita a inserção.
type fakeRepo struct {
	mu sync.Mutex

	shops        map[uint]*models.Barbershop
	services     map[uint]*models.Service
	barbers      map[uint]*models.Barber
	clients      []*models.Client
	appointments []*models.Appointment

	nextID uint

	failCreate error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		shops:    map[uint]*models.Barbershop{},
		services: map[uint]*models.Service{},
		barbers:  map[uint]*models.Barber{},
		nextID:   1,
	}
}

func (f *fakeRepo) addShop(id uint) *models.Barbershop {
	shop := &models.Barbershop{ID: id, Name: "Barbearia Teste", Slug: "teste", Timezone: "America/Sao_Paulo"}
	f.shops[id] = shop
	return shop
}

func (f *fakeRepo) addService(id uint, shopID uint, durationMin int) *models.Service {
	s := &models.Service{ID: id, BarbershopID: shopID, Name: "Corte", DurationMin: durationMin, Price: 50, Active: true}
	f.services[id] = s
	return s
}

func (f *fakeRepo) addBarber(id uint, shopID uint, av *schedule.Availability) *models.Barber {
	b := &models.Barber{ID: id, BarbershopID: shopID, Name: "João", Active: true, Availability: av}
	f.barbers[id] = b
	return b
}

func (f *fakeRepo) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if shop, ok := f.shops[id]; ok {
		return shop, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	for _, shop := range f.shops {
		if shop.Slug == slug {
			return shop, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListServices(_ context.Context, shopID uint) ([]models.Service, error) {
	var out []models.Service
	for _, s := range f.services {
		if s.BarbershopID == shopID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetService(_ context.Context, shopID uint, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok && s.BarbershopID == shopID {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListBarbers(_ context.Context, shopID uint) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range f.barbers {
		if b.BarbershopID == shopID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetBarber(_ context.Context, shopID uint, id uint) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok && b.BarbershopID == shopID {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateBarberAvailability(
	_ context.Context,
	shopID uint,
	barberID uint,
	av *schedule.Availability,
) error {
	b, ok := f.barbers[barberID]
	if !ok || b.BarbershopID != shopID {
		return gorm.ErrRecordNotFound
	}
	b.Availability = av
	return nil
}

func (f *fakeRepo) GetOrCreateClient(
	_ context.Context,
	shopID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, cl := range f.clients {
		if cl.BarbershopID == shopID && cl.Phone == phone {
			return cl, nil
		}
	}

	cl := &models.Client{ID: f.allocIDLocked(), BarbershopID: shopID, Name: name, Phone: phone, Email: email}
	f.clients = append(f.clients, cl)
	return cl, nil
}

func (f *fakeRepo) ListClients(_ context.Context, shopID uint) ([]models.Client, error) {
	var out []models.Client
	for _, cl := range f.clients {
		if cl.BarbershopID == shopID {
			out = append(out, *cl)
		}
	}
	return out, nil
}

func (f *fakeRepo) TouchClientLastAppointment(_ context.Context, clientID uint, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, cl := range f.clients {
		if cl.ID == clientID {
			cl.LastAppointment = &at
		}
	}
	return nil
}

func (f *fakeRepo) CreateAppointmentExclusive(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreate != nil {
		return f.failCreate
	}

	for _, other := range f.appointments {
		if other.BarberID != ap.BarberID {
			continue
		}
		if other.Status != string(domain.StatusConfirmed) {
			continue
		}
		if ap.StartTime.Before(other.EndTime) && ap.EndTime.After(other.StartTime) {
			return httperr.ErrBusiness("time_conflict")
		}
	}

	ap.ID = f.allocIDLocked()
	stored := *ap
	f.appointments = append(f.appointments, &stored)
	return nil
}

func (f *fakeRepo) ListAppointmentsOnDate(
	_ context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarberID != barberID {
			continue
		}
		if ap.Status != string(domain.StatusConfirmed) {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(
	_ context.Context,
	shopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.BarbershopID != shopID {
			continue
		}
		if !ap.StartTime.Before(start) && ap.StartTime.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetAppointmentForShop(
	_ context.Context,
	appointmentID uint,
	shopID uint,
) (*models.Appointment, error) {
	for _, ap := range f.appointments {
		if ap.ID == appointmentID && ap.BarbershopID == shopID {
			return ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, other := range f.appointments {
		if other.ID == ap.ID {
			f.appointments[i] = ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) allocIDLocked() uint {
	id := f.nextID
	f.nextID++
	return id
}

var _ domain.Repository = (*fakeRepo)(nil)
