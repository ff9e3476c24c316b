package booking

import (
	"context"
	"time"

	domain "github.com/corteja-app/booking-api/internal/domain/booking"
	"github.com/corteja-app/booking-api/internal/timezone"
)

// Números dos cards do dashboard: agenda de hoje, receita do mês
// (apenas agendamentos concluídos) e base de clientes.
type DashboardStats struct {
	AppointmentsToday int     `json:"appointments_today"`
	MonthRevenue      float64 `json:"month_revenue"`
	TotalClients      int     `json:"total_clients"`
}

type GetDashboardStats struct {
	repo domain.Repository
}

func NewGetDashboardStats(repo domain.Repository) *GetDashboardStats {
	return &GetDashboardStats{repo: repo}
}

func (uc *GetDashboardStats) Execute(
	ctx context.Context,
	barbershopID uint,
) (*DashboardStats, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	now := timezone.NowIn(shop.Timezone)

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	today, err := uc.repo.ListAppointmentsForPeriod(ctx, barbershopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	monthly, err := uc.repo.ListAppointmentsForPeriod(ctx, barbershopID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, ap := range monthly {
		if ap.Status == string(domain.StatusCompleted) {
			revenue += ap.Service.Price
		}
	}

	activeToday := 0
	for _, ap := range today {
		if ap.Status != string(domain.StatusCancelled) {
			activeToday++
		}
	}

	clients, err := uc.repo.ListClients(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		AppointmentsToday: activeToday,
		MonthRevenue:      revenue,
		TotalClients:      len(clients),
	}, nil
}
