package main

import (
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"

	"github.com/corteja-app/booking-api/internal/config"
	dbpkg "github.com/corteja-app/booking-api/internal/db"
	"github.com/corteja-app/booking-api/internal/domain/schedule"
	"github.com/corteja-app/booking-api/internal/models"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	gofakeit.Seed(time.Now().UnixNano())

	shop := seedBarbershop(db)
	seedServices(db, shop.ID)
	seedBarbers(db, shop.ID)
	seedClients(db, shop.ID, 40)

	log.Println("seed complete")
}

func seedBarbershop(db *gorm.DB) *models.Barbershop {
	shop := models.Barbershop{
		Name:     "Barbearia Corteja",
		Slug:     "corteja",
		Phone:    "(11) 3333-4444",
		Address:  "Rua Augusta, 1200 - São Paulo",
		Timezone: "America/Sao_Paulo",
	}

	if err := db.Where("slug = ?", shop.Slug).FirstOrCreate(&shop).Error; err != nil {
		log.Fatalf("seed barbershop: %v", err)
	}

	return &shop
}

func seedServices(db *gorm.DB, shopID uint) {
	services := []models.Service{
		{BarbershopID: shopID, Name: "Corte de Cabelo", DurationMin: 30, Price: 50.0, Active: true},
		{BarbershopID: shopID, Name: "Barba", DurationMin: 20, Price: 30.0, Active: true},
		{BarbershopID: shopID, Name: "Corte e Barba", DurationMin: 50, Price: 70.0, Active: true},
		{BarbershopID: shopID, Name: "Pintura de Cabelo", DurationMin: 60, Price: 100.0, Active: true},
		{BarbershopID: shopID, Name: "Hidratação", DurationMin: 25, Price: 40.0, Active: true},
	}

	log.Printf("seeding %d services", len(services))

	for _, s := range services {
		if err := db.
			Where("barbershop_id = ? AND name = ?", shopID, s.Name).
			FirstOrCreate(&s).Error; err != nil {
			log.Fatalf("seed service %q: %v", s.Name, err)
		}
	}
}

func seedBarbers(db *gorm.DB, shopID uint) {
	weekPattern := &schedule.Availability{
		WorkDays: []time.Weekday{
			time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday,
		},
		WorkHours: schedule.HoursRange{Start: "09:00", End: "18:00"},
		Breaks: []schedule.HoursRange{
			{Start: "12:00", End: "13:00"},
		},
	}

	barbers := []models.Barber{
		{BarbershopID: shopID, Name: "João Silva", Active: true, Availability: weekPattern},
		{BarbershopID: shopID, Name: "Carlos Pereira", Active: true, Availability: weekPattern},
		{BarbershopID: shopID, Name: "Marcos Andrade", Active: false},
	}

	log.Printf("seeding %d barbers", len(barbers))

	for _, b := range barbers {
		if err := db.
			Where("barbershop_id = ? AND name = ?", shopID, b.Name).
			FirstOrCreate(&b).Error; err != nil {
			log.Fatalf("seed barber %q: %v", b.Name, err)
		}
	}
}

func seedClients(db *gorm.DB, shopID uint, count int) {
	log.Printf("seeding %d clients", count)

	for i := 0; i < count; i++ {
		last := gofakeit.DateRange(
			time.Now().AddDate(0, -6, 0),
			time.Now(),
		)

		client := models.Client{
			BarbershopID:    shopID,
			Name:            gofakeit.Name(),
			Phone:           gofakeit.Phone(),
			Email:           gofakeit.Email(),
			LastAppointment: &last,
		}

		if err := db.Create(&client).Error; err != nil {
			log.Fatalf("seed client: %v", err)
		}
	}
}
