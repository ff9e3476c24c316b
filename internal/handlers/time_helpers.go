package handlers

import (
	"time"

	"github.com/corteja-app/booking-api/internal/models"
	"github.com/corteja-app/booking-api/internal/timezone"
)

// --------------------------------------------------
// Timezone centralizado por barbearia
// --------------------------------------------------

func locationFromShop(shop *models.Barbershop) *time.Location {
	return timezone.Location(shop.Timezone)
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}
