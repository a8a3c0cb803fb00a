//go:build unit || e2e

package builder

import "salon-booking/internal/domain/catalog"

func catalogID(s string) catalog.ID {
	return catalog.ID(s)
}

func Services() []catalog.Service {
	return []catalog.Service{
		{ID: "1", Name: "Corte", DurationMinutes: 45, Price: 8000},
		{ID: "2", Name: "Color", DurationMinutes: 90, Price: 20000},
	}
}

func Stylists() []catalog.Stylist {
	return []catalog.Stylist{
		{ID: "1", Name: "Vero", Specialties: []string{"corte"}, Active: true},
		{ID: "2", Name: "Lu", Specialties: []string{"color", "peinado"}, Active: true},
	}
}
