package request

import (
	"salon-booking/internal/domain/catalog"

	"github.com/jinzhu/copier"
)

type ServiceRequest struct {
	ID              catalog.ID `json:"id"`
	Name            string     `json:"name"`
	DurationMinutes int        `json:"durationMinutes"`
	Price           float64    `json:"price"`
	Description     string     `json:"description"`
}

type StylistRequest struct {
	ID          catalog.ID `json:"id"`
	Name        string     `json:"name"`
	Specialties []string   `json:"specialties"`
	Phone       string     `json:"phone"`
	Active      *bool      `json:"active" copier:"-"`
}

func ServicesToDomain(reqs []ServiceRequest) ([]catalog.Service, error) {
	services := make([]catalog.Service, 0, len(reqs))
	if err := copier.Copy(&services, &reqs); err != nil {
		return nil, err
	}
	for _, s := range services {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return services, nil
}

// StylistsToDomain defaults a missing active flag to true.
func StylistsToDomain(reqs []StylistRequest) ([]catalog.Stylist, error) {
	stylists := make([]catalog.Stylist, 0, len(reqs))
	for _, r := range reqs {
		var s catalog.Stylist
		if err := copier.Copy(&s, &r); err != nil {
			return nil, err
		}
		s.Active = r.Active == nil || *r.Active
		if err := s.Validate(); err != nil {
			return nil, err
		}
		stylists = append(stylists, s)
	}
	return stylists, nil
}
