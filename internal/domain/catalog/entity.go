package catalog

import (
	"errors"
	"strings"
)

var (
	ErrMissingID   = errors.New("id is required")
	ErrMissingName = errors.New("name is required")
)

type Service struct {
	ID              ID      `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Price           float64 `json:"price"`
	Description     string  `json:"description,omitempty"`
}

func (s Service) Validate() error {
	if s.ID.IsZero() {
		return ErrMissingID
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrMissingName
	}
	return nil
}

type Stylist struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Active      bool     `json:"active"`
}

func (s Stylist) Validate() error {
	if s.ID.IsZero() {
		return ErrMissingID
	}
	if strings.TrimSpace(s.Name) == "" {
		return ErrMissingName
	}
	return nil
}
