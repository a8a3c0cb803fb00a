package gallery

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingID  = errors.New("gallery item id is required")
	ErrMissingURL = errors.New("gallery item url is required")
)

type Item struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(i.URL) == "" {
		return ErrMissingURL
	}
	return nil
}

// Upsert replaces the item with the same id in place or appends it.
func Upsert(items []Item, item Item) ([]Item, bool) {
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return items, true
		}
	}
	return append(items, item), false
}
