package request

import (
	"salon-booking/internal/domain/gallery"

	"github.com/jinzhu/copier"
)

type GalleryItemRequest struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r GalleryItemRequest) ToDomain() (gallery.Item, error) {
	var item gallery.Item
	if err := copier.Copy(&item, &r); err != nil {
		return gallery.Item{}, err
	}
	if err := item.Validate(); err != nil {
		return gallery.Item{}, err
	}
	return item, nil
}

func GalleryItemsToDomain(reqs []GalleryItemRequest) ([]gallery.Item, error) {
	items := make([]gallery.Item, 0, len(reqs))
	for _, r := range reqs {
		item, err := r.ToDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// UploadGalleryItemRequest is bound from the multipart form next to the file part.
type UploadGalleryItemRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}
