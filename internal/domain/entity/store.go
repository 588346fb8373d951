package entity

import "time"

// Store is a vendor's shop as published by the backend.
type Store struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"owner_id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	LogoURL     string   `json:"logo_url,omitempty"`
	BannerURL   string   `json:"banner_url,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Published   bool     `json:"published"`

	// DistanceKm is filled in by search when the caller supplies a position.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// HasLocation reports whether the store exposes coordinates.
func (s *Store) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// ImageKind is the slot a branding image fills on the storefront.
type ImageKind string

const (
	ImageKindLogo    ImageKind = "logo"
	ImageKindBanner  ImageKind = "banner"
	ImageKindGallery ImageKind = "gallery"
)

// IsValid checks if the ImageKind is a valid value.
func (k ImageKind) IsValid() bool {
	switch k {
	case ImageKindLogo, ImageKindBanner, ImageKindGallery:
		return true
	default:
		return false
	}
}

// StoreImage records a branding upload made through this service.
type StoreImage struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Kind        ImageKind `json:"kind"`
	ObjectKey   string    `json:"object_key"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  string    `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// StorePage is one page of store search results.
type StorePage struct {
	Items []*Store `json:"items"`
	Total int      `json:"total"`
	Page  int      `json:"page"`
}
