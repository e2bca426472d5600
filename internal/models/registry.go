// internal/models/registry.go
package models

// Brand and Category are owned by sibling services; these mirror their
// JSON payloads.
type Brand struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

type BrandInput struct {
	Name        string  `json:"name" validate:"required,min=3,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	BrandID     *int64  `json:"brand_id,omitempty"`
}

type CategoryInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	BrandID     *int64  `json:"brand_id,omitempty"`
}
