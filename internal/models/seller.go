// internal/models/seller.go
package models

type Seller struct {
	BaseModel
	Name                        string  `json:"name" gorm:"size:255;not null"`
	Email                       string  `json:"email" gorm:"size:255;not null;uniqueIndex"`
	PhoneNumber                 *string `json:"phone_number" gorm:"size:20"`
	BusinessLicense             *string `json:"business_license" gorm:"size:100"`
	Address                     *string `json:"address" gorm:"size:255"`
	WarehouseLocation           *string `json:"warehouse_location" gorm:"size:255"`
	PreferredCollaborationTypes *string `json:"preferred_collaboration_types" gorm:"size:50"`
	SellerRating                float64 `json:"seller_rating" gorm:"not null;default:0"`
	IsActive                    bool    `json:"is_active" gorm:"not null"`
}

// Location returns the seller's warehouse coordinates, or "" when unset.
func (s *Seller) Location() string {
	if s.WarehouseLocation == nil {
		return ""
	}
	return *s.WarehouseLocation
}

// NearbySeller is a proximity match together with its distance from the
// queried location.
type NearbySeller struct {
	Seller
	DistanceKm float64 `json:"distance_km"`
}
