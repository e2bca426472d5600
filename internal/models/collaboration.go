// internal/models/collaboration.go
package models

import (
	"time"
)

type Collaboration struct {
	BaseModel
	SellerID                 int64             `json:"seller_id" gorm:"not null;index"`
	PartnerSellerID          int64             `json:"partner_seller_id" gorm:"not null;index"`
	CollaborationType        CollaborationType `json:"collaboration_type" gorm:"size:10;not null;index"`
	ProductID                *int64            `json:"product_id" gorm:"index"`
	CategoryID               *int64            `json:"category_id" gorm:"index"`
	BrandID                  *int64            `json:"brand_id"`
	GeographicalExclusivity  bool              `json:"geographical_exclusivity" gorm:"not null;default:false"`
	LogisticsSharing         bool              `json:"logistics_sharing" gorm:"not null;default:false"`
	BulkOrderThreshold       *int              `json:"bulk_order_threshold"`
	RevenueSharingPercentage *float64          `json:"revenue_sharing_percentage"`
	ContractTerms            *string           `json:"contract_terms" gorm:"type:text"`
	AgreementDetails         string            `json:"agreement_details" gorm:"type:text;not null"`
	CollaborationStartDate   time.Time         `json:"collaboration_start_date" gorm:"not null"`
	CollaborationEndDate     *time.Time        `json:"collaboration_end_date"`
}

// Involves reports whether the seller is on either side of the collaboration.
func (c *Collaboration) Involves(sellerID int64) bool {
	return c.SellerID == sellerID || c.PartnerSellerID == sellerID
}

// CollaborationPatch is a partial update. Only the fields below can change
// after a collaboration is created.
type CollaborationPatch struct {
	AgreementDetails         Nullable[string]    `json:"agreement_details"`
	BulkOrderThreshold       Nullable[int]       `json:"bulk_order_threshold"`
	RevenueSharingPercentage Nullable[float64]   `json:"revenue_sharing_percentage"`
	CollaborationEndDate     Nullable[time.Time] `json:"collaboration_end_date"`
}

func (p CollaborationPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.AgreementDetails.Set {
		changes["agreement_details"] = p.AgreementDetails.Column()
	}
	if p.BulkOrderThreshold.Set {
		changes["bulk_order_threshold"] = p.BulkOrderThreshold.Column()
	}
	if p.RevenueSharingPercentage.Set {
		changes["revenue_sharing_percentage"] = p.RevenueSharingPercentage.Column()
	}
	if p.CollaborationEndDate.Set {
		changes["collaboration_end_date"] = p.CollaborationEndDate.Column()
	}
	return changes
}

// SharedInventoryAgreement describes products two collaborating sellers
// stock for each other.
type SharedInventoryAgreement struct {
	Products  []int64 `json:"products"`
	Logistics string  `json:"logistics"`
	Terms     string  `json:"terms"`
}
