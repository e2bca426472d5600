// internal/models/b2b_contract.go
package models

import (
	"time"
)

type B2BContract struct {
	BaseModel
	SellerID                 int64      `json:"seller_id" gorm:"not null;index"`
	PartnerSellerID          int64      `json:"partner_seller_id" gorm:"not null;index"`
	ProductID                *int64     `json:"product_id" gorm:"index"`
	ContractTerms            string     `json:"contract_terms" gorm:"type:text;not null"`
	RevenueSharingPercentage *float64   `json:"revenue_sharing_percentage"`
	BulkOrderThreshold       *int       `json:"bulk_order_threshold"`
	ContractStartDate        time.Time  `json:"contract_start_date" gorm:"not null"`
	ContractEndDate          *time.Time `json:"contract_end_date"`
}

func (B2BContract) TableName() string {
	return "b2b_contracts"
}

// B2BContractPatch may touch every field except identity and parties.
type B2BContractPatch struct {
	ProductID                Nullable[int64]     `json:"product_id"`
	ContractTerms            Nullable[string]    `json:"contract_terms"`
	RevenueSharingPercentage Nullable[float64]   `json:"revenue_sharing_percentage"`
	BulkOrderThreshold       Nullable[int]       `json:"bulk_order_threshold"`
	ContractStartDate        Nullable[time.Time] `json:"contract_start_date"`
	ContractEndDate          Nullable[time.Time] `json:"contract_end_date"`
}

func (p B2BContractPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if p.ProductID.Set {
		changes["product_id"] = p.ProductID.Column()
	}
	if p.ContractTerms.Set {
		changes["contract_terms"] = p.ContractTerms.Column()
	}
	if p.RevenueSharingPercentage.Set {
		changes["revenue_sharing_percentage"] = p.RevenueSharingPercentage.Column()
	}
	if p.BulkOrderThreshold.Set {
		changes["bulk_order_threshold"] = p.BulkOrderThreshold.Column()
	}
	if p.ContractStartDate.Set {
		changes["contract_start_date"] = p.ContractStartDate.Column()
	}
	if p.ContractEndDate.Set {
		changes["contract_end_date"] = p.ContractEndDate.Column()
	}
	return changes
}
