// internal/models/product.go
package models

// Product is the local product catalogue that collaborations and contracts
// may be scoped to.
type Product struct {
	ID            int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string  `json:"name" gorm:"size:255;not null"`
	Description   *string `json:"description" gorm:"type:text"`
	Price         float64 `json:"price" gorm:"not null"`
	CategoryID    *int64  `json:"category_id" gorm:"index"`
	StockQuantity int     `json:"stock_quantity" gorm:"not null"`
	BrandID       *int64  `json:"brand_id"`
}
