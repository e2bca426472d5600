// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Base model with common fields. Rows are hard-deleted, so there is no
// soft-delete column.
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type CollaborationType string

const (
	CollaborationTypeB2B CollaborationType = "B2B"
	CollaborationTypeB2C CollaborationType = "B2C"
)

// IsValid reports whether t is one of the accepted collaboration types.
// The set is closed: "Hybrid" and any other value are rejected.
func (t CollaborationType) IsValid() bool {
	switch t {
	case CollaborationTypeB2B, CollaborationTypeB2C:
		return true
	}
	return false
}

func CollaborationTypes() []CollaborationType {
	return []CollaborationType{CollaborationTypeB2B, CollaborationTypeB2C}
}
