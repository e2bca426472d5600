// internal/repository/patch.go
package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/javajoker/collaboration-service/internal/apperror"
)

// Patch is a structured partial update. Changes returns column -> value for
// every field the caller set; a nil value clears the column.
type Patch interface {
	Changes() map[string]interface{}
}

// PatchPolicy is the per-entity allow-list of mutable columns plus the
// columns that may be changed but never cleared.
type PatchPolicy struct {
	entity   string
	allowed  map[string]struct{}
	required map[string]struct{}
}

func NewPatchPolicy(entity string, allowed []string, required ...string) PatchPolicy {
	p := PatchPolicy{
		entity:   entity,
		allowed:  make(map[string]struct{}, len(allowed)),
		required: make(map[string]struct{}, len(required)),
	}
	for _, col := range allowed {
		p.allowed[col] = struct{}{}
	}
	for _, col := range required {
		p.required[col] = struct{}{}
	}
	return p
}

// Columns lists the allow-list in a stable order.
func (p PatchPolicy) Columns() []string {
	cols := make([]string, 0, len(p.allowed))
	for col := range p.allowed {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// Resolve checks patch against the policy and returns the assignments to
// apply, including the updated_at touch.
func (p PatchPolicy) Resolve(patch Patch, now time.Time) (map[string]interface{}, error) {
	changes := patch.Changes()
	updates := make(map[string]interface{}, len(changes)+1)

	for col, value := range changes {
		if _, ok := p.allowed[col]; !ok {
			return nil, apperror.Validation("%s field %q cannot be updated", p.entity, col)
		}
		if _, ok := p.required[col]; ok {
			if value == nil || value == "" {
				return nil, apperror.Validation("%s field %q cannot be cleared", p.entity, col)
			}
		}
		updates[col] = value
	}

	updates["updated_at"] = now
	return updates, nil
}

// applyPatch runs the policy over patch and writes the result to the row
// identified by id in model's table.
func applyPatch(ctx context.Context, db *gorm.DB, model interface{}, id int64, policy PatchPolicy, patch Patch) error {
	updates, err := policy.Resolve(patch, time.Now().UTC())
	if err != nil {
		return err
	}

	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return apperror.Storage(fmt.Sprintf("update %s", policy.entity), result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
