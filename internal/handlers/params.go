// internal/handlers/params.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/collaboration-service/internal/utils"
)

// parseIDParam reads a positive integer path parameter and writes a 400
// when it is malformed.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequestResponse(c, "Invalid "+strings.ReplaceAll(name, "_", " "), nil)
		return 0, false
	}
	return id, true
}

// bindPatch decodes a partial update body. Unknown fields are rejected so
// that a request naming a fixed column fails instead of being ignored.
func bindPatch(c *gin.Context, patch interface{}) bool {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(patch); err != nil {
		if errors.Is(err, io.EOF) {
			utils.BadRequestResponse(c, "Request body is required", nil)
			return false
		}
		if field, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
			utils.ValidationErrorResponse(c, []utils.ValidationError{{
				Field:   strings.Trim(field, `"`),
				Tag:     "immutable",
				Message: strings.Trim(field, `"`) + " cannot be updated",
			}})
			return false
		}
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return false
	}
	return true
}
