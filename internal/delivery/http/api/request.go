package api

import (
	"math"
	"strconv"
	"strings"

	"dailywage-backend/pkg/apperror"
	"dailywage-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// budgetParam reads an optional non-negative number from the query string.
// Absent or empty means no filter.
func budgetParam(c *gin.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, apperror.Validation(name, name+" must be a non-negative number")
	}
	return &v, nil
}

// bindJSON decodes the request body into obj. Type mismatches are reported
// against the offending field.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return validation.DecodeError(err)
	}
	return nil
}
