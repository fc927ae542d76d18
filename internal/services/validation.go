package services

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ruralpay/txengine/internal/models"
)

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper. Raw input rows
// get a struct-level validation because the amount field is only
// required for deposits and withdrawals.
func NewValidationHelper() *ValidationHelper {
	v := validator.New()
	v.RegisterStructValidation(validateRawRecord, models.RawRecord{})
	return &ValidationHelper{
		validator: v,
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// validateRawRecord enforces the kind-dependent field shape: deposits
// and withdrawals must carry an amount; dispute, resolve and chargeback
// may carry a trailing empty (or populated) amount field, which is
// ignored downstream.
func validateRawRecord(sl validator.StructLevel) {
	rec := sl.Current().Interface().(models.RawRecord)

	kind := models.TransactionKind(strings.ToLower(strings.TrimSpace(rec.Type)))
	if kind.RequiresAmount() && strings.TrimSpace(rec.Amount) == "" {
		sl.ReportError(rec.Amount, "Amount", "Amount", "required", "")
	}
}
