package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/cinetix/booking-engine/internal/domain"
)

// Timestamps must match this exact lexical profile before any parsing is
// attempted, so ambiguous timezone or locale forms never reach the parser.
var showDatetimeRgx = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)

// Validation error message formats.
const (
	ErrRequired          = "is required"
	ErrMinValue          = "must be at least %s"
	ErrMaxValue          = "must be at most %s"
	ErrUniqueValues      = "must not contain duplicate values"
	ErrInvalidSeatStatus = "must be one of AVAILABLE, BROKEN, MAINTENANCE"
	ErrInvalidDatetime   = "must match the format YYYY-MM-DDTHH:MM:SS"
	ErrInvalidDate       = "must be a valid date in the format YYYY-MM-DD"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_status", validateSeatStatus)
	validator.RegisterValidation("show_datetime", validateShowDatetime)

	return validator
}

func validateSeatStatus(fl validator.FieldLevel) bool {
	switch domain.SeatStatus(fl.Field().String()) {
	case domain.SeatStatusAvailable, domain.SeatStatusBroken, domain.SeatStatusMaintenance:
		return true
	}

	return false
}

func validateShowDatetime(fl validator.FieldLevel) bool {
	return showDatetimeRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "unique":
		return ErrUniqueValues
	case "seat_status":
		return ErrInvalidSeatStatus
	case "show_datetime":
		return ErrInvalidDatetime
	case "datetime":
		return ErrInvalidDate
	default:
		return "is invalid"
	}
}
