package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	slotTimePattern      = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	bloodPressurePattern = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// "slot_time" matches the HH:MM grid the booking calendar emits.
	v.RegisterValidation("slot_time", func(fl validator.FieldLevel) bool {
		return slotTimePattern.MatchString(fl.Field().String())
	})

	// "iso_date" is a plain YYYY-MM-DD calendar date.
	v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	// "blood_pressure" is systolic/diastolic, e.g. "120/80".
	v.RegisterValidation("blood_pressure", func(fl validator.FieldLevel) bool {
		return bloodPressurePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "slot_time":
				errors[field] = field + " must be a HH:MM time"
			case "iso_date":
				errors[field] = field + " must be a YYYY-MM-DD date"
			case "blood_pressure":
				errors[field] = field + " must look like 120/80"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
