package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/overtone-ring/Kentucky-cdl-prep/internal/models"
)

// Validator wraps the struct validator with the custom rules used across
// the engine.
type Validator struct {
	structValidator *validator.Validate
}

// New creates the validator instance and registers all custom rules once.
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// Validate validates struct tags and converts failures into the shared
// ValidationErrors type.
func (v *Validator) Validate(s interface{}) error {
	if err := v.structValidator.Struct(s); err != nil {
		if fieldErrs := ToValidationErrors(err); len(fieldErrs) > 0 {
			return fieldErrs
		}
		return err
	}
	return nil
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("choice_index", validateChoiceIndex)
	validate.RegisterValidation("session_status", validateSessionStatus)

	// Report json field names in error messages.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateChoiceIndex accepts choice indexes within a question's choice
// range. The unanswered sentinel is intentionally rejected here: it is a
// storage encoding, never a submittable value.
func validateChoiceIndex(fl validator.FieldLevel) bool {
	v := fl.Field().Int()
	return v >= 0 && v < models.ChoiceCount
}

func validateSessionStatus(fl validator.FieldLevel) bool {
	validStatuses := []models.SessionStatus{
		models.SessionInProgress,
		models.SessionCompleted,
	}

	value := fl.Field().String()
	for _, validStatus := range validStatuses {
		if string(validStatus) == value {
			return true
		}
	}
	return false
}
