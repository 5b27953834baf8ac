package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vzahanych/wind-activity-app/internal/activity"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("latitude", validateLatitude)
	validate.RegisterValidation("longitude", validateLongitude)
	validate.RegisterValidation("activity", validateActivity)
	validate.RegisterValidation("octant", validateOctant)
	validate.RegisterValidation("hour", validateHour)

	validate.RegisterStructValidation(validateRuleBounds, activity.Rule{})

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func GetValidator() *validator.Validate {
	return validate
}

func validateLatitude(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLongitude(fl validator.FieldLevel) bool {
	lon := fl.Field().Float()
	return lon >= -180.0 && lon <= 180.0
}

func validateActivity(fl validator.FieldLevel) bool {
	return activity.Activity(fl.Field().String()).IsValid()
}

func validateOctant(fl validator.FieldLevel) bool {
	return activity.Octant(fl.Field().String()).IsValid()
}

func validateHour(fl validator.FieldLevel) bool {
	h := fl.Field().Int()
	return h >= 0 && h <= 23
}

// validateRuleBounds rejects rules whose lower bound exceeds the upper one.
func validateRuleBounds(sl validator.StructLevel) {
	r := sl.Current().Interface().(activity.Rule)
	if r.MinGust != nil && r.MaxGust != nil && *r.MinGust > *r.MaxGust {
		sl.ReportError(r.MinGust, "min_gust", "MinGust", "ltefield", "max_gust")
	}
	if r.MinTemp != nil && r.MaxTemp != nil && *r.MinTemp > *r.MaxTemp {
		sl.ReportError(r.MinTemp, "min_temp", "MinTemp", "ltefield", "max_temp")
	}
}

type ValidationError struct {
	Field   string      `json:"field"`
	Value   interface{} `json:"value"`
	Tag     string      `json:"tag"`
	Message string      `json:"message"`
}

func FormatValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, err := range validatorErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Namespace(),
				Value:   err.Value(),
				Tag:     err.Tag(),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "latitude":
		return fmt.Sprintf("%s must be a valid latitude between -90 and 90 degrees", err.Field())
	case "longitude":
		return fmt.Sprintf("%s must be a valid longitude between -180 and 180 degrees", err.Field())
	case "activity":
		return fmt.Sprintf("%s must be one of: windsurfing windfoil wingfoil sup-foil kiting sup", err.Field())
	case "octant":
		return fmt.Sprintf("%s must be one of: N NE E SE S SW W NW", err.Field())
	case "hour":
		return fmt.Sprintf("%s must be an hour between 0 and 23", err.Field())
	case "ltefield":
		return fmt.Sprintf("%s must not be greater than %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err != nil {
		return FormatValidationErrors(err)
	}
	return nil
}
