package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"skilltracker/model"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// Enum tags mirror the IsValid methods on the model types.
	_ = v.RegisterValidation("cert_category", func(fl validator.FieldLevel) bool {
		return model.CertificateCategory(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("skill_category", func(fl validator.FieldLevel) bool {
		return model.SkillCategory(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("skill_level", func(fl validator.FieldLevel) bool {
		return model.SkillLevel(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		return model.Theme(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("section", func(fl validator.FieldLevel) bool {
		return model.Section(fl.Field().String()).IsValid()
	})

	return v
}

// ValidateStruct checks for tag-based validation errors
func ValidateStruct(payload interface{}) error {
	err := validate.Struct(payload)
	if err != nil {
		return err
	}
	return nil
}

// ValidationMessage turns a validator error into a short message naming the
// first offending field. Other errors pass through unchanged.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", fe.Field())
	case "cert_category", "skill_category", "skill_level", "theme", "section":
		return fmt.Sprintf("%s has an invalid value %q", fe.Field(), fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
