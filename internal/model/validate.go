package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Magazine name bounds, inclusive, counted in code points.
const (
	MagazineNameMin = 2
	MagazineNameMax = 16
)

var (
	// validate is safe for concurrent use and caches tag parsing.
	validate = validator.New()

	magazineNameTag = fmt.Sprintf("required,min=%d,max=%d", MagazineNameMin, MagazineNameMax)
)

// normalize returns s in NFC so that length rules count what a reader sees.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// checkField runs a validator tag against a single value and converts the
// failure into a ValidationError with a readable message.
func checkField(entity, field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &Error{
			Code:    CodeValidation,
			Entity:  entity,
			Message: field + " is invalid",
			Err:     err,
		}
	}

	switch verrs[0].Tag() {
	case "required":
		return ValidationError(entity, field+" must be longer than 0 characters")
	case "min", "max":
		return ValidationError(entity,
			fmt.Sprintf("%s must be between %d and %d characters", field, MagazineNameMin, MagazineNameMax))
	case "gt":
		return ValidationError(entity, field+" must be a positive id")
	default:
		return ValidationError(entity, fmt.Sprintf("%s failed %q rule", field, verrs[0].Tag()))
	}
}

func requireText(entity, field, value string) error {
	return checkField(entity, field, value, "required")
}

func requireID(entity, field string, id int64) error {
	return checkField(entity, field, id, "gt=0")
}
