package validation

import (
	"errors"

	"github.com/goliatone/go-prompter/pkg/constraint"
)

// ErrConfig matches every configuration error via errors.Is.
var ErrConfig = errors.New("validation: invalid prompt configuration")

// ConfigError describes why a field declaration was rejected.
type ConfigError struct {
	Field  string
	Type   constraint.SemanticType
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return "field " + e.Field + ": " + e.Reason
}

func (e *ConfigError) Unwrap() error {
	return ErrConfig
}

const (
	reasonUnsupportedType   = "Only string, double and integer prompt types are allowed"
	reasonNilConstraint     = "constraint declaration is nil"
	reasonNotAValue         = "constraint must be declared by value, not by pointer"
	reasonOptionsExclusive  = "You can use only one type of Options"
	reasonOptionsNeedValues = "If Options provided you must set Values"
	reasonOptionsLength     = "The number of options must equal to the number of values"
	reasonRangeInvalid      = "The range is not valid."
	reasonRangeWithOptions  = "You cannot use Range and Options together"
	reasonRangeNeedsValues  = "If Range provided you must set Values"
	reasonRangeLength       = "The margin between From and To must equal to the number of values"
	reasonNotNegativeText   = "You cannot apply NotNegative to String"
	reasonNotNegativeValues = "You cannot use NotNegative and Values together"
)
