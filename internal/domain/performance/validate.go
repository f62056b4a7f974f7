package performance

import (
	"math"

	"github.com/go-playground/validator/v10"
)

var recordValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("game_id", func(fl validator.FieldLevel) bool {
		return ValidGameID(fl.Field().String())
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// Validate checks required fields, enum membership, the game id shape and
// that every numeric field is finite.
func (r Record) Validate() error {
	return recordValidator.Struct(r)
}
