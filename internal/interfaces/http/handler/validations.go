package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs custom binding rules on gin's validator.
// Safe to call more than once.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	// phone10: a contact number carrying exactly ten digits. Separators
	// like spaces, dashes and a +91 country code are ignored.
	return v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		digits := 0
		for _, r := range fl.Field().String() {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		return digits == 10
	})
}
