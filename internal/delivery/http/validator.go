package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
)

// registerValidators installs the passion_type enum check used by request
// bindings.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("passiontype", func(fl validator.FieldLevel) bool {
			return domain.PassionType(fl.Field().String()).Valid()
		})
	}
}
