package handler

import (
	"errors"

	"ideate/internal/boardcode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the "boardcode" tag to gin's validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("boardcode", func(fl validator.FieldLevel) bool {
		return boardcode.IsValid(fl.Field().String())
	})
}
