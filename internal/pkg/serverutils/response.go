package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a request DTO
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			field := errs[0]
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("invalid request: field '%s' failed on '%s'", field.Field(), field.Tag()))
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid request")
	}
	return nil
}

// ErrorHandlerMiddleware converts uncaught handler errors into JSON. Pipeline
// failures never reach this path (the chat service maps them to fixed
// strings); this covers body-parse and validation errors.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "internal server error"
		if fiberErr, ok := err.(*fiber.Error); ok {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		return ctx.Status(code).JSON(fiber.Map{
			"message": message,
		})
	}
}
