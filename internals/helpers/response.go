package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope JSON uniforme para todo el sitio.

func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func JsonList(c *fiber.Ctx, data interface{}, pagination interface{}) error {
	payload := fiber.Map{
		"status": "success",
		"data":   data,
	}
	if pagination != nil {
		payload["pagination"] = pagination
	}
	return c.Status(fiber.StatusOK).JSON(payload)
}

func JsonUpdated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonOK(c, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string, data interface{}) error {
	return JsonOK(c, message, data)
}

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// JsonFieldErrors es el equivalente JSON de "re-renderizar el formulario con
// errores": 200, errores por campo y los valores crudos tal como llegaron.
func JsonFieldErrors(c *fiber.Ctx, errs map[string]string, values interface{}) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "error",
		"errors": errs,
		"values": values,
	})
}
