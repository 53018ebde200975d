package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/users/controller"
)

func AuthRoutes(api fiber.Router, db *gorm.DB, loginLimiter fiber.Handler) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", loginLimiter, ctrl.Login)
}
