package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/leads/controller"
)

func LeadsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminLeadController(db)

	api.Get("/leads", ctrl.Listar)
}
