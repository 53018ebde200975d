package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/home/controller"
)

func HomePublicRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewHomeController(db)

	app.Get("/", ctrl.Home)
	app.Get("/nosotros", ctrl.Nosotros)
}
