package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/propiedades/controller"
)

func PropiedadesPublicRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPropiedadController(db)

	app.Get("/propiedades", ctrl.Listar)
	app.Get("/propiedades/:slug", ctrl.Detalle)
}
