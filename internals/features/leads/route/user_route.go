package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/leads/controller"
)

func LeadsPublicRoutes(app fiber.Router, db *gorm.DB, formLimiter fiber.Handler) {
	ctrl := controller.NewLeadController(db)

	app.Post("/propiedades/:slug", formLimiter, ctrl.CrearDesdeDetalle)

	app.Get("/contacto", ctrl.FormContacto)
	app.Post("/contacto", formLimiter, ctrl.CrearContacto)

	app.Get("/quiero-publicar", ctrl.FormQuieroPublicar)
	app.Post("/quiero-publicar", formLimiter, ctrl.CrearQuieroPublicar)
}
