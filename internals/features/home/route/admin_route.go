package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/home/controller"
)

func SlidesAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminSlideController(db)

	g := api.Group("/slides")
	g.Get("/", ctrl.Listar)
	g.Post("/", ctrl.Crear)
	g.Put("/:id", ctrl.Actualizar)
	g.Delete("/:id", ctrl.Eliminar)
}
