package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/propiedades/controller"
)

func PropiedadesAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminPropiedadController(db)

	g := api.Group("/propiedades")
	g.Get("/", ctrl.Listar)
	g.Post("/", ctrl.Crear)
	g.Get("/:id", ctrl.Obtener)
	g.Put("/:id", ctrl.Actualizar)
	g.Delete("/:id", ctrl.Eliminar)

	g.Post("/:id/portada", ctrl.SubirPortada)
	g.Post("/:id/imagenes", ctrl.SubirImagen)
	g.Put("/:id/imagenes/:imagenId", ctrl.ReordenarImagen)
	g.Delete("/:id/imagenes/:imagenId", ctrl.EliminarImagen)
}
