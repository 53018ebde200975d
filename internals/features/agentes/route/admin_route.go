package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jalann18/kcm-corredora/internals/features/agentes/controller"
)

func AgentesAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAgenteController(db)

	g := api.Group("/agentes")
	g.Get("/", ctrl.Listar)
	g.Post("/", ctrl.Crear)
	g.Put("/:id", ctrl.Actualizar)
	g.Post("/:id/foto", ctrl.SubirFoto)
	g.Delete("/:id", ctrl.Eliminar)
}
