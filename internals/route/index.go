package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AgentesRoute "github.com/Jalann18/kcm-corredora/internals/features/agentes/route"
	HomeRoute "github.com/Jalann18/kcm-corredora/internals/features/home/route"
	LeadsRoute "github.com/Jalann18/kcm-corredora/internals/features/leads/route"
	PropiedadesRoute "github.com/Jalann18/kcm-corredora/internals/features/propiedades/route"
	UsersRoute "github.com/Jalann18/kcm-corredora/internals/features/users/route"
	"github.com/Jalann18/kcm-corredora/internals/middlewares"
	authMiddleware "github.com/Jalann18/kcm-corredora/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes...")
	HomeRoute.HomePublicRoutes(app, db)
	PropiedadesRoute.PropiedadesPublicRoutes(app, db)
	LeadsRoute.LeadsPublicRoutes(app, db, middlewares.FormRateLimiter())

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up auth routes...")
	authGroup := app.Group("/api/auth")
	UsersRoute.AuthRoutes(authGroup, db, middlewares.LoginRateLimiter())

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up admin routes...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	PropiedadesRoute.PropiedadesAdminRoutes(admin, db)
	AgentesRoute.AgentesAdminRoutes(admin, db)
	HomeRoute.SlidesAdminRoutes(admin, db)
	LeadsRoute.LeadsAdminRoutes(admin, db)

	// ===================== HEALTH =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})
}
