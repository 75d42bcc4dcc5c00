// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clienteRoutes "aseguradora_backend/internals/features/clientes/route"
	notificacionRoutes "aseguradora_backend/internals/features/notificaciones/route"
	notificacionService "aseguradora_backend/internals/features/notificaciones/service"
	polizaRoutes "aseguradora_backend/internals/features/polizas/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, prog *notificacionService.Programador) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up ClienteRoutes...")
	clienteRoutes.ClienteRoutes(api, db)

	log.Println("[INFO] Setting up PolizaRoutes...")
	polizaRoutes.PolizaRoutes(api, db)

	log.Println("[INFO] Setting up NotificacionRoutes...")
	notificacionRoutes.NotificacionRoutes(api, db, prog)
}
