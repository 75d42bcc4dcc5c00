// file: internals/features/notificaciones/route/notificacion_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aseguradora_backend/internals/features/notificaciones/controller"
	"aseguradora_backend/internals/features/notificaciones/service"
)

func NotificacionRoutes(api fiber.Router, db *gorm.DB, prog *service.Programador) {
	h := &controller.ConfiguracionHandler{DB: db, Programador: prog}

	grp := api.Group("/notificaciones")
	{
		grp.Get("/config", h.Get)
		grp.Put("/config", h.Put)
		grp.Post("/probar", h.Probar)
	}
}
