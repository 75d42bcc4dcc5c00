// file: internals/features/clientes/route/cliente_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aseguradora_backend/internals/features/clientes/controller"
)

func ClienteRoutes(api fiber.Router, db *gorm.DB) {
	h := &controller.ClienteHandler{DB: db}

	grp := api.Group("/clientes")
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.Get)
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
