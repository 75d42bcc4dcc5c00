// file: internals/features/polizas/route/poliza_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aseguradora_backend/internals/features/polizas/controller"
)

func PolizaRoutes(api fiber.Router, db *gorm.DB) {
	h := &controller.PolizaHandler{DB: db}
	dash := &controller.DashboardHandler{DB: db}

	grp := api.Group("/polizas")
	{
		// =========================
		// CRUD
		// =========================
		grp.Get("/", h.List)
		grp.Post("/", h.Create)
		grp.Post("/reconciliar", h.Reconciliar)
		grp.Get("/:id", h.Get)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)

		// =========================
		// Acciones de estado
		// =========================
		grp.Post("/:id/pagar", h.Pagar)
		grp.Post("/:id/cancelar", h.Cancelar)
		grp.Post("/:id/renovar", h.Renovar)
	}

	dashGrp := api.Group("/dashboard")
	{
		dashGrp.Get("/alertas", dash.Alertas)
		dashGrp.Get("/renovaciones", dash.Renovaciones)
	}
}
