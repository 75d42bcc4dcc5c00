// file: internals/features/polizas/controller/dashboard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aseguradora_backend/internals/constants"
	configModel "aseguradora_backend/internals/features/notificaciones/model"
	"aseguradora_backend/internals/features/polizas/service"
	helper "aseguradora_backend/internals/helpers"
)

// Lecturas del dashboard: mismas ventanas que el correo diario, bajo
// demanda y sin depender del timer. Reconciliación como pre-paso.
type DashboardHandler struct {
	DB *gorm.DB
}

// -----------------------------------------
// Alertas de cobro (GET /dashboard/alertas)
// ?ventana= días de lookahead (default 15)
// -----------------------------------------
func (h *DashboardHandler) Alertas(c *fiber.Ctx) error {
	hoy := helper.HoyAgencia()
	if _, err := service.ReconciliarEstados(h.DB, hoy); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	campo := configModel.LeerValor(h.DB, constants.ClaveCampoFechaCobros, constants.CampoFechaFin)
	plan, err := service.PlanCobros(h.DB, hoy, service.OpcionesCobros{
		VentanaDias: c.QueryInt("ventana", constants.VentanaCobrosDias),
		CampoFecha:  campo,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"fecha":    helper.FormatFecha(hoy),
		"proximos": plan.Proximos,
		"vencidos": plan.Vencidos,
	})
}

// -----------------------------------------
// Estado de renovaciones (GET /dashboard/renovaciones)
// ?ventana= días hacia delante (default 45)
// ?retrovisor= días hacia atrás (default 90)
// -----------------------------------------
func (h *DashboardHandler) Renovaciones(c *fiber.Ctx) error {
	hoy := helper.HoyAgencia()
	if _, err := service.ReconciliarEstados(h.DB, hoy); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	plan, err := service.PlanRenovaciones(c.UserContext(), h.DB, hoy, service.OpcionesRenovaciones{
		VentanaDias:    c.QueryInt("ventana", constants.VentanaRenovacionesDias),
		RetrovisorDias: c.QueryInt("retrovisor", constants.RetrovisorRenovacionesDias),
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"fecha":      helper.FormatFecha(hoy),
		"proximas":   plan.Proximas,
		"expiradas":  plan.Expiradas,
		"canceladas": plan.Canceladas,
	})
}
