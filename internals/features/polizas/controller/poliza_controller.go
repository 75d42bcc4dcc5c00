// file: internals/features/polizas/controller/poliza_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aseguradora_backend/internals/features/polizas/dto"
	"aseguradora_backend/internals/features/polizas/model"
	"aseguradora_backend/internals/features/polizas/service"
	helper "aseguradora_backend/internals/helpers"
)

var validate = validator.New()

type PolizaHandler struct {
	DB *gorm.DB
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

func validationMap(err error) map[string][]string {
	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			campo := strings.ToLower(fe.Field())
			out[campo] = append(out[campo], fe.Tag())
		}
	}
	return out
}

// -----------------------------------------
// List (GET /polizas)
// Filtros (opcionales):
// - cliente_id, estado, aseguradora, numero
// - vigencia_desde, vigencia_hasta (sobre vigencia_fin)
// - recibo_desde, recibo_hasta (sobre recibo_fin)
// - sort_by, order, page, per_page
// La reconciliación de estados corre antes del listado para que el
// estado devuelto ya esté corregido contra hoy.
// -----------------------------------------
func (h *PolizaHandler) List(c *fiber.Ctx) error {
	if _, err := service.ReconciliarEstados(h.DB, helper.HoyAgencia()); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	// Whitelist ORDER BY (seguro)
	allowedSort := map[string]string{
		"created_at":   "poliza_created_at",
		"updated_at":   "poliza_updated_at",
		"numero":       "poliza_numero",
		"estado":       "poliza_estado",
		"recibo_fin":   "poliza_recibo_fin",
		"vigencia_fin": "poliza_vigencia_fin",
	}
	orderClause, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by no válido")
	}
	// GORM .Order() no necesita "ORDER BY "
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	q := h.DB.Model(&model.Poliza{}).
		Preload("Cliente").
		Where("poliza_deleted_at IS NULL")

	if v := c.Query("cliente_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("poliza_cliente_id = ?", id)
		}
	}
	if v := c.Query("estado"); v != "" {
		// pending|paid|overdue|cancelled
		q = q.Where("poliza_estado = ?", v)
	}
	if v := c.Query("aseguradora"); v != "" {
		q = q.Where("LOWER(poliza_aseguradora) = ?", strings.ToLower(v))
	}
	if v := c.Query("numero"); v != "" {
		q = q.Where("poliza_numero ILIKE ?", "%"+v+"%")
	}
	if v := c.Query("vigencia_desde"); v != "" {
		if f, ok := helper.ParseFecha(v); ok {
			q = q.Where("poliza_vigencia_fin >= ?", helper.FormatFecha(f))
		}
	}
	if v := c.Query("vigencia_hasta"); v != "" {
		if f, ok := helper.ParseFecha(v); ok {
			q = q.Where("poliza_vigencia_fin <= ?", helper.FormatFecha(f))
		}
	}
	if v := c.Query("recibo_desde"); v != "" {
		if f, ok := helper.ParseFecha(v); ok {
			q = q.Where("poliza_recibo_fin >= ?", helper.FormatFecha(f))
		}
	}
	if v := c.Query("recibo_hasta"); v != "" {
		if f, ok := helper.ParseFecha(v); ok {
			q = q.Where("poliza_recibo_fin <= ?", helper.FormatFecha(f))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Poliza
	if err := q.
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToPolizaResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /polizas/:id)
// -----------------------------------------
func (h *PolizaHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Poliza
	if err := h.DB.Preload("Cliente").First(&m, "poliza_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "poliza not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToPolizaResponse(m))
}

// -----------------------------------------
// Create (POST /polizas)
// -----------------------------------------
func (h *PolizaHandler) Create(c *fiber.Ctx) error {
	var in dto.PolizaCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	m := dto.PolizaCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToPolizaResponse(m))
}

// -----------------------------------------
// Update (PATCH /polizas/:id)
// -----------------------------------------
func (h *PolizaHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.PolizaUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	var m model.Poliza
	if err := h.DB.First(&m, "poliza_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "poliza not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyPolizaUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToPolizaResponse(m))
}

// -----------------------------------------
// Delete (DELETE /polizas/:id) — soft delete
// -----------------------------------------
func (h *PolizaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Poliza
	if err := h.DB.First(&m, "poliza_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "poliza not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "deleted", dto.ToPolizaResponse(m))
}

// -----------------------------------------
// Acción: Pagar (POST /polizas/:id/pagar)
// -----------------------------------------
func (h *PolizaHandler) Pagar(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Poliza
	if err := h.DB.First(&m, "poliza_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "poliza not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.PolizaEstado == model.PolizaEstadoCancelada {
		return helper.JsonError(c, fiber.StatusConflict, "una póliza cancelada no se puede marcar pagada")
	}
	m.PolizaEstado = model.PolizaEstadoPagada
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "marcada como pagada", dto.ToPolizaResponse(m))
}

// -----------------------------------------
// Acción: Cancelar (POST /polizas/:id/cancelar) — terminal
// -----------------------------------------
func (h *PolizaHandler) Cancelar(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.PolizaCancelarDTO
	_ = c.BodyParser(&in) // body opcional

	var m model.Poliza
	if err := h.DB.First(&m, "poliza_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "poliza not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	m.PolizaEstado = model.PolizaEstadoCancelada
	if in.Motivo != nil {
		m.PolizaNotas = in.Motivo
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "cancelada", dto.ToPolizaResponse(m))
}

// -----------------------------------------
// Acción: Renovar (POST /polizas/:id/renovar)
// Avanza vigencia y recibo al siguiente término y vuelve a pending.
// Si el body trae fechas explícitas, mandan esas.
// -----------------------------------------
func (h *PolizaHandler) Renovar(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.PolizaRenovarDTO
	if err := c.BodyParser(&in); err != nil {
		in = dto.PolizaRenovarDTO{}
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	var m model.Poliza
	if err := h.DB.First(&m, "poliza_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "poliza not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.PolizaEstado == model.PolizaEstadoCancelada {
		return helper.JsonError(c, fiber.StatusConflict, "una póliza cancelada no se renueva")
	}

	service.AvanzarTermino(&m, in.PolizaVigenciaInicio, in.PolizaVigenciaFin, in.PolizaReciboInicio, in.PolizaReciboFin)
	if in.PolizaPrimaTotal != nil {
		m.PolizaPrimaTotal = *in.PolizaPrimaTotal
	}
	m.PolizaEstado = model.PolizaEstadoPendiente

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "renovada", dto.ToPolizaResponse(m))
}

// -----------------------------------------
// Reconciliación manual (POST /polizas/reconciliar)
// La misma pasada que corre antes de cada lectura, expuesta con nombre.
// -----------------------------------------
func (h *PolizaHandler) Reconciliar(c *fiber.Ctx) error {
	corregidas, err := service.ReconciliarEstados(h.DB, helper.HoyAgencia())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "reconciliado", fiber.Map{"corregidas": corregidas})
}
