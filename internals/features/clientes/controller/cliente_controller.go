// file: internals/features/clientes/controller/cliente_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aseguradora_backend/internals/features/clientes/dto"
	"aseguradora_backend/internals/features/clientes/model"
	helper "aseguradora_backend/internals/helpers"
)

var validate = validator.New()

type ClienteHandler struct {
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
// List (GET /clientes)
// Filtros (opcionales):
// - q: busca en nombre/apellidos/teléfono/DNI
// - sort_by (created_at|updated_at|nombre), order (asc|desc)
// - page, per_page
// -----------------------------------------
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	// Whitelist ORDER BY (seguro)
	allowedSort := map[string]string{
		"created_at": "cliente_created_at",
		"updated_at": "cliente_updated_at",
		"nombre":     "cliente_nombre",
	}
	orderClause, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by no válido")
	}
	// GORM .Order() no necesita "ORDER BY "
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	q := h.DB.Model(&model.Cliente{}).
		Where("cliente_deleted_at IS NULL")

	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(
			"LOWER(cliente_nombre) LIKE ? OR LOWER(COALESCE(cliente_apellidos,'')) LIKE ? OR cliente_telefono LIKE ? OR LOWER(COALESCE(cliente_dni,'')) LIKE ?",
			like, like, "%"+v+"%", like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Cliente
	if err := q.
		Order(orderExpr).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, dto.ToClienteResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /clientes/:id)
// -----------------------------------------
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Cliente
	if err := h.DB.First(&m, "cliente_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "cliente not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToClienteResponse(m))
}

// -----------------------------------------
// Create (POST /clientes)
// -----------------------------------------
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	m := dto.ClienteCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "created", dto.ToClienteResponse(m))
}

// -----------------------------------------
// Update (PATCH /clientes/:id)
// -----------------------------------------
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.ClienteUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}
	var m model.Cliente
	if err := h.DB.First(&m, "cliente_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "cliente not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	dto.ApplyClienteUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "updated", dto.ToClienteResponse(m))
}

// -----------------------------------------
// Delete (DELETE /clientes/:id) — soft delete
// -----------------------------------------
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Cliente
	if err := h.DB.First(&m, "cliente_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "cliente not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "deleted", dto.ToClienteResponse(m))
}
