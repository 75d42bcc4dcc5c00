// file: internals/features/notificaciones/controller/configuracion_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aseguradora_backend/internals/constants"
	"aseguradora_backend/internals/features/notificaciones/dto"
	"aseguradora_backend/internals/features/notificaciones/model"
	"aseguradora_backend/internals/features/notificaciones/service"
	helper "aseguradora_backend/internals/helpers"
)

var validate = validator.New()

type ConfiguracionHandler struct {
	DB          *gorm.DB
	Programador *service.Programador
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
// Config actual (GET /notificaciones/config)
// -----------------------------------------
func (h *ConfiguracionHandler) Get(c *fiber.Ctx) error {
	resp := dto.ConfiguracionResponse{
		Email:            model.LeerValor(h.DB, constants.ClaveEmailNotificaciones, ""),
		Hora:             model.LeerValor(h.DB, constants.ClaveHoraNotificaciones, constants.HoraNotificacionesDefault),
		CampoFechaCobros: model.LeerValor(h.DB, constants.ClaveCampoFechaCobros, constants.CampoFechaFin),
	}
	return helper.JsonOK(c, "", resp)
}

// -----------------------------------------
// Actualizar config (PUT /notificaciones/config)
// Si cambia la hora, el programador se rearma al vuelo (sin reiniciar).
// -----------------------------------------
func (h *ConfiguracionHandler) Put(c *fiber.Ctx) error {
	var in dto.ConfiguracionUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, validationMap(err))
	}

	if in.Email != nil {
		if err := model.GuardarValor(h.DB, constants.ClaveEmailNotificaciones, *in.Email); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	if in.CampoFechaCobros != nil {
		if err := model.GuardarValor(h.DB, constants.ClaveCampoFechaCobros, *in.CampoFechaCobros); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	if in.Hora != nil {
		if err := model.GuardarValor(h.DB, constants.ClaveHoraNotificaciones, *in.Hora); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if h.Programador != nil {
			if err := h.Programador.Reconfigurar(*in.Hora); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
			}
		}
	}

	return h.Get(c)
}

// -----------------------------------------
// Envío de prueba (POST /notificaciones/probar)
// Ejecuta el mismo barrido que el timer, ahora mismo. Los fallos según
// la política del barrido: se loguean, la respuesta HTTP siempre es ok.
// -----------------------------------------
func (h *ConfiguracionHandler) Probar(c *fiber.Ctx) error {
	if h.Programador == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "programador no inicializado")
	}
	h.Programador.Barrido()
	return helper.JsonOK(c, "barrido ejecutado, revisa los logs y el buzón", nil)
}
