// file: internals/features/notificaciones/dto/configuracion_dto.go
package dto

////////////////////////////////////////////////////////////////////////////////
// CONFIGURACIÓN DE NOTIFICACIONES — DTO
////////////////////////////////////////////////////////////////////////////////

// Update parcial: solo las claves presentes se guardan
type ConfiguracionUpdateDTO struct {
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Hora             *string `json:"hora,omitempty" validate:"omitempty,datetime=15:04"`
	CampoFechaCobros *string `json:"campo_fecha_cobros,omitempty" validate:"omitempty,oneof=inicio fin"`
}

type ConfiguracionResponse struct {
	Email            string `json:"email"`
	Hora             string `json:"hora"`
	CampoFechaCobros string `json:"campo_fecha_cobros"`
}
