// file: internals/features/clientes/dto/cliente_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"aseguradora_backend/internals/features/clientes/model"
)

////////////////////////////////////////////////////////////////////////////////
// CLIENTES — DTO
////////////////////////////////////////////////////////////////////////////////

type ClienteCreateDTO struct {
	ClienteNombre    string            `json:"cliente_nombre" validate:"required,min=2,max=120"`
	ClienteApellidos *string           `json:"cliente_apellidos,omitempty" validate:"omitempty,max=160"`
	ClienteDNI       *string           `json:"cliente_dni,omitempty" validate:"omitempty,max=20"`
	ClienteTelefono  *string           `json:"cliente_telefono,omitempty" validate:"omitempty,max=30"`
	ClienteEmail     *string           `json:"cliente_email,omitempty" validate:"omitempty,email"`
	ClienteContacto  datatypes.JSONMap `json:"cliente_contacto,omitempty"`
}

// Update parcial
type ClienteUpdateDTO struct {
	ClienteNombre    *string           `json:"cliente_nombre,omitempty" validate:"omitempty,min=2,max=120"`
	ClienteApellidos *string           `json:"cliente_apellidos,omitempty" validate:"omitempty,max=160"`
	ClienteDNI       *string           `json:"cliente_dni,omitempty" validate:"omitempty,max=20"`
	ClienteTelefono  *string           `json:"cliente_telefono,omitempty" validate:"omitempty,max=30"`
	ClienteEmail     *string           `json:"cliente_email,omitempty" validate:"omitempty,email"`
	ClienteContacto  datatypes.JSONMap `json:"cliente_contacto,omitempty"`
}

type ClienteResponse struct {
	ClienteID        uuid.UUID         `json:"cliente_id"`
	ClienteNombre    string            `json:"cliente_nombre"`
	ClienteApellidos *string           `json:"cliente_apellidos,omitempty"`
	ClienteDNI       *string           `json:"cliente_dni,omitempty"`
	ClienteTelefono  *string           `json:"cliente_telefono,omitempty"`
	ClienteEmail     *string           `json:"cliente_email,omitempty"`
	ClienteContacto  datatypes.JSONMap `json:"cliente_contacto,omitempty"`
	ClienteCreatedAt time.Time         `json:"cliente_created_at"`
	ClienteUpdatedAt time.Time         `json:"cliente_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ClienteCreateDTOToModel(in ClienteCreateDTO) model.Cliente {
	return model.Cliente{
		ClienteNombre:    in.ClienteNombre,
		ClienteApellidos: in.ClienteApellidos,
		ClienteDNI:       in.ClienteDNI,
		ClienteTelefono:  in.ClienteTelefono,
		ClienteEmail:     in.ClienteEmail,
		ClienteContacto:  in.ClienteContacto,
	}
}

func ApplyClienteUpdate(m *model.Cliente, in ClienteUpdateDTO) {
	if in.ClienteNombre != nil {
		m.ClienteNombre = *in.ClienteNombre
	}
	if in.ClienteApellidos != nil {
		m.ClienteApellidos = in.ClienteApellidos
	}
	if in.ClienteDNI != nil {
		m.ClienteDNI = in.ClienteDNI
	}
	if in.ClienteTelefono != nil {
		m.ClienteTelefono = in.ClienteTelefono
	}
	if in.ClienteEmail != nil {
		m.ClienteEmail = in.ClienteEmail
	}
	if in.ClienteContacto != nil {
		m.ClienteContacto = in.ClienteContacto
	}
}

func ToClienteResponse(m model.Cliente) ClienteResponse {
	return ClienteResponse{
		ClienteID:        m.ClienteID,
		ClienteNombre:    m.ClienteNombre,
		ClienteApellidos: m.ClienteApellidos,
		ClienteDNI:       m.ClienteDNI,
		ClienteTelefono:  m.ClienteTelefono,
		ClienteEmail:     m.ClienteEmail,
		ClienteContacto:  m.ClienteContacto,
		ClienteCreatedAt: m.ClienteCreatedAt,
		ClienteUpdatedAt: m.ClienteUpdatedAt,
	}
}

func ToClienteResponses(list []model.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToClienteResponse(m))
	}
	return out
}
