// file: internals/features/polizas/dto/poliza_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	clienteDTO "aseguradora_backend/internals/features/clientes/dto"
	"aseguradora_backend/internals/features/polizas/model"
)

////////////////////////////////////////////////////////////////////////////////
// PÓLIZAS — DTO
////////////////////////////////////////////////////////////////////////////////

type PolizaCreateDTO struct {
	PolizaClienteID      uuid.UUID `json:"poliza_cliente_id" validate:"required"`
	PolizaNumero         string    `json:"poliza_numero" validate:"required,max=60"`
	PolizaAseguradora    string    `json:"poliza_aseguradora" validate:"omitempty,max=120"`
	PolizaRamo           *string   `json:"poliza_ramo,omitempty" validate:"omitempty,max=60"`
	PolizaVigenciaInicio string    `json:"poliza_vigencia_inicio" validate:"required,datetime=2006-01-02"`
	PolizaVigenciaFin    string    `json:"poliza_vigencia_fin" validate:"required,datetime=2006-01-02"`
	PolizaReciboInicio   string    `json:"poliza_recibo_inicio" validate:"required,datetime=2006-01-02"`
	PolizaReciboFin      string    `json:"poliza_recibo_fin" validate:"required,datetime=2006-01-02"`
	PolizaPrimaNeta      string    `json:"poliza_prima_neta" validate:"omitempty,max=30"`
	PolizaPrimaTotal     string    `json:"poliza_prima_total" validate:"omitempty,max=30"`
	PolizaFormaPago      string    `json:"poliza_forma_pago" validate:"omitempty,oneof=Anual Semestral Trimestral Mensual"`
}

// Update parcial — no cambia estado; para eso están las acciones
type PolizaUpdateDTO struct {
	PolizaClienteID      *uuid.UUID `json:"poliza_cliente_id,omitempty"`
	PolizaNumero         *string    `json:"poliza_numero,omitempty" validate:"omitempty,max=60"`
	PolizaAseguradora    *string    `json:"poliza_aseguradora,omitempty" validate:"omitempty,max=120"`
	PolizaRamo           *string    `json:"poliza_ramo,omitempty" validate:"omitempty,max=60"`
	PolizaVigenciaInicio *string    `json:"poliza_vigencia_inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PolizaVigenciaFin    *string    `json:"poliza_vigencia_fin,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PolizaReciboInicio   *string    `json:"poliza_recibo_inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PolizaReciboFin      *string    `json:"poliza_recibo_fin,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PolizaPrimaNeta      *string    `json:"poliza_prima_neta,omitempty" validate:"omitempty,max=30"`
	PolizaPrimaTotal     *string    `json:"poliza_prima_total,omitempty" validate:"omitempty,max=30"`
	PolizaFormaPago      *string    `json:"poliza_forma_pago,omitempty" validate:"omitempty,oneof=Anual Semestral Trimestral Mensual"`
}

////////////////////////////////////////////////////////////////////////////////
// ACCIONES DE ESTADO — DTO
////////////////////////////////////////////////////////////////////////////////

type PolizaCancelarDTO struct {
	Motivo *string `json:"motivo,omitempty"`
}

// Renovar: si no llegan fechas, el backend avanza vigencia un año y el
// recibo según la forma de pago.
type PolizaRenovarDTO struct {
	PolizaVigenciaInicio *string `json:"poliza_vigencia_inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PolizaVigenciaFin    *string `json:"poliza_vigencia_fin,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PolizaReciboInicio   *string `json:"poliza_recibo_inicio,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PolizaReciboFin      *string `json:"poliza_recibo_fin,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PolizaPrimaTotal     *string `json:"poliza_prima_total,omitempty" validate:"omitempty,max=30"`
}

////////////////////////////////////////////////////////////////////////////////
// RESPONSE
////////////////////////////////////////////////////////////////////////////////

type PolizaResponse struct {
	PolizaID          uuid.UUID `json:"poliza_id"`
	PolizaClienteID   uuid.UUID `json:"poliza_cliente_id"`
	PolizaNumero      string    `json:"poliza_numero"`
	PolizaAseguradora string    `json:"poliza_aseguradora"`
	PolizaRamo        *string   `json:"poliza_ramo,omitempty"`

	PolizaVigenciaInicio string `json:"poliza_vigencia_inicio"`
	PolizaVigenciaFin    string `json:"poliza_vigencia_fin"`
	PolizaReciboInicio   string `json:"poliza_recibo_inicio"`
	PolizaReciboFin      string `json:"poliza_recibo_fin"`

	PolizaPrimaNeta  string `json:"poliza_prima_neta"`
	PolizaPrimaTotal string `json:"poliza_prima_total"`
	PolizaFormaPago  string `json:"poliza_forma_pago"`

	PolizaEstado string  `json:"poliza_estado"`
	PolizaNotas  *string `json:"poliza_notas,omitempty"`

	Cliente *clienteDTO.ClienteResponse `json:"cliente,omitempty"`

	PolizaCreatedAt time.Time `json:"poliza_created_at"`
	PolizaUpdatedAt time.Time `json:"poliza_updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func PolizaCreateDTOToModel(in PolizaCreateDTO) model.Poliza {
	return model.Poliza{
		PolizaClienteID:      in.PolizaClienteID,
		PolizaNumero:         in.PolizaNumero,
		PolizaAseguradora:    in.PolizaAseguradora,
		PolizaRamo:           in.PolizaRamo,
		PolizaVigenciaInicio: in.PolizaVigenciaInicio,
		PolizaVigenciaFin:    in.PolizaVigenciaFin,
		PolizaReciboInicio:   in.PolizaReciboInicio,
		PolizaReciboFin:      in.PolizaReciboFin,
		PolizaPrimaNeta:      in.PolizaPrimaNeta,
		PolizaPrimaTotal:     in.PolizaPrimaTotal,
		PolizaFormaPago:      in.PolizaFormaPago,
	}
}

func ApplyPolizaUpdate(m *model.Poliza, in PolizaUpdateDTO) {
	if in.PolizaClienteID != nil {
		m.PolizaClienteID = *in.PolizaClienteID
	}
	if in.PolizaNumero != nil {
		m.PolizaNumero = *in.PolizaNumero
	}
	if in.PolizaAseguradora != nil {
		m.PolizaAseguradora = *in.PolizaAseguradora
	}
	if in.PolizaRamo != nil {
		m.PolizaRamo = in.PolizaRamo
	}
	if in.PolizaVigenciaInicio != nil {
		m.PolizaVigenciaInicio = *in.PolizaVigenciaInicio
	}
	if in.PolizaVigenciaFin != nil {
		m.PolizaVigenciaFin = *in.PolizaVigenciaFin
	}
	if in.PolizaReciboInicio != nil {
		m.PolizaReciboInicio = *in.PolizaReciboInicio
	}
	if in.PolizaReciboFin != nil {
		m.PolizaReciboFin = *in.PolizaReciboFin
	}
	if in.PolizaPrimaNeta != nil {
		m.PolizaPrimaNeta = *in.PolizaPrimaNeta
	}
	if in.PolizaPrimaTotal != nil {
		m.PolizaPrimaTotal = *in.PolizaPrimaTotal
	}
	if in.PolizaFormaPago != nil {
		m.PolizaFormaPago = *in.PolizaFormaPago
	}
}

func ToPolizaResponse(m model.Poliza) PolizaResponse {
	resp := PolizaResponse{
		PolizaID:             m.PolizaID,
		PolizaClienteID:      m.PolizaClienteID,
		PolizaNumero:         m.PolizaNumero,
		PolizaAseguradora:    m.PolizaAseguradora,
		PolizaRamo:           m.PolizaRamo,
		PolizaVigenciaInicio: m.PolizaVigenciaInicio,
		PolizaVigenciaFin:    m.PolizaVigenciaFin,
		PolizaReciboInicio:   m.PolizaReciboInicio,
		PolizaReciboFin:      m.PolizaReciboFin,
		PolizaPrimaNeta:      m.PolizaPrimaNeta,
		PolizaPrimaTotal:     m.PolizaPrimaTotal,
		PolizaFormaPago:      m.PolizaFormaPago,
		PolizaEstado:         string(m.PolizaEstado),
		PolizaNotas:          m.PolizaNotas,
		PolizaCreatedAt:      m.PolizaCreatedAt,
		PolizaUpdatedAt:      m.PolizaUpdatedAt,
	}
	if m.Cliente != nil {
		c := clienteDTO.ToClienteResponse(*m.Cliente)
		resp.Cliente = &c
	}
	return resp
}

func ToPolizaResponses(list []model.Poliza) []PolizaResponse {
	out := make([]PolizaResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPolizaResponse(m))
	}
	return out
}
