// file: internals/features/polizas/model/poliza_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	clienteModel "aseguradora_backend/internals/features/clientes/model"
)

// =========================================================
// ENUM — estado de la póliza
// paid y cancelled son terminales para el ciclo de recibo:
// la reconciliación automática nunca los sobreescribe.
// =========================================================

type PolizaEstado string

const (
	PolizaEstadoPendiente PolizaEstado = "pending"
	PolizaEstadoPagada    PolizaEstado = "paid"
	PolizaEstadoVencida   PolizaEstado = "overdue"
	PolizaEstadoCancelada PolizaEstado = "cancelled"
)

// =========================================================
// MODEL
// Fechas como DATE en texto "YYYY-MM-DD" (igual que las guarda el frontend).
// Las primas se guardan formateadas ("1.234,56 €") y se re-parsean en cada
// lectura con helper.ParseMoneda.
// =========================================================

type Poliza struct {
	// PK
	PolizaID uuid.UUID `gorm:"column:poliza_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"poliza_id"`

	// FK → clientes(cliente_id)
	PolizaClienteID uuid.UUID `gorm:"column:poliza_cliente_id;type:uuid;not null;index" json:"poliza_cliente_id"`

	PolizaNumero      string  `gorm:"column:poliza_numero;type:varchar(60);not null;index:ix_poliza_numero" json:"poliza_numero"`
	PolizaAseguradora string  `gorm:"column:poliza_aseguradora;type:varchar(120)" json:"poliza_aseguradora"`
	PolizaRamo        *string `gorm:"column:poliza_ramo;type:varchar(60)" json:"poliza_ramo,omitempty"` // auto, hogar, vida...

	// Vigencia de la póliza (término completo)
	PolizaVigenciaInicio string `gorm:"column:poliza_vigencia_inicio;type:date" json:"poliza_vigencia_inicio"`
	PolizaVigenciaFin    string `gorm:"column:poliza_vigencia_fin;type:date;index:ix_poliza_vigencia_fin" json:"poliza_vigencia_fin"`

	// Recibo en curso (el sub-periodo que se está cobrando)
	PolizaReciboInicio string `gorm:"column:poliza_recibo_inicio;type:date;index:ix_poliza_recibo_inicio" json:"poliza_recibo_inicio"`
	PolizaReciboFin    string `gorm:"column:poliza_recibo_fin;type:date;index:ix_poliza_recibo_fin" json:"poliza_recibo_fin"`

	PolizaPrimaNeta  string `gorm:"column:poliza_prima_neta;type:varchar(30)" json:"poliza_prima_neta"`
	PolizaPrimaTotal string `gorm:"column:poliza_prima_total;type:varchar(30)" json:"poliza_prima_total"`

	PolizaFormaPago string `gorm:"column:poliza_forma_pago;type:varchar(20)" json:"poliza_forma_pago"` // Anual|Semestral|Trimestral|Mensual

	PolizaEstado PolizaEstado `gorm:"column:poliza_estado;type:varchar(20);not null;default:'pending';index:ix_poliza_estado" json:"poliza_estado"`

	PolizaNotas *string `gorm:"column:poliza_notas;type:text" json:"poliza_notas,omitempty"`

	// Timestamps (explícitos)
	PolizaCreatedAt time.Time      `gorm:"column:poliza_created_at;not null;default:now();index:ix_poliza_created_at" json:"poliza_created_at"`
	PolizaUpdatedAt time.Time      `gorm:"column:poliza_updated_at;not null;default:now()" json:"poliza_updated_at"`
	PolizaDeletedAt gorm.DeletedAt `gorm:"column:poliza_deleted_at;index" json:"-"`

	// Relación (join de lectura para listados y resumen)
	Cliente *clienteModel.Cliente `gorm:"foreignKey:PolizaClienteID;references:ClienteID" json:"cliente,omitempty"`
}

func (Poliza) TableName() string {
	return "polizas"
}

// =========================================================
// HOOKS — timestamps explícitos
// =========================================================

func (m *Poliza) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.PolizaCreatedAt.IsZero() {
		m.PolizaCreatedAt = now
	}
	m.PolizaUpdatedAt = now
	if m.PolizaEstado == "" {
		m.PolizaEstado = PolizaEstadoPendiente
	}
	return nil
}

func (m *Poliza) BeforeUpdate(tx *gorm.DB) (err error) {
	m.PolizaUpdatedAt = time.Now()
	return nil
}
