// file: internals/features/clientes/model/cliente_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — clientes de la correduría
// =========================================================

type Cliente struct {
	// PK
	ClienteID uuid.UUID `gorm:"column:cliente_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"cliente_id"`

	ClienteNombre    string  `gorm:"column:cliente_nombre;type:varchar(120);not null;index:ix_cliente_nombre" json:"cliente_nombre"`
	ClienteApellidos *string `gorm:"column:cliente_apellidos;type:varchar(160)" json:"cliente_apellidos,omitempty"`
	ClienteDNI       *string `gorm:"column:cliente_dni;type:varchar(20);index" json:"cliente_dni,omitempty"`

	ClienteTelefono *string `gorm:"column:cliente_telefono;type:varchar(30);index" json:"cliente_telefono,omitempty"`
	ClienteEmail    *string `gorm:"column:cliente_email;type:varchar(160)" json:"cliente_email,omitempty"`

	// Blob libre de contacto (dirección, segundo teléfono, notas del frontend)
	ClienteContacto datatypes.JSONMap `gorm:"column:cliente_contacto;type:jsonb" json:"cliente_contacto,omitempty"`

	// Timestamps (explícitos)
	ClienteCreatedAt time.Time      `gorm:"column:cliente_created_at;not null;default:now();index:ix_cliente_created_at" json:"cliente_created_at"`
	ClienteUpdatedAt time.Time      `gorm:"column:cliente_updated_at;not null;default:now()" json:"cliente_updated_at"`
	ClienteDeletedAt gorm.DeletedAt `gorm:"column:cliente_deleted_at;index" json:"-"`
}

func (Cliente) TableName() string {
	return "clientes"
}

// =========================================================
// HOOKS — timestamps explícitos
// =========================================================

func (m *Cliente) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now()
	if m.ClienteCreatedAt.IsZero() {
		m.ClienteCreatedAt = now
	}
	m.ClienteUpdatedAt = now
	return nil
}

func (m *Cliente) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ClienteUpdatedAt = time.Now()
	return nil
}
