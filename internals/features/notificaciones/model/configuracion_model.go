// file: internals/features/notificaciones/model/configuracion_model.go
package model

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// =========================================================
// MODEL — configuraciones (key-value singleton)
// Claves en uso: email_notificaciones, hora_notificaciones,
// campo_fecha_cobros. La fila se crea en el primer write.
// =========================================================

type Configuracion struct {
	ConfiguracionClave     string    `gorm:"column:configuracion_clave;type:varchar(60);primaryKey" json:"configuracion_clave"`
	ConfiguracionValor     string    `gorm:"column:configuracion_valor;type:text;not null" json:"configuracion_valor"`
	ConfiguracionUpdatedAt time.Time `gorm:"column:configuracion_updated_at;not null;default:now()" json:"configuracion_updated_at"`
}

func (Configuracion) TableName() string {
	return "configuraciones"
}

func (m *Configuracion) BeforeSave(tx *gorm.DB) (err error) {
	m.ConfiguracionUpdatedAt = time.Now()
	return nil
}

// LeerValor devuelve el valor de una clave o el default si no existe.
// Un error real de la BD también cae al default (queda en el GORM logger):
// estas claves alimentan lecturas que prefieren un valor razonable a fallar.
func LeerValor(db *gorm.DB, clave, def string) string {
	var m Configuracion
	if err := db.First(&m, "configuracion_clave = ?", clave).Error; err != nil {
		return def
	}
	if m.ConfiguracionValor == "" {
		return def
	}
	return m.ConfiguracionValor
}

// GuardarValor hace upsert por clave.
func GuardarValor(db *gorm.DB, clave, valor string) error {
	m := Configuracion{
		ConfiguracionClave: clave,
		ConfiguracionValor: valor,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "configuracion_clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"configuracion_valor", "configuracion_updated_at"}),
	}).Create(&m).Error
}
