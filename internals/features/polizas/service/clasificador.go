// file: internals/features/polizas/service/clasificador.go
package service

import (
	"log"
	"time"

	"gorm.io/gorm"

	"aseguradora_backend/internals/features/polizas/model"
	helper "aseguradora_backend/internals/helpers"
)

// =========================================================
// CLASIFICADOR
// Reglas en orden de prioridad (la primera que aplica gana):
//   1. cancelled  → cancelled  (terminal)
//   2. paid       → paid       (terminal para el recibo en curso)
//   3. recibo_fin < hoy → overdue
//   4. resto → pending
// =========================================================

func ClasificarPoliza(p model.Poliza, hoy time.Time) model.PolizaEstado {
	switch p.PolizaEstado {
	case model.PolizaEstadoCancelada:
		return model.PolizaEstadoCancelada
	case model.PolizaEstadoPagada:
		return model.PolizaEstadoPagada
	}
	if fin, ok := helper.ParseFecha(p.PolizaReciboFin); ok && fin.Before(hoy) {
		return model.PolizaEstadoVencida
	}
	return model.PolizaEstadoPendiente
}

// RenovacionProxima: vigencia_fin dentro de [hoy, hoy+ventana] y póliza no cancelada.
// Se calcula aparte del estado: una póliza puede estar pending y a la vez
// próxima a renovar.
func RenovacionProxima(p model.Poliza, hoy time.Time, ventanaDias int) bool {
	if p.PolizaEstado == model.PolizaEstadoCancelada {
		return false
	}
	fin, ok := helper.ParseFecha(p.PolizaVigenciaFin)
	if !ok {
		return false
	}
	return !fin.Before(hoy) && !fin.After(helper.SumarDias(hoy, ventanaDias))
}

// ReconciliarEstados corrige en bloque los estados almacenados contra "hoy".
// Es idempotente: repetirla con el mismo hoy no cambia nada más.
// Solo mueve pending ↔ overdue; paid y cancelled no se tocan nunca.
// Los lectores del dashboard y el barrido programado la invocan como pre-paso.
func ReconciliarEstados(db *gorm.DB, hoy time.Time) (int64, error) {
	hoyStr := helper.FormatFecha(hoy)

	aVencida := db.Model(&model.Poliza{}).
		Where("poliza_deleted_at IS NULL").
		Where("poliza_estado = ?", model.PolizaEstadoPendiente).
		Where("poliza_recibo_fin < ?", hoyStr).
		Updates(map[string]any{
			"poliza_estado":     model.PolizaEstadoVencida,
			"poliza_updated_at": time.Now(),
		})
	if aVencida.Error != nil {
		return 0, aVencida.Error
	}

	// el caso inverso aparece cuando se edita el recibo a futuro
	aPendiente := db.Model(&model.Poliza{}).
		Where("poliza_deleted_at IS NULL").
		Where("poliza_estado = ?", model.PolizaEstadoVencida).
		Where("poliza_recibo_fin >= ?", hoyStr).
		Updates(map[string]any{
			"poliza_estado":     model.PolizaEstadoPendiente,
			"poliza_updated_at": time.Now(),
		})
	if aPendiente.Error != nil {
		return aVencida.RowsAffected, aPendiente.Error
	}

	total := aVencida.RowsAffected + aPendiente.RowsAffected
	if total > 0 {
		log.Printf("[RECONCILIAR] %d pólizas corregidas (%d → overdue, %d → pending)",
			total, aVencida.RowsAffected, aPendiente.RowsAffected)
	}
	return total, nil
}
