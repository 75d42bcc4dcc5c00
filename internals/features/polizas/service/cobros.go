// file: internals/features/polizas/service/cobros.go
package service

import (
	"time"

	"gorm.io/gorm"

	"aseguradora_backend/internals/constants"
	"aseguradora_backend/internals/features/polizas/model"
	helper "aseguradora_backend/internals/helpers"
)

// =========================================================
// PLANIFICADOR DE COBROS
// Una sola implementación de las ventanas de fecha que antes estaba
// repetida en el dashboard, el listado y el correo diario.
// =========================================================

type OpcionesCobros struct {
	VentanaDias int    // default 15
	CampoFecha  string // constants.CampoFechaInicio | CampoFechaFin (default fin)
}

// PolizaCobro es una fila del plan: póliza + derivados de presentación.
type PolizaCobro struct {
	Poliza        model.Poliza `json:"poliza"`
	FechaRecibo   string       `json:"fecha_recibo"`   // el límite que manda según campo_fecha_cobros
	DiasRestantes int          `json:"dias_restantes"` // negativo = ya vencido
	Severidad     string       `json:"severidad"`      // vencido|urgente|normal
	PrimaTotal    float64      `json:"prima_total"`    // re-parseada del texto almacenado
}

type PlanCobrosResultado struct {
	Proximos []PolizaCobro `json:"proximos"`
	Vencidos []PolizaCobro `json:"vencidos"`
}

// columnaCobros resuelve qué límite del recibo dispara la alerta.
// El campo es configurable (campo_fecha_cobros) porque el negocio no lo
// tiene decidido; default: fin del recibo.
func columnaCobros(campo string) string {
	if campo == constants.CampoFechaInicio {
		return "poliza_recibo_inicio"
	}
	return "poliza_recibo_fin"
}

func fechaCobro(p model.Poliza, campo string) string {
	if campo == constants.CampoFechaInicio {
		return p.PolizaReciboInicio
	}
	return p.PolizaReciboFin
}

// Severidad por días restantes: <0 vencido, 0–3 urgente, 4+ normal.
// Solo agrupa/colorea; no filtra.
func Severidad(dias int) string {
	switch {
	case dias < 0:
		return constants.SeveridadVencido
	case dias <= 3:
		return constants.SeveridadUrgente
	default:
		return constants.SeveridadNormal
	}
}

// EnriquecerCobro calcula los derivados de una fila del plan.
// El estado de la fila sale del clasificador, no de la columna almacenada:
// una reconciliación aún pendiente no se cuela en el listado ni en el correo.
func EnriquecerCobro(p model.Poliza, hoy time.Time, campo string) PolizaCobro {
	p.PolizaEstado = ClasificarPoliza(p, hoy)
	fecha := fechaCobro(p, campo)
	dias := helper.DiasHasta(fecha, hoy)
	return PolizaCobro{
		Poliza:        p,
		FechaRecibo:   fecha,
		DiasRestantes: dias,
		Severidad:     Severidad(dias),
		PrimaTotal:    helper.ParseMoneda(p.PolizaPrimaTotal),
	}
}

// PlanCobros devuelve las pólizas con recibo en ventana (próximos) y las ya
// pasadas de fecha (vencidos), con join del cliente para el listado y el correo.
func PlanCobros(db *gorm.DB, hoy time.Time, opt OpcionesCobros) (*PlanCobrosResultado, error) {
	if opt.VentanaDias <= 0 {
		opt.VentanaDias = constants.VentanaCobrosDias
	}
	col := columnaCobros(opt.CampoFecha)
	desde := helper.FormatFecha(hoy)
	hasta := helper.FormatFecha(helper.SumarDias(hoy, opt.VentanaDias))

	base := func() *gorm.DB {
		return db.Model(&model.Poliza{}).
			Preload("Cliente").
			Where("poliza_deleted_at IS NULL").
			Where("poliza_estado NOT IN ?", []model.PolizaEstado{
				model.PolizaEstadoPagada, model.PolizaEstadoCancelada,
			})
	}

	var proximos []model.Poliza
	if err := base().
		Where(col+" >= ? AND "+col+" <= ?", desde, hasta).
		Order(col + " ASC").
		Find(&proximos).Error; err != nil {
		return nil, err
	}

	var vencidos []model.Poliza
	if err := base().
		Where(col+" < ?", desde).
		Order(col + " DESC").
		Find(&vencidos).Error; err != nil {
		return nil, err
	}

	out := &PlanCobrosResultado{
		Proximos: make([]PolizaCobro, 0, len(proximos)),
		Vencidos: make([]PolizaCobro, 0, len(vencidos)),
	}
	for _, p := range proximos {
		out.Proximos = append(out.Proximos, EnriquecerCobro(p, hoy, opt.CampoFecha))
	}
	for _, p := range vencidos {
		out.Vencidos = append(out.Vencidos, EnriquecerCobro(p, hoy, opt.CampoFecha))
	}
	return out, nil
}
