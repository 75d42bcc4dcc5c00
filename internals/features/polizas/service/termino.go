// file: internals/features/polizas/service/termino.go
package service

import (
	"aseguradora_backend/internals/features/polizas/model"
	helper "aseguradora_backend/internals/helpers"
)

// mesesPorFormaPago: periodicidad del recibo según la forma de pago.
func mesesPorFormaPago(forma string) int {
	switch forma {
	case "Mensual":
		return 1
	case "Trimestral":
		return 3
	case "Semestral":
		return 6
	default: // Anual o sin informar
		return 12
	}
}

// AvanzarTermino mueve la póliza al siguiente término al renovarla:
// vigencia un año hacia delante y recibo un periodo según la forma de
// pago. Cualquier fecha que llegue explícita en la petición manda sobre
// la calculada.
func AvanzarTermino(m *model.Poliza, vigIni, vigFin, recIni, recFin *string) {
	if fin, ok := helper.ParseFecha(m.PolizaVigenciaFin); ok {
		m.PolizaVigenciaInicio = m.PolizaVigenciaFin
		m.PolizaVigenciaFin = helper.FormatFecha(fin.AddDate(1, 0, 0))
	}
	meses := mesesPorFormaPago(m.PolizaFormaPago)
	if ini, ok := helper.ParseFecha(m.PolizaReciboInicio); ok {
		m.PolizaReciboInicio = helper.FormatFecha(ini.AddDate(0, meses, 0))
	}
	if fin, ok := helper.ParseFecha(m.PolizaReciboFin); ok {
		m.PolizaReciboFin = helper.FormatFecha(fin.AddDate(0, meses, 0))
	}

	// overrides explícitos del cliente HTTP
	if vigIni != nil {
		m.PolizaVigenciaInicio = *vigIni
	}
	if vigFin != nil {
		m.PolizaVigenciaFin = *vigFin
	}
	if recIni != nil {
		m.PolizaReciboInicio = *recIni
	}
	if recFin != nil {
		m.PolizaReciboFin = *recFin
	}
}
