package service

import (
	"testing"

	"aseguradora_backend/internals/features/polizas/model"
)

func TestAvanzarTerminoAnual(t *testing.T) {
	m := model.Poliza{
		PolizaVigenciaInicio: "2025-09-01",
		PolizaVigenciaFin:    "2026-09-01",
		PolizaReciboInicio:   "2025-09-01",
		PolizaReciboFin:      "2026-09-01",
		PolizaFormaPago:      "Anual",
	}
	AvanzarTermino(&m, nil, nil, nil, nil)

	if m.PolizaVigenciaInicio != "2026-09-01" || m.PolizaVigenciaFin != "2027-09-01" {
		t.Errorf("vigencia mal avanzada: %s → %s", m.PolizaVigenciaInicio, m.PolizaVigenciaFin)
	}
	if m.PolizaReciboInicio != "2026-09-01" || m.PolizaReciboFin != "2027-09-01" {
		t.Errorf("recibo anual mal avanzado: %s → %s", m.PolizaReciboInicio, m.PolizaReciboFin)
	}
}

func TestAvanzarTerminoTrimestral(t *testing.T) {
	m := model.Poliza{
		PolizaVigenciaInicio: "2025-09-01",
		PolizaVigenciaFin:    "2026-09-01",
		PolizaReciboInicio:   "2026-06-01",
		PolizaReciboFin:      "2026-09-01",
		PolizaFormaPago:      "Trimestral",
	}
	AvanzarTermino(&m, nil, nil, nil, nil)

	if m.PolizaReciboInicio != "2026-09-01" || m.PolizaReciboFin != "2026-12-01" {
		t.Errorf("recibo trimestral mal avanzado: %s → %s", m.PolizaReciboInicio, m.PolizaReciboFin)
	}
}

func TestAvanzarTerminoConOverrides(t *testing.T) {
	m := model.Poliza{
		PolizaVigenciaFin: "2026-09-01",
		PolizaFormaPago:   "Anual",
	}
	fin := "2027-10-15"
	AvanzarTermino(&m, nil, &fin, nil, nil)
	if m.PolizaVigenciaFin != fin {
		t.Errorf("el override explícito debe mandar, got %s", m.PolizaVigenciaFin)
	}
}
