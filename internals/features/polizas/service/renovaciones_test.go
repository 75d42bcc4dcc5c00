package service

import (
	"testing"

	"aseguradora_backend/internals/features/polizas/model"
	helper "aseguradora_backend/internals/helpers"
)

// El bucket de próximas lo decide RenovacionProxima, no solo el WHERE:
// canceladas, fuera de ventana o con fecha ilegible se quedan fuera.
func TestArmarRenovaciones(t *testing.T) {
	enVentana := model.Poliza{
		PolizaNumero:      "REN-1",
		PolizaEstado:      model.PolizaEstadoPendiente,
		PolizaVigenciaFin: helper.FormatFecha(helper.SumarDias(hoy, 40)),
	}
	cancelada := model.Poliza{
		PolizaNumero:      "REN-2",
		PolizaEstado:      model.PolizaEstadoCancelada,
		PolizaVigenciaFin: helper.FormatFecha(helper.SumarDias(hoy, 10)),
	}
	fueraDeVentana := model.Poliza{
		PolizaNumero:      "REN-3",
		PolizaEstado:      model.PolizaEstadoPendiente,
		PolizaVigenciaFin: helper.FormatFecha(helper.SumarDias(hoy, 60)),
	}
	fechaRota := model.Poliza{
		PolizaNumero:      "REN-4",
		PolizaEstado:      model.PolizaEstadoPendiente,
		PolizaVigenciaFin: "no-es-fecha",
	}

	out := armarRenovaciones([]model.Poliza{enVentana, cancelada, fueraDeVentana, fechaRota}, hoy, 45)
	if len(out) != 1 {
		t.Fatalf("filas = %d, esperado 1", len(out))
	}
	if out[0].Poliza.PolizaNumero != "REN-1" {
		t.Errorf("sobrevivió %s, esperado REN-1", out[0].Poliza.PolizaNumero)
	}
	if out[0].DiasRestantes != 40 {
		t.Errorf("días restantes = %d, esperado 40", out[0].DiasRestantes)
	}
}
