package service

import (
	"testing"
	"time"

	"aseguradora_backend/internals/features/polizas/model"
	helper "aseguradora_backend/internals/helpers"
)

var hoy = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func polizaConRecibo(estado model.PolizaEstado, finEnDias int) model.Poliza {
	return model.Poliza{
		PolizaEstado:    estado,
		PolizaReciboFin: helper.FormatFecha(helper.SumarDias(hoy, finEnDias)),
	}
}

func TestClasificarPolizaVencida(t *testing.T) {
	p := polizaConRecibo(model.PolizaEstadoPendiente, -1)
	if got := ClasificarPoliza(p, hoy); got != model.PolizaEstadoVencida {
		t.Errorf("recibo pasado + pending debe dar overdue, got %s", got)
	}
}

func TestClasificarPolizaPendiente(t *testing.T) {
	// recibo que vence hoy mismo sigue siendo pending
	p := polizaConRecibo(model.PolizaEstadoPendiente, 0)
	if got := ClasificarPoliza(p, hoy); got != model.PolizaEstadoPendiente {
		t.Errorf("recibo que vence hoy debe seguir pending, got %s", got)
	}
	p = polizaConRecibo(model.PolizaEstadoPendiente, 10)
	if got := ClasificarPoliza(p, hoy); got != model.PolizaEstadoPendiente {
		t.Errorf("recibo futuro debe dar pending, got %s", got)
	}
}

func TestClasificarPolizaEstadosTerminales(t *testing.T) {
	// cancelled gana siempre, da igual la fecha
	p := polizaConRecibo(model.PolizaEstadoCancelada, -400)
	if got := ClasificarPoliza(p, hoy); got != model.PolizaEstadoCancelada {
		t.Errorf("cancelled es terminal, got %s", got)
	}
	// paid no se corrige aunque el recibo haya pasado
	p = polizaConRecibo(model.PolizaEstadoPagada, -30)
	if got := ClasificarPoliza(p, hoy); got != model.PolizaEstadoPagada {
		t.Errorf("paid es terminal, got %s", got)
	}
}

func TestClasificarPolizaIdempotente(t *testing.T) {
	p := polizaConRecibo(model.PolizaEstadoPendiente, -5)
	primera := ClasificarPoliza(p, hoy)
	p.PolizaEstado = primera
	segunda := ClasificarPoliza(p, hoy)
	if primera != segunda {
		t.Errorf("la clasificación no converge: %s vs %s", primera, segunda)
	}
}

func TestRenovacionProxima(t *testing.T) {
	// vigencia_fin = hoy + 40, ventana 45 → dentro
	p := model.Poliza{
		PolizaEstado:      model.PolizaEstadoPendiente,
		PolizaVigenciaFin: helper.FormatFecha(helper.SumarDias(hoy, 40)),
	}
	if !RenovacionProxima(p, hoy, 45) {
		t.Errorf("vigencia a 40 días con ventana 45 debe estar próxima")
	}
	// la misma póliza cancelada queda fuera
	p.PolizaEstado = model.PolizaEstadoCancelada
	if RenovacionProxima(p, hoy, 45) {
		t.Errorf("una póliza cancelada nunca está próxima a renovar")
	}
	// fuera de ventana
	p.PolizaEstado = model.PolizaEstadoPendiente
	p.PolizaVigenciaFin = helper.FormatFecha(helper.SumarDias(hoy, 46))
	if RenovacionProxima(p, hoy, 45) {
		t.Errorf("vigencia a 46 días con ventana 45 debe quedar fuera")
	}
	// ya expirada tampoco cuenta como próxima
	p.PolizaVigenciaFin = helper.FormatFecha(helper.SumarDias(hoy, -1))
	if RenovacionProxima(p, hoy, 45) {
		t.Errorf("vigencia pasada no es renovación próxima")
	}
}
