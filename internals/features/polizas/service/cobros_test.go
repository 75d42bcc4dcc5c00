package service

import (
	"testing"

	"aseguradora_backend/internals/constants"
	"aseguradora_backend/internals/features/polizas/model"
	helper "aseguradora_backend/internals/helpers"
)

func TestSeveridad(t *testing.T) {
	casos := []struct {
		dias int
		want string
	}{
		{-10, constants.SeveridadVencido},
		{-1, constants.SeveridadVencido},
		{0, constants.SeveridadUrgente},
		{3, constants.SeveridadUrgente},
		{4, constants.SeveridadNormal},
		{15, constants.SeveridadNormal},
	}
	for _, c := range casos {
		if got := Severidad(c.dias); got != c.want {
			t.Errorf("Severidad(%d) = %s, esperado %s", c.dias, got, c.want)
		}
	}
}

// Escenario: recibo vencido hace 5 días, estado pending
func TestEnriquecerCobroVencido(t *testing.T) {
	p := model.Poliza{
		PolizaEstado:     model.PolizaEstadoPendiente,
		PolizaReciboFin:  helper.FormatFecha(helper.SumarDias(hoy, -5)),
		PolizaPrimaTotal: "1.250,00 €",
	}
	fila := EnriquecerCobro(p, hoy, constants.CampoFechaFin)
	if fila.DiasRestantes != -5 {
		t.Errorf("días restantes = %d, esperado -5", fila.DiasRestantes)
	}
	if fila.Severidad != constants.SeveridadVencido {
		t.Errorf("severidad = %s, esperado vencido", fila.Severidad)
	}
	if fila.PrimaTotal != 1250.0 {
		t.Errorf("prima re-parseada = %v, esperado 1250", fila.PrimaTotal)
	}
}

// Escenario: recibo a 10 días con ventana de 15, estado pending
func TestEnriquecerCobroProximo(t *testing.T) {
	p := model.Poliza{
		PolizaEstado:    model.PolizaEstadoPendiente,
		PolizaReciboFin: helper.FormatFecha(helper.SumarDias(hoy, 10)),
	}
	fila := EnriquecerCobro(p, hoy, constants.CampoFechaFin)
	if fila.DiasRestantes != 10 {
		t.Errorf("días restantes = %d, esperado 10", fila.DiasRestantes)
	}
	if fila.Severidad != constants.SeveridadNormal {
		t.Errorf("severidad = %s, esperado normal", fila.Severidad)
	}
}

// El campo configurable cambia qué límite del recibo manda
func TestEnriquecerCobroCampoConfigurable(t *testing.T) {
	p := model.Poliza{
		PolizaEstado:       model.PolizaEstadoPendiente,
		PolizaReciboInicio: helper.FormatFecha(helper.SumarDias(hoy, 2)),
		PolizaReciboFin:    helper.FormatFecha(helper.SumarDias(hoy, 30)),
	}
	porInicio := EnriquecerCobro(p, hoy, constants.CampoFechaInicio)
	if porInicio.DiasRestantes != 2 || porInicio.Severidad != constants.SeveridadUrgente {
		t.Errorf("por inicio: %d/%s, esperado 2/urgente", porInicio.DiasRestantes, porInicio.Severidad)
	}
	porFin := EnriquecerCobro(p, hoy, constants.CampoFechaFin)
	if porFin.DiasRestantes != 30 || porFin.Severidad != constants.SeveridadNormal {
		t.Errorf("por fin: %d/%s, esperado 30/normal", porFin.DiasRestantes, porFin.Severidad)
	}
}

// La fila devuelve el estado reclasificado contra hoy, no el de la columna
func TestEnriquecerCobroReclasificaEstado(t *testing.T) {
	atrasada := model.Poliza{
		PolizaEstado:    model.PolizaEstadoPendiente,
		PolizaReciboFin: helper.FormatFecha(helper.SumarDias(hoy, -3)),
	}
	if got := EnriquecerCobro(atrasada, hoy, constants.CampoFechaFin).Poliza.PolizaEstado; got != model.PolizaEstadoVencida {
		t.Errorf("estado = %s, esperado overdue", got)
	}
	// los terminales no se tocan aunque la fecha diga otra cosa
	pagada := model.Poliza{
		PolizaEstado:    model.PolizaEstadoPagada,
		PolizaReciboFin: helper.FormatFecha(helper.SumarDias(hoy, -3)),
	}
	if got := EnriquecerCobro(pagada, hoy, constants.CampoFechaFin).Poliza.PolizaEstado; got != model.PolizaEstadoPagada {
		t.Errorf("estado = %s, esperado paid", got)
	}
}

// La fecha efectiva viaja en la fila para que el correo y el dashboard
// muestren el mismo límite que calculó los días
func TestEnriquecerCobroFechaEfectiva(t *testing.T) {
	p := model.Poliza{
		PolizaEstado:       model.PolizaEstadoPendiente,
		PolizaReciboInicio: helper.FormatFecha(helper.SumarDias(hoy, 2)),
		PolizaReciboFin:    helper.FormatFecha(helper.SumarDias(hoy, 30)),
	}
	if got := EnriquecerCobro(p, hoy, constants.CampoFechaInicio).FechaRecibo; got != p.PolizaReciboInicio {
		t.Errorf("fecha efectiva = %s, esperado %s", got, p.PolizaReciboInicio)
	}
	if got := EnriquecerCobro(p, hoy, constants.CampoFechaFin).FechaRecibo; got != p.PolizaReciboFin {
		t.Errorf("fecha efectiva = %s, esperado %s", got, p.PolizaReciboFin)
	}
}

func TestColumnaCobros(t *testing.T) {
	if columnaCobros(constants.CampoFechaInicio) != "poliza_recibo_inicio" {
		t.Errorf("campo inicio mal resuelto")
	}
	if columnaCobros(constants.CampoFechaFin) != "poliza_recibo_fin" {
		t.Errorf("campo fin mal resuelto")
	}
	// valor desconocido cae al default (fin)
	if columnaCobros("lo-que-sea") != "poliza_recibo_fin" {
		t.Errorf("default debe ser recibo_fin")
	}
}
