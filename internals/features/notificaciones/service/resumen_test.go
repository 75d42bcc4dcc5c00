package service

import (
	"strings"
	"testing"
	"time"

	"aseguradora_backend/internals/constants"
	clienteModel "aseguradora_backend/internals/features/clientes/model"
	polizaModel "aseguradora_backend/internals/features/polizas/model"
	polizaService "aseguradora_backend/internals/features/polizas/service"
	helper "aseguradora_backend/internals/helpers"
)

var hoy = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

func clientePrueba(apellidos string) *clienteModel.Cliente {
	return &clienteModel.Cliente{
		ClienteNombre:    "Ana",
		ClienteApellidos: &apellidos,
	}
}

// Sin nada urgente en ningún bucket no debe haber correo
func TestComponerResumenSuprimido(t *testing.T) {
	cobros := &polizaService.PlanCobrosResultado{}
	renov := &polizaService.PlanRenovacionesResultado{}

	html, vacio, err := ComponerResumen(cobros, renov, hoy)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !vacio {
		t.Fatalf("con buckets vacíos el resumen debe suprimirse")
	}
	if html != "" {
		t.Fatalf("no debe generarse HTML cuando se suprime")
	}
}

// Expiradas/canceladas solas tampoco justifican un correo diario
func TestComponerResumenSoloHistorico(t *testing.T) {
	renov := &polizaService.PlanRenovacionesResultado{
		Expiradas:  []polizaModel.Poliza{{PolizaNumero: "EXP-1"}},
		Canceladas: []polizaModel.Poliza{{PolizaNumero: "CAN-1"}},
	}
	_, vacio, err := ComponerResumen(&polizaService.PlanCobrosResultado{}, renov, hoy)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if !vacio {
		t.Fatalf("histórico sin nada próximo no debe disparar envío")
	}
}

func TestComponerResumenConVencidos(t *testing.T) {
	nombre := "García"
	cobros := &polizaService.PlanCobrosResultado{
		Vencidos: []polizaService.PolizaCobro{{
			Poliza: polizaModel.Poliza{
				PolizaNumero:      "POL-001",
				PolizaAseguradora: "Mapfre",
				PolizaReciboFin:   "2026-08-25",
				Cliente:           clientePrueba(nombre),
			},
			FechaRecibo:   "2026-08-25",
			DiasRestantes: -5,
			Severidad:     "vencido",
			PrimaTotal:    1250,
		}},
	}

	html, vacio, err := ComponerResumen(cobros, &polizaService.PlanRenovacionesResultado{}, hoy)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if vacio {
		t.Fatalf("con un recibo vencido no se suprime")
	}
	for _, frag := range []string{"POL-001", "Mapfre", "2026-08-25", "-5", "1.250,00", "Ana García"} {
		if !strings.Contains(html, frag) {
			t.Errorf("el HTML no contiene %q", frag)
		}
	}
	// sección de renovaciones vacía → línea positiva, no tabla
	if !strings.Contains(html, "Sin renovaciones en ventana") {
		t.Errorf("falta la línea de 'todo al día' para renovaciones")
	}
}

// Con campo_fecha_cobros=inicio la fecha del correo debe ser la misma
// que ordena la fila y de la que salen los días restantes
func TestComponerResumenFechaSegunCampo(t *testing.T) {
	inicio := helper.FormatFecha(helper.SumarDias(hoy, 2))
	fin := helper.FormatFecha(helper.SumarDias(hoy, 30))
	fila := polizaService.EnriquecerCobro(polizaModel.Poliza{
		PolizaNumero:       "POL-300",
		PolizaEstado:       polizaModel.PolizaEstadoPendiente,
		PolizaReciboInicio: inicio,
		PolizaReciboFin:    fin,
	}, hoy, constants.CampoFechaInicio)
	if fila.DiasRestantes != 2 {
		t.Fatalf("días restantes = %d, esperado 2", fila.DiasRestantes)
	}

	cobros := &polizaService.PlanCobrosResultado{Proximos: []polizaService.PolizaCobro{fila}}
	html, vacio, err := ComponerResumen(cobros, &polizaService.PlanRenovacionesResultado{}, hoy)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if vacio {
		t.Fatalf("un cobro próximo justifica el envío")
	}
	if !strings.Contains(html, inicio) {
		t.Errorf("el correo debe mostrar la fecha que manda (%s)", inicio)
	}
	if strings.Contains(html, fin) {
		t.Errorf("el correo no debe mostrar recibo_fin (%s) cuando manda inicio", fin)
	}
}

func TestComponerResumenSoloRenovaciones(t *testing.T) {
	renov := &polizaService.PlanRenovacionesResultado{
		Proximas: []polizaService.PolizaRenovacion{{
			Poliza: polizaModel.Poliza{
				PolizaNumero:      "POL-777",
				PolizaVigenciaFin: "2026-10-09",
			},
			DiasRestantes: 40,
		}},
	}
	html, vacio, err := ComponerResumen(&polizaService.PlanCobrosResultado{}, renov, hoy)
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}
	if vacio {
		t.Fatalf("una renovación próxima justifica el envío")
	}
	if !strings.Contains(html, "POL-777") || !strings.Contains(html, "2026-10-09") {
		t.Errorf("falta la renovación en el HTML")
	}
	if !strings.Contains(html, "Sin recibos vencidos") {
		t.Errorf("falta la línea positiva de vencidos")
	}
}
