// file: internals/features/notificaciones/service/resumen.go
package service

import (
	"bytes"
	"html/template"
	"time"

	polizaModel "aseguradora_backend/internals/features/polizas/model"
	polizaService "aseguradora_backend/internals/features/polizas/service"
	helper "aseguradora_backend/internals/helpers"
)

// =========================================================
// COMPOSITOR DEL RESUMEN DIARIO
// Una sección por bucket no vacío; si un bucket está vacío se muestra
// una línea de "todo al día" en vez de una tabla vacía. Si no hay nada
// urgente en ningún bucket, el envío entero se suprime (vacio=true).
// =========================================================

type datosResumen struct {
	Fecha        string
	Vencidos     []polizaService.PolizaCobro
	Proximos     []polizaService.PolizaCobro
	Renovaciones []polizaService.PolizaRenovacion
}

var funcionesResumen = template.FuncMap{
	"moneda": helper.FormatMoneda,
	"cliente": func(p polizaModel.Poliza) string {
		if p.Cliente == nil {
			return "(sin cliente)"
		}
		nombre := p.Cliente.ClienteNombre
		if p.Cliente.ClienteApellidos != nil {
			nombre += " " + *p.Cliente.ClienteApellidos
		}
		return nombre
	},
	"telefono": func(p polizaModel.Poliza) string {
		if p.Cliente == nil || p.Cliente.ClienteTelefono == nil {
			return "-"
		}
		return *p.Cliente.ClienteTelefono
	},
}

const plantillaResumen = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="font-family: Arial, sans-serif; color: #222;">
<h2>Resumen diario de cartera ({{.Fecha}})</h2>

<h3 style="color:#c0392b;">Recibos vencidos</h3>
{{if .Vencidos}}
<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;">
<tr style="background:#f5f5f5;"><th>Póliza</th><th>Cliente</th><th>Teléfono</th><th>Aseguradora</th><th>Fecha recibo</th><th>Días</th><th>Prima</th></tr>
{{range .Vencidos}}
<tr>
<td>{{.Poliza.PolizaNumero}}</td>
<td>{{cliente .Poliza}}</td>
<td>{{telefono .Poliza}}</td>
<td>{{.Poliza.PolizaAseguradora}}</td>
<td>{{.FechaRecibo}}</td>
<td style="color:#c0392b;">{{.DiasRestantes}}</td>
<td>{{moneda .PrimaTotal}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>✅ Sin recibos vencidos.</p>
{{end}}

<h3 style="color:#e67e22;">Cobros próximos</h3>
{{if .Proximos}}
<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;">
<tr style="background:#f5f5f5;"><th>Póliza</th><th>Cliente</th><th>Teléfono</th><th>Aseguradora</th><th>Fecha recibo</th><th>Días</th><th>Prima</th></tr>
{{range .Proximos}}
<tr>
<td>{{.Poliza.PolizaNumero}}</td>
<td>{{cliente .Poliza}}</td>
<td>{{telefono .Poliza}}</td>
<td>{{.Poliza.PolizaAseguradora}}</td>
<td>{{.FechaRecibo}}</td>
<td>{{.DiasRestantes}}</td>
<td>{{moneda .PrimaTotal}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>✅ Sin cobros en ventana.</p>
{{end}}

<h3 style="color:#2980b9;">Renovaciones próximas</h3>
{{if .Renovaciones}}
<table border="1" cellpadding="6" cellspacing="0" style="border-collapse:collapse;">
<tr style="background:#f5f5f5;"><th>Póliza</th><th>Cliente</th><th>Teléfono</th><th>Aseguradora</th><th>Fin de vigencia</th><th>Días</th></tr>
{{range .Renovaciones}}
<tr>
<td>{{.Poliza.PolizaNumero}}</td>
<td>{{cliente .Poliza}}</td>
<td>{{telefono .Poliza}}</td>
<td>{{.Poliza.PolizaAseguradora}}</td>
<td>{{.Poliza.PolizaVigenciaFin}}</td>
<td>{{.DiasRestantes}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>✅ Sin renovaciones en ventana.</p>
{{end}}

<p style="color:#888;font-size:12px;">Correo generado automáticamente por el panel de la agencia.</p>
</body>
</html>`

var tmplResumen = template.Must(template.New("resumen").Funcs(funcionesResumen).Parse(plantillaResumen))

// ComponerResumen construye el HTML del correo diario.
// vacio=true → no hay nada que avisar y el envío debe suprimirse.
func ComponerResumen(cobros *polizaService.PlanCobrosResultado, renov *polizaService.PlanRenovacionesResultado, hoy time.Time) (string, bool, error) {
	datos := datosResumen{Fecha: helper.FormatFecha(hoy)}
	if cobros != nil {
		datos.Vencidos = cobros.Vencidos
		datos.Proximos = cobros.Proximos
	}
	if renov != nil {
		datos.Renovaciones = renov.Proximas
	}

	vacio := len(datos.Vencidos) == 0 && len(datos.Proximos) == 0 && len(datos.Renovaciones) == 0
	if vacio {
		return "", true, nil
	}

	var buf bytes.Buffer
	if err := tmplResumen.Execute(&buf, datos); err != nil {
		return "", false, err
	}
	return buf.String(), false, nil
}
