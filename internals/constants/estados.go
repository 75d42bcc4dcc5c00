// file: internals/constants/estados.go
package constants

// =========================================================
// ESTADOS DE PÓLIZA
// Los valores se guardan tal cual en polizas.poliza_estado.
// paid y cancelled son terminales: la reconciliación nunca los toca.
// =========================================================

const (
	EstadoPendiente = "pending"
	EstadoPagada    = "paid"
	EstadoVencida   = "overdue"
	EstadoCancelada = "cancelled"
)

// Severidad de un cobro (solo presentación, no se persiste)
const (
	SeveridadVencido = "vencido" // días restantes < 0
	SeveridadUrgente = "urgente" // 0–3 días
	SeveridadNormal  = "normal"  // 4+ días
)

// =========================================================
// CLAVES DE CONFIGURACIÓN (tabla configuraciones, key-value)
// =========================================================

const (
	ClaveEmailNotificaciones = "email_notificaciones"
	ClaveHoraNotificaciones  = "hora_notificaciones"
	ClaveCampoFechaCobros    = "campo_fecha_cobros" // "inicio" | "fin"
)

// Valores admitidos para campo_fecha_cobros
const (
	CampoFechaInicio = "inicio"
	CampoFechaFin    = "fin"
)

// Defaults
const (
	HoraNotificacionesDefault  = "09:00"
	VentanaCobrosDias          = 15
	VentanaRenovacionesDias    = 45
	RetrovisorRenovacionesDias = 90
)
