// file: internals/helpers/fechas.go
package helper

import (
	"log"
	"math"
	"os"
	"strings"
	"sync"
	"time"
)

/* ===============================
   Zona horaria de la agencia
   Una sola zona fija para todo el proceso (scheduler incluido).
=================================*/

var (
	zonaOnce sync.Once
	zona     *time.Location
)

// ZonaAgencia devuelve la zona fija de la agencia.
// Default: Europe/Madrid. Override con AGENCIA_TZ. Último fallback: UTC.
func ZonaAgencia() *time.Location {
	zonaOnce.Do(func() {
		nombre := os.Getenv("AGENCIA_TZ")
		if nombre == "" {
			nombre = "Europe/Madrid"
		}
		loc, err := time.LoadLocation(nombre)
		if err != nil {
			log.Printf("[FECHAS] zona %q inválida, usando UTC: %v", nombre, err)
			loc = time.UTC
		}
		zona = loc
	})
	return zona
}

// HoyAgencia devuelve "hoy" como fecha pura (medianoche UTC) según el reloj
// de pared de la agencia. Todas las comparaciones de vencimientos parten de aquí.
func HoyAgencia() time.Time {
	ahora := time.Now().In(ZonaAgencia())
	return time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, time.UTC)
}

/* ===============================
   Fechas puras (sin hora)
=================================*/

// ParseFecha acepta "YYYY-MM-DD" o un RFC3339 del que toma solo la parte de fecha.
// Devuelve la fecha a medianoche UTC.
func ParseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatFecha → "YYYY-MM-DD" (el formato con el que se guarda en la BD).
func FormatFecha(t time.Time) string {
	return t.Format("2006-01-02")
}

// SumarDias sobre una fecha pura.
func SumarDias(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DiasHasta calcula ceil((fecha - ref) / 24h). Negativo = ya pasó.
// Con fechas puras a medianoche el resultado es exacto día a día,
// así que DiasHasta es antisimétrica al invertir los argumentos.
// Fecha no parseable → 0 (mismo criterio permisivo que ParseMoneda).
func DiasHasta(fecha string, ref time.Time) int {
	t, ok := ParseFecha(fecha)
	if !ok {
		return 0
	}
	return int(math.Ceil(t.Sub(ref).Hours() / 24))
}
