package helper

import (
	"testing"
	"time"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseFecha(t *testing.T) {
	if _, ok := ParseFecha("2026-08-30"); !ok {
		t.Fatalf("fecha ISO válida rechazada")
	}
	if f, ok := ParseFecha("2026-08-30T00:00:00Z"); !ok || f != fecha(2026, 8, 30) {
		t.Fatalf("prefijo RFC3339 no aceptado: %v %v", f, ok)
	}
	if _, ok := ParseFecha("30/08/2026"); ok {
		t.Fatalf("formato no ISO aceptado")
	}
}

func TestDiasHasta(t *testing.T) {
	hoy := fecha(2026, 8, 30)

	if d := DiasHasta("2026-09-04", hoy); d != 5 {
		t.Errorf("esperados 5 días, got %d", d)
	}
	if d := DiasHasta("2026-08-25", hoy); d != -5 {
		t.Errorf("esperados -5 días, got %d", d)
	}
	if d := DiasHasta("2026-08-30", hoy); d != 0 {
		t.Errorf("mismo día debe dar 0, got %d", d)
	}
	if d := DiasHasta("no-es-fecha", hoy); d != 0 {
		t.Errorf("fecha inválida debe dar 0, got %d", d)
	}
}

func TestDiasHastaAntisimetrica(t *testing.T) {
	a := fecha(2026, 1, 15)
	b := fecha(2026, 3, 2)
	ida := DiasHasta(FormatFecha(b), a)
	vuelta := DiasHasta(FormatFecha(a), b)
	if ida != -vuelta {
		t.Errorf("antisimetría rota: %d vs %d", ida, vuelta)
	}
}

func TestSumarDias(t *testing.T) {
	if got := SumarDias(fecha(2026, 2, 27), 2); got != fecha(2026, 3, 1) {
		t.Errorf("SumarDias cruzando fin de mes: %v", got)
	}
}
