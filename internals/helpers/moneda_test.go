package helper

import (
	"math"
	"testing"
)

func TestParseMoneda(t *testing.T) {
	casos := []struct {
		in   string
		want float64
	}{
		{"1.234,56 €", 1234.56},
		{"1,234.56 EUR", 1234.56},
		{"500", 500},
		{"  89,90  ", 89.90},
		{"89.90", 89.90},
		{"-120,00 €", -120},
		{"", 0},
		{"sin importe", 0},
		{"€", 0},
		{"3.000", 3000},
	}
	for _, c := range casos {
		if got := ParseMoneda(c.in); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ParseMoneda(%q) = %v, esperado %v", c.in, got, c.want)
		}
	}
}

func TestParseMonedaRoundTrip(t *testing.T) {
	valores := []float64{0, 0.01, 9.99, 100, 1234.56, 98765.43, 1000000}
	for _, v := range valores {
		out := ParseMoneda(FormatMoneda(v))
		if math.Abs(out-v) > 0.005 {
			t.Errorf("round-trip %v → %q → %v", v, FormatMoneda(v), out)
		}
	}
}

func TestFormatMoneda(t *testing.T) {
	if got := FormatMoneda(1234.5); got != "1.234,50 €" {
		t.Errorf("FormatMoneda(1234.5) = %q", got)
	}
	if got := FormatMoneda(-42); got != "-42,00 €" {
		t.Errorf("FormatMoneda(-42) = %q", got)
	}
}
