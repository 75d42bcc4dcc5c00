// file: internals/helpers/moneda.go
package helper

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

/* ===============================
   Importes
   Las primas se guardan como texto formateado ("1.234,56 €") y se
   re-parsean en CADA lectura. Basura → 0, nunca error.
=================================*/

// ParseMoneda convierte un importe en texto libre a float64.
// Quita todo lo que no sea dígito, '.', ',' o '-'; después decide el
// separador decimal: el que aparezca más a la derecha gana (soporta
// tanto "1.234,56" es-ES como "1,234.56" en-US).
func ParseMoneda(raw string) float64 {
	limpio := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			return r
		default:
			return -1
		}
	}, raw)
	if limpio == "" || limpio == "-" {
		return 0
	}

	iPunto := strings.LastIndexByte(limpio, '.')
	iComa := strings.LastIndexByte(limpio, ',')
	switch {
	case iComa > iPunto:
		// coma decimal: los puntos son de miles
		limpio = strings.ReplaceAll(limpio, ".", "")
		ult := strings.LastIndexByte(limpio, ',')
		limpio = strings.ReplaceAll(limpio[:ult], ",", "") + "." + limpio[ult+1:]
	case iPunto >= 0:
		// punto decimal: las comas son de miles
		limpio = strings.ReplaceAll(limpio, ",", "")
	}

	v, err := strconv.ParseFloat(limpio, 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatMoneda formatea en estilo es-ES: "1.234,56 €".
func FormatMoneda(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cent := int64(math.Round(v * 100))
	dec := cent % 100
	ent := strconv.FormatInt(cent/100, 10)

	var b strings.Builder
	for i := 0; i < len(ent); i++ {
		if i > 0 && (len(ent)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(ent[i])
	}
	out := fmt.Sprintf("%s,%02d €", b.String(), dec)
	if neg {
		out = "-" + out
	}
	return out
}
