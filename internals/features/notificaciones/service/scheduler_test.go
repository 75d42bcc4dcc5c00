package service

import (
	"testing"
)

type mailerFake struct {
	Enviados int
	Ultimo   string
}

func (m *mailerFake) Enviar(destino, asunto, html string) error {
	m.Enviados++
	m.Ultimo = destino
	return nil
}

func TestCronSpec(t *testing.T) {
	casos := []struct {
		hora string
		want string
		ok   bool
	}{
		{"09:00", "0 9 * * *", true},
		{"17:45", "45 17 * * *", true},
		{"00:00", "0 0 * * *", true},
		{" 08:30 ", "30 8 * * *", true},
		{"25:00", "", false},
		{"9h30", "", false},
		{"", "", false},
	}
	for _, c := range casos {
		got, err := cronSpec(c.hora)
		if c.ok && (err != nil || got != c.want) {
			t.Errorf("cronSpec(%q) = %q, %v; esperado %q", c.hora, got, err, c.want)
		}
		if !c.ok && err == nil {
			t.Errorf("cronSpec(%q) debería fallar", c.hora)
		}
	}
}

// Reconfigurar dos veces seguidas deja exactamente UNA entrada armada
// y la entrada anterior queda invalidada.
func TestReconfigurarSinDuplicados(t *testing.T) {
	p := NuevoProgramador(nil, &mailerFake{})
	defer p.Detener()

	if err := p.Reconfigurar("09:00"); err != nil {
		t.Fatalf("primera reconfiguración falló: %v", err)
	}
	primera := p.entrada

	if err := p.Reconfigurar("18:30"); err != nil {
		t.Fatalf("segunda reconfiguración falló: %v", err)
	}
	segunda := p.entrada

	if p.Entradas() != 1 {
		t.Fatalf("debe quedar exactamente 1 entrada armada, hay %d", p.Entradas())
	}
	if primera == segunda {
		t.Fatalf("la entrada anterior debe sustituirse, no reutilizarse")
	}
	// la entrada vieja ya no existe en el cron
	for _, e := range p.cron.Entries() {
		if e.ID == primera {
			t.Fatalf("la entrada anterior sigue registrada")
		}
	}
}

func TestReconfigurarHoraInvalidaMantieneTimer(t *testing.T) {
	p := NuevoProgramador(nil, &mailerFake{})
	defer p.Detener()
	if err := p.Reconfigurar("09:00"); err != nil {
		t.Fatalf("reconfiguración válida falló: %v", err)
	}
	if err := p.Reconfigurar("no-es-hora"); err == nil {
		t.Fatalf("hora inválida debe rechazarse")
	}
	// el timer anterior sigue armado: la hora se valida antes de cancelar
	if p.Entradas() != 1 {
		t.Fatalf("la hora inválida no debe desarmar el timer, hay %d entradas", p.Entradas())
	}
}

// Si el arranque falla por una hora corrupta almacenada, el primer PUT
// válido debe dejar el cron corriendo, no solo una entrada registrada.
func TestReconfigurarArrancaTrasHoraCorrupta(t *testing.T) {
	p := NuevoProgramador(nil, &mailerFake{})
	defer p.Detener()

	if err := p.Reconfigurar("no-es-hora"); err == nil {
		t.Fatalf("hora corrupta debe rechazarse")
	}
	if err := p.Reconfigurar("10:15"); err != nil {
		t.Fatalf("reconfiguración válida falló: %v", err)
	}
	// con el cron corriendo la entrada tiene próxima ejecución calculada
	entradas := p.cron.Entries()
	if len(entradas) != 1 {
		t.Fatalf("debe quedar 1 entrada, hay %d", len(entradas))
	}
	if entradas[0].Next.IsZero() {
		t.Fatalf("el cron no está corriendo: la entrada no tiene próxima ejecución")
	}
}
