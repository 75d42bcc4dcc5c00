// file: internals/features/notificaciones/service/scheduler.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"aseguradora_backend/internals/constants"
	"aseguradora_backend/internals/features/notificaciones/model"
	polizaService "aseguradora_backend/internals/features/polizas/service"
	helper "aseguradora_backend/internals/helpers"
)

// =========================================================
// PROGRAMADOR DEL RESUMEN DIARIO
// Un único timer por proceso. Reconfigurar = cancelar el anterior y
// crear el nuevo bajo el mismo lock: nunca hay dos entradas armadas.
// Si el proceso se escala horizontalmente, solo la instancia primaria
// debe llamar a Iniciar (convención de despliegue).
// =========================================================

type Programador struct {
	mu      sync.Mutex
	db      *gorm.DB
	mailer  Mailer
	cron    *cron.Cron
	entrada cron.EntryID
	armado  bool
}

func NuevoProgramador(db *gorm.DB, mailer Mailer) *Programador {
	return &Programador{
		db:     db,
		mailer: mailer,
		cron: cron.New(
			cron.WithLocation(helper.ZonaAgencia()),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
	}
}

// Iniciar lee la hora configurada (default 09:00) y arma el timer diario.
func (p *Programador) Iniciar() error {
	hora := model.LeerValor(p.db, constants.ClaveHoraNotificaciones, constants.HoraNotificacionesDefault)
	return p.Reconfigurar(hora)
}

// Reconfigurar aplica una nueva hora sin reiniciar el proceso.
// Cancela la entrada anterior antes de crear la nueva y arranca el cron
// si aún no corre (si Iniciar falló por una hora corrupta almacenada, el
// primer PUT válido deja el timer en marcha igualmente).
func (p *Programador) Reconfigurar(hora string) error {
	spec, err := cronSpec(hora)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.armado {
		p.cron.Remove(p.entrada)
		p.armado = false
	}
	id, err := p.cron.AddFunc(spec, p.Barrido)
	if err != nil {
		return err
	}
	p.entrada = id
	p.armado = true
	p.cron.Start() // no-op si ya está corriendo
	log.Printf("[SCHEDULER] resumen diario armado a las %s (%s)", hora, helper.ZonaAgencia())
	return nil
}

func (p *Programador) Detener() {
	p.cron.Stop()
}

// Entradas devuelve cuántas entradas hay registradas (para verificación).
func (p *Programador) Entradas() int {
	return len(p.cron.Entries())
}

// cronSpec convierte "HH:MM" al spec diario de cron.
func cronSpec(hora string) (string, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(hora))
	if err != nil {
		return "", fmt.Errorf("hora inválida %q: %w", hora, err)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

// Barrido ejecuta el ciclo completo: reconciliar, planificar cobros y
// renovaciones, componer y enviar (o suprimir). TODOS los errores se
// tragan aquí con log: el timer queda armado y mañana se reintenta.
func (p *Programador) Barrido() {
	hoy := helper.HoyAgencia()
	log.Printf("[SCHEDULER] barrido diario %s", helper.FormatFecha(hoy))

	if _, err := polizaService.ReconciliarEstados(p.db, hoy); err != nil {
		log.Printf("[SCHEDULER] reconciliación falló, barrido abortado: %v", err)
		return
	}

	destino := model.LeerValor(p.db, constants.ClaveEmailNotificaciones, "")
	if destino == "" {
		log.Printf("[SCHEDULER] email_notificaciones sin configurar, barrido en vacío")
		return
	}

	campo := model.LeerValor(p.db, constants.ClaveCampoFechaCobros, constants.CampoFechaFin)
	cobros, err := polizaService.PlanCobros(p.db, hoy, polizaService.OpcionesCobros{
		VentanaDias: constants.VentanaCobrosDias,
		CampoFecha:  campo,
	})
	if err != nil {
		log.Printf("[SCHEDULER] plan de cobros falló, barrido abortado: %v", err)
		return
	}

	renov, err := polizaService.PlanRenovaciones(context.Background(), p.db, hoy, polizaService.OpcionesRenovaciones{
		VentanaDias:    constants.VentanaRenovacionesDias,
		RetrovisorDias: constants.RetrovisorRenovacionesDias,
	})
	if err != nil {
		log.Printf("[SCHEDULER] plan de renovaciones falló, barrido abortado: %v", err)
		return
	}

	html, vacio, err := ComponerResumen(cobros, renov, hoy)
	if err != nil {
		log.Printf("[SCHEDULER] composición del resumen falló: %v", err)
		return
	}
	if vacio {
		log.Printf("[RESUMEN] todo al día, envío suprimido")
		return
	}

	asunto := fmt.Sprintf("Resumen diario de cartera (%s)", helper.FormatFecha(hoy))
	if err := p.mailer.Enviar(destino, asunto, html); err != nil {
		// sin reintento dentro del mismo día
		log.Printf("[SCHEDULER] envío a %s falló: %v", destino, err)
		return
	}
	log.Printf("[SCHEDULER] resumen enviado a %s", destino)
}
