// file: internals/features/polizas/service/renovaciones.go
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"aseguradora_backend/internals/constants"
	"aseguradora_backend/internals/features/polizas/model"
	helper "aseguradora_backend/internals/helpers"
)

// =========================================================
// PLANIFICADOR DE RENOVACIONES
// Tres consultas independientes despachadas en paralelo; si cualquiera
// falla se aborta el plan entero (no hay informe parcial de renovaciones).
// =========================================================

type OpcionesRenovaciones struct {
	VentanaDias    int // hacia delante, default 45
	RetrovisorDias int // hacia atrás, default 90
}

type PolizaRenovacion struct {
	Poliza        model.Poliza `json:"poliza"`
	DiasRestantes int          `json:"dias_restantes"`
}

type PlanRenovacionesResultado struct {
	Proximas   []PolizaRenovacion `json:"proximas"`
	Expiradas  []model.Poliza     `json:"expiradas"`
	Canceladas []model.Poliza     `json:"canceladas"`
}

func PlanRenovaciones(ctx context.Context, db *gorm.DB, hoy time.Time, opt OpcionesRenovaciones) (*PlanRenovacionesResultado, error) {
	if opt.VentanaDias <= 0 {
		opt.VentanaDias = constants.VentanaRenovacionesDias
	}
	if opt.RetrovisorDias <= 0 {
		opt.RetrovisorDias = constants.RetrovisorRenovacionesDias
	}

	desde := helper.FormatFecha(hoy)
	hasta := helper.FormatFecha(helper.SumarDias(hoy, opt.VentanaDias))
	retro := helper.FormatFecha(helper.SumarDias(hoy, -opt.RetrovisorDias))

	var (
		proximas   []model.Poliza
		expiradas  []model.Poliza
		canceladas []model.Poliza
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return db.WithContext(gctx).Model(&model.Poliza{}).
			Preload("Cliente").
			Where("poliza_deleted_at IS NULL").
			Where("poliza_estado <> ?", model.PolizaEstadoCancelada).
			Where("poliza_vigencia_fin >= ? AND poliza_vigencia_fin <= ?", desde, hasta).
			Order("poliza_vigencia_fin ASC").
			Find(&proximas).Error
	})

	g.Go(func() error {
		return db.WithContext(gctx).Model(&model.Poliza{}).
			Preload("Cliente").
			Where("poliza_deleted_at IS NULL").
			Where("poliza_estado <> ?", model.PolizaEstadoCancelada).
			Where("poliza_vigencia_fin >= ? AND poliza_vigencia_fin < ?", retro, desde).
			Order("poliza_vigencia_fin DESC").
			Find(&expiradas).Error
	})

	g.Go(func() error {
		return db.WithContext(gctx).Model(&model.Poliza{}).
			Preload("Cliente").
			Where("poliza_deleted_at IS NULL").
			Where("poliza_estado = ?", model.PolizaEstadoCancelada).
			Where("poliza_vigencia_fin >= ?", retro).
			Order("poliza_vigencia_fin DESC").
			Find(&canceladas).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &PlanRenovacionesResultado{
		Proximas:   armarRenovaciones(proximas, hoy, opt.VentanaDias),
		Expiradas:  expiradas,
		Canceladas: canceladas,
	}, nil
}

// armarRenovaciones pasa cada candidata por RenovacionProxima: la regla
// que decide el bucket es la misma en SQL y en memoria, y aquí manda la
// de memoria (una fecha ilegible en la columna no entra al informe).
func armarRenovaciones(candidatas []model.Poliza, hoy time.Time, ventanaDias int) []PolizaRenovacion {
	out := make([]PolizaRenovacion, 0, len(candidatas))
	for _, p := range candidatas {
		if !RenovacionProxima(p, hoy, ventanaDias) {
			continue
		}
		out = append(out, PolizaRenovacion{
			Poliza:        p,
			DiasRestantes: helper.DiasHasta(p.PolizaVigenciaFin, hoy),
		})
	}
	return out
}
