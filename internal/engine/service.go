package engine

import (
	"errors"
	"fmt"
	"time"

	"railsim/internal/domain"
	"railsim/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Mode - какие запросы выполнять.
type Mode uint8

const (
	ModeFirstCollision Mode = 1 << iota
	ModeLastCart

	ModeBoth = ModeFirstCollision | ModeLastCart
)

// ParseMode разбирает значение флага -mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "first":
		return ModeFirstCollision, true
	case "last":
		return ModeLastCart, true
	case "both", "":
		return ModeBoth, true
	}
	return 0, false
}

// Report - итог прогона обоих запросов.
type Report struct {
	RunID        uuid.UUID
	StartedAt    time.Time
	InitialCarts int
	Rows, Cols   int

	FirstCollision *domain.Collision
	LastCart       *domain.Position

	// Ошибки запросов. Запросы независимы: провал одного не отменяет другой.
	FirstErr error
	LastErr  error

	// Ticks и Collisions - от самого длинного из выполненных запросов
	Ticks      int
	Collisions []domain.Collision

	// Final - сетка после последнего запроса (для текстового снимка)
	Final *domain.Grid
}

// Run выполняет выбранные запросы. Каждый запрос получает свою копию сетки,
// поэтому они не зависят друг от друга, а исходная сетка остается нетронутой.
// Отчет возвращается всегда, даже частичный; ошибка - объединение ошибок запросов.
func Run(grid *domain.Grid, cfg Config, mode Mode) (*Report, error) {
	rows, cols := grid.Dimensions()
	report := &Report{
		RunID:        uuid.New(),
		StartedAt:    time.Now(),
		InitialCarts: grid.CountCarts(),
		Rows:         rows,
		Cols:         cols,
	}

	runLog := logger.Log.WithFields(logrus.Fields{
		"component": "runner",
		"run_id":    report.RunID.String(),
	})
	runLog.WithFields(logrus.Fields{
		"rows":  rows,
		"cols":  cols,
		"carts": report.InitialCarts,
	}).Info("Simulation started")

	if mode&ModeFirstCollision != 0 {
		sim := NewSimulationWithID(report.RunID, grid.Clone())
		if c, err := sim.FirstCollision(cfg.MaxTicks); err != nil {
			report.FirstErr = fmt.Errorf("first collision: %w", err)
			runLog.WithError(err).Warn("First collision query failed")
		} else {
			report.FirstCollision = &c
			report.absorb(sim)
		}
	}

	if mode&ModeLastCart != 0 {
		sim := NewSimulationWithID(report.RunID, grid.Clone())
		if pos, err := sim.LastCart(cfg.MaxTicks); err != nil {
			report.LastErr = fmt.Errorf("last cart: %w", err)
			runLog.WithError(err).Warn("Last cart query failed")
		} else {
			report.LastCart = &pos
			report.absorb(sim)
		}
	}

	runLog.WithFields(logrus.Fields{
		"ticks":      report.Ticks,
		"collisions": len(report.Collisions),
		"elapsed":    time.Since(report.StartedAt).String(),
	}).Info("Simulation finished")

	return report, errors.Join(report.FirstErr, report.LastErr)
}

// HasResults - выполнился ли успешно хотя бы один запрос.
func (r *Report) HasResults() bool {
	return r.FirstCollision != nil || r.LastCart != nil
}

func (r *Report) absorb(sim *Simulation) {
	if sim.CurrentTick < r.Ticks {
		return
	}
	r.Ticks = sim.CurrentTick
	r.Collisions = sim.History
	r.Final = sim.Grid
}

// Journal собирает журнал столкновений для сохранения.
func (r *Report) Journal() *domain.Journal {
	return &domain.Journal{
		RunID:        r.RunID,
		Timestamp:    r.StartedAt.Unix(),
		Rows:         r.Rows,
		Cols:         r.Cols,
		InitialCarts: r.InitialCarts,
		Ticks:        r.Ticks,
		Survivor:     r.LastCart,
		Collisions:   r.Collisions,
	}
}
