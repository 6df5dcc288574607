package engine

import (
	"fmt"

	"railsim/internal/domain"
	"railsim/internal/systems"
	"railsim/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Simulation владеет сеткой и продвигает ее по тикам.
// Однопоточная: на время тика сетка принадлежит только движку,
// читать ее из другой горутины нельзя (вагонетка временно не стоит ни в одной клетке).
type Simulation struct {
	ID   uuid.UUID
	Grid *domain.Grid

	CurrentTick int                // Сколько тиков уже сделано
	History     []domain.Collision // Все столкновения в порядке возникновения

	log *logrus.Entry
}

// NewSimulation берет сетку во владение. Копию не делает: если сетка нужна
// еще для чего-то, передайте grid.Clone().
func NewSimulation(grid *domain.Grid) *Simulation {
	return NewSimulationWithID(uuid.New(), grid)
}

// NewSimulationWithID - то же с заданным идентификатором прогона
// (несколько запросов одного Run пишут в лог под одним run_id).
func NewSimulationWithID(id uuid.UUID, grid *domain.Grid) *Simulation {
	return &Simulation{
		ID:   id,
		Grid: grid,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "tick_engine",
			"run_id":    id.String(),
		}),
	}
}

// Tick продвигает все вагонетки на один шаг и возвращает столкновения этого тика.
//
// Порядок обхода - часть контракта: клетки просматриваются в порядке чтения,
// по возрастанию Y, внутри строки по возрастанию X. От него зависит, какая
// вагонетка "приезжает второй" (ее клетка и считается местом столкновения),
// и он вместе с флагом Visited гарантирует, что вагонетка ходит ровно раз за тик,
// даже если уехала в клетку, которую обход еще не прошел.
//
// Ошибка - *domain.InvariantError (съезд с рельсов или невозможное движение)
// либо domain.ErrCartCountDrift (нарушено постусловие тика).
// Она фатальна: состояние сетки после нее не определено.
func (s *Simulation) Tick() ([]domain.Collision, error) {
	s.CurrentTick++

	// 1. Сбрасываем флаги прошлого тика
	before := 0
	s.Grid.ForEachCell(func(_ domain.Position, cell *domain.Cell) bool {
		if cell.Cart != nil {
			cell.Cart.Visited = false
			before++
		}
		return true
	})

	// 2. Основной проход. Индексы, а не ForEachCell: клетки меняются по ходу.
	var collisions []domain.Collision
	for y := 0; y < len(s.Grid.Rows); y++ {
		row := s.Grid.Rows[y]
		for x := 0; x < len(row); x++ {
			cell := row[x]
			if cell == nil || cell.Cart == nil || cell.Cart.Visited {
				continue
			}

			pos := domain.Position{X: x, Y: y}
			cart := s.Grid.TakeCart(x, y)

			res, err := systems.CalculateMove(pos, cell.Track, cart)
			if err != nil {
				return collisions, err
			}
			res.Apply(cart)
			cart.Visited = true

			target := res.Target
			if struck := s.Grid.TakeCart(target.X, target.Y); struck != nil {
				c := domain.Collision{
					Tick:   s.CurrentTick,
					Pos:    target,
					Moving: cart.ID,
					Struck: struck.ID,
				}
				collisions = append(collisions, c)
				s.logCollision(c)
				continue
			}

			if err := s.Grid.PlaceCart(target.X, target.Y, cart); err != nil {
				return collisions, err
			}
		}
	}

	s.History = append(s.History, collisions...)
	s.log.WithFields(logrus.Fields{
		"tick":       s.CurrentTick,
		"carts":      s.Grid.CountCarts(),
		"collisions": len(collisions),
	}).Debug("Tick done")

	// 3. Постусловие: каждое столкновение убирает ровно две вагонетки
	after := len(s.Grid.Carts())
	if want := before - 2*len(collisions); after != want || after != s.Grid.CountCarts() {
		return collisions, fmt.Errorf("%w: tick %d: %d carts before, %d after (counter %d), %d collisions",
			domain.ErrCartCountDrift, s.CurrentTick, before, after, s.Grid.CountCarts(), len(collisions))
	}

	return collisions, nil
}
