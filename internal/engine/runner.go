package engine

import (
	"errors"
	"fmt"

	"railsim/internal/domain"

	"github.com/sirupsen/logrus"
)

var (
	// ErrNoCollision - вагонеток меньше двух, столкнуться некому.
	ErrNoCollision = errors.New("fewer than two carts, no collision is possible")
	// ErrNoSurvivor - число вагонеток не сводится к одной (столкновения убирают их парами).
	ErrNoSurvivor = errors.New("cart count cannot reduce to exactly one")
	// ErrTickLimit - внешний потолок тиков исчерпан.
	ErrTickLimit = errors.New("tick limit reached")
)

// FirstCollision тикает, пока не случится первое столкновение.
// Если в одном тике их несколько, возвращается первое в порядке обхода.
// maxTicks ограничивает число тиков этого вызова; 0 - без ограничения.
func (s *Simulation) FirstCollision(maxTicks int) (domain.Collision, error) {
	if s.Grid.CountCarts() < 2 {
		return domain.Collision{}, fmt.Errorf("%w: %d cart(s)", ErrNoCollision, s.Grid.CountCarts())
	}

	for ticks := 0; maxTicks == 0 || ticks < maxTicks; ticks++ {
		collisions, err := s.Tick()
		if err != nil {
			return domain.Collision{}, err
		}
		if len(collisions) > 0 {
			first := collisions[0]
			s.log.WithFields(logrus.Fields{
				"tick": first.Tick,
				"x":    first.Pos.X,
				"y":    first.Pos.Y,
			}).Info("First collision found")
			return first, nil
		}
	}

	return domain.Collision{}, fmt.Errorf("%w: no collision after %d ticks", ErrTickLimit, maxTicks)
}

// LastCart тикает, пока не останется одна вагонетка, и возвращает ее позицию.
// Четное (или нулевое) начальное количество отклоняется сразу: до одной его не свести.
func (s *Simulation) LastCart(maxTicks int) (domain.Position, error) {
	count := s.Grid.CountCarts()
	if count == 0 || count%2 == 0 {
		return domain.Position{}, fmt.Errorf("%w: %d cart(s)", ErrNoSurvivor, count)
	}

	for ticks := 0; s.Grid.CountCarts() > 1; ticks++ {
		if maxTicks > 0 && ticks >= maxTicks {
			return domain.Position{}, fmt.Errorf("%w: %d carts left after %d ticks", ErrTickLimit, s.Grid.CountCarts(), maxTicks)
		}
		if _, err := s.Tick(); err != nil {
			return domain.Position{}, err
		}
	}

	carts := s.Grid.Carts()
	if len(carts) != 1 {
		return domain.Position{}, fmt.Errorf("%w: %d cart(s) left", ErrNoSurvivor, len(carts))
	}

	s.log.WithFields(logrus.Fields{
		"tick": s.CurrentTick,
		"x":    carts[0].X,
		"y":    carts[0].Y,
	}).Info("Last cart standing")
	return carts[0], nil
}
