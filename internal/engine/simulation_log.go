package engine

import (
	"railsim/internal/domain"

	"github.com/sirupsen/logrus"
)

// logCollision пишет столкновение в лог прогона
func (s *Simulation) logCollision(c domain.Collision) {
	s.log.WithFields(logrus.Fields{
		"tick":   c.Tick,
		"x":      c.Pos.X,
		"y":      c.Pos.Y,
		"cart_a": c.Struck.String(),
		"cart_b": c.Moving.String(),
	}).Info("Carts collided")
}
