package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// CompositeHealthChecker is healthy only when every dependency is
type CompositeHealthChecker struct {
	checkers []HealthChecker
}

// NewCompositeHealthChecker ignores nil checkers
func NewCompositeHealthChecker(checkers ...HealthChecker) *CompositeHealthChecker {
	c := &CompositeHealthChecker{}
	for _, hc := range checkers {
		if hc != nil {
			c.checkers = append(c.checkers, hc)
		}
	}
	return c
}

func (c *CompositeHealthChecker) Healthy(ctx context.Context) bool {
	for _, hc := range c.checkers {
		if !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}
