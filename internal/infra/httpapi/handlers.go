package httpapi

import (
	"fmt"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

// launchRequest mirrors domain.LaunchParameters; omitted mass, gravity and
// drag fall back to the server defaults.
type launchRequest struct {
	V0      *float64 `json:"v0"`
	Angle   *float64 `json:"angle"`
	Mass    *float64 `json:"mass"`
	Gravity *float64 `json:"gravity"`
	Drag    *float64 `json:"drag"`
}

func (r launchRequest) params(d domain.DefaultsConfig) (domain.LaunchParameters, error) {
	if r.V0 == nil {
		return domain.LaunchParameters{}, fmt.Errorf("field v0 is required")
	}
	if r.Angle == nil {
		return domain.LaunchParameters{}, fmt.Errorf("field angle is required")
	}
	p := domain.LaunchParameters{
		InitialVelocity:    *r.V0,
		LaunchAngleDegrees: *r.Angle,
		Mass:               d.Mass,
		Gravity:            d.Gravity,
		DragCoefficient:    d.Drag,
	}
	if r.Mass != nil {
		p.Mass = *r.Mass
	}
	if r.Gravity != nil {
		p.Gravity = *r.Gravity
	}
	if r.Drag != nil {
		p.DragCoefficient = *r.Drag
	}
	return p, nil
}

// SolveHandler handles POST /v1/solve.
// With ?strict=true a non-converged solve answers 422 instead of 200.
func SolveHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req launchRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid JSON body")
		}
		p, err := req.params(deps.Defaults)
		if err != nil {
			return errBadRequest(c, err.Error())
		}

		r, _, err := deps.Solve.Execute(c.UserContext(), p)
		if err != nil {
			return errFromDomain(c, err)
		}

		if !r.Converged && c.QueryBool("strict") {
			return errUnprocessable(c, fmt.Sprintf("solver stopped (%s) after %d iterations: %v", r.Stop, r.Iterations, r.Stop.Err()))
		}

		return c.JSON(fiber.Map{
			"params": p,
			"result": r,
		})
	}
}

type sweepRequest struct {
	launchRequest
	From  *float64 `json:"from"`
	To    *float64 `json:"to"`
	Steps int      `json:"steps"`
}

// SweepHandler handles POST /v1/sweep.
func SweepHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sweepRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid JSON body")
		}
		p, err := req.params(deps.Defaults)
		if err != nil {
			return errBadRequest(c, err.Error())
		}
		if req.From == nil || req.To == nil {
			return errBadRequest(c, "fields from and to are required")
		}

		points, err := deps.Sweep.Execute(c.UserContext(), p, usecase.SweepRange{
			From:  *req.From,
			To:    *req.To,
			Steps: req.Steps,
		})
		if err != nil {
			return errFromDomain(c, err)
		}

		return c.JSON(fiber.Map{
			"params": p,
			"points": points,
		})
	}
}
