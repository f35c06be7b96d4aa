// Package validate enforces the launch parameter domain before anything is solved.
package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

const (
	MinAngle = 0.0
	MaxAngle = 90.0
)

// FieldError is a single violated constraint.
type FieldError struct {
	Field string
	Msg   string
}

func (e FieldError) String() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Msg)
}

// Check returns every constraint p violates, in field order.
func Check(p domain.LaunchParameters) []FieldError {
	var errs []FieldError

	positive := func(field string, v float64) {
		switch {
		case !finite(v):
			errs = append(errs, FieldError{field, "must be a finite number"})
		case v <= 0:
			errs = append(errs, FieldError{field, fmt.Sprintf("must be > 0, got %g", v)})
		}
	}

	positive("v0", p.InitialVelocity)

	switch a := p.LaunchAngleDegrees; {
	case !finite(a):
		errs = append(errs, FieldError{"angle", "must be a finite number"})
	case a < MinAngle || a > MaxAngle:
		errs = append(errs, FieldError{"angle", fmt.Sprintf("must be within [%g, %g] degrees, got %g", MinAngle, MaxAngle, a)})
	}

	positive("mass", p.Mass)
	positive("gravity", p.Gravity)

	switch k := p.DragCoefficient; {
	case !finite(k):
		errs = append(errs, FieldError{"drag", "must be a finite number"})
	case k < 0:
		errs = append(errs, FieldError{"drag", fmt.Sprintf("must be >= 0, got %g", k)})
	}

	return errs
}

// Launch validates p and reports all violations as one KindInvalidInput error.
func Launch(p domain.LaunchParameters) error {
	errs := Check(p)
	if len(errs) == 0 {
		return nil
	}

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, e.String())
	}

	return &domain.OpError{
		Op:   "validate.launch",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("%s: %w", strings.Join(lines, "; "), domain.ErrInvalidInput),
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
