// Package assert evaluates scenario expectations against a landing result.
package assert

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/Zcytxcbyz/projectile/internal/domain"
)

func Converged(expected bool, r domain.LandingResult) domain.ExpectationResult {
	if r.Converged == expected {
		return domain.ExpectationResult{
			Name:    "converged",
			Passed:  true,
			Message: fmt.Sprintf("converged=%t (%s)", r.Converged, r.Stop),
		}
	}

	return domain.ExpectationResult{
		Name:    "converged",
		Passed:  false,
		Message: fmt.Sprintf("expected converged=%t, got %t (%s after %d iterations)", expected, r.Converged, r.Stop, r.Iterations),
	}
}

// Evaluate applies the expectation spec to r.
// The result is encoded to JSON only if JSONPath expectations are present.
func Evaluate(spec domain.ExpectSpec, r domain.LandingResult) []domain.ExpectationResult {
	out := []domain.ExpectationResult{}

	if spec.Converged != nil {
		out = append(out, Converged(*spec.Converged, r))
	}

	if len(spec.JSONPath) == 0 {
		return out
	}

	doc, err := toDocument(r)
	if err != nil {
		for expr, e := range spec.JSONPath {
			out = append(out, jsonPathChecks(expr, e, nil,
				fmt.Errorf("result is not encodable: %v", err))...)
		}
		return out
	}

	for _, expr := range sortedKeys(spec.JSONPath) {
		val, getErr := jsonpath.Get(expr, doc)
		out = append(out, jsonPathChecks(expr, spec.JSONPath[expr], val, getErr)...)
	}

	return out
}

func jsonPathChecks(expr string, e domain.JSONPathExpectation, val any, getErr error) []domain.ExpectationResult {
	var out []domain.ExpectationResult
	if e.Exists {
		out = append(out, checkExists(expr, val, getErr))
	}
	if e.Eq != nil {
		out = append(out, checkEq(expr, val, getErr, *e.Eq))
	}
	if e.Gt != nil {
		out = append(out, checkGt(expr, val, getErr, *e.Gt))
	}
	if e.Lt != nil {
		out = append(out, checkLt(expr, val, getErr, *e.Lt))
	}
	return out
}

func checkExists(expr string, val any, getErr error) domain.ExpectationResult {
	if getErr != nil {
		return domain.ExpectationResult{
			Name:    "jsonpath.exists",
			Passed:  false,
			Message: fmt.Sprintf("invalid jsonpath %q: %v", expr, getErr),
		}
	}
	if val == nil {
		return domain.ExpectationResult{
			Name:    "jsonpath.exists",
			Passed:  false,
			Message: fmt.Sprintf("jsonpath %q: expected value to exist, got null", expr),
		}
	}
	return domain.ExpectationResult{
		Name:    "jsonpath.exists",
		Passed:  true,
		Message: fmt.Sprintf("jsonpath %q exists", expr),
	}
}

func checkEq(expr string, val any, getErr error, expected string) domain.ExpectationResult {
	if getErr != nil {
		return domain.ExpectationResult{
			Name:    "jsonpath.eq",
			Passed:  false,
			Message: fmt.Sprintf("jsonpath %q: %v", expr, getErr),
		}
	}
	s, err := jsonPathToString(val)
	if err != nil {
		return domain.ExpectationResult{
			Name:    "jsonpath.eq",
			Passed:  false,
			Message: fmt.Sprintf("jsonpath %q: %v", expr, err),
		}
	}
	if s == expected {
		return domain.ExpectationResult{
			Name:    "jsonpath.eq",
			Passed:  true,
			Message: fmt.Sprintf("jsonpath %q eq %q", expr, expected),
		}
	}
	return domain.ExpectationResult{
		Name:    "jsonpath.eq",
		Passed:  false,
		Message: fmt.Sprintf("jsonpath %q: expected %q, got %q", expr, expected, s),
	}
}

func checkGt(expr string, val any, getErr error, threshold float64) domain.ExpectationResult {
	f, err := numeric(val, getErr)
	if err != nil {
		return domain.ExpectationResult{
			Name:    "jsonpath.gt",
			Passed:  false,
			Message: fmt.Sprintf("jsonpath %q: %v", expr, err),
		}
	}
	if f > threshold {
		return domain.ExpectationResult{
			Name:    "jsonpath.gt",
			Passed:  true,
			Message: fmt.Sprintf("jsonpath %q: %v > %v", expr, f, threshold),
		}
	}
	return domain.ExpectationResult{
		Name:    "jsonpath.gt",
		Passed:  false,
		Message: fmt.Sprintf("jsonpath %q: expected > %v, got %v", expr, threshold, f),
	}
}

func checkLt(expr string, val any, getErr error, threshold float64) domain.ExpectationResult {
	f, err := numeric(val, getErr)
	if err != nil {
		return domain.ExpectationResult{
			Name:    "jsonpath.lt",
			Passed:  false,
			Message: fmt.Sprintf("jsonpath %q: %v", expr, err),
		}
	}
	if f < threshold {
		return domain.ExpectationResult{
			Name:    "jsonpath.lt",
			Passed:  true,
			Message: fmt.Sprintf("jsonpath %q: %v < %v", expr, f, threshold),
		}
	}
	return domain.ExpectationResult{
		Name:    "jsonpath.lt",
		Passed:  false,
		Message: fmt.Sprintf("jsonpath %q: expected < %v, got %v", expr, threshold, f),
	}
}

func numeric(val any, getErr error) (float64, error) {
	if getErr != nil {
		return 0, getErr
	}
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", val)
	}
}

func jsonPathToString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		return fmt.Sprint(v), nil
	}
}

// toDocument round-trips r through JSON so JSONPath sees the wire field names.
func toDocument(r domain.LandingResult) (any, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
