package assert

import (
	"strings"
	"testing"

	"github.com/Zcytxcbyz/projectile/internal/domain"
)

func ptrF(v float64) *float64 { return &v }
func ptrS(v string) *string   { return &v }
func ptrB(v bool) *bool       { return &v }

var landed = domain.LandingResult{
	Distance:   34.1,
	FlightTime: 2.76,
	Converged:  true,
	Iterations: 4,
	Stop:       domain.StopConverged,
}

// --- Converged ---

func TestConverged_Match(t *testing.T) {
	r := Converged(true, landed)
	if !r.Passed {
		t.Fatalf("expected Passed=true, got %+v", r)
	}
	if r.Name != "converged" {
		t.Fatalf("expected Name=converged, got %q", r.Name)
	}
}

func TestConverged_FailMessage(t *testing.T) {
	stalled := domain.LandingResult{Stop: domain.StopStall}
	r := Converged(true, stalled)
	if r.Passed {
		t.Fatalf("expected fail")
	}
	if r.Message != "expected converged=true, got false (stall after 0 iterations)" {
		t.Fatalf("unexpected message: %q", r.Message)
	}
}

// --- Evaluate ---

func TestEvaluate_NoExpectations(t *testing.T) {
	results := Evaluate(domain.ExpectSpec{}, landed)
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestEvaluate_RangeOnDistance(t *testing.T) {
	spec := domain.ExpectSpec{
		Converged: ptrB(true),
		JSONPath: map[string]domain.JSONPathExpectation{
			"$.distance": {Gt: ptrF(34), Lt: ptrF(35)},
		},
	}
	results := Evaluate(spec, landed)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Fatalf("expected all to pass, got %+v", r)
		}
	}
}

func TestEvaluate_GtFails(t *testing.T) {
	spec := domain.ExpectSpec{
		JSONPath: map[string]domain.JSONPathExpectation{
			"$.flight_time": {Gt: ptrF(3)},
		},
	}
	results := Evaluate(spec, landed)
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected one failing result, got %+v", results)
	}
	if !strings.Contains(results[0].Message, "expected > 3") {
		t.Fatalf("unexpected message %q", results[0].Message)
	}
}

func TestEvaluate_EqOnStop(t *testing.T) {
	spec := domain.ExpectSpec{
		JSONPath: map[string]domain.JSONPathExpectation{
			"$.stop": {Eq: ptrS("converged")},
		},
	}
	results := Evaluate(spec, landed)
	if len(results) != 1 || !results[0].Passed {
		t.Fatalf("expected eq to pass, got %+v", results)
	}
}

func TestEvaluate_EqOnBool(t *testing.T) {
	spec := domain.ExpectSpec{
		JSONPath: map[string]domain.JSONPathExpectation{
			"$.converged": {Eq: ptrS("true")},
		},
	}
	results := Evaluate(spec, landed)
	if len(results) != 1 || !results[0].Passed {
		t.Fatalf("expected eq to pass, got %+v", results)
	}
}

func TestEvaluate_ExistsOnUnknownKey(t *testing.T) {
	spec := domain.ExpectSpec{
		JSONPath: map[string]domain.JSONPathExpectation{
			"$.apex": {Exists: true},
		},
	}
	results := Evaluate(spec, landed)
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected exists to fail, got %+v", results)
	}
}

func TestEvaluate_NonNumericGt(t *testing.T) {
	spec := domain.ExpectSpec{
		JSONPath: map[string]domain.JSONPathExpectation{
			"$.stop": {Lt: ptrF(1)},
		},
	}
	results := Evaluate(spec, landed)
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected lt on a string to fail, got %+v", results)
	}
	if !strings.Contains(results[0].Message, "not numeric") {
		t.Fatalf("unexpected message %q", results[0].Message)
	}
}

func TestEvaluate_OrderIsStable(t *testing.T) {
	spec := domain.ExpectSpec{
		JSONPath: map[string]domain.JSONPathExpectation{
			"$.iterations":  {Exists: true},
			"$.distance":    {Exists: true},
			"$.flight_time": {Exists: true},
		},
	}
	results := Evaluate(spec, landed)
	var got []string
	for _, r := range results {
		got = append(got, r.Message)
	}
	joined := strings.Join(got, "|")
	if !strings.HasPrefix(joined, `jsonpath "$.distance"`) {
		t.Fatalf("expected sorted order, got %s", joined)
	}
}
