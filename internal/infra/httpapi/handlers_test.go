package httpapi_test

import (
	"encoding/json"
	"io"
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Zcytxcbyz/projectile/internal/domain"
	"github.com/Zcytxcbyz/projectile/internal/infra/httpapi"
	"github.com/Zcytxcbyz/projectile/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	return httpapi.NewApp(&httpapi.Dependencies{
		Solve:    usecase.NewSolveLanding(),
		Defaults: domain.DefaultConfig().Defaults,
		Version:  "test",
	})
}

func do(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}

type solveResponse struct {
	Params domain.LaunchParameters `json:"params"`
	Result domain.LandingResult    `json:"result"`
}

func TestHealth(t *testing.T) {
	status, body := do(t, newTestApp(), "GET", "/v1/health", "")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	var got map[string]string
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["status"] != "healthy" || got["version"] != "test" {
		t.Fatalf("unexpected health body %s", body)
	}
}

func TestSolve_NoDragUsesDefaults(t *testing.T) {
	status, body := do(t, newTestApp(), "POST", "/v1/solve", `{"v0": 20, "angle": 45}`)
	if status != 200 {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var got solveResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Params.Mass != 1 || got.Params.Gravity != 9.8 {
		t.Fatalf("expected defaults applied, got %+v", got.Params)
	}
	if !got.Result.Converged || got.Result.Stop != domain.StopClosedForm {
		t.Fatalf("expected closed form, got %+v", got.Result)
	}
	if math.Abs(got.Result.Distance-40.816) > 0.01 {
		t.Fatalf("expected distance ~40.82, got %v", got.Result.Distance)
	}
}

func TestSolve_WithDrag(t *testing.T) {
	status, body := do(t, newTestApp(), "POST", "/v1/solve", `{"v0": 20, "angle": 45, "mass": 1, "gravity": 9.8, "drag": 0.1}`)
	if status != 200 {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}
	var got solveResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Result.Converged || got.Result.Stop != domain.StopConverged {
		t.Fatalf("expected newton convergence, got %+v", got.Result)
	}
	if got.Result.Distance >= 40.816 || got.Result.Distance <= 0 {
		t.Fatalf("expected drag to shorten the range, got %v", got.Result.Distance)
	}
}

func TestSolve_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed", `{"v0":`, "invalid JSON body"},
		{"missing v0", `{"angle": 45}`, "v0 is required"},
		{"missing angle", `{"v0": 10}`, "angle is required"},
		{"negative mass", `{"v0": 10, "angle": 45, "mass": -1}`, "mass"},
		{"angle out of range", `{"v0": 10, "angle": 120}`, "angle"},
		{"overflowing result", `{"v0": 1e200, "angle": 45}`, "overflows"},
	}

	app := newTestApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := do(t, app, "POST", "/v1/solve", tt.body)
			if status != 400 {
				t.Fatalf("expected 400, got %d: %s", status, body)
			}
			var apiErr httpapi.APIError
			if err := json.Unmarshal(body, &apiErr); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if apiErr.Code != "bad_request" || apiErr.Status != 400 {
				t.Fatalf("unexpected error body %s", body)
			}
			if apiErr.RequestID == "" {
				t.Fatalf("expected request id in error body")
			}
			if !strings.Contains(apiErr.Message, tt.wantMsg) {
				t.Fatalf("expected message to contain %q, got %q", tt.wantMsg, apiErr.Message)
			}
		})
	}
}

func TestSolve_StrictRejectsNonConverged(t *testing.T) {
	app := newTestApp()
	// A flat launch with drag has y'(0) = 0, so Newton stalls immediately.
	body := `{"v0": 20, "angle": 0, "drag": 0.1}`

	status, _ := do(t, app, "POST", "/v1/solve", body)
	if status != 200 {
		t.Fatalf("expected 200 without strict, got %d", status)
	}

	status, resp := do(t, app, "POST", "/v1/solve?strict=true", body)
	if status != 422 {
		t.Fatalf("expected 422 with strict, got %d: %s", status, resp)
	}
	var apiErr httpapi.APIError
	if err := json.Unmarshal(resp, &apiErr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if apiErr.Code != "not_converged" || !strings.Contains(apiErr.Message, "stall") {
		t.Fatalf("unexpected error body %s", resp)
	}
}

func TestSweep(t *testing.T) {
	status, body := do(t, newTestApp(), "POST", "/v1/sweep", `{"v0": 20, "angle": 45, "from": 0, "to": 0.2, "steps": 3}`)
	if status != 200 {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var got struct {
		Points []domain.SweepPoint `json:"points"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got.Points))
	}
	if got.Points[0].Result.Stop != domain.StopClosedForm {
		t.Fatalf("expected k=0 to use the closed form, got %s", got.Points[0].Result.Stop)
	}
	for i := 1; i < len(got.Points); i++ {
		if got.Points[i].Result.Distance >= got.Points[i-1].Result.Distance {
			t.Fatalf("expected distance to shrink as drag grows: %+v", got.Points)
		}
	}
}

func TestSweep_InvalidRange(t *testing.T) {
	status, body := do(t, newTestApp(), "POST", "/v1/sweep", `{"v0": 20, "angle": 45, "from": 1, "to": 0, "steps": 3}`)
	if status != 400 {
		t.Fatalf("expected 400, got %d: %s", status, body)
	}
}

func TestUnknownRoute(t *testing.T) {
	status, body := do(t, newTestApp(), "GET", "/v1/nope", "")
	if status != 404 {
		t.Fatalf("expected 404, got %d", status)
	}
	var apiErr httpapi.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if apiErr.Code != "not_found" {
		t.Fatalf("unexpected error body %s", body)
	}
}

func TestMetricsRoute(t *testing.T) {
	app := newTestApp()
	do(t, app, "POST", "/v1/solve", `{"v0": 20, "angle": 45}`)

	status, body := do(t, app, "GET", "/metrics", "")
	if status != 200 {
		t.Fatalf("expected 200, got %d", status)
	}
	if !strings.Contains(string(body), "projectile_http_requests_total") {
		t.Fatalf("expected http metrics in exposition")
	}
}
