package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/cloud-ru/scenario-irr-go/internal/config"
	"github.com/cloud-ru/scenario-irr-go/internal/report"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{MaxMonths: 600, CurrencySymbol: "R$"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := NewServer(cfg, logger, otel.Tracer("test"))
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s
}

func TestShowForm(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `name="down_payment"`) {
		t.Error("form field down_payment missing")
	}
	if strings.Contains(body, `id="result"`) {
		t.Error("empty form must not render a result block")
	}
	if !strings.Contains(body, "at most 600 months") {
		t.Error("form should state the month limit")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestSubmitForm(t *testing.T) {
	s := newTestServer(t)

	values := url.Values{
		"down_payment":   {"10000"},
		"monthly_count":  {"12"},
		"monthly_amount": {"500"},
		"sale_month":     {"12"},
		"sale_value":     {"20000"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`id="result"`,
		"R$ 15,500.00",
		"R$ 19,500.00",
		"R$ 4,000.00",
		"25.81%",
		"Year 1",
		`value="10000"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("response does not contain %q", want)
		}
	}
}

func TestSubmitFormError(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("sale_month=-1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Error:") {
		t.Error("expected error message in page")
	}
	if !strings.Contains(body, "invalid parameters: sale_month: value must be in range [0; 599]") {
		t.Errorf("error message should be readable English, got %q", body)
	}
	if strings.Contains(body, `id="result"`) {
		t.Error("error page must not render partial results")
	}
}

func TestCalculateScenarioAPI(t *testing.T) {
	s := newTestServer(t)

	body := `{"down_payment": 10000, "monthly_count": 12, "monthly_amount": 500, "sale_month": 12, "sale_value": 20000}`
	req := httptest.NewRequest(http.MethodPost, "/api/scenario", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result report.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result.NetProfit != "R$ 4,000.00" {
		t.Errorf("NetProfit = %q", result.NetProfit)
	}
	if len(result.CashFlows) != 13 || result.CashFlows[0] != -10000 {
		t.Errorf("unexpected cash flows %v", result.CashFlows)
	}
	if result.Chart == nil || len(result.Chart.Values) != 2 {
		t.Errorf("unexpected chart %+v", result.Chart)
	}
}

func TestCalculateScenarioAPIErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed body", body: `{"down_payment":`, want: http.StatusBadRequest},
		{name: "horizon above cap", body: `{"sale_month": 100000}`, want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/scenario", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
			var result report.Result
			if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if result.Error == "" || result.TotalInvested != "" {
				t.Errorf("expected error-only result, got %+v", result)
			}
		})
	}
}

func TestComputeRecoversPanic(t *testing.T) {
	s := newTestServer(t)
	s.calculate = func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		panic("solver exploded")
	}

	result := s.compute(context.Background(), nil)
	if !strings.Contains(result.Error, "solver exploded") {
		t.Errorf("expected recovered panic message, got %+v", result)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("unexpected health response %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Errorf("metrics endpoint missing http_requests_total")
	}
}
