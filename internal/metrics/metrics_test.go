package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveGenerated("fair")
	m.ObserveGenerated("fair")
	m.ObserveFailure("invalid_configuration")
	m.ObserveStrengthCheck("weak")

	if got := testutil.ToFloat64(m.generated.WithLabelValues("fair")); got != 2 {
		t.Errorf("generated{fair} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("invalid_configuration")); got != 1 {
		t.Errorf("failures{invalid_configuration} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.strengthChecks.WithLabelValues("weak")); got != 1 {
		t.Errorf("strength_checks{weak} = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveGenerated("strong")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `passforge_passwords_generated_total{label="strong"} 1`) {
		t.Errorf("exposition missing generated counter:\n%s", body)
	}
}
