package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecordEmail(t *testing.T) {
	m := New()

	m.RecordEmail("sent")
	m.RecordEmail("sent")
	m.RecordEmail("failed")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `outreach_emails_total{status="sent"} 2`) {
		t.Errorf("missing sent counter:\n%s", body)
	}
	if !strings.Contains(body, `outreach_emails_total{status="failed"} 1`) {
		t.Errorf("missing failed counter:\n%s", body)
	}
}

func TestHTTPMiddleware(t *testing.T) {
	m := New()

	handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/brands", nil))

	metricsRec := httptest.NewRecorder()
	m.Handler().ServeHTTP(metricsRec, httptest.NewRequest("GET", "/metrics", nil))

	if !strings.Contains(metricsRec.Body.String(), `outreach_api_requests_total{method="POST",path="/brands",status="201"} 1`) {
		t.Errorf("request not counted:\n%s", metricsRec.Body.String())
	}
}
