package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finca-lechera/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRecover_LogsAndReturns500(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})

	h := chimw.RequestID(Recover(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/animales", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["panic"] != "boom" {
		t.Fatalf("expected panic value in log, got %v", entry["panic"])
	}
	if id, _ := entry["request_id"].(string); strings.TrimSpace(id) == "" {
		t.Fatalf("expected request_id in log entry")
	}
}

func TestRequestLog_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: &buf})

	h := RequestLog(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/animales/1/producciones", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["status"] != float64(http.StatusCreated) {
		t.Fatalf("expected status 201 in log, got %v", entry["status"])
	}
	if entry["path"] != "/animales/1/producciones" {
		t.Fatalf("unexpected path: %v", entry["path"])
	}
}
