package logging

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

func TestRequestLoggerRecordsMethodAndPath(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/en/properties?city=Lecheria", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("GET")) {
		t.Error("method missing from log")
	}
	if !bytes.Contains([]byte(out), []byte("/en/properties")) {
		t.Error("path missing from log")
	}
	if !bytes.Contains([]byte(out), []byte("city=Lecheria")) {
		t.Error("query missing from log")
	}
}

func TestRequestLoggerCapturesStatus(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/en/properties/gone", nil))

	if !bytes.Contains(buf.Bytes(), []byte("404")) {
		t.Error("status missing from log")
	}
	if !bytes.Contains(buf.Bytes(), []byte("WARN")) {
		t.Error("4xx should log at warn level")
	}
}

func TestRequestLoggerSkipsStaticAndHealth(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/static/app.css", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	if buf.Len() > 0 {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}
