package fillservice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aos-tools/intake-server/internal/adapters/fillservice"
	"github.com/aos-tools/intake-server/internal/forms"
)

func TestFill(t *testing.T) {
	var gotPath, gotContentType string
	var gotPayload forms.Payload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	client := fillservice.New(srv.URL + "/") // trailing slash must be tolerated
	payload := forms.Payload{
		Fields:     map[string]string{"a": "1"},
		Checkboxes: map[string]bool{"b": true},
	}
	doc, err := client.Fill(context.Background(), "i-130", payload)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if gotPath != "/fill/i-130" {
		t.Errorf("path = %q, want /fill/i-130", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotPayload.Fields["a"] != "1" || !gotPayload.Checkboxes["b"] {
		t.Errorf("payload round trip: %+v", gotPayload)
	}
	if string(doc) != "%PDF-1.7 fake" {
		t.Errorf("document = %q", doc)
	}
}

func TestFill_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "template not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := fillservice.New(srv.URL)
	_, err := client.Fill(context.Background(), "i-999", forms.Payload{})
	if err == nil {
		t.Fatal("Fill returned nil error for 404 response")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error %q does not mention the status", err)
	}
	if !strings.Contains(err.Error(), "template not found") {
		t.Errorf("error %q does not carry the response detail", err)
	}
}

func TestFill_Unreachable(t *testing.T) {
	client := fillservice.New("http://127.0.0.1:1")
	_, err := client.Fill(context.Background(), "i-130", forms.Payload{})
	if err == nil {
		t.Fatal("Fill returned nil error for unreachable service")
	}
	if !strings.Contains(err.Error(), "unreachable") {
		t.Errorf("error %q does not say unreachable", err)
	}
}

func TestFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fields/i-130" {
			t.Errorf("path = %q, want /fields/i-130", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"fields":[{"name":"first"},{"name":"second"}]}`))
	}))
	defer srv.Close()

	client := fillservice.New(srv.URL)
	names, err := client.Fields(context.Background(), "i-130")
	if err != nil {
		t.Fatalf("Fields: %v", err)
	}
	if len(names) != 2 || names[0] != "first" || names[1] != "second" {
		t.Errorf("names = %v, want [first second]", names)
	}
}

func TestHealth(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("path = %q, want /health", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	if err := fillservice.New(healthy.URL).Health(context.Background()); err != nil {
		t.Errorf("Health on healthy service: %v", err)
	}

	sick := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer sick.Close()

	if err := fillservice.New(sick.URL).Health(context.Background()); err == nil {
		t.Error("Health on unhealthy service returned nil error")
	}
}
