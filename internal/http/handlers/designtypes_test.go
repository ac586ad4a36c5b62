package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListDesignTypes(t *testing.T) {
	app := newTestApp(&fakeProducer{})

	req := httptest.NewRequest(http.MethodGet, "/v1/design-types", nil)
	rec := httptest.NewRecorder()
	app.ListDesignTypes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var types []designTypeResponse
	if err := json.NewDecoder(rec.Body).Decode(&types); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(types) != 11 {
		t.Fatalf("expected 11 design types, got %d", len(types))
	}
	if types[0].ID != "website" {
		t.Fatalf("catalog order not preserved, first = %s", types[0].ID)
	}
	for _, dt := range types {
		if dt.ID == "" || dt.Title == "" || dt.Description == "" || dt.PlaceholderPrompt == "" {
			t.Fatalf("incomplete entry: %+v", dt)
		}
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(&fakeProducer{})

	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	app.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}
