package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]string{"insertedId": "abc"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if body["insertedId"] != "abc" {
		t.Errorf("insertedId: got %q, want %q", body["insertedId"], "abc")
	}
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusNotFound, "donation request not found")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if body.Error != "donation request not found" {
		t.Errorf("error: got %q", body.Error)
	}
}

func TestDecodeAndValidate(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"email":"a@x.com"}`, false},
		{"missing email", `{}`, true},
		{"bad email", `{"email":"not-an-email"}`, true},
		{"unknown field", `{"email":"a@x.com","extra":1}`, true},
		{"malformed json", `{"email":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeAndValidate(r, &p)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeAndValidate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
