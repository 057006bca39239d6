package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/voicecartlabs/voicecart-backend/pkg/errors"
)

type samplePayload struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/acp/cart/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	var payload samplePayload
	err := DecodeJSONBody(jsonRequest(`{"product_id":"mug-001","quantity":2}`), &payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.ProductID != "mug-001" || payload.Quantity != 2 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var payload samplePayload
	err := DecodeJSONBody(jsonRequest(`{"product_id":"mug-001","surprise":true}`), &payload)
	if !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR got %v", err)
	}
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	var payload samplePayload
	err := DecodeJSONBody(jsonRequest(`{"product_id":`), &payload)
	if !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldsByJSONName(t *testing.T) {
	var payload samplePayload
	err := DecodeJSONBody(jsonRequest(`{"quantity":1,"email":"not-an-email"}`), &payload)

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details got %T", typed.Details())
	}
	if details["product_id"] != "is required" {
		t.Fatalf("expected required message keyed by json name, got %v", details)
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("expected email message, got %v", details)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/acp/catalog?limit=30", nil)
	got, err := ParseQueryInt(req, "limit", 20, 1, 100)
	if err != nil || got != 30 {
		t.Fatalf("expected 30 got %d err %v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/acp/catalog", nil)
	got, err = ParseQueryInt(req, "limit", 20, 1, 100)
	if err != nil || got != 20 {
		t.Fatalf("expected default 20 got %d err %v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/acp/catalog?limit=abc", nil)
	if _, err = ParseQueryInt(req, "limit", 20, 1, 100); !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR got %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/acp/catalog?limit=500", nil)
	if _, err = ParseQueryInt(req, "limit", 20, 1, 100); !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected range error got %v", err)
	}
}

func TestParseQueryInt64Ptr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/acp/catalog?max_price=800", nil)
	got, err := ParseQueryInt64Ptr(req, "max_price")
	if err != nil || got == nil || *got != 800 {
		t.Fatalf("expected 800 got %v err %v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/acp/catalog?min_price=0", nil)
	got, err = ParseQueryInt64Ptr(req, "min_price")
	if err != nil || got == nil || *got != 0 {
		t.Fatalf("zero must stay distinguishable from absent, got %v err %v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/acp/catalog", nil)
	got, err = ParseQueryInt64Ptr(req, "max_price")
	if err != nil || got != nil {
		t.Fatalf("expected nil for absent param got %v err %v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/acp/catalog?max_price=cheap", nil)
	if _, err = ParseQueryInt64Ptr(req, "max_price"); !pkgerrors.Is(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected VALIDATION_ERROR got %v", err)
	}
}
