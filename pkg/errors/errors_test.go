package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCode(t *testing.T) {
	meta := MetadataFor(CodeOutOfStock)
	if meta.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409 got %d", meta.HTTPStatus)
	}
	if meta.Type != TypeConflict {
		t.Fatalf("expected type %s got %s", TypeConflict, meta.Type)
	}
	if !meta.DetailsAllowed {
		t.Fatalf("expected out-of-stock details to be public")
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NO_SUCH_CODE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", meta.HTTPStatus)
	}
	if meta.Type != TypeInternal {
		t.Fatalf("expected internal type got %s", meta.Type)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeDependency, cause, "writing order")

	if !stdErrors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsUnwrapsThroughChain(t *testing.T) {
	typed := New(CodeCheckoutNotFound, "checkout session not found")
	wrapped := fmt.Errorf("handling request: %w", typed)

	got := As(wrapped)
	if got == nil {
		t.Fatalf("expected typed error in chain")
	}
	if got.Code() != CodeCheckoutNotFound {
		t.Fatalf("unexpected code %s", got.Code())
	}
}

func TestAsReturnsNilForPlainError(t *testing.T) {
	if got := As(stdErrors.New("boom")); got != nil {
		t.Fatalf("expected nil for untyped error got %v", got)
	}
	if got := As(nil); got != nil {
		t.Fatalf("expected nil for nil error got %v", got)
	}
}

func TestIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeEmptyCart, "cart is empty"))
	if !Is(err, CodeEmptyCart) {
		t.Fatalf("expected code match")
	}
	if Is(err, CodeOutOfStock) {
		t.Fatalf("unexpected code match")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeOutOfStock, "insufficient stock").
		WithDetails(map[string]any{"product_ids": []string{"mug-001"}})

	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("expected map details got %T", err.Details())
	}
	if _, ok := details["product_ids"]; !ok {
		t.Fatalf("expected product_ids in details")
	}
}
