package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation  Code = "VALIDATION_ERROR"
	CodeNotFound    Code = "NOT_FOUND"
	CodeConflict    Code = "CONFLICT"
	CodeIdempotency Code = "IDEMPOTENCY_KEY_REUSED"
	CodeRateLimit   Code = "RATE_LIMIT_EXCEEDED"
	CodeInternal    Code = "INTERNAL_ERROR"
	CodeDependency  Code = "DEPENDENCY_ERROR"

	// Commerce domain codes. Validation-class codes are client-correctable;
	// state-class codes require the caller to re-read current state first.
	CodeProductNotFound          Code = "PRODUCT_NOT_FOUND"
	CodeInvalidQuantity          Code = "INVALID_QUANTITY"
	CodeOutOfStock               Code = "OUT_OF_STOCK"
	CodeItemNotInCart            Code = "ITEM_NOT_IN_CART"
	CodeEmptyCart                Code = "EMPTY_CART"
	CodeCheckoutNotFound         Code = "CHECKOUT_NOT_FOUND"
	CodeInvalidFulfillmentOption Code = "INVALID_FULFILLMENT_OPTION"
	CodeBuyerInfoIncomplete      Code = "BUYER_INFO_INCOMPLETE"
	CodeSessionNotMutable        Code = "SESSION_NOT_MUTABLE"
	CodeOrderNotFound            Code = "ORDER_NOT_FOUND"
)

// Error type classes surfaced in the wire envelope.
const (
	TypeInvalidRequest     = "invalid_request"
	TypeNotFound           = "not_found"
	TypeConflict           = "conflict"
	TypeInvalidState       = "invalid_state"
	TypeRateLimited        = "rate_limited"
	TypeIdempotency        = "idempotency_error"
	TypeInternal           = "internal_error"
	TypeServiceUnavailable = "service_unavailable"
)

type Metadata struct {
	HTTPStatus     int
	Type           string
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		HTTPStatus:     http.StatusBadRequest,
		Type:           TypeInvalidRequest,
		PublicMessage:  "validation failed",
		DetailsAllowed: true,
	},
	CodeNotFound: {
		HTTPStatus:    http.StatusNotFound,
		Type:          TypeNotFound,
		PublicMessage: "resource not found",
	},
	CodeConflict: {
		HTTPStatus:    http.StatusConflict,
		Type:          TypeConflict,
		PublicMessage: "conflict detected",
	},
	CodeIdempotency: {
		HTTPStatus:     http.StatusConflict,
		Type:           TypeIdempotency,
		PublicMessage:  "idempotency key reused",
		DetailsAllowed: true,
	},
	CodeRateLimit: {
		HTTPStatus:    http.StatusTooManyRequests,
		Type:          TypeRateLimited,
		PublicMessage: "rate limit exceeded",
	},
	CodeInternal: {
		HTTPStatus:    http.StatusInternalServerError,
		Type:          TypeInternal,
		Retryable:     true,
		PublicMessage: "internal server error",
	},
	CodeDependency: {
		HTTPStatus:     http.StatusServiceUnavailable,
		Type:           TypeServiceUnavailable,
		Retryable:      true,
		PublicMessage:  "dependency unavailable",
		DetailsAllowed: true,
	},

	CodeProductNotFound: {
		HTTPStatus:     http.StatusNotFound,
		Type:           TypeNotFound,
		PublicMessage:  "product not found",
		DetailsAllowed: true,
	},
	CodeInvalidQuantity: {
		HTTPStatus:     http.StatusBadRequest,
		Type:           TypeInvalidRequest,
		PublicMessage:  "invalid quantity",
		DetailsAllowed: true,
	},
	CodeOutOfStock: {
		HTTPStatus:     http.StatusConflict,
		Type:           TypeConflict,
		PublicMessage:  "insufficient stock",
		DetailsAllowed: true,
	},
	CodeItemNotInCart: {
		HTTPStatus:     http.StatusNotFound,
		Type:           TypeNotFound,
		PublicMessage:  "item not in cart",
		DetailsAllowed: true,
	},
	CodeEmptyCart: {
		HTTPStatus:     http.StatusUnprocessableEntity,
		Type:           TypeInvalidState,
		PublicMessage:  "cart is empty",
		DetailsAllowed: true,
	},
	CodeCheckoutNotFound: {
		HTTPStatus:     http.StatusNotFound,
		Type:           TypeNotFound,
		PublicMessage:  "checkout session not found",
		DetailsAllowed: true,
	},
	CodeInvalidFulfillmentOption: {
		HTTPStatus:     http.StatusUnprocessableEntity,
		Type:           TypeInvalidState,
		PublicMessage:  "invalid fulfillment option",
		DetailsAllowed: true,
	},
	CodeBuyerInfoIncomplete: {
		HTTPStatus:     http.StatusUnprocessableEntity,
		Type:           TypeInvalidState,
		PublicMessage:  "buyer information incomplete",
		DetailsAllowed: true,
	},
	CodeSessionNotMutable: {
		HTTPStatus:     http.StatusUnprocessableEntity,
		Type:           TypeInvalidState,
		PublicMessage:  "checkout session is no longer mutable",
		DetailsAllowed: true,
	},
	CodeOrderNotFound: {
		HTTPStatus:     http.StatusNotFound,
		Type:           TypeNotFound,
		PublicMessage:  "order not found",
		DetailsAllowed: true,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	typed := As(err)
	return typed != nil && typed.Code() == code
}
