package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to cause")
	}
	if got := appErr.Error(); got != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected error string %q", got)
	}

	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected error string %q", simple.Error())
	}

	detailed := simple.WithMessage("name must have at least 2 characters")
	if detailed.Message == simple.Message {
		t.Fatalf("expected WithMessage to copy, original was mutated")
	}
	if detailed.HTTPStatus != http.StatusBadRequest || detailed.Code != "INVALID_REQUEST" {
		t.Fatalf("unexpected copy: %+v", detailed)
	}
}
