package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	request "rental_portal/internal/adapter/http/dto/request"
	"rental_portal/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{request.ErrInvalidDate, http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrInvalidContactInfo, http.StatusBadRequest, "INVALID_REQUEST"},
		{fmt.Errorf("%w: lease end before start", usecase.ErrInvalidAgreementInput), http.StatusBadRequest, "INVALID_REQUEST"},
		{usecase.ErrTicketNotFound, http.StatusNotFound, "NOT_FOUND"},
		{usecase.ErrApartmentTaken, http.StatusConflict, "CONFLICT"},
		{usecase.ErrPaymentAlreadyExists, http.StatusConflict, "CONFLICT"},
		{usecase.ErrNoActiveTenant, http.StatusUnauthorized, "UNAUTHORIZED"},
		{usecase.ErrDispatchFailed, http.StatusBadGateway, "DISPATCH_FAILED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		got := mapError(tc.err)
		if got.HTTPStatus != tc.status || got.Code != tc.code {
			t.Fatalf("%v: expected %d %s, got %d %s", tc.err, tc.status, tc.code, got.HTTPStatus, got.Code)
		}
		if !errors.Is(got, tc.err) {
			t.Fatalf("%v: expected the cause to be kept", tc.err)
		}
	}

	wrapped := mapError(fmt.Errorf("%w: lease end before start", usecase.ErrInvalidAgreementInput))
	if wrapped.Message != "invalid agreement input: lease end before start" {
		t.Fatalf("expected the validation message, got %q", wrapped.Message)
	}
	if mapError(errors.New("secret detail")).Message != "An internal error occurred" {
		t.Fatalf("internal errors must not leak their cause")
	}
}
