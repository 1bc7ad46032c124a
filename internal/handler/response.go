package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"podkeeper/internal/model"
	"podkeeper/pkg/apierror"
)

func writeSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: true,
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	} else if errors.Is(err, model.ErrDuplicateIdentity) {
		status = http.StatusBadRequest
		body.Code = "DUPLICATE_IDENTITY"
		body.Message = "Username or email already exists"
	} else if errors.Is(err, model.ErrInvalidCredentials) {
		status = http.StatusUnauthorized
		body.Code = "INVALID_CREDENTIALS"
		body.Message = "Invalid credentials"
	} else if errors.Is(err, model.ErrInactiveAccount) {
		status = http.StatusBadRequest
		body.Code = "INACTIVE_ACCOUNT"
		body.Message = "Account is inactive"
	} else if errors.Is(err, model.ErrUnauthenticated) {
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Authentication required"
	} else if errors.Is(err, model.ErrUserNotFound) {
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "User not found"
	} else if errors.Is(err, model.ErrRecordNotFound) {
		status = http.StatusNotFound
		body.Code = "NOT_FOUND"
		body.Message = "Record not found"
	} else if errors.Is(err, model.ErrRenderFailure) {
		status = http.StatusInternalServerError
		body.Code = "RENDER_FAILURE"
		body.Message = "Document rendering failed"
		slog.Error("render failure", "error", err.Error())
	} else if errors.Is(err, model.ErrDeliveryFailure) {
		status = http.StatusInternalServerError
		body.Code = "DELIVERY_FAILURE"
		body.Message = "Email delivery failed"
		slog.Error("delivery failure", "error", err.Error())
	} else if errors.Is(err, model.ErrInvalidInput) {
		status = http.StatusBadRequest
		body.Code = "BAD_REQUEST"
		body.Message = "Invalid input"
	} else {
		// Log unclassified errors so they are visible in server logs.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error:   body,
	})
}
