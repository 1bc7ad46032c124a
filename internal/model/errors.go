package model

import "errors"

var (
	// Identity and session errors
	ErrDuplicateIdentity  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrUserNotFound       = errors.New("user not found")

	// Record errors
	ErrRecordNotFound = errors.New("record not found")

	// Rendering and delivery errors
	ErrRenderFailure   = errors.New("document rendering failed")
	ErrDeliveryFailure = errors.New("email delivery failed")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
