package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidPlanID    = errors.New("invalid plan id")
	ErrInvalidPrice     = errors.New("invalid price")
	ErrInvalidPlanName  = errors.New("invalid plan name")
	ErrInvalidStatus    = errors.New("invalid payment status")
	ErrInvalidPaymentID = errors.New("invalid payment id")

	ErrOrderNotFound  = errors.New("order not found")
	ErrDuplicateOrder = errors.New("order already exists for payment id")
	ErrOrderNotSaved  = errors.New("failed to save order")

	// ErrPaymentCreation is what callers see for any gateway-side failure.
	// The two wrapped causes stay distinguishable for logs and tests.
	ErrPaymentCreation          = errors.New("payment creation failed")
	ErrGatewayUnavailable       = fmt.Errorf("%w: gateway unavailable", ErrPaymentCreation)
	ErrMalformedGatewayResponse = fmt.Errorf("%w: malformed gateway response", ErrPaymentCreation)
)
