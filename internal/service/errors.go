package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// response codes with errors.Is.
var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrCaptchaInvalid      = errors.New("captcha verification failed")
	ErrInvalidInput        = errors.New("invalid input")
	ErrProductNotAvailable = errors.New("product not available")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrQuantityTooSmall    = errors.New("quantity below minimum")
	ErrDeliveryNotEligible = errors.New("order amount below delivery minimum")
	ErrDeliveryUnavailable = errors.New("delivery not available for this address")
	ErrPaymentFailed       = errors.New("payment failed")
	ErrOrderNotPayable     = errors.New("order is not awaiting payment")
	ErrOrderFetchFailed    = errors.New("order lookup failed")
	ErrOrderCreateFailed   = errors.New("order creation failed")
)
