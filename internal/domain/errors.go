package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrVendorNotFound signals a missing vendor.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrProductNotFound signals a missing product or one owned by another vendor.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserNotFound signals a missing account record.
	ErrUserNotFound = errors.New("user not found")
	// ErrQuoteNotFound signals a missing quote.
	ErrQuoteNotFound = errors.New("quote not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthenticated signals an operation that needs a signed-in caller.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals a caller without the required role or ownership.
	ErrForbidden = errors.New("forbidden")
	// ErrVendorBlocked signals an operation against a sanctioned vendor.
	ErrVendorBlocked = errors.New("vendor is blocked")
	// ErrUserBlocked signals an operation by a sanctioned account.
	ErrUserBlocked = errors.New("account is blocked")
	// ErrInvalidRating signals a review rating outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidInput signals a malformed request payload.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRelayNotConfigured signals that no contact relay endpoint is set.
	ErrRelayNotConfigured = errors.New("contact relay not configured")
	// ErrRelayFailed signals that the contact relay rejected or dropped a message.
	ErrRelayFailed = errors.New("contact relay failed")
)
