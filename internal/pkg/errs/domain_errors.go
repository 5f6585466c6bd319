package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrServiceNotFound = errors.New("service not found")
	ErrPricingNotFound = errors.New("pricing not found")
	ErrExtraNotFound   = errors.New("extra not found")

	// Promocode errors
	ErrPromocodeNotFound = errors.New("promocode not found")

	// Booking / settlement errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrCashAlreadyConfirmed = errors.New("cash already confirmed")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrNotAssignedCleaner   = errors.New("booking not assigned to cleaner")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
