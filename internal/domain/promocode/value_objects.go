package promocode

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode            = errors.New("invalid promocode format")
	ErrInvalidDiscountPercent = errors.New("discount percentage must be in (0, 100]")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCode normalizes (trim, upper-case) before validating; lookups always use
// the normalized form.
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// ValidationReason is the typed explanation returned to callers instead of a
// raw error when a code fails validation.
type ValidationReason string

const (
	ReasonNotFound          ValidationReason = "not_found"
	ReasonInactivePeriod    ValidationReason = "inactive_period"
	ReasonUsageLimitReached ValidationReason = "usage_limit_reached"
	// ReasonBookingNotEligible is produced by the caller when price calculation
	// fails for the supplied booking parameters, not by the validator itself.
	ReasonBookingNotEligible ValidationReason = "booking_not_eligible"
	// ReasonAlreadyUsed is reserved in the wire vocabulary; no reuse rule emits
	// it today.
	ReasonAlreadyUsed ValidationReason = "already_used"
	ReasonUnknown     ValidationReason = "unknown"
)

func (r ValidationReason) String() string {
	return string(r)
}
