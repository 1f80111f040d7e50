package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a state conflict (HTTP 409), e.g. cancelling an
// already cancelled order.
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// InsufficientBalanceError carries the structured shortfall returned when a
// driver's sponsor balance cannot cover a purchase or a checkout partition.
type InsufficientBalanceError struct {
	SponsorID int64
	Required  int64
	Available int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: sponsor %d requires %d points, %d available (short %d)",
		e.SponsorID, e.Required, e.Available, e.Shortfall())
}

// Shortfall returns how many points are missing.
func (e *InsufficientBalanceError) Shortfall() int64 {
	return e.Required - e.Available
}

// AsInsufficientBalance reports whether err wraps an InsufficientBalanceError
// and returns it when present.
func AsInsufficientBalance(err error) (*InsufficientBalanceError, bool) {
	var ib *InsufficientBalanceError
	if errors.As(err, &ib) {
		return ib, true
	}
	return nil, false
}
