package errors

import (
	"errors"
	"fmt"
)

// Categories. Handlers map these to HTTP status codes; everything below wraps one of them.
var (
	ErrUnauthenticated = errors.New("unauthorized access")
	ErrForbidden       = errors.New("forbidden access")
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrPersistence     = errors.New("persistence failure")
	ErrNotification    = errors.New("notification failure")
	ErrRateLimited     = errors.New("too many requests")
)

var (
	ErrStatusRequired = fmt.Errorf("%w: status is required", ErrValidation)
	ErrInvalidStatus  = fmt.Errorf("%w: invalid transaction status", ErrValidation)
	ErrInvalidKind    = fmt.Errorf("%w: invalid transaction kind", ErrValidation)
	ErrInvalidAmount  = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrInvalidID      = fmt.Errorf("%w: invalid id", ErrValidation)
	ErrInvalidInput   = fmt.Errorf("%w: invalid input", ErrValidation)

	ErrTransactionNotFound = fmt.Errorf("transaction %w", ErrNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrChannelNotFound     = fmt.Errorf("channel %w", ErrNotFound)

	ErrStatusUnchanged = fmt.Errorf("%w: status is already updated", ErrConflict)
	ErrStatusFinal     = fmt.Errorf("%w: status can no longer be changed", ErrConflict)
	ErrConfirmedLocked = fmt.Errorf("%w: cannot cancel a confirmed transaction", ErrConflict)

	ErrScopeMismatch = fmt.Errorf("%w: requested scope does not belong to caller", ErrForbidden)
	ErrAdminOnly     = fmt.Errorf("%w: admin only action", ErrForbidden)

	ErrNilTransaction = errors.New("transaction is nil")
	ErrNilUser        = errors.New("user is nil")
	ErrNilChannel     = errors.New("channel is nil")
)
