package queries

import (
	"github.com/benjietrozo-hub/labmate-guardian-sub000/internal/pkg/errs"
)

var (
	ErrInvalidCursor = errs.WithKind(errs.New("invalid cursor"), errs.ErrValidation)

	ErrUserNotFound = errs.WithKind(errs.New("user not found"), errs.ErrNotFound)
	ErrUserInactive = errs.WithKind(errs.New("user inactive"), errs.ErrForbidden)

	ErrResourceNotFound    = errs.WithKind(errs.New("resource not found"), errs.ErrNotFound)
	ErrReservationNotFound = errs.WithKind(errs.New("reservation not found"), errs.ErrNotFound)
	ErrReservationAccess   = errs.WithKind(errs.New("reservation access denied"), errs.ErrForbidden)
	ErrBorrowNotFound      = errs.WithKind(errs.New("borrow record not found"), errs.ErrNotFound)
	ErrBorrowAccess        = errs.WithKind(errs.New("borrow record access denied"), errs.ErrForbidden)
)
