package service

import (
	"errors"

	"purchase-engine/internal/core/domain"
	"purchase-engine/pkg/apperror"
)

// toAppError translates store and domain errors into client-facing codes.
// Errors that are already AppErrors pass through unchanged.
func toAppError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return apperror.ErrNotFound("product")
	case errors.Is(err, domain.ErrWalletNotFound):
		return apperror.ErrNotFound("wallet")
	case errors.Is(err, domain.ErrOrderNotFound):
		return apperror.ErrNotFound("order")
	case errors.Is(err, domain.ErrCommissionNotFound):
		return apperror.ErrNotFound("commission config")
	case errors.Is(err, domain.ErrEntryNotFound):
		return apperror.ErrNotFound("ledger entry")
	case errors.Is(err, domain.ErrReservationNotFound):
		return apperror.ErrNotFound("reservation")
	case errors.Is(err, domain.ErrOutOfStock):
		return apperror.ErrOutOfStock()
	case errors.Is(err, domain.ErrProductInactive):
		return apperror.ErrProductInactive()
	case errors.Is(err, domain.ErrInsufficientBalance):
		return apperror.ErrInsufficientFunds()
	case errors.Is(err, domain.ErrWalletSuspended):
		return apperror.ErrWalletSuspended()
	case errors.Is(err, domain.ErrWalletExists):
		return apperror.ErrWalletExists()
	case errors.Is(err, domain.ErrNoActiveCommission):
		return apperror.ErrNoActiveCommission()
	case errors.Is(err, domain.ErrInvalidTransition):
		return apperror.ErrInvalidTransition()
	case errors.Is(err, domain.ErrInvalidAmount):
		return apperror.ErrInvalidAmount()
	case errors.Is(err, domain.ErrInvalidRate):
		return apperror.ErrInvalidRate()
	case errors.Is(err, domain.ErrStorageConflict):
		return apperror.ErrStorageConflict(err)
	default:
		return apperror.InternalError(err)
	}
}
