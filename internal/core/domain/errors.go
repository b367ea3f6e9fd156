package domain

import "errors"

// Sentinel errors returned by stores and domain helpers. Services translate
// them into apperror codes before they reach a client.
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductInactive     = errors.New("product inactive")
	ErrOutOfStock          = errors.New("out of stock")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletExists        = errors.New("wallet already exists")
	ErrWalletSuspended     = errors.New("wallet suspended")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrNoActiveCommission  = errors.New("no active commission config")
	ErrCommissionNotFound  = errors.New("commission config not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReservationNotHeld  = errors.New("reservation no longer held")
	ErrDuplicateReference  = errors.New("duplicate ledger reference")
	ErrEntryNotFound       = errors.New("ledger entry not found")
	ErrStorageConflict     = errors.New("storage conflict")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidRate         = errors.New("invalid commission rate")
	ErrUnknownPool         = errors.New("unknown inventory pool shape")
)
