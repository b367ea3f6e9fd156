package postgres

import (
	"errors"
	"fmt"

	"purchase-engine/internal/core/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the stores react to.
const (
	codeUniqueViolation      = "23505"
	codeCheckViolation       = "23514"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// Unique constraints with a domain meaning.
const (
	constraintWalletOwner     = "wallets_owner_id_key"
	constraintEntryReference  = "ledger_entries_reference_key"
	constraintLiabilityRef    = "liabilities_reference_key"
	constraintWalletBalanceNN = "wallets_balance_check"
)

// mapError translates Postgres errors into domain sentinels, keeping the
// original error in the chain.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeSerializationFailure, codeDeadlockDetected:
		return fmt.Errorf("%w: %w", domain.ErrStorageConflict, err)
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintWalletOwner:
			return fmt.Errorf("%w: %w", domain.ErrWalletExists, err)
		case constraintEntryReference, constraintLiabilityRef:
			return fmt.Errorf("%w: %w", domain.ErrDuplicateReference, err)
		}
	case codeCheckViolation:
		if pgErr.ConstraintName == constraintWalletBalanceNN {
			return fmt.Errorf("%w: %w", domain.ErrInsufficientBalance, err)
		}
	}
	return err
}
