package service

import (
	"context"
	"errors"
	"fmt"

	"purchase-engine/internal/core/domain"
	"purchase-engine/internal/core/ports"
	"purchase-engine/internal/telemetry"
	"purchase-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LedgerServiceImpl implements ports.LedgerService.
type LedgerServiceImpl struct {
	wallets  ports.WalletStore
	currency string
	scale    int32
	metrics  *telemetry.Metrics
	log      zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	wallets ports.WalletStore,
	currency string,
	scale int32,
	metrics *telemetry.Metrics,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		wallets:  wallets,
		currency: currency,
		scale:    scale,
		metrics:  metrics,
		log:      log,
	}
}

// OpenWallet creates the wallet of ownerID.
func (s *LedgerServiceImpl) OpenWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	wallet := domain.NewWallet(ownerID, s.currency)
	if err := s.wallets.Create(ctx, wallet); err != nil {
		return nil, toAppError(err)
	}
	s.log.Info().Str("owner_id", ownerID.String()).Str("wallet_id", wallet.ID.String()).Msg("wallet opened")
	return wallet, nil
}

// EnsureWallet returns the wallet of ownerID, creating it if missing.
func (s *LedgerServiceImpl) EnsureWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.wallets.GetByOwnerID(ctx, ownerID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, domain.ErrWalletNotFound) {
		return nil, toAppError(err)
	}

	wallet, err = s.OpenWallet(ctx, ownerID)
	if apperror.HasCode(err, "WAL_002") {
		// Lost a creation race; the winner's wallet is the one to use.
		return s.GetWallet(ctx, ownerID)
	}
	return wallet, err
}

// GetWallet returns the wallet of ownerID.
func (s *LedgerServiceImpl) GetWallet(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.wallets.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, toAppError(err)
	}
	return wallet, nil
}

// GetWalletBalance returns the balance and currency of ownerID's wallet.
func (s *LedgerServiceImpl) GetWalletBalance(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, string, error) {
	wallet, err := s.GetWallet(ctx, ownerID)
	if err != nil {
		return decimal.Zero, "", err
	}
	return wallet.Balance, wallet.Currency, nil
}

// SetWalletStatus suspends or reactivates ownerID's wallet.
func (s *LedgerServiceImpl) SetWalletStatus(ctx context.Context, ownerID uuid.UUID, status domain.WalletStatus) (*domain.Wallet, error) {
	if status != domain.WalletStatusActive && status != domain.WalletStatusSuspended {
		return nil, apperror.Validation("status must be ACTIVE or SUSPENDED")
	}
	wallet, err := s.GetWallet(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	updated, err := s.wallets.SetStatus(ctx, wallet.ID, status)
	if err != nil {
		return nil, toAppError(err)
	}
	s.log.Info().Str("wallet_id", wallet.ID.String()).Str("status", string(status)).Msg("wallet status changed")
	return updated, nil
}

// Debit removes req.Amount from an active wallet.
func (s *LedgerServiceImpl) Debit(ctx context.Context, req ports.LedgerRequest) (*domain.LedgerEntry, error) {
	ctx, span := telemetry.StartSpan(ctx, "ledger.Debit")
	defer span.End()

	if err := s.validate(req); err != nil {
		return nil, err
	}

	entry := domain.NewDebitEntry(req.WalletID, req.Amount, req.Kind, s.reference(req), req.Metadata)
	err := s.wallets.ApplyDebit(ctx, entry, true)
	switch {
	case err == nil:
		s.metrics.LedgerEntry(string(req.Kind))
		return entry, nil
	case errors.Is(err, domain.ErrDuplicateReference):
		return s.replay(ctx, entry.Reference)
	case errors.Is(err, domain.ErrInsufficientBalance), errors.Is(err, domain.ErrWalletSuspended):
		s.log.Info().Err(err).Str("wallet_id", req.WalletID.String()).Str("amount", req.Amount.String()).Msg("debit rejected")
		return nil, toAppError(err)
	default:
		return nil, toAppError(fmt.Errorf("debit wallet %s: %w", req.WalletID, err))
	}
}

// Credit adds req.Amount to a wallet regardless of its status.
func (s *LedgerServiceImpl) Credit(ctx context.Context, req ports.LedgerRequest) (*domain.LedgerEntry, error) {
	ctx, span := telemetry.StartSpan(ctx, "ledger.Credit")
	defer span.End()

	if err := s.validate(req); err != nil {
		return nil, err
	}

	entry := domain.NewCreditEntry(req.WalletID, req.Amount, req.Kind, s.reference(req), req.Metadata)
	err := s.wallets.ApplyCredit(ctx, entry)
	switch {
	case err == nil:
		s.metrics.LedgerEntry(string(req.Kind))
		return entry, nil
	case errors.Is(err, domain.ErrDuplicateReference):
		return s.replay(ctx, entry.Reference)
	default:
		return nil, toAppError(fmt.Errorf("credit wallet %s: %w", req.WalletID, err))
	}
}

// Clawback debits up to req.Amount and books the shortfall as a liability.
func (s *LedgerServiceImpl) Clawback(ctx context.Context, req ports.LedgerRequest) (*domain.ClawbackResult, error) {
	ctx, span := telemetry.StartSpan(ctx, "ledger.Clawback")
	defer span.End()

	if err := s.validate(req); err != nil {
		return nil, err
	}
	ref := s.reference(req)

	result, err := s.wallets.ApplyClawback(ctx, req.WalletID, req.Amount, req.Kind, ref, req.Metadata)
	if errors.Is(err, domain.ErrDuplicateReference) {
		result, err = s.wallets.GetClawback(ctx, ref)
	} else if err == nil {
		if result.Entry != nil {
			s.metrics.LedgerEntry(string(req.Kind))
		}
		if result.Liability != nil {
			s.metrics.Liability()
			s.log.Warn().
				Str("wallet_id", req.WalletID.String()).
				Str("reference", ref).
				Str("shortfall", result.Liability.Amount.String()).
				Msg("clawback short, liability recorded")
		}
	}
	if err != nil {
		return nil, toAppError(fmt.Errorf("clawback wallet %s: %w", req.WalletID, err))
	}
	return result, nil
}

// Recharge credits an approved external deposit to the owner's wallet.
func (s *LedgerServiceImpl) Recharge(ctx context.Context, req ports.RechargeRequest) (*domain.LedgerEntry, error) {
	if req.Reference == "" {
		return nil, apperror.Validation("recharge reference is required")
	}
	wallet, err := s.GetWallet(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{"source": "recharge_approval"}
	if req.ActorID != nil {
		metadata["approved_by"] = req.ActorID.String()
	}
	entry, err := s.Credit(ctx, ports.LedgerRequest{
		WalletID:  wallet.ID,
		Amount:    req.Amount,
		Kind:      domain.EntryKindRechargeCredit,
		Reference: domain.RechargeReference(req.Reference),
		Metadata:  metadata,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("wallet_id", wallet.ID.String()).Str("amount", req.Amount.String()).Str("reference", entry.Reference).Msg("wallet recharged")
	return entry, nil
}

// Reconcile recomputes a wallet balance from its completed entries.
func (s *LedgerServiceImpl) Reconcile(ctx context.Context, walletID uuid.UUID) (decimal.Decimal, error) {
	entries, err := s.wallets.ListEntries(ctx, walletID)
	if err != nil {
		return decimal.Zero, toAppError(fmt.Errorf("list entries of %s: %w", walletID, err))
	}
	return domain.ReplayBalance(walletID, entries), nil
}

func (s *LedgerServiceImpl) validate(req ports.LedgerRequest) error {
	if req.WalletID == uuid.Nil {
		return apperror.Validation("wallet id is required")
	}
	if !domain.ValidAmount(req.Amount, s.scale) {
		return apperror.ErrInvalidAmount()
	}
	return nil
}

func (s *LedgerServiceImpl) reference(req ports.LedgerRequest) string {
	if req.Reference != "" {
		return req.Reference
	}
	return "manual:" + uuid.NewString()
}

// FindEntry looks up an entry by reference. A missing entry is not an error.
func (s *LedgerServiceImpl) FindEntry(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	entry, err := s.wallets.GetEntryByReference(ctx, reference)
	if errors.Is(err, domain.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, toAppError(fmt.Errorf("load entry %s: %w", reference, err))
	}
	return entry, nil
}

func (s *LedgerServiceImpl) replay(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	existing, err := s.wallets.GetEntryByReference(ctx, reference)
	if err != nil {
		return nil, toAppError(fmt.Errorf("load entry %s: %w", reference, err))
	}
	s.log.Debug().Str("reference", reference).Msg("ledger reference already applied")
	return existing, nil
}
