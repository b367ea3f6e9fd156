package memory

import (
	"context"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletStore implements ports.WalletStore.
type WalletStore struct {
	db *DB
}

func (s *WalletStore) Create(_ context.Context, wallet *domain.Wallet) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.walletsByOwner[wallet.OwnerID]; ok {
		return domain.ErrWalletExists
	}
	w := *wallet
	s.db.wallets[w.ID] = &w
	s.db.walletsByOwner[w.OwnerID] = w.ID
	return nil
}

func (s *WalletStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	w, ok := s.db.wallets[id]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	out := *w
	return &out, nil
}

func (s *WalletStore) GetByOwnerID(_ context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	id, ok := s.db.walletsByOwner[ownerID]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	out := *s.db.wallets[id]
	return &out, nil
}

func (s *WalletStore) SetStatus(_ context.Context, id uuid.UUID, status domain.WalletStatus) (*domain.Wallet, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	w, ok := s.db.wallets[id]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	w.Status = status
	w.UpdatedAt = s.db.now()
	out := *w
	return &out, nil
}

func (s *WalletStore) ApplyDebit(_ context.Context, entry *domain.LedgerEntry, enforceStatus bool) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, dup := s.db.entryByRef[entry.Reference]; dup {
		return domain.ErrDuplicateReference
	}
	w, ok := s.db.wallets[entry.WalletID()]
	if !ok {
		return domain.ErrWalletNotFound
	}
	if enforceStatus && !w.IsActive() {
		return domain.ErrWalletSuspended
	}
	if w.Balance.LessThan(entry.Amount) {
		return domain.ErrInsufficientBalance
	}
	w.Balance = w.Balance.Sub(entry.Amount)
	w.UpdatedAt = s.db.now()
	s.db.appendEntry(entry)
	return nil
}

func (s *WalletStore) ApplyCredit(_ context.Context, entry *domain.LedgerEntry) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, dup := s.db.entryByRef[entry.Reference]; dup {
		return domain.ErrDuplicateReference
	}
	w, ok := s.db.wallets[entry.WalletID()]
	if !ok {
		return domain.ErrWalletNotFound
	}
	w.Balance = w.Balance.Add(entry.Amount)
	w.UpdatedAt = s.db.now()
	s.db.appendEntry(entry)
	return nil
}

func (s *WalletStore) ApplyClawback(_ context.Context, walletID uuid.UUID, amount decimal.Decimal, kind domain.EntryKind, reference string, metadata map[string]string) (*domain.ClawbackResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, dup := s.db.clawbacks[reference]; dup {
		return nil, domain.ErrDuplicateReference
	}
	if _, dup := s.db.entryByRef[reference]; dup {
		return nil, domain.ErrDuplicateReference
	}
	w, ok := s.db.wallets[walletID]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}

	var result domain.ClawbackResult
	collected := decimal.Min(w.Balance, amount)
	if collected.IsPositive() {
		entry := domain.NewDebitEntry(walletID, collected, kind, reference, metadata)
		w.Balance = w.Balance.Sub(collected)
		w.UpdatedAt = s.db.now()
		s.db.appendEntry(entry)
		result.Entry = entry
	}
	if shortfall := amount.Sub(collected); shortfall.IsPositive() {
		result.Liability = &domain.Liability{
			ID:        uuid.New(),
			WalletID:  walletID,
			Reference: reference,
			Amount:    shortfall,
			CreatedAt: s.db.now(),
		}
	}
	s.db.clawbacks[reference] = result
	return copyClawback(result), nil
}

func (s *WalletStore) GetClawback(_ context.Context, reference string) (*domain.ClawbackResult, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	result, ok := s.db.clawbacks[reference]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return copyClawback(result), nil
}

func (s *WalletStore) GetEntryByReference(_ context.Context, reference string) (*domain.LedgerEntry, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx, ok := s.db.entryByRef[reference]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	entry := s.db.entries[idx]
	return &entry, nil
}

func (s *WalletStore) ListEntries(_ context.Context, walletID uuid.UUID) ([]domain.LedgerEntry, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var out []domain.LedgerEntry
	for _, e := range s.db.entries {
		if e.WalletID() == walletID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Liabilities returns every recorded liability of walletID.
func (s *WalletStore) Liabilities(walletID uuid.UUID) []domain.Liability {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var out []domain.Liability
	for _, cb := range s.db.clawbacks {
		if cb.Liability != nil && cb.Liability.WalletID == walletID {
			out = append(out, *cb.Liability)
		}
	}
	return out
}

// appendEntry must be called with mu held.
func (db *DB) appendEntry(entry *domain.LedgerEntry) {
	db.entryByRef[entry.Reference] = len(db.entries)
	db.entries = append(db.entries, *entry)
}

func copyClawback(r domain.ClawbackResult) *domain.ClawbackResult {
	out := domain.ClawbackResult{}
	if r.Entry != nil {
		e := *r.Entry
		out.Entry = &e
	}
	if r.Liability != nil {
		l := *r.Liability
		out.Liability = &l
	}
	return &out
}
