package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"purchase-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, owner_id, balance::text, currency, status, created_at, updated_at`

const entryColumns = `id, reference, source_wallet_id, destination_wallet_id, amount::text, kind, status, metadata, created_at`

// WalletStore implements ports.WalletStore. Balance changes lock the wallet
// row with SELECT ... FOR UPDATE and append the ledger entry in the same
// transaction.
type WalletStore struct {
	pool Pool
	tx   *Transactor
}

// NewWalletStore creates a new WalletStore.
func NewWalletStore(pool Pool) *WalletStore {
	return &WalletStore{pool: pool, tx: NewTransactor(pool)}
}

// Create inserts a new wallet.
func (s *WalletStore) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, owner_id, balance, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)`

	_, err := s.pool.Exec(ctx, query,
		w.ID, w.OwnerID, w.Balance.String(), w.Currency, w.Status, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", mapError(err))
	}
	return nil
}

// GetByID fetches a wallet without locking it.
func (s *WalletStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`
	w, err := scanWallet(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// GetByOwnerID fetches the wallet of an owner.
func (s *WalletStore) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1`
	w, err := scanWallet(s.pool.QueryRow(ctx, query, ownerID))
	if err != nil {
		return nil, fmt.Errorf("get wallet by owner: %w", err)
	}
	return w, nil
}

// SetStatus updates the wallet status and returns the new row.
func (s *WalletStore) SetStatus(ctx context.Context, id uuid.UUID, status domain.WalletStatus) (*domain.Wallet, error) {
	query := `UPDATE wallets SET status = $2, updated_at = $3 WHERE id = $1 RETURNING ` + walletColumns
	w, err := scanWallet(s.pool.QueryRow(ctx, query, id, status, time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("set wallet status: %w", err)
	}
	return w, nil
}

func (s *WalletStore) ApplyDebit(ctx context.Context, entry *domain.LedgerEntry, enforceStatus bool) error {
	return s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		w, err := lockWallet(ctx, tx, entry.WalletID())
		if err != nil {
			return err
		}
		if enforceStatus && !w.IsActive() {
			return domain.ErrWalletSuspended
		}
		if err := insertEntry(ctx, tx, entry); err != nil {
			return err
		}
		if w.Balance.LessThan(entry.Amount) {
			return domain.ErrInsufficientBalance
		}
		return adjustBalance(ctx, tx, w.ID, entry.Amount.Neg(), entry.CreatedAt)
	})
}

func (s *WalletStore) ApplyCredit(ctx context.Context, entry *domain.LedgerEntry) error {
	return s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		w, err := lockWallet(ctx, tx, entry.WalletID())
		if err != nil {
			return err
		}
		if err := insertEntry(ctx, tx, entry); err != nil {
			return err
		}
		return adjustBalance(ctx, tx, w.ID, entry.Amount, entry.CreatedAt)
	})
}

func (s *WalletStore) ApplyClawback(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, kind domain.EntryKind, reference string, metadata map[string]string) (*domain.ClawbackResult, error) {
	var result domain.ClawbackResult
	err := s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		w, err := lockWallet(ctx, tx, walletID)
		if err != nil {
			return err
		}

		var used bool
		err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE reference = $1)
			OR EXISTS (SELECT 1 FROM liabilities WHERE reference = $1)`, reference).Scan(&used)
		if err != nil {
			return fmt.Errorf("check clawback reference: %w", err)
		}
		if used {
			return domain.ErrDuplicateReference
		}

		collected := decimal.Min(w.Balance, amount)
		if collected.IsPositive() {
			entry := domain.NewDebitEntry(walletID, collected, kind, reference, metadata)
			if err := insertEntry(ctx, tx, entry); err != nil {
				return err
			}
			if err := adjustBalance(ctx, tx, walletID, collected.Neg(), entry.CreatedAt); err != nil {
				return err
			}
			result.Entry = entry
		}
		if shortfall := amount.Sub(collected); shortfall.IsPositive() {
			liability := &domain.Liability{
				ID:        uuid.New(),
				WalletID:  walletID,
				Reference: reference,
				Amount:    shortfall,
				CreatedAt: time.Now().UTC(),
			}
			_, err := tx.Exec(ctx, `INSERT INTO liabilities (id, wallet_id, reference, amount, created_at)
				VALUES ($1, $2, $3, $4::numeric, $5)`,
				liability.ID, liability.WalletID, liability.Reference, liability.Amount.String(), liability.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert liability: %w", mapError(err))
			}
			result.Liability = liability
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *WalletStore) GetClawback(ctx context.Context, reference string) (*domain.ClawbackResult, error) {
	var result domain.ClawbackResult

	entry, err := s.GetEntryByReference(ctx, reference)
	switch {
	case err == nil:
		result.Entry = entry
	case !errors.Is(err, domain.ErrEntryNotFound):
		return nil, err
	}

	var l domain.Liability
	var amount string
	err = s.pool.QueryRow(ctx,
		`SELECT id, wallet_id, reference, amount::text, created_at FROM liabilities WHERE reference = $1`, reference,
	).Scan(&l.ID, &l.WalletID, &l.Reference, &amount, &l.CreatedAt)
	switch {
	case err == nil:
		if l.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse liability amount: %w", err)
		}
		result.Liability = &l
	case !errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("get liability: %w", err)
	}

	if result.Entry == nil && result.Liability == nil {
		return nil, domain.ErrEntryNotFound
	}
	return &result, nil
}

func (s *WalletStore) GetEntryByReference(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE reference = $1`
	e, err := scanEntry(s.pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("get entry by reference: %w", err)
	}
	return e, nil
}

// ListEntries returns every entry touching walletID, oldest first.
func (s *WalletStore) ListEntries(ctx context.Context, walletID uuid.UUID) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries
		WHERE source_wallet_id = $1 OR destination_wallet_id = $1
		ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

func lockWallet(ctx context.Context, q querier, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1 FOR UPDATE`
	w, err := scanWallet(q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("lock wallet: %w", err)
	}
	return w, nil
}

func adjustBalance(ctx context.Context, q querier, id uuid.UUID, delta decimal.Decimal, at time.Time) error {
	_, err := q.Exec(ctx,
		`UPDATE wallets SET balance = balance + $2::numeric, updated_at = $3 WHERE id = $1`,
		id, delta.String(), at,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", mapError(err))
	}
	return nil
}

func insertEntry(ctx context.Context, q querier, e *domain.LedgerEntry) error {
	metadata, err := json.Marshal(e.Metadata)
	if err != nil {
		return fmt.Errorf("marshal entry metadata: %w", err)
	}
	_, err = q.Exec(ctx, `INSERT INTO ledger_entries
		(id, reference, source_wallet_id, destination_wallet_id, amount, kind, status, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9)`,
		e.ID, e.Reference, e.SourceWalletID, e.DestinationWalletID, e.Amount.String(),
		e.Kind, e.Status, metadata, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", mapError(err))
	}
	return nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var w domain.Wallet
	var balance string
	err := row.Scan(&w.ID, &w.OwnerID, &balance, &w.Currency, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}
	if w.Balance, err = decimal.NewFromString(balance); err != nil {
		return nil, fmt.Errorf("parse balance: %w", err)
	}
	return &w, nil
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	var amount string
	var metadata []byte
	err := row.Scan(&e.ID, &e.Reference, &e.SourceWalletID, &e.DestinationWalletID,
		&amount, &e.Kind, &e.Status, &metadata, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}
	return &e, nil
}
