package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"agrofund/internal/core/domain"
)

// serializationFailure is the SQLSTATE postgres reports when a serializable
// transaction lost a race with a concurrent one.
const serializationFailure = "40001"

// RecordStore implements port.RecordStore using pgxpool for PostgreSQL. The
// snapshot is spread across one table per collection plus a single
// store_meta row holding the id counters and the version.
type RecordStore struct {
	pool *pgxpool.Pool
}

// NewRecordStore returns a new store instance.
func NewRecordStore(pool *pgxpool.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

// Load reads the full snapshot inside one repeatable read transaction.
func (r *RecordStore) Load(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return snap, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `SELECT version, next_campaign_id, next_investment_id, next_microloan_id FROM store_meta WHERE id = 1`).
		Scan(&snap.Version, &snap.NextCampaignID, &snap.NextInvestmentID, &snap.NextMicroloanID)
	if err != nil {
		return snap, fmt.Errorf("load store meta: %w", err)
	}

	rows, err := tx.Query(ctx, `SELECT id, farmer_name, project_title, description, funding_goal, farmer_wallet_seed,
       farmer_address, token_currency, status, created_at FROM campaigns ORDER BY id`)
	if err != nil {
		return snap, err
	}
	snap.Campaigns, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.FarmerName, &c.ProjectTitle, &c.Description, &c.FundingGoal, &c.FarmerWalletSeed,
			&c.FarmerAddress, &c.TokenCurrency, &c.Status, &c.CreatedAt)
		c.CreatedAt = c.CreatedAt.UTC()
		return c, err
	})
	if err != nil {
		return snap, fmt.Errorf("load campaigns: %w", err)
	}

	rows, err = tx.Query(ctx, `SELECT id, campaign_id, investor_address, amount, created_at, reference, transfer_tx_hash,
       trust_line_established, tokens_delivered FROM investments ORDER BY id`)
	if err != nil {
		return snap, err
	}
	snap.Investments, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Investment, error) {
		var i domain.Investment
		err := row.Scan(&i.ID, &i.CampaignID, &i.InvestorAddress, &i.Amount, &i.CreatedAt, &i.Reference,
			&i.TransferTxHash, &i.TrustLineEstablished, &i.TokensDelivered)
		i.CreatedAt = i.CreatedAt.UTC()
		return i, err
	})
	if err != nil {
		return snap, fmt.Errorf("load investments: %w", err)
	}

	rows, err = tx.Query(ctx, `SELECT id, farmer_address, investor_address, loan_amount, repayment_days, escrow_sequence,
       condition, status, created_at, completed_at, cancelled_at FROM microloans ORDER BY id`)
	if err != nil {
		return snap, err
	}
	snap.Microloans, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Microloan, error) {
		var m domain.Microloan
		err := row.Scan(&m.ID, &m.FarmerAddress, &m.InvestorAddress, &m.LoanAmount, &m.RepaymentDays, &m.EscrowSequence,
			&m.Condition, &m.Status, &m.CreatedAt, &m.CompletedAt, &m.CancelledAt)
		m.CreatedAt = m.CreatedAt.UTC()
		m.CompletedAt = utcPtr(m.CompletedAt)
		m.CancelledAt = utcPtr(m.CancelledAt)
		return m, err
	})
	if err != nil {
		return snap, fmt.Errorf("load microloans: %w", err)
	}

	snap.Normalize()
	return snap, nil
}

// Save replaces the stored snapshot in one serializable transaction. The
// store_meta row is locked first; a version mismatch or a serialization
// failure reports domain.ErrStaleSnapshot.
func (r *RecordStore) Save(ctx context.Context, snap domain.Snapshot) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = staleOnConflict(err)
		}
	}()

	var stored uint64
	err = tx.QueryRow(ctx, `SELECT version FROM store_meta WHERE id = 1 FOR UPDATE`).Scan(&stored)
	if err != nil {
		return staleOnConflict(err)
	}
	if stored != snap.Version {
		return domain.ErrStaleSnapshot
	}

	if _, err = tx.Exec(ctx, `TRUNCATE microloans, investments, campaigns`); err != nil {
		return err
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"campaigns"},
		[]string{"id", "farmer_name", "project_title", "description", "funding_goal", "farmer_wallet_seed",
			"farmer_address", "token_currency", "status", "created_at"},
		pgx.CopyFromSlice(len(snap.Campaigns), func(i int) ([]any, error) {
			c := snap.Campaigns[i]
			return []any{c.ID, c.FarmerName, c.ProjectTitle, c.Description, c.FundingGoal, c.FarmerWalletSeed,
				c.FarmerAddress, c.TokenCurrency, string(c.Status), c.CreatedAt}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy campaigns: %w", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"investments"},
		[]string{"id", "campaign_id", "investor_address", "amount", "created_at", "reference", "transfer_tx_hash",
			"trust_line_established", "tokens_delivered"},
		pgx.CopyFromSlice(len(snap.Investments), func(i int) ([]any, error) {
			inv := snap.Investments[i]
			return []any{inv.ID, inv.CampaignID, inv.InvestorAddress, inv.Amount, inv.CreatedAt, inv.Reference,
				inv.TransferTxHash, inv.TrustLineEstablished, inv.TokensDelivered}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy investments: %w", err)
	}

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"microloans"},
		[]string{"id", "farmer_address", "investor_address", "loan_amount", "repayment_days", "escrow_sequence",
			"condition", "status", "created_at", "completed_at", "cancelled_at"},
		pgx.CopyFromSlice(len(snap.Microloans), func(i int) ([]any, error) {
			m := snap.Microloans[i]
			return []any{m.ID, m.FarmerAddress, m.InvestorAddress, m.LoanAmount, int32(m.RepaymentDays),
				m.EscrowSequence, m.Condition, string(m.Status), m.CreatedAt, m.CompletedAt, m.CancelledAt}, nil
		}))
	if err != nil {
		return fmt.Errorf("copy microloans: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE store_meta SET version = $1, next_campaign_id = $2, next_investment_id = $3,
                      next_microloan_id = $4 WHERE id = 1`,
		snap.Version+1, snap.NextCampaignID, snap.NextInvestmentID, snap.NextMicroloanID)
	return err
}

// Close is a no-op; the pool is owned by main.
func (r *RecordStore) Close() error { return nil }

func staleOnConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == serializationFailure {
		return fmt.Errorf("%w: %s", domain.ErrStaleSnapshot, pgErr.Message)
	}
	return err
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
