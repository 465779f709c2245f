// Package sqlite stores the record book in an embedded sqlite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"agrofund/internal/core/domain"
)

// RecordStore implements port.RecordStore on database/sql with the
// go-sqlite3 driver. Save rewrites every table inside one immediate
// transaction guarded by the store_meta version.
type RecordStore struct {
	db *sql.DB
}

// NewRecordStore wraps an open sqlite handle; see db.NewSQLite.
func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

func (r *RecordStore) Load(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return snap, err
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRowContext(ctx, `SELECT version, next_campaign_id, next_investment_id, next_microloan_id FROM store_meta WHERE id = 1`).
		Scan(&snap.Version, &snap.NextCampaignID, &snap.NextInvestmentID, &snap.NextMicroloanID)
	if err != nil {
		return snap, fmt.Errorf("load store meta: %w", err)
	}
	if snap.Campaigns, err = loadCampaigns(ctx, tx); err != nil {
		return snap, fmt.Errorf("load campaigns: %w", err)
	}
	if snap.Investments, err = loadInvestments(ctx, tx); err != nil {
		return snap, fmt.Errorf("load investments: %w", err)
	}
	if snap.Microloans, err = loadMicroloans(ctx, tx); err != nil {
		return snap, fmt.Errorf("load microloans: %w", err)
	}
	snap.Normalize()
	return snap, nil
}

func (r *RecordStore) Save(ctx context.Context, snap domain.Snapshot) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	// Bumping the version first takes the write lock, so the compare below
	// cannot race another writer.
	res, err := tx.ExecContext(ctx, `UPDATE store_meta SET version = version + 1, next_campaign_id = ?,
                      next_investment_id = ?, next_microloan_id = ? WHERE id = 1 AND version = ?`,
		snap.NextCampaignID, snap.NextInvestmentID, snap.NextMicroloanID, snap.Version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return domain.ErrStaleSnapshot
	}

	for _, table := range []string{"microloans", "investments", "campaigns"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	for _, c := range snap.Campaigns {
		_, err = tx.ExecContext(ctx, `INSERT INTO campaigns (id, farmer_name, project_title, description, funding_goal,
                       farmer_wallet_seed, farmer_address, token_currency, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.FarmerName, c.ProjectTitle, c.Description, c.FundingGoal, c.FarmerWalletSeed, c.FarmerAddress,
			c.TokenCurrency, string(c.Status), c.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("insert campaign %d: %w", c.ID, err)
		}
	}
	for _, inv := range snap.Investments {
		_, err = tx.ExecContext(ctx, `INSERT INTO investments (id, campaign_id, investor_address, amount, created_at,
                         reference, transfer_tx_hash, trust_line_established, tokens_delivered)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			inv.ID, inv.CampaignID, inv.InvestorAddress, inv.Amount, inv.CreatedAt.UTC(), inv.Reference,
			inv.TransferTxHash, inv.TrustLineEstablished, inv.TokensDelivered)
		if err != nil {
			return fmt.Errorf("insert investment %d: %w", inv.ID, err)
		}
	}
	for _, m := range snap.Microloans {
		_, err = tx.ExecContext(ctx, `INSERT INTO microloans (id, farmer_address, investor_address, loan_amount,
                        repayment_days, escrow_sequence, condition, status, created_at, completed_at, cancelled_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.FarmerAddress, m.InvestorAddress, m.LoanAmount, m.RepaymentDays, m.EscrowSequence, m.Condition,
			string(m.Status), m.CreatedAt.UTC(), nullTime(m.CompletedAt), nullTime(m.CancelledAt))
		if err != nil {
			return fmt.Errorf("insert microloan %d: %w", m.ID, err)
		}
	}
	return nil
}

// Close closes the underlying database handle.
func (r *RecordStore) Close() error {
	return r.db.Close()
}

func loadCampaigns(ctx context.Context, tx *sql.Tx) ([]domain.Campaign, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, farmer_name, project_title, description, funding_goal,
       farmer_wallet_seed, farmer_address, token_currency, status, created_at FROM campaigns ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		var (
			c        domain.Campaign
			currency sql.NullString
			status   string
		)
		err = rows.Scan(&c.ID, &c.FarmerName, &c.ProjectTitle, &c.Description, &c.FundingGoal, &c.FarmerWalletSeed,
			&c.FarmerAddress, &currency, &status, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		if currency.Valid {
			c.TokenCurrency = &currency.String
		}
		c.Status = domain.CampaignStatus(status)
		c.CreatedAt = c.CreatedAt.UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}

func loadInvestments(ctx context.Context, tx *sql.Tx) ([]domain.Investment, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, campaign_id, investor_address, amount, created_at, reference,
       transfer_tx_hash, trust_line_established, tokens_delivered FROM investments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Investment
	for rows.Next() {
		var i domain.Investment
		err = rows.Scan(&i.ID, &i.CampaignID, &i.InvestorAddress, &i.Amount, &i.CreatedAt, &i.Reference,
			&i.TransferTxHash, &i.TrustLineEstablished, &i.TokensDelivered)
		if err != nil {
			return nil, err
		}
		i.CreatedAt = i.CreatedAt.UTC()
		out = append(out, i)
	}
	return out, rows.Err()
}

func loadMicroloans(ctx context.Context, tx *sql.Tx) ([]domain.Microloan, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, farmer_address, investor_address, loan_amount, repayment_days,
       escrow_sequence, condition, status, created_at, completed_at, cancelled_at FROM microloans ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Microloan
	for rows.Next() {
		var (
			m                    domain.Microloan
			status               string
			completed, cancelled sql.NullTime
		)
		err = rows.Scan(&m.ID, &m.FarmerAddress, &m.InvestorAddress, &m.LoanAmount, &m.RepaymentDays,
			&m.EscrowSequence, &m.Condition, &status, &m.CreatedAt, &completed, &cancelled)
		if err != nil {
			return nil, err
		}
		m.Status = domain.MicroloanStatus(status)
		m.CreatedAt = m.CreatedAt.UTC()
		m.CompletedAt = timePtr(completed)
		m.CancelledAt = timePtr(cancelled)
		out = append(out, m)
	}
	return out, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	u := t.Time.UTC()
	return &u
}
