package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Noor881/contentforge-ai-sub001/internal/security/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const accountColumns = `id, email, COALESCE(fingerprint_hash, ''), signup_ip, COALESCE(last_ip, ''),
	generation_count, period_usage, tier, risk_score, is_flagged, flag_reason,
	is_blocked, block_reason, created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.FingerprintHash, &a.SignupIP, &a.LastIP,
		&a.GenerationCount, &a.PeriodUsage, &a.Tier, &a.RiskScore, &a.IsFlagged, &a.FlagReason,
		&a.IsBlocked, &a.BlockReason, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = $1
		LIMIT 1;
	`
	account, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *PostgresRepository) GetByFingerprintHash(ctx context.Context, hash string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE fingerprint_hash = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts by fingerprint: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}

func (r *PostgresRepository) CountBySignupIP(ctx context.Context, ip string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM accounts WHERE signup_ip = $1`, ip).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts by signup ip: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) HasBlockedAccountForIP(ctx context.Context, ip string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM accounts
			WHERE is_blocked AND (signup_ip = $1 OR last_ip = $1)
		)
	`, ip).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check blocked accounts for ip: %w", err)
	}

	return exists, nil
}

// SaveFingerprint updates the account's current hash and appends a history
// row. The history insert is unconditional: repeated captures of the same
// fingerprint produce repeated entries.
func (r *PostgresRepository) SaveFingerprint(ctx context.Context, accountID, hash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin fingerprint transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE accounts SET fingerprint_hash = $2, updated_at = now() WHERE id = $1
	`, accountID, hash)
	if err != nil {
		return fmt.Errorf("failed to update account fingerprint: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO fingerprint_history (id, account_id, fingerprint_hash, created_at)
		VALUES (gen_random_uuid(), $1, $2, now())
	`, accountID, hash)
	if err != nil {
		return fmt.Errorf("failed to append fingerprint history: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) UpdateRiskStatus(ctx context.Context, accountID string, score int, flagReason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET risk_score = $2,
			is_flagged = ($3 <> ''),
			flag_reason = NULLIF($3, ''),
			updated_at = now()
		WHERE id = $1
	`, accountID, score, flagReason)
	if err != nil {
		return fmt.Errorf("failed to update risk status: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Block(ctx context.Context, accountID, reason string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET is_blocked = true, block_reason = $2, updated_at = now()
		WHERE id = $1
	`, accountID, reason)
	if err != nil {
		return fmt.Errorf("failed to block account: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Unblock(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET is_blocked = false, block_reason = NULL, risk_score = 0, updated_at = now()
		WHERE id = $1
	`, accountID)
	if err != nil {
		return fmt.Errorf("failed to unblock account: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ClearFlags(ctx context.Context, accountID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET is_flagged = false, flag_reason = NULL, risk_score = 0, updated_at = now()
		WHERE id = $1
	`, accountID)
	if err != nil {
		return fmt.Errorf("failed to clear account flags: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Insert(ctx context.Context, activity *domain.SuspiciousActivity) error {
	details, err := json.Marshal(activity.Details)
	if err != nil {
		return fmt.Errorf("failed to encode activity details: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO suspicious_activities
			(id, account_id, fingerprint_hash, ip_address, activity_type, risk_score, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
	`, activity.ID, activity.AccountID, activity.FingerprintHash, activity.IPAddress,
		activity.ActivityType, activity.RiskScore, details)
	if err != nil {
		return fmt.Errorf("failed to insert suspicious activity: %w", err)
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context, limit int) ([]domain.SuspiciousActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, account_id, fingerprint_hash, ip_address, activity_type, risk_score, details, created_at
		FROM suspicious_activities
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list suspicious activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.SuspiciousActivity
	for rows.Next() {
		var a domain.SuspiciousActivity
		var details []byte
		err := rows.Scan(&a.ID, &a.AccountID, &a.FingerprintHash, &a.IPAddress,
			&a.ActivityType, &a.RiskScore, &details, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan suspicious activity: %w", err)
		}
		a.Details = json.RawMessage(details)
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

func (r *PostgresRepository) Purge(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM suspicious_activities`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge suspicious activities: %w", err)
	}

	return tag.RowsAffected(), nil
}
