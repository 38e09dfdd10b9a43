// Package usage implements the SQLite-backed daily quota store. It fails
// open on every storage error: an unreachable database degrades tracking,
// never the service.
package usage

import (
	"context"
	"crypto/md5"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"DomainWorth/internal/domain/models"
	xlogger "DomainWorth/pkg/logger"
	xutil "DomainWorth/pkg/util"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS usage_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_hash TEXT NOT NULL,
	date TEXT NOT NULL,
	request_count INTEGER DEFAULT 0,
	last_request TEXT,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_user_date ON usage_records(user_hash, date);
`

const dateLayout = "2006-01-02"

// today keys rows by their UTC day so the daily window resets on the
// same boundary for every caller.
func today() string {
	return xutil.StartOfDayUTC(time.Now()).Format(dateLayout)
}

// Store tracks per-caller daily request counts in SQLite.
type Store struct {
	db         *sqlx.DB
	dailyLimit int
	log        *xlogger.Logger
}

func NewStore(dbPath string, dailyLimit int, log *xlogger.Logger) (*Store, error) {
	if dailyLimit <= 0 {
		dailyLimit = 3
	}
	db, err := sqlx.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open usage db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init usage schema: %w", err)
	}
	return &Store{db: db, dailyLimit: dailyLimit, log: log}, nil
}

// userHash identifies a caller by IP plus user agent.
func userHash(ip, userAgent string) string {
	sum := md5.Sum([]byte(ip + "-" + userAgent))
	return hex.EncodeToString(sum[:])
}

type usageRow struct {
	RequestCount int            `db:"request_count"`
	LastRequest  sql.NullString `db:"last_request"`
}

// Allow checks the caller's quota and, when allowed, consumes one request.
// Storage errors allow the request with tracking marked as degraded.
func (s *Store) Allow(ctx context.Context, ip, userAgent string) models.UsageDecision {
	hash := userHash(ip, userAgent)
	day := today()

	var row usageRow
	err := s.db.GetContext(ctx, &row,
		`SELECT request_count, last_request FROM usage_records WHERE user_hash = ? AND date = ?`,
		hash, day)

	switch {
	case err == nil:
		if row.RequestCount >= s.dailyLimit {
			return models.UsageDecision{
				Allowed:   false,
				Remaining: 0,
				ResetTime: "tomorrow",
				Message: fmt.Sprintf("You have used all your daily requests (%d/%d). Please come back tomorrow.",
					s.dailyLimit, s.dailyLimit),
			}
		}
		_, err = s.db.ExecContext(ctx,
			`UPDATE usage_records SET request_count = request_count + 1, last_request = ? WHERE user_hash = ? AND date = ?`,
			time.Now().Format(time.RFC3339), hash, day)
		if err != nil {
			return s.degraded(err)
		}
		remaining := s.dailyLimit - row.RequestCount - 1
		return s.allowed(remaining)

	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO usage_records (user_hash, date, request_count, last_request) VALUES (?, ?, 1, ?)`,
			hash, day, time.Now().Format(time.RFC3339))
		if err != nil {
			return s.degraded(err)
		}
		return s.allowed(s.dailyLimit - 1)

	default:
		return s.degraded(err)
	}
}

func (s *Store) allowed(remaining int) models.UsageDecision {
	return models.UsageDecision{
		Allowed:   true,
		Remaining: remaining,
		ResetTime: "tomorrow",
		Message:   fmt.Sprintf("Your remaining requests today: %d/%d", remaining, s.dailyLimit),
	}
}

func (s *Store) degraded(err error) models.UsageDecision {
	if s.log != nil {
		s.log.Warn("usage tracking degraded", xlogger.Error(err))
	}
	return models.UsageDecision{
		Allowed:   true,
		Remaining: s.dailyLimit - 1,
		ResetTime: "unknown",
		Message:   "Usage tracking is temporarily disabled",
	}
}

// Stats reports the caller's consumption for today. Errors report a fresh,
// unconsumed day.
func (s *Store) Stats(ctx context.Context, ip, userAgent string) models.UsageStats {
	hash := userHash(ip, userAgent)
	day := today()

	var row usageRow
	err := s.db.GetContext(ctx, &row,
		`SELECT request_count, last_request FROM usage_records WHERE user_hash = ? AND date = ?`,
		hash, day)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) && s.log != nil {
			s.log.Warn("usage stats read failed", xlogger.Error(err))
		}
		return models.UsageStats{TodayUsage: 0, Remaining: s.dailyLimit, Limit: s.dailyLimit}
	}

	remaining := s.dailyLimit - row.RequestCount
	if remaining < 0 {
		remaining = 0
	}
	stats := models.UsageStats{
		TodayUsage: row.RequestCount,
		Remaining:  remaining,
		Limit:      s.dailyLimit,
	}
	if row.LastRequest.Valid {
		stats.LastRequest = &row.LastRequest.String
	}
	return stats
}

// Cleanup deletes records older than the retention window.
func (s *Store) Cleanup(ctx context.Context, retentionDays int) error {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	cutoff := xutil.StartOfDayUTC(time.Now().AddDate(0, 0, -retentionDays)).Format(dateLayout)
	if _, err := s.db.ExecContext(ctx, `DELETE FROM usage_records WHERE date < ?`, cutoff); err != nil {
		return fmt.Errorf("usage cleanup: %w", err)
	}
	return nil
}

// Reset wipes all usage records. Admin-only.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM usage_records`); err != nil {
		return fmt.Errorf("usage reset: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
