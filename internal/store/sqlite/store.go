// Package sqlite implements dashboard persistence over a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/awelabs/awe.agency/internal/platform/sqlitemigrate"
	"github.com/awelabs/awe.agency/internal/store"
	"github.com/awelabs/awe.agency/internal/store/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store implements store.Store over a single SQLite database file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the database at path and applies bundled migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser inserts a user. The unique email index enforces one account
// per address.
func (s *Store) CreateUser(ctx context.Context, u store.User) error {
	_, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO users (id, email, name, created_at) VALUES (?, ?, ?, ?)",
		u.ID, normalizeEmail(u.Email), u.Name, toMillis(u.CreatedAt),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return store.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) scanUser(row *sql.Row) (store.User, error) {
	var u store.User
	var createdAt int64
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.User{}, store.ErrNotFound
		}
		return store.User{}, fmt.Errorf("scan user: %w", err)
	}
	u.CreatedAt = fromMillis(createdAt)
	return u, nil
}

// GetUser looks a user up by ID.
func (s *Store) GetUser(ctx context.Context, userID string) (store.User, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, email, name, created_at FROM users WHERE id = ?", userID)
	return s.scanUser(row)
}

// GetUserByEmail looks a user up by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT id, email, name, created_at FROM users WHERE email = ?", normalizeEmail(email))
	return s.scanUser(row)
}

// PutProfile creates or replaces the user's business profile.
func (s *Store) PutProfile(ctx context.Context, p store.BusinessProfile) error {
	interests, err := json.Marshal(p.Interests)
	if err != nil {
		return fmt.Errorf("encode interests: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO business_profiles
    (user_id, business_name, zipcode, mission, products, audience, age_range, interests, creatives_per_week, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id) DO UPDATE SET
    business_name = excluded.business_name,
    zipcode = excluded.zipcode,
    mission = excluded.mission,
    products = excluded.products,
    audience = excluded.audience,
    age_range = excluded.age_range,
    interests = excluded.interests,
    creatives_per_week = excluded.creatives_per_week,
    updated_at = excluded.updated_at
`,
		p.UserID, p.BusinessName, p.Zipcode, p.Mission, p.Products, p.Audience,
		p.AgeRange, string(interests), p.CreativesPerWeek, toMillis(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetProfile returns the user's business profile.
func (s *Store) GetProfile(ctx context.Context, userID string) (store.BusinessProfile, error) {
	row := s.sqlDB.QueryRowContext(ctx, `
SELECT user_id, business_name, zipcode, mission, products, audience, age_range, interests, creatives_per_week, updated_at
FROM business_profiles WHERE user_id = ?`, userID)

	var p store.BusinessProfile
	var interests string
	var updatedAt int64
	err := row.Scan(&p.UserID, &p.BusinessName, &p.Zipcode, &p.Mission, &p.Products,
		&p.Audience, &p.AgeRange, &interests, &p.CreativesPerWeek, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.BusinessProfile{}, store.ErrNotFound
		}
		return store.BusinessProfile{}, fmt.Errorf("scan profile: %w", err)
	}
	if err := json.Unmarshal([]byte(interests), &p.Interests); err != nil {
		return store.BusinessProfile{}, fmt.Errorf("decode interests: %w", err)
	}
	p.UpdatedAt = fromMillis(updatedAt)
	return p, nil
}

// PutMetric records one campaign metric row.
func (s *Store) PutMetric(ctx context.Context, m store.AdMetric) error {
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO ad_metrics
    (id, user_id, campaign, impressions, clicks, conversions, spend_cents, revenue_cents, recorded_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Campaign, m.Impressions, m.Clicks, m.Conversions,
		m.SpendCents, m.RevenueCents, toMillis(m.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("insert metric: %w", err)
	}
	return nil
}

// ListMetricsByUser returns the user's metric rows, newest first.
func (s *Store) ListMetricsByUser(ctx context.Context, userID string) ([]store.AdMetric, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, user_id, campaign, impressions, clicks, conversions, spend_cents, revenue_cents, recorded_at
FROM ad_metrics WHERE user_id = ? ORDER BY recorded_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query metrics: %w", err)
	}
	defer rows.Close()

	var metrics []store.AdMetric
	for rows.Next() {
		var m store.AdMetric
		var recordedAt int64
		if err := rows.Scan(&m.ID, &m.UserID, &m.Campaign, &m.Impressions, &m.Clicks,
			&m.Conversions, &m.SpendCents, &m.RevenueCents, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}
		m.RecordedAt = fromMillis(recordedAt)
		metrics = append(metrics, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metrics: %w", err)
	}
	return metrics, nil
}
