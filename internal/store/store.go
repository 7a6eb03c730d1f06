// Package store defines persistence contracts for demo dashboard data.
package store

import (
	"context"
	"time"

	weberrors "github.com/awelabs/awe.agency/internal/web/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = weberrors.E(weberrors.KindNotFound, "record not found")

// ErrEmailTaken indicates a sign-up attempt with an email that already has
// an account.
var ErrEmailTaken = weberrors.E(weberrors.KindInvalidInput, "an account with this email already exists")

// User is a demo dashboard account. There is no password; sign-in is by
// email only.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}

// BusinessProfile is the advertising profile attached to a user. A fresh
// sign-up gets an empty profile that the dashboard fills in later.
type BusinessProfile struct {
	UserID           string
	BusinessName     string
	Zipcode          string
	Mission          string
	Products         string
	Audience         string
	AgeRange         string
	Interests        []string
	CreativesPerWeek string
	UpdatedAt        time.Time
}

// AdMetric is one campaign performance row shown on the dashboard. Money
// amounts are stored in cents.
type AdMetric struct {
	ID           string
	UserID       string
	Campaign     string
	Impressions  int64
	Clicks       int64
	Conversions  int64
	SpendCents   int64
	RevenueCents int64
	RecordedAt   time.Time
}

// UserStore persists account records. Email is unique across users.
type UserStore interface {
	CreateUser(ctx context.Context, u User) error
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
}

// ProfileStore persists one business profile per user. PutProfile creates
// the record on first write and replaces it afterwards.
type ProfileStore interface {
	PutProfile(ctx context.Context, p BusinessProfile) error
	GetProfile(ctx context.Context, userID string) (BusinessProfile, error)
}

// MetricStore reads campaign metric rows. Rows come back newest first.
type MetricStore interface {
	PutMetric(ctx context.Context, m AdMetric) error
	ListMetricsByUser(ctx context.Context, userID string) ([]AdMetric, error)
}

// Store combines every persistence contract the dashboard needs.
type Store interface {
	UserStore
	ProfileStore
	MetricStore
	Close() error
}
