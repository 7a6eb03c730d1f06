// Package storetest runs the shared persistence contract against a store
// backend.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/awelabs/awe.agency/internal/store"
)

// Run exercises every store contract against the backend newStore builds.
// Each subtest receives a fresh store.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("user round trip", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		u := store.User{
			ID:        "user_1",
			Email:     "owner@solstice.example",
			Name:      "Riley Park",
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		}
		if err := s.CreateUser(ctx, u); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}

		got, err := s.GetUser(ctx, u.ID)
		if err != nil {
			t.Fatalf("GetUser() error = %v", err)
		}
		if got.Email != u.Email || got.Name != u.Name {
			t.Fatalf("GetUser() = %+v, want %+v", got, u)
		}
		if !got.CreatedAt.Equal(u.CreatedAt) {
			t.Fatalf("CreatedAt = %v, want %v", got.CreatedAt, u.CreatedAt)
		}

		got, err = s.GetUserByEmail(ctx, "OWNER@solstice.example")
		if err != nil {
			t.Fatalf("GetUserByEmail() error = %v", err)
		}
		if got.ID != u.ID {
			t.Fatalf("GetUserByEmail() ID = %q, want %q", got.ID, u.ID)
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		first := store.User{ID: "user_1", Email: "taken@solstice.example", CreatedAt: time.Now().UTC()}
		if err := s.CreateUser(ctx, first); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}
		err := s.CreateUser(ctx, store.User{ID: "user_2", Email: "Taken@solstice.example", CreatedAt: time.Now().UTC()})
		if !errors.Is(err, store.ErrEmailTaken) {
			t.Fatalf("CreateUser() error = %v, want ErrEmailTaken", err)
		}
	})

	t.Run("missing records return not found", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		if _, err := s.GetUser(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("GetUser() error = %v, want ErrNotFound", err)
		}
		if _, err := s.GetUserByEmail(ctx, "nope@example.com"); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("GetUserByEmail() error = %v, want ErrNotFound", err)
		}
		if _, err := s.GetProfile(ctx, "nope"); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("GetProfile() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("profile put replaces", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		if err := s.CreateUser(ctx, store.User{ID: "user_1", Email: "p@solstice.example", CreatedAt: time.Now().UTC()}); err != nil {
			t.Fatalf("CreateUser() error = %v", err)
		}

		p := store.BusinessProfile{
			UserID:           "user_1",
			BusinessName:     "Solstice Yoga Studio",
			Zipcode:          "94110",
			Mission:          "Accessible yoga",
			Products:         "Classes",
			Audience:         "Locals",
			AgeRange:         "25-35",
			Interests:        []string{"yoga", "wellness"},
			CreativesPerWeek: "3-5",
			UpdatedAt:        time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		}
		if err := s.PutProfile(ctx, p); err != nil {
			t.Fatalf("PutProfile() error = %v", err)
		}

		p.Mission = "Accessible yoga for every body"
		p.Interests = []string{"yoga"}
		p.UpdatedAt = p.UpdatedAt.Add(time.Hour)
		if err := s.PutProfile(ctx, p); err != nil {
			t.Fatalf("PutProfile() replace error = %v", err)
		}

		got, err := s.GetProfile(ctx, "user_1")
		if err != nil {
			t.Fatalf("GetProfile() error = %v", err)
		}
		if got.Mission != "Accessible yoga for every body" {
			t.Fatalf("Mission = %q", got.Mission)
		}
		if len(got.Interests) != 1 || got.Interests[0] != "yoga" {
			t.Fatalf("Interests = %v", got.Interests)
		}
	})

	t.Run("metrics list newest first", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		rows := []store.AdMetric{
			{ID: "m1", UserID: "user_1", Campaign: "Oldest", Impressions: 100, RecordedAt: base},
			{ID: "m2", UserID: "user_1", Campaign: "Newest", Impressions: 300, RecordedAt: base.Add(48 * time.Hour)},
			{ID: "m3", UserID: "user_1", Campaign: "Middle", Impressions: 200, RecordedAt: base.Add(24 * time.Hour)},
			{ID: "m4", UserID: "user_2", Campaign: "Other user", Impressions: 999, RecordedAt: base},
		}
		for _, row := range rows {
			if err := s.PutMetric(ctx, row); err != nil {
				t.Fatalf("PutMetric() error = %v", err)
			}
		}

		got, err := s.ListMetricsByUser(ctx, "user_1")
		if err != nil {
			t.Fatalf("ListMetricsByUser() error = %v", err)
		}
		want := []string{"Newest", "Middle", "Oldest"}
		if len(got) != len(want) {
			t.Fatalf("len(rows) = %d, want %d", len(got), len(want))
		}
		for i, campaign := range want {
			if got[i].Campaign != campaign {
				t.Fatalf("rows[%d].Campaign = %q, want %q", i, got[i].Campaign, campaign)
			}
		}
	})

	t.Run("seed demo is idempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		if err := store.SeedDemo(ctx, s); err != nil {
			t.Fatalf("SeedDemo() error = %v", err)
		}
		if err := store.SeedDemo(ctx, s); err != nil {
			t.Fatalf("SeedDemo() second run error = %v", err)
		}

		u, err := s.GetUserByEmail(ctx, store.DemoEmail)
		if err != nil {
			t.Fatalf("GetUserByEmail(demo) error = %v", err)
		}
		profile, err := s.GetProfile(ctx, u.ID)
		if err != nil {
			t.Fatalf("GetProfile(demo) error = %v", err)
		}
		if profile.BusinessName == "" {
			t.Fatal("expected seeded business name")
		}
		metrics, err := s.ListMetricsByUser(ctx, u.ID)
		if err != nil {
			t.Fatalf("ListMetricsByUser(demo) error = %v", err)
		}
		if len(metrics) != 3 {
			t.Fatalf("len(metrics) = %d, want 3", len(metrics))
		}
	})
}
