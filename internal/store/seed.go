package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/awelabs/awe.agency/internal/platform/id"
)

// DemoEmail is the account every fresh deployment can sign in with.
const DemoEmail = "demo@awe.com"

// SeedDemo installs the demo account, its business profile, and a handful
// of campaign metric rows. It is a no-op when the account already exists.
func SeedDemo(ctx context.Context, s Store) error {
	if _, err := s.GetUserByEmail(ctx, DemoEmail); err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("check demo account: %w", err)
	}

	userID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("demo user id: %w", err)
	}
	now := time.Now().UTC()

	if err := s.CreateUser(ctx, User{
		ID:        userID,
		Email:     DemoEmail,
		Name:      "Demo Founder",
		CreatedAt: now,
	}); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	if err := s.PutProfile(ctx, BusinessProfile{
		UserID:           userID,
		BusinessName:     "Demo Wellness Studio",
		Zipcode:          "94110",
		Mission:          "Affordable wellness for busy neighborhoods",
		Products:         "Yoga classes, massage therapy, meditation workshops",
		Audience:         "Local professionals and families",
		AgeRange:         "25-35",
		Interests:        []string{"yoga", "wellness", "fitness"},
		CreativesPerWeek: "3-5",
		UpdatedAt:        now,
	}); err != nil {
		return fmt.Errorf("seed demo profile: %w", err)
	}

	seedMetrics := []AdMetric{
		{Campaign: "Spring Reset Challenge", Impressions: 18450, Clicks: 612, Conversions: 48, SpendCents: 21500, RevenueCents: 96000},
		{Campaign: "Lunchtime Flow Series", Impressions: 9320, Clicks: 287, Conversions: 21, SpendCents: 9800, RevenueCents: 42000},
		{Campaign: "Neighborhood Open House", Impressions: 4110, Clicks: 198, Conversions: 33, SpendCents: 5400, RevenueCents: 66000},
	}
	for i, metric := range seedMetrics {
		metricID, err := id.NewID()
		if err != nil {
			return fmt.Errorf("demo metric id: %w", err)
		}
		metric.ID = metricID
		metric.UserID = userID
		metric.RecordedAt = now.Add(-time.Duration(i) * 24 * time.Hour)
		if err := s.PutMetric(ctx, metric); err != nil {
			return fmt.Errorf("seed demo metric: %w", err)
		}
	}
	return nil
}
