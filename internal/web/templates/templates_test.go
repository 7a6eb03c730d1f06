package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderToString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	return sb.String()
}

func TestPageEscapesTitle(t *testing.T) {
	t.Parallel()

	html := renderToString(t, Page(PageView{Title: `<script>alert("x")</script>`}, nil))
	if strings.Contains(html, "<script>alert") {
		t.Fatal("title was not escaped")
	}
	if !strings.Contains(html, `<html lang="en">`) {
		t.Fatal("expected default language attribute")
	}
}

func TestPageShowsNoticeBanner(t *testing.T) {
	t.Parallel()

	html := renderToString(t, Page(PageView{Notice: &Notice{Kind: "error", Message: "submission failed"}}, nil))
	if !strings.Contains(html, "notice-error") {
		t.Fatal("expected error notice class")
	}
	if !strings.Contains(html, "submission failed") {
		t.Fatal("expected notice message")
	}
}

func TestPageNavSwitchesOnSession(t *testing.T) {
	t.Parallel()

	anon := renderToString(t, Page(PageView{}, nil))
	if !strings.Contains(anon, `href="/signin"`) {
		t.Fatal("expected sign-in link for anonymous visitor")
	}

	signedIn := renderToString(t, Page(PageView{SignedIn: true}, nil))
	if !strings.Contains(signedIn, `href="/app/dashboard"`) {
		t.Fatal("expected dashboard link for signed-in visitor")
	}
}

func TestWizardRendersStepProgress(t *testing.T) {
	t.Parallel()

	html := renderToString(t, Wizard(WizardStepView{Step: 2, TotalSteps: 5, ProgressPct: 40}))
	if !strings.Contains(html, "Step 2 of 5") {
		t.Fatal("expected step counter")
	}
	if !strings.Contains(html, "width: 40%") {
		t.Fatal("expected progress width")
	}
	if !strings.Contains(html, `action="/get-started/step"`) {
		t.Fatal("expected step form action")
	}
	if !strings.Contains(html, `formaction="/get-started/back"`) {
		t.Fatal("expected back button")
	}
}

func TestWizardFirstStepHasNoBackButton(t *testing.T) {
	t.Parallel()

	html := renderToString(t, Wizard(WizardStepView{Step: 1, TotalSteps: 5}))
	if strings.Contains(html, "/get-started/back") {
		t.Fatal("step 1 must not offer back")
	}
}

func TestWizardLastStepSubmits(t *testing.T) {
	t.Parallel()

	html := renderToString(t, Wizard(WizardStepView{
		Step:          5,
		TotalSteps:    5,
		ProgressPct:   100,
		CreativeBands: []string{"1-2", "3-5"},
		Draft:         WizardDraftView{CreativesPerWeek: "3-5", BusinessName: "Solstice"},
	}))
	if !strings.Contains(html, `action="/get-started/submit"`) {
		t.Fatal("expected submit form action")
	}
	if !strings.Contains(html, `value="3-5" checked`) {
		t.Fatal("expected selected creative band")
	}
	if !strings.Contains(html, "Solstice") {
		t.Fatal("expected review summary")
	}
}

func TestWizardPreselectsInterests(t *testing.T) {
	t.Parallel()

	html := renderToString(t, Wizard(WizardStepView{
		Step:            4,
		TotalSteps:      5,
		AgeRanges:       []string{"18-25", "25-35"},
		InterestOptions: []string{"yoga", "food"},
		Draft:           WizardDraftView{AgeRange: "25-35", Interests: []string{"yoga"}},
	}))
	if !strings.Contains(html, `value="25-35" checked`) {
		t.Fatal("expected selected age range")
	}
	if !strings.Contains(html, `value="yoga" checked`) {
		t.Fatal("expected selected interest")
	}
	if strings.Contains(html, `value="food" checked`) {
		t.Fatal("unselected interest must not be checked")
	}
}

func TestResultsRendersAdsAndImpact(t *testing.T) {
	t.Parallel()

	html := renderToString(t, Results(ResultsView{
		CompanyName: "Solstice Yoga Studio",
		Ads: []AdView{
			{Headline: "Find Your Flow", Body: "Classes for all.", CTA: "Book now", Segment: "new_to_yoga"},
			{Headline: "Morning Calm", Body: "Start grounded.", CTA: "Learn more", Segment: "busy_pros"},
		},
		Channels: []ChannelView{{Channel: "instagram_stories", Reason: "visual", Priority: "High"}},
		Impact:   ImpactView{GreenScore: "87", Band: "good", BandLabel: "Excellent", EnergyKWh: "0.003", CO2Kg: "0.0006"},
	}))
	if got := strings.Count(html, "ad-card"); got != 2 {
		t.Fatalf("ad cards = %d, want 2", got)
	}
	if !strings.Contains(html, ">87<") {
		t.Fatal("expected verbatim green score")
	}
	if !strings.Contains(html, "priority-High") {
		t.Fatal("expected priority badge")
	}
}

func TestDashboardRendersMetricsAndProfile(t *testing.T) {
	t.Parallel()

	html := renderToString(t, Dashboard(DashboardView{
		Name:    "Riley",
		Metrics: []MetricRowView{{Campaign: "Spring Reset", Impressions: "18,450"}},
		Totals:  MetricTotalsView{Impressions: "18,450"},
		Profile: WizardDraftView{BusinessName: "Solstice Yoga Studio"},
		Saved:   true,
	}))
	if !strings.Contains(html, "Spring Reset") {
		t.Fatal("expected campaign row")
	}
	if !strings.Contains(html, `value="Solstice Yoga Studio"`) {
		t.Fatal("expected profile form value")
	}
	if !strings.Contains(html, "Profile saved.") {
		t.Fatal("expected saved confirmation")
	}
	if !strings.Contains(html, `action="/signout"`) {
		t.Fatal("expected sign-out form")
	}
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	html := renderToString(t, ErrorPage(404))
	if !strings.Contains(html, "404") || !strings.Contains(html, "Not Found") {
		t.Fatalf("unexpected error page: %s", html)
	}
}
