package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/awelabs/awe.agency/internal/web/routepath"
)

// AccountFormView provides data for the sign-in and sign-up forms.
type AccountFormView struct {
	Email string
	Name  string
	Error string
}

// SignIn renders the sign-in form fragment.
func SignIn(view AccountFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section class="account-form"><h1>Sign in</h1>`); err != nil {
			return err
		}
		if view.Error != "" {
			if err := write(w, `<p class="field-error" role="alert">`, esc(view.Error), `</p>`); err != nil {
				return err
			}
		}
		if err := write(w, `<form method="post" action="`, routepath.SignIn, `">`); err != nil {
			return err
		}
		if err := textInput(w, "email", "Email", view.Email, "you@business.com"); err != nil {
			return err
		}
		return write(w,
			`<button type="submit" class="cta">Sign in</button></form>`,
			`<p>New here? <a href="`, routepath.SignUp, `">Create an account</a></p></section>`,
		)
	})
}

// SignUp renders the sign-up form fragment.
func SignUp(view AccountFormView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section class="account-form"><h1>Create your account</h1>`); err != nil {
			return err
		}
		if view.Error != "" {
			if err := write(w, `<p class="field-error" role="alert">`, esc(view.Error), `</p>`); err != nil {
				return err
			}
		}
		if err := write(w, `<form method="post" action="`, routepath.SignUp, `">`); err != nil {
			return err
		}
		if err := textInput(w, "name", "Your name", view.Name, "Riley Park"); err != nil {
			return err
		}
		if err := textInput(w, "email", "Email", view.Email, "you@business.com"); err != nil {
			return err
		}
		return write(w,
			`<button type="submit" class="cta">Sign up</button></form>`,
			`<p>Already have an account? <a href="`, routepath.SignIn, `">Sign in</a></p></section>`,
		)
	})
}

// MetricRowView is one campaign row in the dashboard table.
type MetricRowView struct {
	Campaign    string
	Impressions string
	Clicks      string
	Conversions string
	Spend       string
	Revenue     string
	RecordedAt  string
}

// MetricTotalsView aggregates the campaign rows.
type MetricTotalsView struct {
	Impressions string
	Clicks      string
	Conversions string
	Spend       string
	Revenue     string
}

// DashboardView provides data for the protected dashboard page.
type DashboardView struct {
	Name    string
	Profile WizardDraftView
	Metrics []MetricRowView
	Totals  MetricTotalsView
	Saved   bool
}

// Dashboard renders the protected dashboard fragment.
func Dashboard(view DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<section class="dashboard-header"><h1>Welcome back, `, esc(view.Name), `</h1>`,
			`<form method="post" action="`, routepath.SignOut, `"><button type="submit" class="secondary">Sign out</button></form></section>`,
		); err != nil {
			return err
		}

		if err := write(w,
			`<section class="dashboard-totals"><h2>Overview</h2><div class="grid">`,
			`<div class="stat"><strong>`, esc(view.Totals.Impressions), `</strong><span>Impressions</span></div>`,
			`<div class="stat"><strong>`, esc(view.Totals.Clicks), `</strong><span>Clicks</span></div>`,
			`<div class="stat"><strong>`, esc(view.Totals.Conversions), `</strong><span>Conversions</span></div>`,
			`<div class="stat"><strong>`, esc(view.Totals.Spend), `</strong><span>Spend</span></div>`,
			`<div class="stat"><strong>`, esc(view.Totals.Revenue), `</strong><span>Revenue</span></div>`,
			`</div></section>`,
		); err != nil {
			return err
		}

		if err := write(w,
			`<section class="dashboard-campaigns"><h2>Campaigns</h2>`,
			`<table><thead><tr><th>Campaign</th><th>Impressions</th><th>Clicks</th><th>Conversions</th><th>Spend</th><th>Revenue</th><th>Recorded</th></tr></thead><tbody>`,
		); err != nil {
			return err
		}
		for _, row := range view.Metrics {
			if err := write(w,
				`<tr><td>`, esc(row.Campaign), `</td><td>`, esc(row.Impressions), `</td><td>`, esc(row.Clicks),
				`</td><td>`, esc(row.Conversions), `</td><td>`, esc(row.Spend), `</td><td>`, esc(row.Revenue),
				`</td><td>`, esc(row.RecordedAt), `</td></tr>`,
			); err != nil {
				return err
			}
		}
		if err := write(w, `</tbody></table></section>`); err != nil {
			return err
		}

		if err := write(w, `<section class="dashboard-profile"><h2>Business profile</h2>`); err != nil {
			return err
		}
		if view.Saved {
			if err := write(w, `<p class="notice notice-success">Profile saved.</p>`); err != nil {
				return err
			}
		}
		if err := write(w, `<form method="post" action="`, routepath.AppDashboardProfile, `">`); err != nil {
			return err
		}
		if err := textInput(w, "business_name", "Business name", view.Profile.BusinessName, ""); err != nil {
			return err
		}
		if err := textInput(w, "zipcode", "Zip code", view.Profile.Zipcode, ""); err != nil {
			return err
		}
		if err := textArea(w, "mission", "Mission", view.Profile.Mission, ""); err != nil {
			return err
		}
		if err := textArea(w, "products", "Products and services", view.Profile.Products, ""); err != nil {
			return err
		}
		if err := textArea(w, "audience", "Audience", view.Profile.Audience, ""); err != nil {
			return err
		}
		return write(w, `<button type="submit" class="cta">Save profile</button></form></section>`)
	})
}
