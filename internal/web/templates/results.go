package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/awelabs/awe.agency/internal/web/routepath"
)

// AdView is one generated ad card.
type AdView struct {
	Headline string
	Body     string
	CTA      string
	Segment  string
}

// ChannelView is one channel recommendation row, already ordered by
// priority.
type ChannelView struct {
	Channel  string
	Reason   string
	Priority string
}

// ImpactView is the environmental summary of the generated campaign.
type ImpactView struct {
	EnergyKWh  string
	CO2Kg      string
	GreenScore string
	Band       string
	BandLabel  string
}

// TargetingView echoes the submitted audience back to the reader.
type TargetingView struct {
	Zipcode   string
	AgeRange  string
	Interests string
}

// ResultsView provides data for the generation results page.
type ResultsView struct {
	CompanyName    string
	Mission        string
	RegistrationID string
	BestChannel    string
	Ads            []AdView
	Channels       []ChannelView
	Impact         ImpactView
	Targeting      TargetingView
}

// Results renders the generation results fragment.
func Results(view ResultsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<section class="results-header"><h1>Your campaign is ready, `, esc(view.CompanyName), `</h1>`,
			`<p>`, esc(view.Mission), `</p>`,
			`<p class="registration-id">Registration `, esc(view.RegistrationID), `</p></section>`,
		); err != nil {
			return err
		}

		if err := write(w, `<section class="results-ads"><h2>Your first ads</h2><div class="grid">`); err != nil {
			return err
		}
		for _, ad := range view.Ads {
			if err := write(w,
				`<article class="ad-card"><h3>`, esc(ad.Headline), `</h3>`,
				`<p>`, esc(ad.Body), `</p>`,
				`<p class="ad-cta">`, esc(ad.CTA), `</p>`,
				`<p class="ad-segment">`, esc(ad.Segment), `</p></article>`,
			); err != nil {
				return err
			}
		}
		if err := write(w, `</div></section>`); err != nil {
			return err
		}

		if err := write(w, `<section class="results-channels"><h2>Where to run them</h2>`); err != nil {
			return err
		}
		if view.BestChannel != "" {
			if err := write(w, `<p class="best-channel">Best bet: <strong>`, esc(view.BestChannel), `</strong></p>`); err != nil {
				return err
			}
		}
		if err := write(w, `<table><thead><tr><th>Channel</th><th>Why</th><th>Priority</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, channel := range view.Channels {
			if err := write(w,
				`<tr><td>`, esc(channel.Channel), `</td><td>`, esc(channel.Reason), `</td>`,
				`<td><span class="priority priority-`, esc(channel.Priority), `">`, esc(channel.Priority), `</span></td></tr>`,
			); err != nil {
				return err
			}
		}
		if err := write(w, `</tbody></table></section>`); err != nil {
			return err
		}

		if view.Targeting != (TargetingView{}) {
			if err := write(w,
				`<section class="results-targeting"><h2>Who we're reaching</h2><dl>`,
				`<dt>Zip code</dt><dd>`, esc(view.Targeting.Zipcode), `</dd>`,
				`<dt>Age range</dt><dd>`, esc(view.Targeting.AgeRange), `</dd>`,
				`<dt>Interests</dt><dd>`, esc(view.Targeting.Interests), `</dd>`,
				`</dl></section>`,
			); err != nil {
				return err
			}
		}

		return write(w,
			`<section class="results-impact"><h2>Environmental impact</h2><div class="grid">`,
			`<div class="stat green-`, esc(view.Impact.Band), `"><strong>`, esc(view.Impact.GreenScore), `</strong><span>Green score (`, esc(view.Impact.BandLabel), `)</span></div>`,
			`<div class="stat"><strong>`, esc(view.Impact.EnergyKWh), ` kWh</strong><span>Energy used</span></div>`,
			`<div class="stat"><strong>`, esc(view.Impact.CO2Kg), ` kg</strong><span>CO&#8322; emitted</span></div>`,
			`</div></section>`,
			`<section class="results-next"><a class="cta" href="`, routepath.SignUp, `">Create your account</a></section>`,
		)
	})
}
