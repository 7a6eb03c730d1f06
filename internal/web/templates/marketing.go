package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/awelabs/awe.agency/internal/web/routepath"
)

// Feature is a short titled blurb used across marketing pages.
type Feature struct {
	Title string
	Body  string
}

// Stat is a headline number with a label.
type Stat struct {
	Value string
	Label string
}

// HomeView provides data for the homepage.
type HomeView struct {
	Headline    string
	Subheadline string
	Features    []Feature
	Steps       []Feature
}

// Home renders the homepage fragment.
func Home(view HomeView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<section class="hero"><h1>`, esc(view.Headline), `</h1>`,
			`<p class="subheadline">`, esc(view.Subheadline), `</p>`,
			`<a class="cta" href="`, routepath.GetStartedPrefix, `">Get started free</a></section>`,
		); err != nil {
			return err
		}
		if err := featureGrid(w, "Why small businesses choose us", view.Features); err != nil {
			return err
		}
		if err := write(w, `<section class="steps"><h2>How it works</h2><ol>`); err != nil {
			return err
		}
		for _, step := range view.Steps {
			if err := write(w, `<li><h3>`, esc(step.Title), `</h3><p>`, esc(step.Body), `</p></li>`); err != nil {
				return err
			}
		}
		return write(w, `</ol></section>`)
	})
}

func featureGrid(w io.Writer, heading string, features []Feature) error {
	if err := write(w, `<section class="features"><h2>`, esc(heading), `</h2><div class="grid">`); err != nil {
		return err
	}
	for _, f := range features {
		if err := write(w, `<article><h3>`, esc(f.Title), `</h3><p>`, esc(f.Body), `</p></article>`); err != nil {
			return err
		}
	}
	return write(w, `</div></section>`)
}

// SolutionsView provides data for the solutions page.
type SolutionsView struct {
	Intro string
	Items []Feature
}

// Solutions renders the solutions page fragment.
func Solutions(view SolutionsView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section class="page-intro"><h1>Solutions</h1><p>`, esc(view.Intro), `</p></section>`); err != nil {
			return err
		}
		return featureGrid(w, "What you get", view.Items)
	})
}

// SustainabilityView provides data for the sustainability page.
type SustainabilityView struct {
	Intro  string
	Points []Feature
	Stats  []Stat
}

// Sustainability renders the sustainability page fragment.
func Sustainability(view SustainabilityView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section class="page-intro"><h1>Sustainability</h1><p>`, esc(view.Intro), `</p></section>`); err != nil {
			return err
		}
		if err := write(w, `<section class="stats"><div class="grid">`); err != nil {
			return err
		}
		for _, stat := range view.Stats {
			if err := write(w, `<div class="stat"><strong>`, esc(stat.Value), `</strong><span>`, esc(stat.Label), `</span></div>`); err != nil {
				return err
			}
		}
		if err := write(w, `</div></section>`); err != nil {
			return err
		}
		return featureGrid(w, "How we keep ads green", view.Points)
	})
}

// Testimonial is one customer quote.
type Testimonial struct {
	Quote    string
	Author   string
	Business string
}

// Testimonials renders the testimonials page fragment.
func Testimonials(items []Testimonial) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section class="page-intro"><h1>Testimonials</h1></section><section class="testimonials">`); err != nil {
			return err
		}
		for _, item := range items {
			if err := write(w,
				`<blockquote><p>`, esc(item.Quote), `</p>`,
				`<footer>`, esc(item.Author), `, `, esc(item.Business), `</footer></blockquote>`,
			); err != nil {
				return err
			}
		}
		return write(w, `</section>`)
	})
}

// ContactView provides data for the contact page.
type ContactView struct {
	Blurb string
	Email string
	Phone string
}

// Contact renders the contact page fragment.
func Contact(view ContactView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w,
			`<section class="page-intro"><h1>Contact</h1><p>`, esc(view.Blurb), `</p></section>`,
			`<section class="contact"><dl>`,
			`<dt>Email</dt><dd><a href="mailto:`, esc(view.Email), `">`, esc(view.Email), `</a></dd>`,
			`<dt>Phone</dt><dd>`, esc(view.Phone), `</dd>`,
			`</dl></section>`,
		)
	})
}

// Plan is one pricing tier.
type Plan struct {
	Name        string
	Price       string
	Period      string
	Features    []string
	Highlighted bool
}

// Pricing renders the pricing page fragment.
func Pricing(plans []Plan) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w, `<section class="page-intro"><h1>Pricing</h1></section><section class="pricing"><div class="grid">`); err != nil {
			return err
		}
		for _, plan := range plans {
			class := "plan"
			if plan.Highlighted {
				class = "plan plan-highlighted"
			}
			if err := write(w,
				`<article class="`, class, `"><h2>`, esc(plan.Name), `</h2>`,
				`<p class="price">`, esc(plan.Price), `<span>`, esc(plan.Period), `</span></p><ul>`,
			); err != nil {
				return err
			}
			for _, feature := range plan.Features {
				if err := write(w, `<li>`, esc(feature), `</li>`); err != nil {
					return err
				}
			}
			if err := write(w, `</ul><a class="cta" href="`, routepath.GetStartedPrefix, `">Get started</a></article>`); err != nil {
				return err
			}
		}
		return write(w, `</div></section>`)
	})
}
