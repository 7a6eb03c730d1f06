package marketing

import (
	"encoding/json"
	"net/http"

	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/platform/pagerender"
	"github.com/awelabs/awe.agency/internal/web/platform/weberror"
	"github.com/awelabs/awe.agency/internal/web/routepath"
	"github.com/awelabs/awe.agency/internal/web/templates"
)

type handlers struct {
	deps    module.Dependencies
	catalog Catalog
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.Write(w, r, h.deps, page); err != nil {
		h.deps.Logger.Error().Err(err).Str("path", r.URL.Path).Msg("render marketing page")
	}
}

func blurbsToFeatures(blurbs []Blurb) []templates.Feature {
	features := make([]templates.Feature, 0, len(blurbs))
	for _, b := range blurbs {
		features = append(features, templates.Feature{Title: b.Title, Body: b.Body})
	}
	return features
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	home := h.catalog.Home
	h.render(w, r, pagerender.Page{
		Title:      "Sustainable advertising for small business",
		ActivePath: routepath.Root,
		Fragment: templates.Home(templates.HomeView{
			Headline:    home.Headline,
			Subheadline: home.Subheadline,
			Features:    blurbsToFeatures(home.Features),
			Steps:       blurbsToFeatures(home.Steps),
		}),
	})
}

func (h handlers) handleSolutions(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pagerender.Page{
		Title:      "Solutions",
		ActivePath: routepath.Solutions,
		Fragment: templates.Solutions(templates.SolutionsView{
			Intro: h.catalog.Solutions.Intro,
			Items: blurbsToFeatures(h.catalog.Solutions.Items),
		}),
	})
}

func (h handlers) handleSustainability(w http.ResponseWriter, r *http.Request) {
	content := h.catalog.Sustainability
	stats := make([]templates.Stat, 0, len(content.Stats))
	for _, s := range content.Stats {
		stats = append(stats, templates.Stat{Value: s.Value, Label: s.Label})
	}
	h.render(w, r, pagerender.Page{
		Title:      "Sustainability",
		ActivePath: routepath.Sustainability,
		Fragment: templates.Sustainability(templates.SustainabilityView{
			Intro:  content.Intro,
			Stats:  stats,
			Points: blurbsToFeatures(content.Points),
		}),
	})
}

func (h handlers) handleTestimonials(w http.ResponseWriter, r *http.Request) {
	items := make([]templates.Testimonial, 0, len(h.catalog.Testimonials))
	for _, item := range h.catalog.Testimonials {
		items = append(items, templates.Testimonial{Quote: item.Quote, Author: item.Author, Business: item.Business})
	}
	h.render(w, r, pagerender.Page{
		Title:      "Testimonials",
		ActivePath: routepath.Testimonials,
		Fragment:   templates.Testimonials(items),
	})
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	contact := h.catalog.Contact
	h.render(w, r, pagerender.Page{
		Title:      "Contact",
		ActivePath: routepath.Contact,
		Fragment: templates.Contact(templates.ContactView{
			Blurb: contact.Blurb,
			Email: contact.Email,
			Phone: contact.Phone,
		}),
	})
}

func (h handlers) handlePricing(w http.ResponseWriter, r *http.Request) {
	plans := make([]templates.Plan, 0, len(h.catalog.Pricing.Plans))
	for _, plan := range h.catalog.Pricing.Plans {
		plans = append(plans, templates.Plan{
			Name:        plan.Name,
			Price:       plan.Price,
			Period:      plan.Period,
			Features:    plan.Features,
			Highlighted: plan.Highlighted,
		})
	}
	h.render(w, r, pagerender.Page{
		Title:      "Pricing",
		ActivePath: routepath.Pricing,
		Fragment:   templates.Pricing(plans),
	})
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteStatus(w, r, http.StatusNotFound, h.deps)
}
