package marketing

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

//go:embed content.toml
var contentTOML []byte

// Catalog is the marketing copy for every public page, bundled at build
// time so the site has no runtime content dependency.
type Catalog struct {
	Home           HomeContent           `toml:"home"`
	Solutions      SolutionsContent      `toml:"solutions"`
	Sustainability SustainabilityContent `toml:"sustainability"`
	Testimonials   []TestimonialContent  `toml:"testimonials"`
	Contact        ContactContent        `toml:"contact"`
	Pricing        PricingContent        `toml:"pricing"`
}

// Blurb is a short titled passage.
type Blurb struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// StatContent is a headline figure with a label.
type StatContent struct {
	Value string `toml:"value"`
	Label string `toml:"label"`
}

// HomeContent is the homepage copy.
type HomeContent struct {
	Headline    string  `toml:"headline"`
	Subheadline string  `toml:"subheadline"`
	Features    []Blurb `toml:"features"`
	Steps       []Blurb `toml:"steps"`
}

// SolutionsContent is the solutions page copy.
type SolutionsContent struct {
	Intro string  `toml:"intro"`
	Items []Blurb `toml:"items"`
}

// SustainabilityContent is the sustainability page copy.
type SustainabilityContent struct {
	Intro  string        `toml:"intro"`
	Stats  []StatContent `toml:"stats"`
	Points []Blurb       `toml:"points"`
}

// TestimonialContent is one customer quote.
type TestimonialContent struct {
	Quote    string `toml:"quote"`
	Author   string `toml:"author"`
	Business string `toml:"business"`
}

// ContactContent is the contact page copy.
type ContactContent struct {
	Blurb string `toml:"blurb"`
	Email string `toml:"email"`
	Phone string `toml:"phone"`
}

// PricingContent is the pricing page copy.
type PricingContent struct {
	Plans []PlanContent `toml:"plans"`
}

// PlanContent is one pricing tier.
type PlanContent struct {
	Name        string   `toml:"name"`
	Price       string   `toml:"price"`
	Period      string   `toml:"period"`
	Features    []string `toml:"features"`
	Highlighted bool     `toml:"highlighted"`
}

// LoadCatalog decodes the embedded content catalog.
func LoadCatalog() (Catalog, error) {
	var catalog Catalog
	if err := toml.Unmarshal(contentTOML, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("decode content catalog: %w", err)
	}
	if catalog.Home.Headline == "" {
		return Catalog{}, fmt.Errorf("content catalog: home headline is required")
	}
	if len(catalog.Pricing.Plans) == 0 {
		return Catalog{}, fmt.Errorf("content catalog: at least one pricing plan is required")
	}
	return catalog, nil
}
