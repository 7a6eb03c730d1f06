package adgen

import (
	"encoding/json"
	"sort"
	"strings"
)

// DefaultPreferredChannels is sent when the caller expresses no preference.
var DefaultPreferredChannels = []string{"social", "local", "email"}

// Submission carries one completed business profile to the generation API.
type Submission struct {
	BusinessName      string
	Zipcode           string
	Mission           string
	Products          string
	Audience          string
	AgeRange          string
	Interests         []string
	PreferredChannels []string
	CreativesPerWeek  string
}

// Brand identifies the registered business in a generation result.
type Brand struct {
	CompanyName string `json:"company_name"`
	Mission     string `json:"mission"`
}

// GeneratedAd is one ad variant produced by the generation API.
type GeneratedAd struct {
	ID              string          `json:"id"`
	Headline        string          `json:"headline"`
	Body            string          `json:"body"`
	CTA             string          `json:"cta"`
	AudienceSegment string          `json:"audience_segment"`
	Targeting       json.RawMessage `json:"targeting"`
}

// Priority is the coarse ranking attached to a channel recommendation.
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMedium
	PriorityLow
)

// ParsePriority maps the API's priority string onto a tier. Unknown or empty
// values count as medium.
func ParsePriority(raw string) Priority {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// String renders the tier label shown to users.
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityLow:
		return "Low"
	default:
		return "Medium"
	}
}

// ChannelRecommendation is one normalized channel suggestion.
type ChannelRecommendation struct {
	Channel  string
	Reason   string
	Priority Priority
}

// ChannelAdvice is the normalized recommendation set. Both response shapes
// the API emits (a flat array, or an object wrapping recommendations with
// best-channel metadata) decode into this one representation.
type ChannelAdvice struct {
	BestChannel     string
	TotalConfidence float64
	Recommendations []ChannelRecommendation
}

// SortByPriority orders recommendations high before medium before low,
// keeping the response order within a tier.
func (a *ChannelAdvice) SortByPriority() {
	if a == nil {
		return
	}
	sort.SliceStable(a.Recommendations, func(i, j int) bool {
		return a.Recommendations[i].Priority < a.Recommendations[j].Priority
	})
}

// EnvironmentalImpact summarizes the footprint of the generated campaign.
type EnvironmentalImpact struct {
	TotalEnergyKWh float64 `json:"total_energy_kwh"`
	TotalCO2Kg     float64 `json:"total_co2_kg"`
	GreenScore     float64 `json:"green_score"`
}

// Result is the decoded, normalized generation response.
type Result struct {
	RegistrationID    string
	Brand             Brand
	InitialAds        []GeneratedAd
	ChannelAdvice     ChannelAdvice
	Impact            EnvironmentalImpact
	Zipcode           string
	AgeRange          string
	Interests         []string
	PreferredChannels []string
}
