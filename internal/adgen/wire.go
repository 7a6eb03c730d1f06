package adgen

import (
	"encoding/json"
	"fmt"
)

// registrationRequest is the exact wire shape the generation API expects.
type registrationRequest struct {
	BusinessName      string   `json:"business_name"`
	Zipcode           string   `json:"zipcode"`
	Mission           string   `json:"mission"`
	Products          string   `json:"products"`
	Audience          string   `json:"audience"`
	AgeRange          string   `json:"age_range"`
	Interests         []string `json:"interests"`
	PreferredChannels []string `json:"preferred_channels"`
	CreativesPerWeek  string   `json:"creatives_per_week,omitempty"`
}

func newRegistrationRequest(sub Submission) registrationRequest {
	channels := sub.PreferredChannels
	if len(channels) == 0 {
		channels = DefaultPreferredChannels
	}
	return registrationRequest{
		BusinessName:      sub.BusinessName,
		Zipcode:           sub.Zipcode,
		Mission:           sub.Mission,
		Products:          sub.Products,
		Audience:          sub.Audience,
		AgeRange:          sub.AgeRange,
		Interests:         sub.Interests,
		PreferredChannels: channels,
		CreativesPerWeek:  sub.CreativesPerWeek,
	}
}

// registrationResponse mirrors the generation API response envelope.
type registrationResponse struct {
	RegistrationID    string              `json:"registration_id"`
	Brand             Brand               `json:"brand"`
	InitialAds        []GeneratedAd       `json:"initial_ads"`
	Channels          wireChannelAdvice   `json:"channel_recommendations"`
	Impact            EnvironmentalImpact `json:"environmental_impact"`
	Zipcode           string              `json:"zipcode"`
	AgeRange          string              `json:"age_range"`
	Interests         []string            `json:"interests"`
	PreferredChannels []string            `json:"preferred_channels"`
}

func (resp registrationResponse) result() Result {
	return Result{
		RegistrationID:    resp.RegistrationID,
		Brand:             resp.Brand,
		InitialAds:        resp.InitialAds,
		ChannelAdvice:     resp.Channels.advice,
		Impact:            resp.Impact,
		Zipcode:           resp.Zipcode,
		AgeRange:          resp.AgeRange,
		Interests:         resp.Interests,
		PreferredChannels: resp.PreferredChannels,
	}
}

// wireChannelAdvice absorbs both recommendation shapes the API emits, so the
// rest of the service never branches on shape.
type wireChannelAdvice struct {
	advice ChannelAdvice
}

type wireRecommendation struct {
	Channel  string `json:"channel"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

type wireWrappedAdvice struct {
	BestChannel     string               `json:"best_channel"`
	TotalConfidence float64              `json:"total_confidence"`
	Recommendations []wireRecommendation `json:"recommendations"`
}

// UnmarshalJSON accepts either a flat recommendation array or the wrapped
// object form.
func (w *wireChannelAdvice) UnmarshalJSON(data []byte) error {
	var flat []wireRecommendation
	if err := json.Unmarshal(data, &flat); err == nil {
		w.advice = ChannelAdvice{Recommendations: normalizeRecommendations(flat)}
		return nil
	}

	var wrapped wireWrappedAdvice
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return fmt.Errorf("channel recommendations: unsupported shape: %w", err)
	}
	w.advice = ChannelAdvice{
		BestChannel:     wrapped.BestChannel,
		TotalConfidence: wrapped.TotalConfidence,
		Recommendations: normalizeRecommendations(wrapped.Recommendations),
	}
	return nil
}

func normalizeRecommendations(raw []wireRecommendation) []ChannelRecommendation {
	recs := make([]ChannelRecommendation, 0, len(raw))
	for _, r := range raw {
		recs = append(recs, ChannelRecommendation{
			Channel:  r.Channel,
			Reason:   r.Reason,
			Priority: ParsePriority(r.Priority),
		})
	}
	return recs
}
