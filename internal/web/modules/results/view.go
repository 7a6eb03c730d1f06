// Package results renders the generated campaign from the wizard's
// session handoff slot.
package results

import (
	"strconv"
	"strings"

	"github.com/awelabs/awe.agency/internal/adgen"
	"github.com/awelabs/awe.agency/internal/web/templates"
)

// Green score display bands.
const (
	goodScoreFloor = 80
	fairScoreFloor = 60
)

func scoreBand(score float64) (band, label string) {
	switch {
	case score >= goodScoreFloor:
		return "good", "Excellent"
	case score >= fairScoreFloor:
		return "fair", "Fair"
	default:
		return "poor", "Poor"
	}
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// buildView maps a generation result onto the results page view. Channel
// recommendations are grouped by priority tier, keeping response order
// within a tier.
func buildView(result adgen.Result) templates.ResultsView {
	ads := make([]templates.AdView, 0, len(result.InitialAds))
	for _, ad := range result.InitialAds {
		ads = append(ads, templates.AdView{
			Headline: ad.Headline,
			Body:     ad.Body,
			CTA:      ad.CTA,
			Segment:  ad.AudienceSegment,
		})
	}

	advice := result.ChannelAdvice
	advice.Recommendations = append([]adgen.ChannelRecommendation(nil), advice.Recommendations...)
	advice.SortByPriority()
	channels := make([]templates.ChannelView, 0, len(advice.Recommendations))
	for _, rec := range advice.Recommendations {
		channels = append(channels, templates.ChannelView{
			Channel:  rec.Channel,
			Reason:   rec.Reason,
			Priority: rec.Priority.String(),
		})
	}

	band, label := scoreBand(result.Impact.GreenScore)
	return templates.ResultsView{
		CompanyName:    result.Brand.CompanyName,
		Mission:        result.Brand.Mission,
		RegistrationID: result.RegistrationID,
		BestChannel:    advice.BestChannel,
		Ads:            ads,
		Channels:       channels,
		Impact: templates.ImpactView{
			EnergyKWh:  formatNumber(result.Impact.TotalEnergyKWh),
			CO2Kg:      formatNumber(result.Impact.TotalCO2Kg),
			GreenScore: formatNumber(result.Impact.GreenScore),
			Band:       band,
			BandLabel:  label,
		},
		Targeting: templates.TargetingView{
			Zipcode:   result.Zipcode,
			AgeRange:  result.AgeRange,
			Interests: strings.Join(result.Interests, ", "),
		},
	}
}
