// Package onboarding implements the five-step get-started wizard that
// collects a business profile and submits it for ad generation.
package onboarding

import "strings"

// TotalSteps is the number of wizard steps.
const TotalSteps = 5

// AgeRanges is the fixed set of audience age brackets.
var AgeRanges = []string{"18-25", "25-35", "35-45", "45-55", "55+"}

// InterestOptions is the fixed set of audience interests.
var InterestOptions = []string{
	"yoga", "meditation", "wellness", "mindfulness",
	"fitness", "stress-relief", "nutrition", "community",
}

// CreativeBands is the fixed set of weekly creative volume choices.
var CreativeBands = []string{"1-2", "3-5", "6-10", "11-20", "20+"}

// DraftProfile is the working form data accumulated across wizard steps.
// Each step owns a disjoint subset of fields.
type DraftProfile struct {
	BusinessName     string
	Zipcode          string
	Mission          string
	Products         string
	Audience         string
	AgeRange         string
	Interests        []string
	CreativesPerWeek string
}

func filled(values ...string) bool {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

func isMember(set []string, value string) bool {
	for _, member := range set {
		if member == value {
			return true
		}
	}
	return false
}

// IsStepValid reports whether every field owned by the step is filled, with
// enumerated fields also members of their sets.
func IsStepValid(step int, draft DraftProfile) bool {
	switch step {
	case 1:
		return filled(draft.BusinessName, draft.Zipcode)
	case 2:
		return filled(draft.Mission, draft.Products)
	case 3:
		return filled(draft.Audience)
	case 4:
		if !isMember(AgeRanges, draft.AgeRange) || len(draft.Interests) == 0 {
			return false
		}
		for _, interest := range draft.Interests {
			if !isMember(InterestOptions, interest) {
				return false
			}
		}
		return true
	case 5:
		return isMember(CreativeBands, draft.CreativesPerWeek)
	default:
		return false
	}
}

// IsComplete reports whether every step validates.
func IsComplete(draft DraftProfile) bool {
	for step := 1; step <= TotalSteps; step++ {
		if !IsStepValid(step, draft) {
			return false
		}
	}
	return true
}

// ClampStep bounds a step to [1, TotalSteps].
func ClampStep(step int) int {
	if step < 1 {
		return 1
	}
	if step > TotalSteps {
		return TotalSteps
	}
	return step
}

// ProgressPct computes display progress for a step. It is derived, never
// stored.
func ProgressPct(step int) int {
	return ClampStep(step) * 100 / TotalSteps
}
