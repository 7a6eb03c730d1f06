package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/awelabs/awe.agency/internal/web/routepath"
)

// WizardDraftView mirrors the draft fields entered so far.
type WizardDraftView struct {
	BusinessName     string
	Zipcode          string
	Mission          string
	Products         string
	Audience         string
	AgeRange         string
	Interests        []string
	CreativesPerWeek string
}

// WizardStepView provides data for one onboarding wizard step.
type WizardStepView struct {
	Step            int
	TotalSteps      int
	ProgressPct     int
	Draft           WizardDraftView
	AgeRanges       []string
	InterestOptions []string
	CreativeBands   []string
	ValidationError string
}

func (v WizardStepView) hasInterest(option string) bool {
	for _, interest := range v.Draft.Interests {
		if interest == option {
			return true
		}
	}
	return false
}

// Wizard renders the onboarding wizard step fragment.
func Wizard(view WizardStepView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := write(w,
			`<section class="wizard"><header class="wizard-progress">`,
			`<p>Step `, fmt.Sprintf("%d of %d", view.Step, view.TotalSteps), `</p>`,
			`<div class="progress-bar"><div class="progress-fill" style="width: `, fmt.Sprintf("%d%%", view.ProgressPct), `"></div></div>`,
			`</header>`,
		); err != nil {
			return err
		}

		if view.ValidationError != "" {
			if err := write(w, `<p class="field-error" role="alert">`, esc(view.ValidationError), `</p>`); err != nil {
				return err
			}
		}

		action := routepath.GetStartedStep
		submitLabel := "Next"
		if view.Step == view.TotalSteps {
			action = routepath.GetStartedSubmit
			submitLabel = "Generate my ads"
		}
		if err := write(w, `<form method="post" action="`, action, `" class="wizard-form">`); err != nil {
			return err
		}

		var err error
		switch view.Step {
		case 1:
			err = wizardStepBusiness(w, view.Draft)
		case 2:
			err = wizardStepStory(w, view.Draft)
		case 3:
			err = wizardStepAudience(w, view.Draft)
		case 4:
			err = wizardStepTargeting(w, view)
		default:
			err = wizardStepVolume(w, view)
		}
		if err != nil {
			return err
		}

		if err := write(w, `<div class="wizard-actions">`); err != nil {
			return err
		}
		if view.Step > 1 {
			if err := write(w,
				`<button type="submit" formaction="`, routepath.GetStartedBack, `" formnovalidate class="secondary">Back</button>`,
			); err != nil {
				return err
			}
		}
		return write(w,
			`<button type="submit" class="cta">`, esc(submitLabel), `</button>`,
			`</div></form></section>`,
		)
	})
}

func textInput(w io.Writer, name, label, value, placeholder string) error {
	return write(w,
		`<label for="`, name, `">`, esc(label), `</label>`,
		`<input type="text" id="`, name, `" name="`, name, `" value="`, esc(value), `" placeholder="`, esc(placeholder), `">`,
	)
}

func textArea(w io.Writer, name, label, value, placeholder string) error {
	return write(w,
		`<label for="`, name, `">`, esc(label), `</label>`,
		`<textarea id="`, name, `" name="`, name, `" rows="4" placeholder="`, esc(placeholder), `">`, esc(value), `</textarea>`,
	)
}

func wizardStepBusiness(w io.Writer, draft WizardDraftView) error {
	if err := write(w, `<h1>Tell us about your business</h1>`); err != nil {
		return err
	}
	if err := textInput(w, "business_name", "Business name", draft.BusinessName, "Solstice Yoga Studio"); err != nil {
		return err
	}
	return textInput(w, "zipcode", "Zip code", draft.Zipcode, "94110")
}

func wizardStepStory(w io.Writer, draft WizardDraftView) error {
	if err := write(w, `<h1>What drives you?</h1>`); err != nil {
		return err
	}
	if err := textArea(w, "mission", "Your mission", draft.Mission, "Why does your business exist?"); err != nil {
		return err
	}
	return textArea(w, "products", "Products and services", draft.Products, "What do you sell or offer?")
}

func wizardStepAudience(w io.Writer, draft WizardDraftView) error {
	if err := write(w, `<h1>Who are you trying to reach?</h1>`); err != nil {
		return err
	}
	return textArea(w, "audience", "Your ideal customer", draft.Audience, "Describe who buys from you")
}

func wizardStepTargeting(w io.Writer, view WizardStepView) error {
	if err := write(w, `<h1>Narrow it down</h1><fieldset><legend>Age range</legend>`); err != nil {
		return err
	}
	for _, option := range view.AgeRanges {
		checked := ""
		if option == view.Draft.AgeRange {
			checked = ` checked`
		}
		if err := write(w,
			`<label class="choice"><input type="radio" name="age_range" value="`, esc(option), `"`, checked, `> `, esc(option), `</label>`,
		); err != nil {
			return err
		}
	}
	if err := write(w, `</fieldset><fieldset><legend>Customer interests</legend>`); err != nil {
		return err
	}
	for _, option := range view.InterestOptions {
		checked := ""
		if view.hasInterest(option) {
			checked = ` checked`
		}
		if err := write(w,
			`<label class="choice"><input type="checkbox" name="interests" value="`, esc(option), `"`, checked, `> `, esc(option), `</label>`,
		); err != nil {
			return err
		}
	}
	return write(w, `</fieldset>`)
}

func wizardStepVolume(w io.Writer, view WizardStepView) error {
	if err := write(w, `<h1>How many ads per week?</h1><fieldset><legend>Creatives per week</legend>`); err != nil {
		return err
	}
	for _, option := range view.CreativeBands {
		checked := ""
		if option == view.Draft.CreativesPerWeek {
			checked = ` checked`
		}
		if err := write(w,
			`<label class="choice"><input type="radio" name="creatives_per_week" value="`, esc(option), `"`, checked, `> `, esc(option), `</label>`,
		); err != nil {
			return err
		}
	}
	if err := write(w, `</fieldset><section class="wizard-review"><h2>Review</h2><dl>`); err != nil {
		return err
	}
	rows := []struct{ label, value string }{
		{"Business", view.Draft.BusinessName},
		{"Zip code", view.Draft.Zipcode},
		{"Mission", view.Draft.Mission},
		{"Products", view.Draft.Products},
		{"Audience", view.Draft.Audience},
		{"Age range", view.Draft.AgeRange},
	}
	for _, row := range rows {
		if err := write(w, `<dt>`, esc(row.label), `</dt><dd>`, esc(row.value), `</dd>`); err != nil {
			return err
		}
	}
	return write(w, `</dl></section>`)
}
