package onboarding

import (
	"errors"
	"net/http"
	"strings"

	"github.com/awelabs/awe.agency/internal/adgen"
	"github.com/awelabs/awe.agency/internal/web/module"
	"github.com/awelabs/awe.agency/internal/web/platform/flash"
	"github.com/awelabs/awe.agency/internal/web/platform/pagerender"
	"github.com/awelabs/awe.agency/internal/web/platform/sessioncookie"
	"github.com/awelabs/awe.agency/internal/web/platform/weberror"
	"github.com/awelabs/awe.agency/internal/web/routepath"
	"github.com/awelabs/awe.agency/internal/web/templates"
)

type handlers struct {
	deps     module.Dependencies
	sessions *SessionStore
}

// ensureSession resolves the wizard session from the cookie, starting a
// fresh one when the cookie is missing or the session expired.
func (h handlers) ensureSession(w http.ResponseWriter, r *http.Request) (string, Session, error) {
	if sessionID, ok := sessioncookie.Read(r, sessioncookie.WizardName); ok {
		if sess, ok := h.sessions.Snapshot(sessionID); ok {
			return sessionID, sess, nil
		}
	}
	sessionID, err := h.sessions.Create()
	if err != nil {
		return "", Session{}, err
	}
	sessioncookie.Write(w, r, sessioncookie.WizardName, sessionID)
	return sessionID, Session{Step: 1}, nil
}

// applyStepForm copies the posted fields owned by step into the draft.
// Fields owned by other steps are never touched.
func applyStepForm(draft *DraftProfile, step int, r *http.Request) {
	switch step {
	case 1:
		draft.BusinessName = strings.TrimSpace(r.PostFormValue("business_name"))
		draft.Zipcode = strings.TrimSpace(r.PostFormValue("zipcode"))
	case 2:
		draft.Mission = strings.TrimSpace(r.PostFormValue("mission"))
		draft.Products = strings.TrimSpace(r.PostFormValue("products"))
	case 3:
		draft.Audience = strings.TrimSpace(r.PostFormValue("audience"))
	case 4:
		draft.AgeRange = strings.TrimSpace(r.PostFormValue("age_range"))
		draft.Interests = nil
		for _, interest := range r.PostForm["interests"] {
			interest = strings.TrimSpace(interest)
			if interest != "" {
				draft.Interests = append(draft.Interests, interest)
			}
		}
	case 5:
		draft.CreativesPerWeek = strings.TrimSpace(r.PostFormValue("creatives_per_week"))
	}
}

func stepValidationMessage(step int) string {
	switch step {
	case 4:
		return "Pick an age range and at least one interest to continue."
	case 5:
		return "Pick how many ads you want per week."
	default:
		return "Please fill in every field to continue."
	}
}

func (h handlers) renderStep(w http.ResponseWriter, r *http.Request, sess Session, validationError string) {
	var notice *templates.Notice
	if n, ok := flash.ReadAndClear(w, r); ok {
		notice = &templates.Notice{Kind: string(n.Kind), Message: n.Message}
	}
	page := pagerender.Page{
		Title:  "Get started",
		Notice: notice,
		Fragment: templates.Wizard(templates.WizardStepView{
			Step:            sess.Step,
			TotalSteps:      TotalSteps,
			ProgressPct:     ProgressPct(sess.Step),
			Draft:           draftView(sess.Draft),
			AgeRanges:       AgeRanges,
			InterestOptions: InterestOptions,
			CreativeBands:   CreativeBands,
			ValidationError: validationError,
		}),
	}
	if err := pagerender.Write(w, r, h.deps, page); err != nil {
		h.deps.Logger.Error().Err(err).Msg("render wizard step")
	}
}

func draftView(draft DraftProfile) templates.WizardDraftView {
	return templates.WizardDraftView{
		BusinessName:     draft.BusinessName,
		Zipcode:          draft.Zipcode,
		Mission:          draft.Mission,
		Products:         draft.Products,
		Audience:         draft.Audience,
		AgeRange:         draft.AgeRange,
		Interests:        draft.Interests,
		CreativesPerWeek: draft.CreativesPerWeek,
	}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	_, sess, err := h.ensureSession(w, r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.renderStep(w, r, sess, "")
}

// handleStep saves the current step's fields and advances when they
// validate. Invalid input re-renders the step inline with the draft kept.
func (h handlers) handleStep(w http.ResponseWriter, r *http.Request) {
	sessionID, sess, err := h.ensureSession(w, r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	valid := false
	h.sessions.Update(sessionID, func(draft *DraftProfile, step *int) {
		applyStepForm(draft, *step, r)
		if IsStepValid(*step, *draft) {
			valid = true
			*step++
		}
		sess = Session{Draft: *draft, Step: *step}
	})

	if !valid {
		sess.Draft.Interests = append([]string(nil), sess.Draft.Interests...)
		h.renderStep(w, r, sess, stepValidationMessage(sess.Step))
		return
	}
	http.Redirect(w, r, routepath.GetStartedPrefix, http.StatusSeeOther)
}

// handleBack saves the current step's fields without validating and goes
// one step back, never below step 1 and never clearing data.
func (h handlers) handleBack(w http.ResponseWriter, r *http.Request) {
	sessionID, _, err := h.ensureSession(w, r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.sessions.Update(sessionID, func(draft *DraftProfile, step *int) {
		applyStepForm(draft, *step, r)
		*step--
	})
	http.Redirect(w, r, routepath.GetStartedPrefix, http.StatusSeeOther)
}

// handleSubmit submits the completed draft for generation. While a
// submission is in flight further submits are ignored; on failure the
// wizard stays on the last step with the draft intact.
func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sessionID, sess, err := h.ensureSession(w, r)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.sessions.Update(sessionID, func(draft *DraftProfile, step *int) {
		if *step == TotalSteps {
			applyStepForm(draft, *step, r)
		}
		sess = Session{Draft: *draft, Step: *step}
	})

	if sess.Step != TotalSteps || !IsComplete(sess.Draft) {
		h.renderStep(w, r, sess, stepValidationMessage(sess.Step))
		return
	}

	current, ok := h.sessions.BeginSubmit(sessionID)
	if !ok {
		// A submission is already in flight for this session.
		http.Redirect(w, r, routepath.GetStartedPrefix, http.StatusSeeOther)
		return
	}

	result, err := h.deps.Generator.Submit(r.Context(), submission(current.Draft))
	if err != nil {
		h.sessions.FinishSubmit(sessionID, nil)
		h.deps.Logger.Warn().Err(err).Msg("ad generation submit failed")
		flash.Write(w, r, flash.NoticeError(submissionMessage(err)))
		http.Redirect(w, r, routepath.GetStartedPrefix, http.StatusSeeOther)
		return
	}

	h.sessions.FinishSubmit(sessionID, &result)
	http.Redirect(w, r, routepath.GetStartedResults, http.StatusSeeOther)
}

func submission(draft DraftProfile) adgen.Submission {
	return adgen.Submission{
		BusinessName:     draft.BusinessName,
		Zipcode:          draft.Zipcode,
		Mission:          draft.Mission,
		Products:         draft.Products,
		Audience:         draft.Audience,
		AgeRange:         draft.AgeRange,
		Interests:        draft.Interests,
		CreativesPerWeek: draft.CreativesPerWeek,
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteStatus(w, r, http.StatusNotFound, h.deps)
}

func submissionMessage(err error) string {
	var subErr *adgen.SubmissionError
	if errors.As(err, &subErr) && subErr.Message != "" {
		return subErr.Message
	}
	return "We could not generate your ads right now. Your answers are saved, please try again."
}
